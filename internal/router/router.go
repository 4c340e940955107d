// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package router holds the console route table: the mapping from URL paths
// to named views, including redirects.
//
// Both front ends resolve paths through the same [Table], so "/" lands on
// the chat view in the terminal UI and in the web console alike.
package router

import (
	"fmt"
	"strings"
)

// View identifies a rendered page.
type View string

const (
	ViewChat      View = "chat"
	ViewKnowledge View = "knowledge"
)

// Route paths and names of the default table.
const (
	PathRoot      = "/"
	PathChat      = "/chat"
	PathKnowledge = "/knowledge"

	NameChat      = "Chat"
	NameKnowledge = "Knowledge"
)

// maxRedirects bounds redirect chains during resolution.
const maxRedirects = 8

// Route is one entry of the table. Exactly one of Redirect and View is set.
type Route struct {
	Path     string
	Name     string
	Redirect string
	View     View
}

// IsRedirect reports whether the route only forwards to another path.
func (r Route) IsRedirect() bool {
	return r.Redirect != ""
}

// Table is an immutable, validated set of routes.
type Table struct {
	routes []Route
	byPath map[string]Route
	byName map[string]Route
}

// New validates routes and builds a table. Paths must be absolute and
// unique, names unique, redirect targets must exist, and redirects must not
// form a cycle.
func New(routes ...Route) (*Table, error) {
	t := &Table{
		routes: make([]Route, 0, len(routes)),
		byPath: make(map[string]Route, len(routes)),
		byName: make(map[string]Route, len(routes)),
	}

	for _, r := range routes {
		if !strings.HasPrefix(r.Path, "/") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, r.Path)
		}
		r.Path = Normalize(r.Path)

		if (r.Redirect == "") == (r.View == "") {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRoute, r.Path)
		}
		if r.Redirect != "" {
			r.Redirect = Normalize(r.Redirect)
		}

		if _, ok := t.byPath[r.Path]; ok {
			return nil, fmt.Errorf("%w: path %s", ErrDuplicateRoute, r.Path)
		}
		if r.Name != "" {
			if _, ok := t.byName[r.Name]; ok {
				return nil, fmt.Errorf("%w: name %s", ErrDuplicateRoute, r.Name)
			}
			t.byName[r.Name] = r
		}

		t.byPath[r.Path] = r
		t.routes = append(t.routes, r)
	}

	for _, r := range t.routes {
		if !r.IsRedirect() {
			continue
		}
		if _, ok := t.byPath[r.Redirect]; !ok {
			return nil, fmt.Errorf("%w: %s -> %s", ErrUnknownRedirect, r.Path, r.Redirect)
		}
		if _, err := t.Resolve(r.Path); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Default returns the console table:
//
//	/          -> redirect to /chat
//	/chat      -> chat view
//	/knowledge -> knowledge view
func Default() *Table {
	t, err := New(
		Route{Path: PathRoot, Redirect: PathChat},
		Route{Path: PathChat, Name: NameChat, View: ViewChat},
		Route{Path: PathKnowledge, Name: NameKnowledge, View: ViewKnowledge},
	)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve normalizes path, follows redirects and returns the view route.
func (t *Table) Resolve(path string) (Route, error) {
	current := Normalize(path)

	for range maxRedirects + 1 {
		r, ok := t.byPath[current]
		if !ok {
			return Route{}, fmt.Errorf("%w: %s", ErrRouteNotFound, current)
		}
		if !r.IsRedirect() {
			return r, nil
		}
		current = r.Redirect
	}

	return Route{}, fmt.Errorf("%w: %s", ErrRedirectLoop, Normalize(path))
}

// Lookup returns the route registered at path without following redirects.
func (t *Table) Lookup(path string) (Route, bool) {
	r, ok := t.byPath[Normalize(path)]
	return r, ok
}

// ByName returns the route registered under name.
func (t *Table) ByName(name string) (Route, bool) {
	r, ok := t.byName[name]
	return r, ok
}

// Routes returns a copy of the routes in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Views returns the non-redirect routes in declaration order.
func (t *Table) Views() []Route {
	out := make([]Route, 0, len(t.routes))
	for _, r := range t.routes {
		if !r.IsRedirect() {
			out = append(out, r)
		}
	}
	return out
}

// Normalize strips query and fragment, maps an empty path to "/", and trims
// trailing slashes.
func Normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}
