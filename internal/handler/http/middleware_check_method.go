// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler for [chi.Mux.MethodNotAllowed] that
// answers with notFound instead of chi's default 405, so a console path
// requested with an unsupported method looks like any unknown page.
//
// When the method is registered for the exactly matching route pattern the
// request is handed back to the router.
func CheckHTTPMethod(mux *chi.Mux, notFound http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var found chi.Route
		for _, route := range mux.Routes() {
			if route.Pattern == r.URL.Path {
				found = route
				break
			}
		}

		if _, ok := found.Handlers[r.Method]; !ok {
			notFound(w, r)
			return
		}

		mux.ServeHTTP(w, r)
	}
}
