// Package http implements the web console: a chi router built from the
// shared route table that renders the chat and knowledge-base views as
// server-side HTML.
//
// Forms post back to the console, which calls the client services and
// redirects to the page again, so notifications raised during the call are
// shown as flash toasts on the next render. Request tracing, access logging
// and request metrics are applied by middleware before any handler runs.
package http
