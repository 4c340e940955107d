package router

import "errors"

var (
	ErrRouteNotFound   = errors.New("route not found")
	ErrInvalidPath     = errors.New("route path must be absolute")
	ErrInvalidRoute    = errors.New("route must have exactly one of redirect or view")
	ErrDuplicateRoute  = errors.New("duplicate route")
	ErrUnknownRedirect = errors.New("redirect target is not registered")
	ErrRedirectLoop    = errors.New("redirect loop")
)
