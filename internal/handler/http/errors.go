// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidID is returned when an {id} path segment is not a positive
	// integer.
	ErrInvalidID = errors.New("invalid knowledge id")

	// ErrNoServices is returned by NewHandler when the chat or knowledge
	// service is missing.
	ErrNoServices = errors.New("web console services are not configured")
)
