// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable console
// applications.
type Client interface {
	// Run starts the console and blocks until it exits or ctx is cancelled.
	Run(ctx context.Context) error
}
