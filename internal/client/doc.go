// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the console application: configuration, logging,
// notifications, the backend adapter, chat history storage, services and
// background workers, and runs either the terminal or the web console on
// top of them.
package client
