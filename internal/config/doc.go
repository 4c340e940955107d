// Package config provides configuration loading, merging, and validation
// facilities for the qa-console binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables (optionally seeded from a .env file)
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the raw merged values
// and [GetClientConfig] for the validated view used by the binaries.
package config
