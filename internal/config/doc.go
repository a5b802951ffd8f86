// Package config provides configuration loading, merging, and validation
// facilities for the LibraReads server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in policy defaults
//
// The main entry point is [GetStructuredConfig]. The resulting value is
// resolved once at process start and treated as immutable thereafter; all
// secrets (database DSN, token sign key, SMTP credentials) arrive through
// it and are never hard-coded.
package config
