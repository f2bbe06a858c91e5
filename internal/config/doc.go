// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged in priority order (environment variables first,
// flags second, JSON file last for non-zero fields) and the final result
// is validated before use.
package config
