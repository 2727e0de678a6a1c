// Package config loads and merges the application configuration from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults, in that priority order. The merged result is validated
// once at startup and passed into the rest of the application by value.
package config
