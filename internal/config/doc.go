// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional YAML file. It gives the server,
// the CLI and the quantity engine type-safe access to their settings.
package config
