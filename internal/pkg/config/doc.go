// Package config provides functionality for loading and managing application configuration.
//
// Settings are layered from built-in defaults, an optional YAML file and GGEA_ prefixed
// environment variables, validated, and then handed to the rest of the application.
package config
