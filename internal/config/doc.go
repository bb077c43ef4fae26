// Package config loads, parses and validates the service configuration from
// environment variables and an optional config file. The resulting Config is
// built once in main and handed to each component explicitly.
package config
