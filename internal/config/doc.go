// Package config handles configuration loading, parsing, and validation
// from environment variables, an optional .env file and an optional
// config.yaml. The resulting Config is passed explicitly to the components
// that need it; nothing reads settings from globals.
package config
