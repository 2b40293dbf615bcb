// Package config provides environment-based configuration.
//
// Loads from .env file (godotenv) when present, then reads individual
// variables with sensible defaults. The resulting Config is built once at
// startup and never mutated afterwards.
package config
