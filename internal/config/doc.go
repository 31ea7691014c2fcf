// Package config loads, normalizes, and validates subgen configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Always obtain settings through this
// package so downstream code receives sanitized paths, canonical language
// codes, and clear validation errors.
package config
