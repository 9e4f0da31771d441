// Package config handles configuration loading and management for envfile.
//
// It provides functionality for:
//   - Loading configuration from .envfile.yaml (or .yml, .envfilerc) files
//   - Validating the file against an embedded JSON schema
//   - Default configuration values
//   - Merging file values with command line overrides
package config
