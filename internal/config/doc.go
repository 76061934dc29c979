// Package config reads the optional ecomload.yaml project file and the
// ECOMLOAD_* environment overrides.
package config
