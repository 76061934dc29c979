// Package cli implements the ecomload command line: the root command runs a
// load, and the schema and version subcommands are informational.
package cli
