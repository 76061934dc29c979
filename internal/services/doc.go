// Package services holds the load workflow: it checks the data directory,
// creates the schema and appends each CSV source to its table in order.
package services
