// Package schema is the static registry of the tables ecomload loads into.
//
// Each table is declared once as a list of columns with SQLite types and
// constraints. CreateStatement renders an idempotent CREATE TABLE IF NOT EXISTS
// statement, so ensuring the schema against an existing database leaves its
// structure and rows untouched.
//
// No foreign keys are declared; relationships between orders, customers,
// products and payments are assumed by the data, not enforced.
package schema
