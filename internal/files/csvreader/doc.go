// Package csvreader reads a CSV file with a header row into an ecomload.Frame.
//
// Column kinds are inferred from content: a column whose every present value
// parses as a base-10 integer is an integer column, one whose values all parse
// as floats is a real column, and anything else is text. Cells holding one of
// the usual missing-value markers ("", "NA", "NULL", "NaN", ...) are kept as
// nil and take no part in inference.
package csvreader
