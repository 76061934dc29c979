// Package logging provides concrete implementations of the ecomload.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes leveled messages through zerolog's console writer
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
