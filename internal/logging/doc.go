// Package logging provides concrete implementations of the jatsmeta.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: writes prefixed lines to a writer (stderr by default)
//   - NullLogger: discards all messages
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
