// Package validation compares facts extracted from one scope against the
// correspondence tables and yields diagnostics.
//
// Every validator is a pure function returning an iter.Seq, so callers may
// stop consuming early. Absent data is never an error here: a validator
// either has something to check and reports it, or yields nothing.
package validation
