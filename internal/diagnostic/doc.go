// Package diagnostic collects the non-fatal findings of a database parse.
//
// Key capabilities:
//   - Dropped cross-references (value tables, attribute values, comments)
//   - Skipped malformed non-fatal records
//   - Auto-closed message notices
//
// Findings carry the 1-based source line and the subject (message or signal
// name) so a caller can locate the offending record after an otherwise
// successful parse.
package diagnostic
