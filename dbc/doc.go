// Package dbc parses CAN database (.dbc) files into a network.Database.
//
// Parsing is a single forward pass over the source lines, driven by a
// two-state machine (idle / building a message). Records that arrive after
// the entities they refer to (value tables, attribute values, comments) are
// cross-referenced by linear lookup against the already-completed part of
// the model; references that resolve to nothing are dropped and recorded as
// diagnostics, never errors.
//
// Parse failures that do abort the scan — an unreadable source, a signal
// line the grammar rejects, a value-table line with dangling pairs — carry
// the 1-based line number and, where known, the subject name.
package dbc
