package dbc

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fatal failure kinds. Use errors.Is against these;
// the concrete error is usually a *ParseError wrapping one of them.
var (
	// ErrSourceUnavailable reports a source that cannot be opened or read.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrMalformedSignal reports a signal line the grammar rejects.
	ErrMalformedSignal = errors.New("malformed signal line")

	// ErrMalformedValueTable reports a value-table line with fewer
	// value/name tokens than expected.
	ErrMalformedValueTable = errors.New("malformed value table line")

	// ErrMalformedHeader reports a message header line with missing fields.
	ErrMalformedHeader = errors.New("malformed message header")

	// ErrUnterminatedMessage reports a message header encountered while the
	// previous message was still open (missing blank-line terminator).
	ErrUnterminatedMessage = errors.New("unterminated message")
)

// ParseError ties a fatal parse failure to its source line.
type ParseError struct {
	Line    int    // 1-based line number
	Subject string // message or signal name, when known
	Err     error
}

func (e *ParseError) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Subject, e.Err)
	}

	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
