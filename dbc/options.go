package dbc

import "log/slog"

// Option configures a Parser.
type Option func(*Parser)

// WithLogger attaches a logger for debug-level scan events. A nil logger
// disables logging, which is the default.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithLenientTermination finalizes an open message in place when a new
// message header arrives without the usual blank-line terminator, instead of
// failing the parse. Useful for salvaging malformed vendor files.
func WithLenientTermination() Option {
	return func(p *Parser) {
		p.lenient = true
	}
}

// WithDatabaseName sets the display name of the built database.
func WithDatabaseName(name string) Option {
	return func(p *Parser) {
		p.name = name
	}
}
