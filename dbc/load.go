package dbc

import (
	"fmt"
	"os"

	"candb-parser/network"
)

// Load opens and parses the database source at path. An unreadable path
// fails the whole operation: the returned database is empty (never nil) and
// the error wraps ErrSourceUnavailable and names the path.
func (p *Parser) Load(path string) (*network.Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return network.NewDatabase(path), fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	return p.Parse(f, path)
}

// Load parses the database source at path with a one-shot Parser. Callers
// that need the parse diagnostics should construct a Parser instead.
func Load(path string, opts ...Option) (*network.Database, error) {
	return NewParser(opts...).Load(path)
}
