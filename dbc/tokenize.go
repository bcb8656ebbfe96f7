package dbc

import "strings"

// tokenize splits a line on spaces, except that a run of characters between
// double quotes belongs to a single token regardless of embedded spaces.
// Node and value display names may legitimately contain spaces, which is why
// strings.Fields is not usable here.
//
// Exact behavior, relied on by the record extractors:
//   - quote characters are stripped, not preserved
//   - an unterminated quote reads to end of line as part of the token
//   - empty tokens between consecutive spaces are preserved
func tokenize(line string) []string {
	var tokens []string
	var part strings.Builder

	inQuotes := false

	for i := 0; i < len(line); i++ {
		switch ch := line[i]; {
		case ch == ' ' && !inQuotes:
			tokens = append(tokens, part.String())
			part.Reset()
		case ch == '"':
			inQuotes = !inQuotes
		default:
			part.WriteByte(ch)
		}
	}

	return append(tokens, part.String())
}
