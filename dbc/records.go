package dbc

import (
	"fmt"
	"strconv"
	"strings"

	"candb-parser/network"
)

// parseNodeList extracts the node names from a "BU_:" line.
func parseNodeList(line string) []string {
	var nodes []string

	for _, item := range strings.Split(line, " ") {
		if item == "BU_:" || item == "" {
			continue
		}

		nodes = append(nodes, item)
	}

	return nodes
}

// messageHeader is the decomposed form of a "BO_" line.
type messageHeader struct {
	ID          uint32
	Name        string
	DLC         int
	Transmitter string
}

// parseMessageHeader extracts the fixed-position fields of a "BO_" line.
func parseMessageHeader(line string) (messageHeader, error) {
	items := strings.Split(line, " ")
	if len(items) < 5 {
		return messageHeader{}, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}

	id, err := strconv.ParseUint(items[1], 10, 32)
	if err != nil {
		return messageHeader{}, fmt.Errorf("%w: bad identifier %q", ErrMalformedHeader, items[1])
	}

	dlc, err := strconv.Atoi(items[3])
	if err != nil {
		return messageHeader{}, fmt.Errorf("%w: bad length %q", ErrMalformedHeader, items[3])
	}

	return messageHeader{
		ID:          uint32(id),
		Name:        strings.TrimSuffix(items[2], ":"),
		DLC:         dlc,
		Transmitter: items[4],
	}, nil
}

// valueTable is the decomposed form of a "VAL_" line: the hexadecimal
// message identifier, the signal name, and the ordered value/name pairs.
type valueTable struct {
	MessageID uint32
	Signal    string
	Entries   []network.ValueEntry
}

// parseValueLine extracts a value table. A dangling value without a name, or
// a value that is not an integer, is an error wrapping ErrMalformedValueTable
// and naming the subject signal; the engine treats that as fatal.
func parseValueLine(line string) (valueTable, error) {
	tokens := tokenize(line)
	if len(tokens) < 3 {
		return valueTable{}, fmt.Errorf("%w: %q", ErrMalformedValueTable, line)
	}

	id, err := strconv.ParseUint(tokens[1], 16, 32)
	if err != nil {
		return valueTable{}, fmt.Errorf("%w: bad identifier %q", ErrMalformedValueTable, tokens[1])
	}

	vt := valueTable{
		MessageID: uint32(id),
		Signal:    tokens[2],
	}

	pairs := trimTerminator(tokens[3:])

	for i := 0; i < len(pairs); i += 2 {
		value, err := strconv.Atoi(pairs[i])
		if err != nil {
			return vt, fmt.Errorf("%w: %s: bad value %q", ErrMalformedValueTable, vt.Signal, pairs[i])
		}

		if i+1 >= len(pairs) {
			return vt, fmt.Errorf("%w: %s: value %d has no name", ErrMalformedValueTable, vt.Signal, value)
		}

		vt.Entries = append(vt.Entries, network.ValueEntry{Value: value, Name: pairs[i+1]})
	}

	return vt, nil
}

// trimTerminator drops the trailing ";" of a record's token list, whether it
// arrived as its own token or glued to the last one.
func trimTerminator(tokens []string) []string {
	if len(tokens) == 0 {
		return tokens
	}

	last := strings.TrimSuffix(tokens[len(tokens)-1], ";")
	if last == "" {
		return tokens[:len(tokens)-1]
	}

	trimmed := make([]string, len(tokens))
	copy(trimmed, tokens)
	trimmed[len(trimmed)-1] = last

	return trimmed
}

// parseAttributeSchema extracts a "BA_DEF_ BO_" line. Empty tokens are
// skipped when locating the fields, so single and doubled spacing parse
// identically. Reports ok=false when fields are missing.
func parseAttributeSchema(line string) (network.AttributeSchema, bool) {
	tokens := tokenize(line)

	var fields []string

	seenMarker := false
	for _, tok := range tokens[1:] {
		if !seenMarker {
			seenMarker = tok == "BO_"
			continue
		}

		if tok != "" {
			fields = append(fields, tok)
		}
	}

	if len(fields) < 4 {
		return network.AttributeSchema{}, false
	}

	return network.AttributeSchema{
		Name: fields[0],
		Type: fields[1],
		Min:  fields[2],
		Max:  strings.TrimSuffix(fields[3], ";"),
	}, true
}

// attributeValue is the decomposed form of a "BA_" line.
type attributeValue struct {
	MessageID uint32
	Value     network.AttributeValue
}

// parseAttributeValue extracts a "BA_" line. Reports ok=false when fields
// are missing or the identifier is not numeric.
func parseAttributeValue(line string) (attributeValue, bool) {
	tokens := tokenize(line)
	if len(tokens) < 5 {
		return attributeValue{}, false
	}

	id, err := strconv.ParseUint(tokens[3], 10, 32)
	if err != nil {
		return attributeValue{}, false
	}

	return attributeValue{
		MessageID: uint32(id),
		Value: network.AttributeValue{
			Name:  tokens[1],
			Value: strings.TrimSuffix(tokens[4], ";"),
		},
	}, true
}

// signalComment is the decomposed form of a "CM_" signal comment line.
type signalComment struct {
	MessageID uint32
	Signal    string
	Text      string
}

// parseSignalComment extracts a "CM_" line. The comment text reconstructs
// the trailing tokens with no separating delimiter, a compatibility quirk
// downstream consumers depend on. Reports ok=false on short or non-numeric
// lines; the engine skips those instead of aborting the scan.
func parseSignalComment(line string) (signalComment, bool) {
	items := strings.Split(line, " ")
	if len(items) < 4 {
		return signalComment{}, false
	}

	id, err := strconv.ParseUint(items[2], 10, 32)
	if err != nil {
		return signalComment{}, false
	}

	return signalComment{
		MessageID: uint32(id),
		Signal:    items[3],
		Text:      strings.Join(items[4:], ""),
	}, true
}
