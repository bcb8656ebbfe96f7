package dbc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// signalPattern is the grammar for one signal declaration line:
//
//	SG_ <name> : <start>|<length>@<order><sign> (<factor>,<offset>) [<min>|<max>] "<unit>" <rx>[,<rx>...]
//
// Start bit and length are 1-2 decimal digits, the unit may contain any
// character except a double quote, and one or two spaces precede the
// receiver list. Compiled once; reused across every signal line parsed.
var signalPattern = regexp.MustCompile(
	`^ SG_ (?P<name>.*) : ` +
		`(?P<start>[0-9]{1,2})\|(?P<length>[0-9]{1,2})` +
		`@(?P<order>[01])(?P<sign>[+-]) ` +
		`\((?P<factor>[^,]*),(?P<offset>[^)]*)\) ` +
		`\[(?P<min>[^|]*)\|(?P<max>[^\]]*)\] ` +
		`"(?P<unit>[^"]*)" {1,2}(?P<receivers>.*)$`,
)

// signalFields is the decomposed form of one signal line. Order and Sign are
// still the raw grammar values (flag digit, sign character).
type signalFields struct {
	Name      string
	StartBit  int
	Length    int
	Order     int
	Sign      byte
	Factor    float64
	Offset    float64
	Min       float64
	Max       float64
	Unit      string
	Receivers []string
}

// parseSignalLine decomposes a signal declaration line. A line the grammar
// does not match is an error wrapping ErrMalformedSignal; the engine treats
// that as fatal to the whole parse.
func parseSignalLine(line string) (signalFields, error) {
	m := signalPattern.FindStringSubmatch(line)
	if m == nil {
		return signalFields{}, fmt.Errorf("%w: %q", ErrMalformedSignal, line)
	}

	group := func(name string) string {
		return m[signalPattern.SubexpIndex(name)]
	}

	var fields signalFields
	fields.Name = group("name")
	fields.Unit = group("unit")
	fields.Sign = group("sign")[0]
	fields.Receivers = strings.Split(group("receivers"), ",")

	var err error

	// Digit-only groups cannot fail Atoi once the pattern has matched.
	fields.StartBit, _ = strconv.Atoi(group("start"))
	fields.Length, _ = strconv.Atoi(group("length"))
	fields.Order, _ = strconv.Atoi(group("order"))

	for _, num := range []struct {
		name string
		dst  *float64
	}{
		{"factor", &fields.Factor},
		{"offset", &fields.Offset},
		{"min", &fields.Min},
		{"max", &fields.Max},
	} {
		*num.dst, err = strconv.ParseFloat(group(num.name), 64)
		if err != nil {
			return signalFields{}, fmt.Errorf("%w: bad %s %q", ErrMalformedSignal, num.name, group(num.name))
		}
	}

	return fields, nil
}
