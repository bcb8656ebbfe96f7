package network

// ValueEntry is one (raw value, display name) pair of a signal's value table.
type ValueEntry struct {
	Value int
	Name  string
}

// Signal describes one named bit-field within a Message. A Signal is created
// fully formed from one declaration line; a value table and a comment may be
// attached later by separately positioned records.
type Signal struct {
	name      string
	sign      Sign
	order     ByteOrder
	startBit  int
	length    int
	factor    float64
	offset    float64
	min       float64
	max       float64
	unit      string
	receivers []string
	values    []ValueEntry
	comment   string
}

// NewSignal creates a Signal. The receiver list is copied so that no two
// signals share backing storage.
func NewSignal(
	name string,
	sign Sign,
	order ByteOrder,
	startBit, length int,
	factor, offset, min, max float64,
	unit string,
	receivers []string,
) *Signal {
	rx := make([]string, len(receivers))
	copy(rx, receivers)

	return &Signal{
		name:      name,
		sign:      sign,
		order:     order,
		startBit:  startBit,
		length:    length,
		factor:    factor,
		offset:    offset,
		min:       min,
		max:       max,
		unit:      unit,
		receivers: rx,
	}
}

// Name returns the signal name, unique within its owning message.
func (s *Signal) Name() string { return s.name }

// Sign returns the sign/type flag.
func (s *Signal) Sign() Sign { return s.sign }

// ByteOrder returns the byte-order/format flag.
func (s *Signal) ByteOrder() ByteOrder { return s.order }

// StartBit returns the bit position of the signal within the frame.
func (s *Signal) StartBit() int { return s.startBit }

// Length returns the bit length of the signal.
func (s *Signal) Length() int { return s.length }

// Factor returns the scaling factor. It is stored, never applied.
func (s *Signal) Factor() float64 { return s.factor }

// Offset returns the scaling offset. It is stored, never applied.
func (s *Signal) Offset() float64 { return s.offset }

// Min returns the declared physical minimum.
func (s *Signal) Min() float64 { return s.min }

// Max returns the declared physical maximum.
func (s *Signal) Max() float64 { return s.max }

// Unit returns the unit string, possibly empty.
func (s *Signal) Unit() string { return s.unit }

// Receivers returns the receiving-node names in declaration order.
func (s *Signal) Receivers() []string { return s.receivers }

// Values returns the value table, or nil if none was attached.
func (s *Signal) Values() []ValueEntry { return s.values }

// SetValues attaches a value table, replacing any previous one.
func (s *Signal) SetValues(values []ValueEntry) {
	s.values = values
}

// Comment returns the attached comment, or the empty string.
func (s *Signal) Comment() string { return s.comment }

// SetComment attaches a comment, replacing any previous one.
func (s *Signal) SetComment(comment string) {
	s.comment = comment
}
