package network

// extendedBit marks an extended-frame (29-bit) arbitration ID in a raw
// database identifier.
const extendedBit uint32 = 0x80000000

// Message is one frame definition: identifier, byte length, transmitting
// node, and the signals packed into the frame. Signals are kept in file
// declaration order, not bit order.
type Message struct {
	raw         uint32
	name        string
	dlc         int
	transmitter string
	comment     string
	signals     []*Signal
	attributes  []AttributeValue
	subscribers []string
}

// NewMessage creates a Message with no signals. The identifier is immutable
// after construction.
func NewMessage(raw uint32, name string, dlc int, transmitter string) *Message {
	return &Message{
		raw:         raw,
		name:        name,
		dlc:         dlc,
		transmitter: transmitter,
		signals:     []*Signal{},
		attributes:  []AttributeValue{},
		subscribers: []string{},
	}
}

// Raw returns the identifier exactly as declared, including the
// extended-frame bit when present.
func (m *Message) Raw() uint32 { return m.raw }

// ID returns the arbitration ID with the extended-frame bit masked off.
func (m *Message) ID() uint32 { return m.raw &^ extendedBit }

// IsExtended reports whether the identifier declares an extended frame.
func (m *Message) IsExtended() bool { return m.raw&extendedBit != 0 }

// Name returns the message name.
func (m *Message) Name() string { return m.name }

// DLC returns the declared byte length of the frame.
func (m *Message) DLC() int { return m.dlc }

// Transmitter returns the transmitting-node name.
func (m *Message) Transmitter() string { return m.transmitter }

// Comment returns the attached comment, or the empty string.
func (m *Message) Comment() string { return m.comment }

// SetComment attaches a comment, replacing any previous one.
func (m *Message) SetComment(comment string) {
	m.comment = comment
}

// AddSignal appends a signal, preserving declaration order.
func (m *Message) AddSignal(s *Signal) {
	m.signals = append(m.signals, s)
}

// Signals returns the signals in declaration order.
func (m *Message) Signals() []*Signal { return m.signals }

// SignalByName returns the first signal with the given name, or nil.
// Lookup is a linear scan; first match wins.
func (m *Message) SignalByName(name string) *Signal {
	for _, s := range m.signals {
		if s.Name() == name {
			return s
		}
	}

	return nil
}

// AddAttribute attaches an attribute value to the message.
func (m *Message) AddAttribute(v AttributeValue) {
	m.attributes = append(m.attributes, v)
}

// Attributes returns the attached attribute values in attachment order.
func (m *Message) Attributes() []AttributeValue { return m.attributes }

// Subscribers returns the receiving-node names derived from the message's
// signals, first-seen order, deduplicated. Valid after UpdateSubscribers.
func (m *Message) Subscribers() []string { return m.subscribers }

// UpdateSubscribers recomputes the subscriber set from the signals'
// receiver lists. It runs once, at message finalization.
func (m *Message) UpdateSubscribers() {
	seen := make(map[string]struct{})
	subscribers := []string{}

	for _, s := range m.signals {
		for _, node := range s.Receivers() {
			if _, ok := seen[node]; ok {
				continue
			}

			seen[node] = struct{}{}
			subscribers = append(subscribers, node)
		}
	}

	m.subscribers = subscribers
}
