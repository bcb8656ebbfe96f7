package network

// Database is the top-level container of a parsed network database. It is
// created empty, populated by exactly one ingestion pass, and treated as
// read-only afterwards.
type Database struct {
	path     string
	name     string
	comment  string
	messages []*Message
	txNodes  []string
	schemas  []AttributeSchema
}

// NewDatabase creates an empty Database for the given source path.
func NewDatabase(path string) *Database {
	return &Database{
		path:     path,
		messages: []*Message{},
		txNodes:  []string{},
		schemas:  []AttributeSchema{},
	}
}

// Path returns the source path the database was built from.
func (d *Database) Path() string { return d.path }

// Name returns the database display name.
func (d *Database) Name() string { return d.name }

// SetName sets the database display name.
func (d *Database) SetName(name string) {
	d.name = name
}

// Comment returns the attached comment, or the empty string.
func (d *Database) Comment() string { return d.comment }

// SetComment attaches a comment, replacing any previous one.
func (d *Database) SetComment(comment string) {
	d.comment = comment
}

// AddMessage appends a finalized message.
func (d *Database) AddMessage(m *Message) {
	d.messages = append(d.messages, m)
}

// Messages returns the messages in file order.
func (d *Database) Messages() []*Message { return d.messages }

// MessageByID returns the first message whose raw identifier equals id, or
// nil. Lookup is a linear scan; first match wins.
func (d *Database) MessageByID(id uint32) *Message {
	for _, m := range d.messages {
		if m.Raw() == id {
			return m
		}
	}

	return nil
}

// AddTransmittingNodes appends node names to the transmitting-node set.
func (d *Database) AddTransmittingNodes(names ...string) {
	d.txNodes = append(d.txNodes, names...)
}

// TransmittingNodes returns the transmitting-node names in file order.
func (d *Database) TransmittingNodes() []string { return d.txNodes }

// AddAttributeSchema appends an attribute schema.
func (d *Database) AddAttributeSchema(s AttributeSchema) {
	d.schemas = append(d.schemas, s)
}

// AttributeSchemas returns the declared attribute schemas in file order.
func (d *Database) AttributeSchemas() []AttributeSchema { return d.schemas }
