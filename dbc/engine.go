package dbc

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"candb-parser/internal/diagnostic"
	"candb-parser/network"
)

// state is the ingestion engine's position in the line protocol.
type state int

const (
	stateIdle     state = iota // no message under construction
	stateBuilding              // one message accumulating signals
)

// Parser ingests a database source in one forward pass. A Parser is not
// safe for concurrent use; each build must run on its own Parser.
type Parser struct {
	logger  *slog.Logger
	lenient bool
	name    string

	db      *network.Database
	current *network.Message // non-nil exactly in stateBuilding
	state   state
	line    int // 1-based, for error reporting
	diags   diagnostic.Diagnostics
}

// NewParser creates a Parser with the given options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Diagnostics returns the non-fatal findings of the last parse: dropped
// value tables, skipped attribute values, short comment lines.
func (p *Parser) Diagnostics() *diagnostic.Diagnostics {
	return &p.diags
}

// Parse consumes the source as an ordered sequence of lines and returns the
// fully linked database. The path only labels the resulting database. On a
// fatal parse error no partial model is returned.
func (p *Parser) Parse(r io.Reader, path string) (*network.Database, error) {
	p.db = network.NewDatabase(path)
	p.db.SetName(p.name)
	p.current = nil
	p.state = stateIdle
	p.line = 0
	p.diags = diagnostic.Diagnostics{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.line++

		if err := p.consume(scanner.Text()); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return network.NewDatabase(path), fmt.Errorf("%w: reading %s: %v", ErrSourceUnavailable, path, err)
	}

	// A source ending without a trailing blank line still closes the last
	// message. The original parser dropped it; that data loss is not kept.
	if p.state == stateBuilding {
		p.diags.AddInfo(diagnostic.CodeMessageAutoClosed,
			"message open at end of input, finalized", p.current.Name(), p.line)
		p.finalizeCurrent()
	}

	return p.db, nil
}

// consume classifies one line and dispatches it. Unrecognized lines are
// ignored.
func (p *Parser) consume(line string) error {
	switch {
	case strings.HasPrefix(line, "BU_:"):
		p.db.AddTransmittingNodes(parseNodeList(line)...)

	case strings.HasPrefix(line, "BO_ "):
		return p.beginMessage(line)

	case strings.HasPrefix(line, " SG_") && p.state == stateBuilding:
		return p.appendSignal(line)

	case line == "":
		if p.state == stateBuilding {
			p.finalizeCurrent()
		}

	case strings.HasPrefix(line, "VAL_"):
		return p.attachValueTable(line)

	case strings.HasPrefix(line, "BA_DEF_ BO_"):
		p.appendAttributeSchema(line)

	case strings.HasPrefix(line, "BA_ "):
		p.attachAttributeValue(line)

	case strings.HasPrefix(line, "CM_"):
		p.attachSignalComment(line)
	}

	return nil
}

// beginMessage opens a new message from a header line. A header arriving
// while a message is still open means the input lost a blank-line
// terminator: fatal by default, finalize-in-place under lenient termination.
func (p *Parser) beginMessage(line string) error {
	if p.state == stateBuilding {
		if !p.lenient {
			return &ParseError{Line: p.line, Subject: p.current.Name(), Err: ErrUnterminatedMessage}
		}

		p.diags.AddWarning(diagnostic.CodeMessageAutoClosed,
			"message not terminated by blank line, finalized", p.current.Name(), p.line)
		p.finalizeCurrent()
	}

	header, err := parseMessageHeader(line)
	if err != nil {
		return &ParseError{Line: p.line, Err: err}
	}

	p.current = network.NewMessage(header.ID, header.Name, header.DLC, header.Transmitter)
	p.state = stateBuilding

	p.log("message header", slog.String("name", header.Name), slog.Uint64("id", uint64(header.ID)))

	return nil
}

// appendSignal parses a signal line and appends it to the open message.
// Only reachable in stateBuilding.
func (p *Parser) appendSignal(line string) error {
	fields, err := parseSignalLine(line)
	if err != nil {
		return &ParseError{Line: p.line, Subject: p.current.Name(), Err: err}
	}

	sign, err := network.SignFromChar(fields.Sign)
	if err != nil {
		return &ParseError{Line: p.line, Subject: fields.Name, Err: err}
	}

	order, err := network.ByteOrderFromFlag(fields.Order)
	if err != nil {
		return &ParseError{Line: p.line, Subject: fields.Name, Err: err}
	}

	p.current.AddSignal(network.NewSignal(
		fields.Name, sign, order,
		fields.StartBit, fields.Length,
		fields.Factor, fields.Offset, fields.Min, fields.Max,
		fields.Unit, fields.Receivers,
	))

	p.log("signal", slog.String("name", fields.Name), slog.String("message", p.current.Name()))

	return nil
}

// finalizeCurrent computes the subscriber set, appends the message to the
// database, and returns to stateIdle.
func (p *Parser) finalizeCurrent() {
	p.current.UpdateSubscribers()
	p.db.AddMessage(p.current)

	p.log("message finalized",
		slog.String("name", p.current.Name()),
		slog.Int("signals", len(p.current.Signals())))

	p.current = nil
	p.state = stateIdle
}

// attachValueTable links a "VAL_" line to its signal. A reference to a
// message or signal that does not exist among the completed messages is
// dropped with a diagnostic; by construction a value table can never reach
// the message still under construction.
func (p *Parser) attachValueTable(line string) error {
	vt, err := parseValueLine(line)
	if err != nil {
		return &ParseError{Line: p.line, Subject: vt.Signal, Err: err}
	}

	msg := p.db.MessageByID(vt.MessageID)
	if msg == nil {
		p.diags.AddWarning(diagnostic.CodeValueTableDropped,
			fmt.Sprintf("no message with identifier %#x", vt.MessageID), vt.Signal, p.line)
		return nil
	}

	sig := msg.SignalByName(vt.Signal)
	if sig == nil {
		p.diags.AddWarning(diagnostic.CodeValueTableDropped,
			fmt.Sprintf("no signal %q in message %s", vt.Signal, msg.Name()), vt.Signal, p.line)
		return nil
	}

	sig.SetValues(vt.Entries)

	return nil
}

// appendAttributeSchema records a "BA_DEF_ BO_" declaration.
func (p *Parser) appendAttributeSchema(line string) {
	schema, ok := parseAttributeSchema(line)
	if !ok {
		p.diags.AddWarning(diagnostic.CodeSchemaSkipped, "attribute schema line has missing fields", "", p.line)
		return
	}

	p.db.AddAttributeSchema(schema)
}

// attachAttributeValue links a "BA_" line to its message, skipping silently
// (with a diagnostic) when the identifier resolves to nothing.
func (p *Parser) attachAttributeValue(line string) {
	attr, ok := parseAttributeValue(line)
	if !ok {
		p.diags.AddWarning(diagnostic.CodeAttributeSkipped, "attribute value line has missing fields", "", p.line)
		return
	}

	msg := p.db.MessageByID(attr.MessageID)
	if msg == nil {
		p.diags.AddWarning(diagnostic.CodeAttributeSkipped,
			fmt.Sprintf("no message with identifier %d", attr.MessageID), attr.Value.Name, p.line)
		return
	}

	msg.AddAttribute(attr.Value)
}

// attachSignalComment links a "CM_" line to its signal. Short or unresolved
// comment lines are skipped; the scan continues.
func (p *Parser) attachSignalComment(line string) {
	comment, ok := parseSignalComment(line)
	if !ok {
		p.diags.AddWarning(diagnostic.CodeCommentSkipped, "comment line too short", "", p.line)
		return
	}

	msg := p.db.MessageByID(comment.MessageID)
	if msg == nil {
		p.diags.AddWarning(diagnostic.CodeCommentSkipped,
			fmt.Sprintf("no message with identifier %d", comment.MessageID), comment.Signal, p.line)
		return
	}

	sig := msg.SignalByName(comment.Signal)
	if sig == nil {
		p.diags.AddWarning(diagnostic.CodeCommentSkipped,
			fmt.Sprintf("no signal %q in message %s", comment.Signal, msg.Name()), comment.Signal, p.line)
		return
	}

	sig.SetComment(comment.Text)
}

func (p *Parser) log(msg string, args ...any) {
	if p.logger == nil {
		return
	}

	p.logger.Debug(msg, append([]any{slog.Int("line", p.line)}, args...)...)
}
