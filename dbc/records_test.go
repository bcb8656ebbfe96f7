package dbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candb-parser/network"
)

func TestParseNodeList(t *testing.T) {
	assert.Equal(t, []string{"ECU", "Dash", "Logger"}, parseNodeList("BU_: ECU Dash Logger"))
	assert.Empty(t, parseNodeList("BU_:"))
}

func TestParseMessageHeader(t *testing.T) {
	header, err := parseMessageHeader("BO_ 500 EngineData: 8 ECU")
	require.NoError(t, err)

	assert.Equal(t, uint32(500), header.ID)
	assert.Equal(t, "EngineData", header.Name)
	assert.Equal(t, 8, header.DLC)
	assert.Equal(t, "ECU", header.Transmitter)
}

func TestParseMessageHeaderMalformed(t *testing.T) {
	_, err := parseMessageHeader("BO_ 500 EngineData: 8")
	assert.ErrorIs(t, err, ErrMalformedHeader)

	_, err = parseMessageHeader("BO_ abc EngineData: 8 ECU")
	assert.ErrorIs(t, err, ErrMalformedHeader)
}

func TestParseValueLine(t *testing.T) {
	vt, err := parseValueLine(`VAL_ 1F4 RPM 0 "Idle" 1 "Running" ;`)
	require.NoError(t, err)

	assert.Equal(t, uint32(500), vt.MessageID) // 1F4 is hexadecimal
	assert.Equal(t, "RPM", vt.Signal)
	assert.Equal(t, []network.ValueEntry{
		{Value: 0, Name: "Idle"},
		{Value: 1, Name: "Running"},
	}, vt.Entries)
}

func TestParseValueLineGluedTerminator(t *testing.T) {
	vt, err := parseValueLine(`VAL_ 1F4 RPM 0 "Idle" 1 "Running";`)
	require.NoError(t, err)

	require.Len(t, vt.Entries, 2)
	assert.Equal(t, "Running", vt.Entries[1].Name)
}

func TestParseValueLineDanglingPair(t *testing.T) {
	vt, err := parseValueLine(`VAL_ 1F4 RPM 0 "Idle" 1 ;`)
	require.ErrorIs(t, err, ErrMalformedValueTable)
	assert.Equal(t, "RPM", vt.Signal)
}

func TestParseValueLineNonIntegerValue(t *testing.T) {
	_, err := parseValueLine(`VAL_ 1F4 RPM zero "Idle" ;`)
	assert.ErrorIs(t, err, ErrMalformedValueTable)
}

func TestParseAttributeSchema(t *testing.T) {
	// The doubled space after BO_ matches files written by the original
	// toolchain; single spacing must parse identically.
	for _, line := range []string{
		`BA_DEF_ BO_  "GenMsgCycleTime" INT 0 65535;`,
		`BA_DEF_ BO_ "GenMsgCycleTime" INT 0 65535;`,
	} {
		schema, ok := parseAttributeSchema(line)
		require.True(t, ok, "line %q", line)

		assert.Equal(t, "GenMsgCycleTime", schema.Name)
		assert.Equal(t, "INT", schema.Type)
		assert.Equal(t, "0", schema.Min)
		assert.Equal(t, "65535", schema.Max)
	}
}

func TestParseAttributeSchemaMissingFields(t *testing.T) {
	_, ok := parseAttributeSchema(`BA_DEF_ BO_ "GenMsgCycleTime" INT`)
	assert.False(t, ok)
}

func TestParseAttributeValue(t *testing.T) {
	attr, ok := parseAttributeValue(`BA_ "GenMsgCycleTime" BO_ 500 100;`)
	require.True(t, ok)

	assert.Equal(t, uint32(500), attr.MessageID)
	assert.Equal(t, "GenMsgCycleTime", attr.Value.Name)
	assert.Equal(t, "100", attr.Value.Value)
}

func TestParseAttributeValueMalformed(t *testing.T) {
	_, ok := parseAttributeValue(`BA_ "GenMsgCycleTime" BO_ 500`)
	assert.False(t, ok)

	_, ok = parseAttributeValue(`BA_ "GenMsgCycleTime" BO_ abc 100;`)
	assert.False(t, ok)
}

func TestParseSignalComment(t *testing.T) {
	comment, ok := parseSignalComment("CM_ SG_ 500 RPM Engine revolutions per minute")
	require.True(t, ok)

	assert.Equal(t, uint32(500), comment.MessageID)
	assert.Equal(t, "RPM", comment.Signal)
	// Trailing tokens concatenate with no separator, a quirk kept for
	// compatibility with the original toolchain's output.
	assert.Equal(t, "Enginerevolutionsperminute", comment.Text)
}

func TestParseSignalCommentShortLine(t *testing.T) {
	_, ok := parseSignalComment("CM_ SG_")
	assert.False(t, ok)

	_, ok = parseSignalComment("CM_ SG_ 500")
	assert.False(t, ok)
}
