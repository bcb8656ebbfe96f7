package dbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignalLine(t *testing.T) {
	fields, err := parseSignalLine(` SG_ RPM : 0|16@0+ (1,0) [0|65535] "rpm" Dash`)
	require.NoError(t, err)

	assert.Equal(t, "RPM", fields.Name)
	assert.Equal(t, 0, fields.StartBit)
	assert.Equal(t, 16, fields.Length)
	assert.Equal(t, 0, fields.Order)
	assert.Equal(t, byte('+'), fields.Sign)
	assert.Equal(t, 1.0, fields.Factor)
	assert.Equal(t, 0.0, fields.Offset)
	assert.Equal(t, 0.0, fields.Min)
	assert.Equal(t, 65535.0, fields.Max)
	assert.Equal(t, "rpm", fields.Unit)
	assert.Equal(t, []string{"Dash"}, fields.Receivers)
}

func TestParseSignalLineBitBoundaries(t *testing.T) {
	// "0" and "1" must come out as the integers 0 and 1.
	fields, err := parseSignalLine(` SG_ Flag : 1|1@1- (1,0) [0|1] "" ECU`)
	require.NoError(t, err)

	assert.Equal(t, 1, fields.StartBit)
	assert.Equal(t, 1, fields.Length)
	assert.Equal(t, 1, fields.Order)
	assert.Equal(t, byte('-'), fields.Sign)
	assert.Equal(t, "", fields.Unit)
}

func TestParseSignalLineMultipleReceivers(t *testing.T) {
	fields, err := parseSignalLine(` SG_ Temp : 16|8@0+ (1,-40) [-40|215] "degC" Dash,Logger,Cluster`)
	require.NoError(t, err)

	assert.Equal(t, []string{"Dash", "Logger", "Cluster"}, fields.Receivers)
	assert.Equal(t, -40.0, fields.Offset)
	assert.Equal(t, -40.0, fields.Min)
}

func TestParseSignalLineFractionalScaling(t *testing.T) {
	fields, err := parseSignalLine(` SG_ Voltage : 8|12@1+ (0.25,1.5) [0|102.3] "V" Dash`)
	require.NoError(t, err)

	assert.Equal(t, 0.25, fields.Factor)
	assert.Equal(t, 1.5, fields.Offset)
	assert.Equal(t, 102.3, fields.Max)
}

func TestParseSignalLineTwoSpacesBeforeReceivers(t *testing.T) {
	fields, err := parseSignalLine(` SG_ RPM : 0|16@0+ (1,0) [0|65535] "rpm"  Dash`)
	require.NoError(t, err)

	assert.Equal(t, []string{"Dash"}, fields.Receivers)
}

func TestParseSignalLineRejectsMalformed(t *testing.T) {
	cases := []string{
		`SG_ RPM : 0|16@0+ (1,0) [0|65535] "rpm" Dash`,    // missing leading space
		` SG_ RPM : 0|16@2+ (1,0) [0|65535] "rpm" Dash`,   // bad format flag
		` SG_ RPM : 0|16@0* (1,0) [0|65535] "rpm" Dash`,   // bad sign
		` SG_ RPM : 100|16@0+ (1,0) [0|65535] "rpm" Dash`, // 3-digit start bit
		` SG_ RPM : 0|16@0+ (1,0) [0|65535] rpm Dash`,     // unquoted unit
		` SG_ RPM 0|16@0+ (1,0) [0|65535] "rpm" Dash`,     // missing colon
	}

	for _, line := range cases {
		_, err := parseSignalLine(line)
		assert.ErrorIs(t, err, ErrMalformedSignal, "line %q", line)
	}
}

func TestParseSignalLineNonNumericScaling(t *testing.T) {
	_, err := parseSignalLine(` SG_ RPM : 0|16@0+ (x,0) [0|65535] "rpm" Dash`)
	assert.ErrorIs(t, err, ErrMalformedSignal)
}
