package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSignal(name string, receivers ...string) *Signal {
	return NewSignal(name, SignUnsigned, OrderMotorola, 0, 8, 1, 0, 0, 255, "", receivers)
}

func TestMessageSignalOrder(t *testing.T) {
	m := NewMessage(500, "EngineData", 8, "ECU")

	// Deliberately not in bit order: declaration order must win.
	m.AddSignal(NewSignal("B", SignUnsigned, OrderMotorola, 8, 8, 1, 0, 0, 255, "", nil))
	m.AddSignal(NewSignal("A", SignUnsigned, OrderMotorola, 0, 8, 1, 0, 0, 255, "", nil))

	require.Len(t, m.Signals(), 2)
	assert.Equal(t, "B", m.Signals()[0].Name())
	assert.Equal(t, "A", m.Signals()[1].Name())
}

func TestMessageSignalByName(t *testing.T) {
	m := NewMessage(500, "EngineData", 8, "ECU")
	m.AddSignal(testSignal("RPM"))
	m.AddSignal(testSignal("Temp"))

	sig := m.SignalByName("Temp")
	require.NotNil(t, sig)
	assert.Equal(t, "Temp", sig.Name())

	assert.Nil(t, m.SignalByName("Missing"))
}

func TestUpdateSubscribers(t *testing.T) {
	m := NewMessage(500, "EngineData", 8, "ECU")
	m.AddSignal(testSignal("RPM", "Dash", "Logger"))
	m.AddSignal(testSignal("Temp", "Logger", "Cluster"))
	m.AddSignal(testSignal("Pressure", "Dash"))

	m.UpdateSubscribers()

	// Union of receiver lists, first-seen order, no duplicates.
	assert.Equal(t, []string{"Dash", "Logger", "Cluster"}, m.Subscribers())
}

func TestUpdateSubscribersNoSignals(t *testing.T) {
	m := NewMessage(500, "EngineData", 8, "ECU")
	m.UpdateSubscribers()
	assert.Empty(t, m.Subscribers())
}

func TestMessageFreshContainers(t *testing.T) {
	a := NewMessage(1, "A", 8, "ECU")
	b := NewMessage(2, "B", 8, "ECU")

	a.AddSignal(testSignal("S"))

	assert.Len(t, a.Signals(), 1)
	assert.Empty(t, b.Signals())
}

func TestMessageExtendedFrame(t *testing.T) {
	std := NewMessage(500, "Std", 8, "ECU")
	assert.False(t, std.IsExtended())
	assert.Equal(t, uint32(500), std.ID())
	assert.Equal(t, uint32(500), std.Raw())

	ext := NewMessage(0x80000000|0x18FF50E5, "Ext", 8, "ECU")
	assert.True(t, ext.IsExtended())
	assert.Equal(t, uint32(0x18FF50E5), ext.ID())
}
