package logicsim_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/db47h/logicsim"
)

func TestCircuitRoundTrip(t *testing.T) {
	c, in, _ := binary(t, sim.And)
	c.Gate(in[0]).Value = true
	c = sim.Evaluate(c, nil)

	var buf bytes.Buffer
	require.NoError(t, sim.EncodeCircuit(&buf, c))
	got, err := sim.DecodeCircuit(&buf)
	require.NoError(t, err)
	assert.True(t, got.Equal(c), "decode(encode(c)) must equal c:\n%s", buf.String())
}

func TestCircuitRoundTrip_Composite(t *testing.T) {
	lib := nandLibrary(t)
	var c sim.Circuit
	c, _, err := sim.AddComposite(c, lib, "NAND", sim.Position{X: 1.5, Y: -2})
	require.NoError(t, err)
	c = sim.Evaluate(c, lib)

	var buf bytes.Buffer
	require.NoError(t, sim.EncodeCircuit(&buf, c))
	got, err := sim.DecodeCircuit(&buf)
	require.NoError(t, err)
	assert.True(t, got.Equal(c))

	// evaluation after a persistence round trip is bit-identical
	assert.True(t, sim.Evaluate(got, lib).Equal(sim.Evaluate(c, lib)))
}

func TestLibraryRoundTrip(t *testing.T) {
	lib := nandLibrary(t)

	var buf bytes.Buffer
	require.NoError(t, sim.EncodeLibrary(&buf, lib))
	got, err := sim.DecodeLibrary(&buf)
	require.NoError(t, err)

	require.Equal(t, lib.Names(), got.Names())
	a, _ := lib.Get("NAND")
	b, _ := got.Get("NAND")
	assert.Equal(t, a.InputPorts, b.InputPorts)
	assert.Equal(t, a.OutputPorts, b.OutputPorts)
	assert.True(t, sim.Circuit{Gates: a.Gates, Wires: a.Wires}.
		Equal(sim.Circuit{Gates: b.Gates, Wires: b.Wires}))
}

func TestDecodeCircuit_Errors(t *testing.T) {
	_, err := sim.DecodeCircuit(strings.NewReader("gates:\n  - id: 1\n    kind: TRIODE\n"))
	assert.Error(t, err, "unknown gate kind must be rejected")

	_, err = sim.DecodeCircuit(strings.NewReader("bogus: 1\n"))
	assert.Error(t, err, "unknown fields must be rejected")
}
