package logictest_test

import (
	"testing"

	sim "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/logictest"
)

// An inverter built from a NOT gate and one built as OR of the negated
// input with itself behave identically.
func Test_compare_inverters(t *testing.T) {
	var a sim.Circuit
	a, in := sim.AddGate(a, sim.Input, sim.Position{})
	var not, out int
	a, not = sim.AddGate(a, sim.Not, sim.Position{X: 1})
	a, out = sim.AddGate(a, sim.Output, sim.Position{X: 2})
	a = mustConnect(t, a, sim.Endpoint{Gate: in}, sim.Endpoint{Gate: not})
	a = mustConnect(t, a, sim.Endpoint{Gate: not}, sim.Endpoint{Gate: out})

	var b sim.Circuit
	b, in = sim.AddGate(b, sim.Input, sim.Position{})
	var or int
	b, not = sim.AddGate(b, sim.Not, sim.Position{X: 1})
	b, or = sim.AddGate(b, sim.Or, sim.Position{X: 2})
	b, out = sim.AddGate(b, sim.Output, sim.Position{X: 3})
	b = mustConnect(t, b, sim.Endpoint{Gate: in}, sim.Endpoint{Gate: not})
	b = mustConnect(t, b, sim.Endpoint{Gate: not}, sim.Endpoint{Gate: or, Port: 0})
	b = mustConnect(t, b, sim.Endpoint{Gate: not}, sim.Endpoint{Gate: or, Port: 1})
	b = mustConnect(t, b, sim.Endpoint{Gate: or}, sim.Endpoint{Gate: out})

	logictest.Compare(t, a, b, nil, nil)
}

func mustConnect(t *testing.T, c sim.Circuit, from, to sim.Endpoint) sim.Circuit {
	t.Helper()
	c, _, err := sim.Connect(c, from, to)
	if err != nil {
		t.Fatal(err)
	}
	return c
}
