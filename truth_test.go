package logicsim_test

import (
	"testing"

	sim "github.com/db47h/logicsim"
)

func Test_truth_table_passthrough(t *testing.T) {
	var c sim.Circuit
	c, in := sim.AddGate(c, sim.Input, sim.Position{})
	var out int
	c, out = sim.AddGate(c, sim.Output, sim.Position{X: 1})
	c = connect(t, c, sim.Endpoint{Gate: in}, sim.Endpoint{Gate: out})

	rows, err := sim.TruthTable(c, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	for _, r := range rows {
		if r.Outputs[0] != r.Inputs[0] {
			t.Errorf("passthrough%v: got %v", r.Inputs, r.Outputs[0])
		}
	}
}

func Test_input_enumeration_order(t *testing.T) {
	// ids in creation order, placement reversed: enumeration must follow
	// vertical placement, not ids
	var c sim.Circuit
	c, lower := sim.AddGate(c, sim.Input, sim.Position{Y: 5})
	var upper int
	c, upper = sim.AddGate(c, sim.Input, sim.Position{Y: 1})

	ids := sim.InputIDs(c)
	if ids[0] != upper || ids[1] != lower {
		t.Errorf("got order %v, want [%d %d]", ids, upper, lower)
	}
}

func Test_instance_unknown_template(t *testing.T) {
	if _, err := sim.Instance(sim.NewLibrary(), "NOPE"); err == nil {
		t.Error("expected an error for an unknown template")
	}
}
