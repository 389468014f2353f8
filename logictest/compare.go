// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logictest provides utility functions for testing circuits.
//
package logictest

import (
	"testing"

	sim "github.com/db47h/logicsim"
)

// Compare drives every input vector through both circuits and reports any
// output mismatch. The circuits must have the same number of Input and
// Output gates; libA and libB resolve their respective composite gates.
//
func Compare(t *testing.T, a, b sim.Circuit, libA, libB *sim.Library) {
	t.Helper()
	ta, err := sim.TruthTable(a, libA)
	if err != nil {
		t.Fatal(err)
	}
	tb, err := sim.TruthTable(b, libB)
	if err != nil {
		t.Fatal(err)
	}
	if len(ta) != len(tb) {
		t.Fatalf("input count mismatch: %d rows vs %d rows", len(ta), len(tb))
	}
	for i := range ta {
		if len(ta[i].Outputs) != len(tb[i].Outputs) {
			t.Fatalf("output count mismatch: %d vs %d", len(ta[i].Outputs), len(tb[i].Outputs))
		}
		for j := range ta[i].Outputs {
			if ta[i].Outputs[j] != tb[i].Outputs[j] {
				t.Errorf("inputs %v: output %d: got %v, want %v",
					ta[i].Inputs, j, ta[i].Outputs[j], tb[i].Outputs[j])
			}
		}
	}
}
