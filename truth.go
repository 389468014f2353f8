// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"sort"

	"github.com/pkg/errors"
)

// maxTableInputs caps exhaustive truth-table enumeration.
const maxTableInputs = 16

// A Row is one line of a truth table.
//
type Row struct {
	Inputs  []bool
	Outputs []bool
}

// InputIDs returns the ids of c's Input gates, ordered by ascending
// vertical position, then id. This matches the port ordering used by
// PromoteSelection.
//
func InputIDs(c Circuit) []int {
	return kindIDs(c, Input)
}

// OutputIDs returns the ids of c's Output gates in the same order.
//
func OutputIDs(c Circuit) []int {
	return kindIDs(c, Output)
}

func kindIDs(c Circuit, kind Kind) []int {
	var ids []int
	for _, g := range c.Gates {
		if g.Kind == kind {
			ids = append(ids, g.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := c.Gate(ids[i]), c.Gate(ids[j])
		if a.Pos.Y != b.Pos.Y {
			return a.Pos.Y < b.Pos.Y
		}
		return a.ID < b.ID
	})
	return ids
}

// TruthTable evaluates c for every combination of its Input gate values,
// inputs enumerated in InputIDs order with the first as the most
// significant bit.
//
func TruthTable(c Circuit, lib *Library) ([]Row, error) {
	ins, outs := InputIDs(c), OutputIDs(c)
	if len(ins) > maxTableInputs {
		return nil, errors.Errorf("too many inputs: %d > %d", len(ins), maxTableInputs)
	}
	rows := make([]Row, 0, 1<<len(ins))
	for v := 0; v < 1<<len(ins); v++ {
		in := make([]bool, len(ins))
		w := c.Clone()
		for i, id := range ins {
			in[i] = v&(1<<(len(ins)-1-i)) != 0
			w.Gate(id).Value = in[i]
		}
		r := Evaluate(w, lib)
		out := make([]bool, len(outs))
		for i, id := range outs {
			out[i] = r.Gate(id).Value
		}
		rows = append(rows, Row{Inputs: in, Outputs: out})
	}
	return rows, nil
}

// Instance builds a harness circuit around the named template: one Input
// gate per declared input port, one Output gate per declared output port,
// all wired to a single composite instance.
//
func Instance(lib *Library, name string) (Circuit, error) {
	tpl, ok := lib.Get(name)
	if !ok {
		return Circuit{}, errors.Wrap(ErrUnknownTemplate, name)
	}
	var c Circuit
	c, id, err := AddComposite(c, lib, name, Position{X: 1})
	if err != nil {
		return Circuit{}, err
	}
	for p := range tpl.InputPorts {
		var in int
		c, in = AddGate(c, Input, Position{X: 0, Y: float64(p)})
		c, _, err = Connect(c, Endpoint{Gate: in}, Endpoint{Gate: id, Port: p})
		if err != nil {
			return Circuit{}, err
		}
	}
	for p := range tpl.OutputPorts {
		var out int
		c, out = AddGate(c, Output, Position{X: 2, Y: float64(p)})
		c, _, err = Connect(c, Endpoint{Gate: id, Port: p}, Endpoint{Gate: out})
		if err != nil {
			return Circuit{}, err
		}
	}
	return c, nil
}
