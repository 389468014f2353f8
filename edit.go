// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"sort"

	"github.com/pkg/errors"
)

// Structural errors returned by the edit operations. Evaluate itself never
// checks structure: circuits are validated here, at edit time.
//
var (
	ErrUnknownGate     = errors.New("unknown gate id")
	ErrUnknownWire     = errors.New("unknown wire id")
	ErrUnknownTemplate = errors.New("unknown template")
	ErrBadPort         = errors.New("port index out of range")
	ErrFanIn           = errors.New("destination port already wired")
)

// Every operation below is copy-on-write: the input circuit is left
// untouched and a new value is returned.

// AddGate appends a new primitive gate of the given kind and returns the
// new circuit along with the minted gate id. Ids are minted as max+1 over
// the existing gates.
//
func AddGate(c Circuit, kind Kind, pos Position) (Circuit, int) {
	n := c.Clone()
	id := maxGateID(n) + 1
	n.Gates = append(n.Gates, Gate{ID: id, Kind: kind, Pos: pos})
	return n, id
}

// AddComposite appends an instance of the named template, with input and
// output port arrays sized to the template's declarations.
//
func AddComposite(c Circuit, lib *Library, name string, pos Position) (Circuit, int, error) {
	tpl, ok := lib.Get(name)
	if !ok {
		return c, 0, errors.Wrap(ErrUnknownTemplate, name)
	}
	n := c.Clone()
	id := maxGateID(n) + 1
	n.Gates = append(n.Gates, Gate{
		ID:       id,
		Kind:     Composite,
		Template: name,
		Pos:      pos,
		In:       make([]bool, len(tpl.InputPorts)),
		Out:      make([]bool, len(tpl.OutputPorts)),
	})
	return n, id, nil
}

// MoveGate updates a gate's presentation position.
//
func MoveGate(c Circuit, id int, pos Position) (Circuit, error) {
	n := c.Clone()
	g := n.Gate(id)
	if g == nil {
		return c, errors.Wrapf(ErrUnknownGate, "gate %d", id)
	}
	g.Pos = pos
	return n, nil
}

// RemoveGate removes a gate and every wire attached to it, so deletions
// never leave dangling wire references.
//
func RemoveGate(c Circuit, id int) (Circuit, error) {
	if c.Gate(id) == nil {
		return c, errors.Wrapf(ErrUnknownGate, "gate %d", id)
	}
	n := Circuit{Gates: make([]Gate, 0, len(c.Gates)-1)}
	for i := range c.Gates {
		if c.Gates[i].ID != id {
			n.Gates = append(n.Gates, c.Gates[i].clone())
		}
	}
	for _, w := range c.Wires {
		if w.From.Gate != id && w.To.Gate != id {
			n.Wires = append(n.Wires, w)
		}
	}
	return n, nil
}

// ToggleInput flips the stimulus value of an Input gate.
//
func ToggleInput(c Circuit, id int) (Circuit, error) {
	n := c.Clone()
	g := n.Gate(id)
	if g == nil {
		return c, errors.Wrapf(ErrUnknownGate, "gate %d", id)
	}
	if g.Kind != Input {
		return c, errors.Errorf("gate %d is %s, not INPUT", id, g.Kind)
	}
	g.Value = !g.Value
	return n, nil
}

// Connect adds a wire from a source endpoint to a destination endpoint and
// returns the new circuit with the minted wire id. It enforces the fan-in
// invariant: a destination port already driven by another wire is rejected
// with ErrFanIn.
//
func Connect(c Circuit, from, to Endpoint) (Circuit, int, error) {
	src := c.Gate(from.Gate)
	if src == nil {
		return c, 0, errors.Wrapf(ErrUnknownGate, "source gate %d", from.Gate)
	}
	dst := c.Gate(to.Gate)
	if dst == nil {
		return c, 0, errors.Wrapf(ErrUnknownGate, "destination gate %d", to.Gate)
	}
	if from.Port < 0 || from.Port >= outputCount(src) {
		return c, 0, errors.Wrapf(ErrBadPort, "source %d:%d", from.Gate, from.Port)
	}
	if to.Port < 0 || to.Port >= inputCount(dst) {
		return c, 0, errors.Wrapf(ErrBadPort, "destination %d:%d", to.Gate, to.Port)
	}
	for _, w := range c.Wires {
		if w.To == to {
			return c, 0, errors.Wrapf(ErrFanIn, "destination %d:%d", to.Gate, to.Port)
		}
	}
	n := c.Clone()
	id := maxWireID(n) + 1
	n.Wires = append(n.Wires, Wire{ID: id, From: from, To: to})
	return n, id, nil
}

// Disconnect removes a wire by id.
//
func Disconnect(c Circuit, id int) (Circuit, error) {
	n := c.Clone()
	for i, w := range n.Wires {
		if w.ID == id {
			n.Wires = append(n.Wires[:i], n.Wires[i+1:]...)
			return n, nil
		}
	}
	return c, errors.Wrapf(ErrUnknownWire, "wire %d", id)
}

// PromoteSelection packages a set of gates into a reusable template.
// Wires with both endpoints in the selection are kept; wires crossing the
// selection boundary are dropped. Selected Input gates become the
// template's input ports and selected Output gates its output ports, both
// ordered by ascending vertical position (gate id breaks ties).
//
// The resulting template carries shape only: all runtime values are zeroed.
//
func PromoteSelection(c Circuit, ids []int, name string) (CompositeTemplate, error) {
	if name == "" {
		return CompositeTemplate{}, errors.New("empty template name")
	}
	sel := make(map[int]bool, len(ids))
	tpl := CompositeTemplate{Name: name}
	for _, id := range ids {
		g := c.Gate(id)
		if g == nil {
			return CompositeTemplate{}, errors.Wrapf(ErrUnknownGate, "gate %d", id)
		}
		if sel[id] {
			continue
		}
		sel[id] = true
		ng := g.clone()
		ng.Value = false
		for p := range ng.In {
			ng.In[p] = false
		}
		for p := range ng.Out {
			ng.Out[p] = false
		}
		tpl.Gates = append(tpl.Gates, ng)
	}
	for _, w := range c.Wires {
		if sel[w.From.Gate] && sel[w.To.Gate] {
			tpl.Wires = append(tpl.Wires, w)
		}
	}
	tpl.InputPorts = portOrder(tpl.Gates, Input)
	tpl.OutputPorts = portOrder(tpl.Gates, Output)
	return tpl, nil
}

// portOrder returns the ids of gates of the given kind, ordered by
// ascending Y position, then id.
//
func portOrder(gates []Gate, kind Kind) []int {
	var gs []*Gate
	for i := range gates {
		if gates[i].Kind == kind {
			gs = append(gs, &gates[i])
		}
	}
	sort.Slice(gs, func(i, j int) bool {
		if gs[i].Pos.Y != gs[j].Pos.Y {
			return gs[i].Pos.Y < gs[j].Pos.Y
		}
		return gs[i].ID < gs[j].ID
	})
	ids := make([]int, len(gs))
	for i, g := range gs {
		ids[i] = g.ID
	}
	return ids
}

func inputCount(g *Gate) int {
	if g.Kind == Composite {
		return len(g.In)
	}
	return g.Kind.Arity()
}

func outputCount(g *Gate) int {
	switch g.Kind {
	case Composite:
		return len(g.Out)
	case Output:
		return 0 // probes drive nothing
	}
	return 1
}

func maxGateID(c Circuit) int {
	max := 0
	for i := range c.Gates {
		if c.Gates[i].ID > max {
			max = c.Gates[i].ID
		}
	}
	return max
}

func maxWireID(c Circuit) int {
	max := 0
	for _, w := range c.Wires {
		if w.ID > max {
			max = w.ID
		}
	}
	return max
}
