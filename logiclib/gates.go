// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logiclib provides a library of stock composite templates built
// from the logicsim primitives.
//
package logiclib

import (
	sim "github.com/db47h/logicsim"
)

// Template names registered by Install.
//
const (
	NandName      = "NAND"
	NorName       = "NOR"
	XorName       = "XOR"
	XnorName      = "XNOR"
	MuxName       = "MUX"
	HalfAdderName = "HALFADDER"
)

// Install registers all stock templates into l. XNOR nests an XOR
// instance, so the templates are meant to be installed together.
//
func Install(l *sim.Library) {
	l.Put(Nand())
	l.Put(Nor())
	l.Put(Xor())
	l.Put(Xnor())
	l.Put(Mux())
	l.Put(HalfAdder())
}

// builder accumulates a scratch circuit for template construction.
// Gates are placed with increasing y so that promotion orders ports by
// creation order. Construction errors are programming errors here, hence
// the panics.
type builder struct {
	c   sim.Circuit
	y   float64
	ids []int
}

func (b *builder) gate(kind sim.Kind) int {
	var id int
	b.c, id = sim.AddGate(b.c, kind, sim.Position{Y: b.y})
	b.y++
	b.ids = append(b.ids, id)
	return id
}

func (b *builder) composite(lib *sim.Library, name string) int {
	c, id, err := sim.AddComposite(b.c, lib, name, sim.Position{Y: b.y})
	if err != nil {
		panic(err)
	}
	b.c = c
	b.y++
	b.ids = append(b.ids, id)
	return id
}

func (b *builder) wire(fromGate, fromPort, toGate, toPort int) {
	c, _, err := sim.Connect(b.c,
		sim.Endpoint{Gate: fromGate, Port: fromPort},
		sim.Endpoint{Gate: toGate, Port: toPort})
	if err != nil {
		panic(err)
	}
	b.c = c
}

func (b *builder) promote(name string) sim.CompositeTemplate {
	tpl, err := sim.PromoteSelection(b.c, b.ids, name)
	if err != nil {
		panic(err)
	}
	return tpl
}

// Nand returns a 2-input NAND template.
//
//	out = !(a && b)
//
func Nand() sim.CompositeTemplate {
	var b builder
	a := b.gate(sim.Input)
	bb := b.gate(sim.Input)
	and := b.gate(sim.And)
	not := b.gate(sim.Not)
	out := b.gate(sim.Output)
	b.wire(a, 0, and, 0)
	b.wire(bb, 0, and, 1)
	b.wire(and, 0, not, 0)
	b.wire(not, 0, out, 0)
	return b.promote(NandName)
}

// Nor returns a 2-input NOR template.
//
//	out = !(a || b)
//
func Nor() sim.CompositeTemplate {
	var b builder
	a := b.gate(sim.Input)
	bb := b.gate(sim.Input)
	or := b.gate(sim.Or)
	not := b.gate(sim.Not)
	out := b.gate(sim.Output)
	b.wire(a, 0, or, 0)
	b.wire(bb, 0, or, 1)
	b.wire(or, 0, not, 0)
	b.wire(not, 0, out, 0)
	return b.promote(NorName)
}

// Xor returns a 2-input XOR template.
//
//	out = a && !b || !a && b
//
func Xor() sim.CompositeTemplate {
	var b builder
	a := b.gate(sim.Input)
	bb := b.gate(sim.Input)
	nota := b.gate(sim.Not)
	notb := b.gate(sim.Not)
	and0 := b.gate(sim.And)
	and1 := b.gate(sim.And)
	or := b.gate(sim.Or)
	out := b.gate(sim.Output)
	b.wire(a, 0, nota, 0)
	b.wire(bb, 0, notb, 0)
	b.wire(a, 0, and0, 0)
	b.wire(notb, 0, and0, 1)
	b.wire(nota, 0, and1, 0)
	b.wire(bb, 0, and1, 1)
	b.wire(and0, 0, or, 0)
	b.wire(and1, 0, or, 1)
	b.wire(or, 0, out, 0)
	return b.promote(XorName)
}

// Xnor returns a 2-input XNOR template, built as a nested XOR instance
// followed by a NOT. It requires XOR in the library at evaluation time.
//
func Xnor() sim.CompositeTemplate {
	lib := sim.NewLibrary()
	lib.Put(Xor())
	var b builder
	a := b.gate(sim.Input)
	bb := b.gate(sim.Input)
	xor := b.composite(lib, XorName)
	not := b.gate(sim.Not)
	out := b.gate(sim.Output)
	b.wire(a, 0, xor, 0)
	b.wire(bb, 0, xor, 1)
	b.wire(xor, 0, not, 0)
	b.wire(not, 0, out, 0)
	return b.promote(XnorName)
}

// Mux returns a 2-way multiplexer template. Inputs a, b, sel in that
// order.
//
//	out = a && !sel || b && sel
//
func Mux() sim.CompositeTemplate {
	var b builder
	a := b.gate(sim.Input)
	bb := b.gate(sim.Input)
	sel := b.gate(sim.Input)
	notSel := b.gate(sim.Not)
	and0 := b.gate(sim.And)
	and1 := b.gate(sim.And)
	or := b.gate(sim.Or)
	out := b.gate(sim.Output)
	b.wire(sel, 0, notSel, 0)
	b.wire(a, 0, and0, 0)
	b.wire(notSel, 0, and0, 1)
	b.wire(bb, 0, and1, 0)
	b.wire(sel, 0, and1, 1)
	b.wire(and0, 0, or, 0)
	b.wire(and1, 0, or, 1)
	b.wire(or, 0, out, 0)
	return b.promote(MuxName)
}

// HalfAdder returns a half adder template. Outputs sum, carry in that
// order.
//
func HalfAdder() sim.CompositeTemplate {
	var b builder
	a := b.gate(sim.Input)
	bb := b.gate(sim.Input)
	nota := b.gate(sim.Not)
	notb := b.gate(sim.Not)
	and0 := b.gate(sim.And)
	and1 := b.gate(sim.And)
	or := b.gate(sim.Or)
	sum := b.gate(sim.Output)
	carry := b.gate(sim.Output)
	and := b.gate(sim.And)
	// sum = a XOR b
	b.wire(a, 0, nota, 0)
	b.wire(bb, 0, notb, 0)
	b.wire(a, 0, and0, 0)
	b.wire(notb, 0, and0, 1)
	b.wire(nota, 0, and1, 0)
	b.wire(bb, 0, and1, 1)
	b.wire(and0, 0, or, 0)
	b.wire(and1, 0, or, 1)
	b.wire(or, 0, sum, 0)
	// carry = a AND b
	b.wire(a, 0, and, 0)
	b.wire(bb, 0, and, 1)
	b.wire(and, 0, carry, 0)
	return b.promote(HalfAdderName)
}
