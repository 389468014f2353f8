// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// A Kind identifies the boolean function of a gate.
//
type Kind int

// Gate kinds.
//
const (
	Input     Kind = iota // external stimulus, value set by the caller
	Output                // mirrors its sole driver
	And                   // 2-input conjunction
	Or                    // 2-input disjunction
	Not                   // 1-input negation
	Composite             // instance of a named CompositeTemplate
)

// String returns the kind name as used in serialized circuits.
//
func (k Kind) String() string {
	switch k {
	case Input:
		return "INPUT"
	case Output:
		return "OUTPUT"
	case And:
		return "AND"
	case Or:
		return "OR"
	case Not:
		return "NOT"
	case Composite:
		return "COMPOSITE"
	}
	return "UNKNOWN"
}

// Arity returns the declared input port count for a primitive kind.
// Composite arity is declared by the template, not the kind.
//
func (k Kind) Arity() int {
	switch k {
	case And, Or:
		return 2
	case Not, Output:
		return 1
	}
	return 0
}

// A Position locates a gate on the editing surface. The evaluator never
// reads it except when ordering ports during PromoteSelection.
//
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// A Gate is a node in the circuit graph.
//
// Primitive gates carry their signal in Value. Composite gates carry per-port
// signals in InputValues and OutputValues, sized to the template's declared
// port counts; their Value field is unused.
//
type Gate struct {
	ID       int      `yaml:"id"`
	Kind     Kind     `yaml:"kind"`
	Template string   `yaml:"template,omitempty"` // composite gates only
	Pos      Position `yaml:"pos"`
	Value    bool     `yaml:"value"`
	In       []bool   `yaml:"in,omitempty"`  // composite input port values
	Out      []bool   `yaml:"out,omitempty"` // composite output port values
}

func (g *Gate) clone() Gate {
	n := *g
	if g.In != nil {
		n.In = append([]bool(nil), g.In...)
	}
	if g.Out != nil {
		n.Out = append([]bool(nil), g.Out...)
	}
	return n
}

// equal reports full structural equality, values and port arrays included.
//
func (g *Gate) equal(o *Gate) bool {
	if g.ID != o.ID || g.Kind != o.Kind || g.Template != o.Template ||
		g.Pos != o.Pos || g.Value != o.Value ||
		len(g.In) != len(o.In) || len(g.Out) != len(o.Out) {
		return false
	}
	for i, v := range g.In {
		if v != o.In[i] {
			return false
		}
	}
	for i, v := range g.Out {
		if v != o.Out[i] {
			return false
		}
	}
	return true
}

// An Endpoint addresses one port of one gate. For sources the port indexes
// the gate's outputs, for destinations its inputs. Primitive gates have a
// single output, port 0.
//
type Endpoint struct {
	Gate int `yaml:"gate"`
	Port int `yaml:"port"`
}

// A Wire is a directed single-bit connection between two gate ports.
// Each destination port accepts at most one wire; fan-out is unrestricted.
//
type Wire struct {
	ID   int      `yaml:"id"`
	From Endpoint `yaml:"from"`
	To   Endpoint `yaml:"to"`
}

// A Circuit is an ordered set of gates plus the wires connecting them.
// Wires reference gates by id only. Circuits are plain values: Evaluate and
// the edit operations return fresh copies and never mutate their input.
//
type Circuit struct {
	Gates []Gate `yaml:"gates"`
	Wires []Wire `yaml:"wires,omitempty"`
}

// Clone returns a deep copy of c.
//
func (c Circuit) Clone() Circuit {
	n := Circuit{}
	if c.Gates != nil {
		n.Gates = make([]Gate, len(c.Gates))
		for i := range c.Gates {
			n.Gates[i] = c.Gates[i].clone()
		}
	}
	if c.Wires != nil {
		n.Wires = append([]Wire(nil), c.Wires...)
	}
	return n
}

// Gate returns a pointer to the gate with the given id, or nil.
//
func (c *Circuit) Gate(id int) *Gate {
	for i := range c.Gates {
		if c.Gates[i].ID == id {
			return &c.Gates[i]
		}
	}
	return nil
}

// Equal reports structural equality of two circuits, including every gate's
// value and port arrays.
//
func (c Circuit) Equal(o Circuit) bool {
	if len(c.Gates) != len(o.Gates) || len(c.Wires) != len(o.Wires) {
		return false
	}
	for i := range c.Gates {
		if !c.Gates[i].equal(&o.Gates[i]) {
			return false
		}
	}
	for i := range c.Wires {
		if c.Wires[i] != o.Wires[i] {
			return false
		}
	}
	return true
}

func gatesEqual(a, b []Gate) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].equal(&b[i]) {
			return false
		}
	}
	return true
}

func cloneGates(gs []Gate) []Gate {
	n := make([]Gate, len(gs))
	for i := range gs {
		n[i] = gs[i].clone()
	}
	return n
}
