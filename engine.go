// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"github.com/sirupsen/logrus"
)

// Iteration budgets. Convergence on feedback topologies is best-effort:
// when a budget runs out the last computed values are returned as-is.
//
const (
	maxPasses = 50 // relaxation passes per engine run
	maxRounds = 10 // expander/engine alternations per gate set
	maxDepth  = 16 // composite expansion depth guard
)

// Stats reports diagnostic counters for one Evaluate call. It is
// observability only: the returned circuit is valid either way.
//
type Stats struct {
	Rounds    int  // expander/engine rounds at the top level
	Passes    int  // relaxation passes, all nesting levels included
	Converged bool // false if any iteration budget ran out while values still changed
	Inert     int  // composite expansions skipped (missing template or depth guard)
}

// Evaluate computes the steady state of c given the composite templates in
// lib and returns it as a new circuit. The inputs are never mutated. Input
// gate values are treated as external stimuli and left untouched.
//
// Evaluate is total: cyclic, under-wired and dangling topologies all
// produce a usable snapshot, never a panic.
//
func Evaluate(c Circuit, lib *Library) Circuit {
	out, _ := EvaluateStats(c, lib)
	return out
}

// EvaluateStats is Evaluate with diagnostic counters.
//
func EvaluateStats(c Circuit, lib *Library) (Circuit, Stats) {
	n := c.Clone()
	st := Stats{Converged: true}
	st.Rounds = evaluateSet(n.Gates, n.Wires, lib, 0, &st)
	return n, st
}

// evaluateSet drives one flat gate/wire set to a joint fixpoint of the
// composite expander and the relaxation engine, alternating one expander
// sweep with one engine run per round. It stops when a round leaves the
// gate collection structurally unchanged, or after maxRounds.
//
// Composite expansion recurses back into evaluateSet on freshly
// instantiated inner sets, so depth tracks actual template nesting.
//
func evaluateSet(gates []Gate, wires []Wire, lib *Library, depth int, st *Stats) int {
	ix := buildIndex(gates, wires)
	for round := 1; round <= maxRounds; round++ {
		prev := cloneGates(gates)
		expandComposites(gates, ix, lib, depth, st)
		relax(gates, ix, st)
		if gatesEqual(prev, gates) {
			return round
		}
	}
	st.Converged = false
	logrus.Debugf("evaluate: still changing after %d rounds at depth %d", maxRounds, depth)
	return maxRounds
}

// relax runs the fixpoint engine: every non-Input primitive gate is
// re-evaluated in declaration order, reading values already updated earlier
// in the same pass, until a full pass changes nothing or the pass budget is
// exhausted. Input gates hold caller stimuli; composite gates are updated
// by the expander sweeps only.
//
func relax(gates []Gate, ix *index, st *Stats) {
	for pass := 0; pass < maxPasses; pass++ {
		st.Passes++
		changed := false
		for i := range gates {
			g := &gates[i]
			if g.Kind == Input || g.Kind == Composite {
				continue
			}
			var inputs [2]bool
			n := g.Kind.Arity()
			for p := 0; p < n; p++ {
				inputs[p], _ = ix.input(Endpoint{Gate: g.ID, Port: p})
			}
			if v := evalPrimitive(g.Kind, inputs[:n], ix.fanin[g.ID]); v != g.Value {
				g.Value = v
				changed = true
			}
		}
		if !changed {
			return
		}
	}
	st.Converged = false
	logrus.Debugf("relax: still changing after %d passes", maxPasses)
}

// expandComposites performs one expander sweep: every composite gate gets
// its input ports resolved from the outer wiring and its output ports
// recomputed by simulating a fresh instantiation of its template.
//
// A composite whose template is absent (or whose nesting exceeds maxDepth)
// is inert: output ports are forced false and input ports keep their
// last-known values, untouched.
//
func expandComposites(gates []Gate, ix *index, lib *Library, depth int, st *Stats) {
	for i := range gates {
		g := &gates[i]
		if g.Kind != Composite {
			continue
		}
		tpl, ok := lib.Get(g.Template)
		if !ok || depth >= maxDepth {
			st.Inert++
			for p := range g.Out {
				g.Out[p] = false
			}
			continue
		}

		in := make([]bool, len(tpl.InputPorts))
		for p := range in {
			in[p], _ = ix.input(Endpoint{Gate: g.ID, Port: p})
		}

		inner := instantiate(tpl, in)
		evaluateSet(inner, tpl.Wires, lib, depth+1, st)

		out := make([]bool, len(tpl.OutputPorts))
		for p, id := range tpl.OutputPorts {
			for j := range inner {
				if inner[j].ID == id {
					out[p] = inner[j].Value
					break
				}
			}
		}
		g.In = in
		g.Out = out
	}
}

// instantiate copies a template's inner gates for one expansion: inner
// Input gates are seeded from the resolved port values, everything else
// starts false.
//
func instantiate(tpl CompositeTemplate, in []bool) []Gate {
	seed := make(map[int]bool, len(tpl.InputPorts))
	for p, id := range tpl.InputPorts {
		if p < len(in) {
			seed[id] = in[p]
		}
	}
	inner := cloneGates(tpl.Gates)
	for i := range inner {
		g := &inner[i]
		g.Value = false
		for p := range g.In {
			g.In[p] = false
		}
		for p := range g.Out {
			g.Out[p] = false
		}
		if g.Kind == Input {
			g.Value = seed[g.ID]
		}
	}
	return inner
}
