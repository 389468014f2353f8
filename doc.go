// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package logicsim computes steady-state boolean values for digital logic
circuits: directed graphs of primitive gates and user-defined composite
components connected by single-bit wires.

Circuits, wires and composite templates are plain values addressed by id.
Evaluate takes a circuit and a template library and returns a new circuit
snapshot with every gate's outputs computed; the inputs are never mutated.
Feedback topologies are handled by bounded relaxation rather than
topological sort, so cyclic and partially wired circuits always produce a
usable result.

Edit operations (AddGate, Connect, PromoteSelection, ...) build circuits
and templates copy-on-write and enforce structural invariants such as
single-driver input ports. Persistence is YAML and round-trips exactly.
*/
package logicsim
