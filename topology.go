// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// An index is the topology lookup derived from a gate/wire set for one
// evaluation pass. It is read-only once built and is rebuilt whenever the
// evaluator switches to a different gate/wire set.
//
// Destination ports are expected to have at most one incoming wire. The
// index does not reject violations: the most recently added wire wins,
// deterministically, since later wires overwrite earlier entries.
//
type index struct {
	gates   map[int]*Gate         // id -> gate in the working set
	drivers map[Endpoint]Endpoint // destination port -> source endpoint
	fanin   map[int]int           // gate id -> wired input port count
}

func buildIndex(gates []Gate, wires []Wire) *index {
	ix := &index{
		gates:   make(map[int]*Gate, len(gates)),
		drivers: make(map[Endpoint]Endpoint, len(wires)),
		fanin:   make(map[int]int),
	}
	for i := range gates {
		ix.gates[gates[i].ID] = &gates[i]
	}
	for _, w := range wires {
		if _, dup := ix.drivers[w.To]; !dup {
			ix.fanin[w.To.Gate]++
		}
		ix.drivers[w.To] = w.From
	}
	return ix
}

// signal returns the value currently presented on a source endpoint:
// a composite gate's output port, or a primitive's single output value.
// Dangling references read as false.
//
func (ix *index) signal(src Endpoint) bool {
	g, ok := ix.gates[src.Gate]
	if !ok {
		return false
	}
	if g.Kind == Composite {
		if src.Port < 0 || src.Port >= len(g.Out) {
			return false
		}
		return g.Out[src.Port]
	}
	return g.Value
}

// input resolves the live value driving a destination port.
// The second return value reports whether the port is wired at all.
//
func (ix *index) input(dest Endpoint) (bool, bool) {
	src, ok := ix.drivers[dest]
	if !ok {
		return false, false
	}
	return ix.signal(src), true
}
