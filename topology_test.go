package logicsim

import "testing"

func Test_index_drivers(t *testing.T) {
	gates := []Gate{
		{ID: 1, Kind: Input, Value: true},
		{ID: 2, Kind: Input},
		{ID: 3, Kind: And},
	}
	wires := []Wire{
		{ID: 1, From: Endpoint{Gate: 1}, To: Endpoint{Gate: 3, Port: 0}},
		{ID: 2, From: Endpoint{Gate: 2}, To: Endpoint{Gate: 3, Port: 1}},
	}
	ix := buildIndex(gates, wires)

	if v, wired := ix.input(Endpoint{Gate: 3, Port: 0}); !wired || !v {
		t.Errorf("port 0: got (%v, %v), want (true, true)", v, wired)
	}
	if v, wired := ix.input(Endpoint{Gate: 3, Port: 1}); !wired || v {
		t.Errorf("port 1: got (%v, %v), want (false, true)", v, wired)
	}
	if _, wired := ix.input(Endpoint{Gate: 3, Port: 2}); wired {
		t.Errorf("unwired port reported as wired")
	}
	if n := ix.fanin[3]; n != 2 {
		t.Errorf("fanin: got %d, want 2", n)
	}
}

// The edit layer rejects duplicate destinations; the index itself breaks
// the tie deterministically in favor of the most recently added wire.
func Test_index_duplicate_destination(t *testing.T) {
	gates := []Gate{
		{ID: 1, Kind: Input, Value: true},
		{ID: 2, Kind: Input, Value: false},
		{ID: 3, Kind: Not},
	}
	wires := []Wire{
		{ID: 1, From: Endpoint{Gate: 1}, To: Endpoint{Gate: 3, Port: 0}},
		{ID: 2, From: Endpoint{Gate: 2}, To: Endpoint{Gate: 3, Port: 0}},
	}
	ix := buildIndex(gates, wires)

	if v, _ := ix.input(Endpoint{Gate: 3, Port: 0}); v {
		t.Errorf("duplicate destination: got first wire, want last wire to win")
	}
	if n := ix.fanin[3]; n != 1 {
		t.Errorf("fanin counts ports, not wires: got %d, want 1", n)
	}
}

func Test_index_dangling_source(t *testing.T) {
	gates := []Gate{{ID: 1, Kind: Not}}
	wires := []Wire{{ID: 1, From: Endpoint{Gate: 42}, To: Endpoint{Gate: 1, Port: 0}}}
	ix := buildIndex(gates, wires)

	// a wire from a deleted gate reads false rather than failing
	if v, wired := ix.input(Endpoint{Gate: 1, Port: 0}); !wired || v {
		t.Errorf("dangling source: got (%v, %v), want (false, true)", v, wired)
	}
}

func Test_index_composite_source(t *testing.T) {
	gates := []Gate{
		{ID: 1, Kind: Composite, Template: "T", In: []bool{false}, Out: []bool{true, false}},
		{ID: 2, Kind: Output},
	}
	wires := []Wire{
		{ID: 1, From: Endpoint{Gate: 1, Port: 0}, To: Endpoint{Gate: 2, Port: 0}},
	}
	ix := buildIndex(gates, wires)

	if v, _ := ix.input(Endpoint{Gate: 2, Port: 0}); !v {
		t.Errorf("composite source port 0: got false, want true")
	}
	if v := ix.signal(Endpoint{Gate: 1, Port: 5}); v {
		t.Errorf("out-of-range composite port must read false")
	}
}
