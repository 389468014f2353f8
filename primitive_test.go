package logicsim

import "testing"

func Test_evalPrimitive(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		inputs []bool
		wired  int
		want   bool
	}{
		{"and 00", And, []bool{false, false}, 2, false},
		{"and 01", And, []bool{false, true}, 2, false},
		{"and 10", And, []bool{true, false}, 2, false},
		{"and 11", And, []bool{true, true}, 2, true},
		{"or 00", Or, []bool{false, false}, 2, false},
		{"or 01", Or, []bool{false, true}, 2, true},
		{"or 10", Or, []bool{true, false}, 2, true},
		{"or 11", Or, []bool{true, true}, 2, true},
		{"not 0", Not, []bool{false}, 1, true},
		{"not 1", Not, []bool{true}, 1, false},
		{"not unwired", Not, []bool{false}, 0, true},
		{"output", Output, []bool{true}, 1, true},
		{"output unwired", Output, []bool{false}, 0, false},
		// under-wired AND/OR are forced false, wired values notwithstanding
		{"and under-wired", And, []bool{true, false}, 1, false},
		{"or under-wired", Or, []bool{true, false}, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evalPrimitive(tt.kind, tt.inputs, tt.wired); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_kind_strings(t *testing.T) {
	for _, k := range []Kind{Input, Output, And, Or, Not, Composite} {
		if k.String() == "UNKNOWN" {
			t.Errorf("kind %d has no name", k)
		}
	}
	if Kind(42).String() != "UNKNOWN" {
		t.Errorf("out-of-range kind must stringify as UNKNOWN")
	}
}
