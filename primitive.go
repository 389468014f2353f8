// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// evalPrimitive computes the output of a primitive gate from its resolved
// input slots. inputs is Arity() long, unwired slots reading false; wired
// is the gate's incoming wire count.
//
// AND and OR are forced false while under-wired: an incompletely connected
// gate never emits an active signal. NOT is exempt, its unwired input
// reads false, so a dangling NOT outputs true. OUTPUT mirrors its driver.
//
func evalPrimitive(kind Kind, inputs []bool, wired int) bool {
	switch kind {
	case Output:
		return inputs[0]
	case Not:
		return !inputs[0]
	case And:
		if wired < len(inputs) {
			return false
		}
		for _, v := range inputs {
			if !v {
				return false
			}
		}
		return true
	case Or:
		if wired < len(inputs) {
			return false
		}
		for _, v := range inputs {
			if v {
				return true
			}
		}
		return false
	}
	return false
}
