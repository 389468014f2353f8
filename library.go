// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "sort"

// A CompositeTemplate is a reusable sub-circuit exposed as a single gate.
// Its inner gates describe shape only: runtime values are seeded fresh on
// every expansion. InputPorts and OutputPorts alias inner Input and Output
// gate ids, in declared order.
//
type CompositeTemplate struct {
	Name        string `yaml:"name"`
	Gates       []Gate `yaml:"gates"`
	Wires       []Wire `yaml:"wires,omitempty"`
	InputPorts  []int  `yaml:"inputs"`
	OutputPorts []int  `yaml:"outputs"`
}

func (t CompositeTemplate) clone() CompositeTemplate {
	n := t
	n.Gates = cloneGates(t.Gates)
	if t.Wires != nil {
		n.Wires = append([]Wire(nil), t.Wires...)
	}
	if t.InputPorts != nil {
		n.InputPorts = append([]int(nil), t.InputPorts...)
	}
	if t.OutputPorts != nil {
		n.OutputPorts = append([]int(nil), t.OutputPorts...)
	}
	return n
}

// A Library is a name-indexed store of composite templates. It is owned by
// the caller and passed explicitly into Evaluate; the evaluator only ever
// reads it. A nil *Library behaves as an empty one.
//
type Library struct {
	templates map[string]CompositeTemplate
}

// NewLibrary returns an empty library.
//
func NewLibrary() *Library {
	return &Library{templates: make(map[string]CompositeTemplate)}
}

// Get returns the template registered under name.
//
func (l *Library) Get(name string) (CompositeTemplate, bool) {
	if l == nil {
		return CompositeTemplate{}, false
	}
	t, ok := l.templates[name]
	return t, ok
}

// Put registers t under its name, replacing any previous template.
//
func (l *Library) Put(t CompositeTemplate) {
	l.templates[t.Name] = t.clone()
}

// Delete removes the named template. Circuits referencing it keep their
// composite gates; those gates evaluate as inert from then on.
//
func (l *Library) Delete(name string) {
	delete(l.templates, name)
}

// Len returns the number of registered templates.
//
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.templates)
}

// Names returns all template names in lexical order.
//
func (l *Library) Names() []string {
	if l == nil {
		return nil
	}
	names := make([]string, 0, len(l.templates))
	for n := range l.templates {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the library.
//
func (l *Library) Clone() *Library {
	n := NewLibrary()
	if l == nil {
		return n
	}
	for _, t := range l.templates {
		n.Put(t)
	}
	return n
}
