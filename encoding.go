// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Circuits and libraries serialize to YAML. Round-tripping is exact in
// value terms: DecodeCircuit(EncodeCircuit(c)) is Equal to c, which keeps
// evaluation deterministic across persistence boundaries.

// MarshalYAML serializes a kind as its name.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalYAML parses a kind name.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "INPUT":
		*k = Input
	case "OUTPUT":
		*k = Output
	case "AND":
		*k = And
	case "OR":
		*k = Or
	case "NOT":
		*k = Not
	case "COMPOSITE":
		*k = Composite
	default:
		return errors.Errorf("unknown gate kind %q", s)
	}
	return nil
}

// EncodeCircuit writes c to w as YAML.
//
func EncodeCircuit(w io.Writer, c Circuit) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "encode circuit")
	}
	return enc.Close()
}

// DecodeCircuit reads a circuit from w. Unknown fields are rejected.
//
func DecodeCircuit(r io.Reader) (Circuit, error) {
	var c Circuit
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Circuit{}, errors.Wrap(err, "decode circuit")
	}
	return c, nil
}

type libraryFile struct {
	Templates []CompositeTemplate `yaml:"templates"`
}

// EncodeLibrary writes l to w as YAML, templates in lexical name order.
//
func EncodeLibrary(w io.Writer, l *Library) error {
	var f libraryFile
	for _, name := range l.Names() {
		t, _ := l.Get(name)
		f.Templates = append(f.Templates, t)
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(&f); err != nil {
		return errors.Wrap(err, "encode library")
	}
	return enc.Close()
}

// DecodeLibrary reads a library from r.
//
func DecodeLibrary(r io.Reader) (*Library, error) {
	var f libraryFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "decode library")
	}
	l := NewLibrary()
	for _, t := range f.Templates {
		l.Put(t)
	}
	return l, nil
}
