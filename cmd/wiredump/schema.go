package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Schema maps field numbers to display names and payload kinds. It is
// optional; without one every length-delimited payload renders as bytes.
//
//	[[field]]
//	number = 1
//	name = "name"
//	kind = "text"
type Schema struct {
	Fields []FieldSpec `toml:"field"`
}

// FieldSpec describes one field of the dump.
type FieldSpec struct {
	Name   string `toml:"name"`
	Kind   string `toml:"kind"` // "text" or "bytes"
	Number uint32 `toml:"number"`
}

// LoadSchema parses a TOML schema file and validates its field specs.
func LoadSchema(path string) (*Schema, error) {
	var s Schema
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	seen := make(map[uint32]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.Number == 0 {
			return nil, fmt.Errorf("schema: field %q has no number", f.Name)
		}
		if seen[f.Number] {
			return nil, fmt.Errorf("schema: duplicate field number %d", f.Number)
		}
		seen[f.Number] = true
		if f.Kind != "text" && f.Kind != "bytes" {
			return nil, fmt.Errorf("schema: field %d has unknown kind %q", f.Number, f.Kind)
		}
	}
	return &s, nil
}

// Lookup returns the spec for a field number, or nil.
func (s *Schema) Lookup(number uint32) *FieldSpec {
	if s == nil {
		return nil
	}
	for i := range s.Fields {
		if s.Fields[i].Number == number {
			return &s.Fields[i]
		}
	}
	return nil
}
