// SPDX-License-Identifier: MIT

package cogs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the on-disk shape of a Set.
type document struct {
	Front []int `yaml:"front"`
	Rear  []int `yaml:"rear"`
}

// Parse decodes a YAML cog set document and validates it with New.
// Decoding failures wrap ErrDecode; validation failures wrap the New sentinels.
func Parse(data []byte) (Set, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Set{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return New(doc.Front, doc.Rear)
}

// LoadFile reads and parses the cog set document at path.
func LoadFile(path string) (Set, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("cogs: read %s: %w", path, err)
	}
	s, err := Parse(bs)
	if err != nil {
		return Set{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Set) MarshalYAML() (interface{}, error) {
	return document{Front: clone(s.front), Rear: clone(s.rear)}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler so a Set can be embedded in
// larger configuration documents. The decoded set is validated.
func (s *Set) UnmarshalYAML(value *yaml.Node) error {
	var doc document
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	decoded, err := New(doc.Front, doc.Rear)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}
