// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

package schema

import "fmt"

// Document is a parsed mapping schema: named condition definitions plus the
// ordered object nodes realized against each input. It is immutable once
// handed to a mapper.
type Document struct {
	Conditions map[string]Definition `yaml:"conditions" json:"conditions,omitempty"`
	Objects    []*Node               `yaml:"objects" json:"objects"`
}

// Node is a single schema node. A node with attributes is an object node;
// its attributes are realized against every element its path resolves to.
// A node without attributes is a scalar node whose resolved value may be
// filtered through conditions and reshaped by a named transform.
type Node struct {
	// Name is the output key this node produces. Required.
	Name string `yaml:"name" json:"name"`
	// Path is the extraction path, relative to the enclosing element.
	// When empty the node always yields Default.
	Path string `yaml:"path,omitempty" json:"path,omitempty"`
	// Default is the value used when the path resolves to nothing or no
	// condition matches.
	Default any `yaml:"default,omitempty" json:"default,omitempty"`
	// Conditions are evaluated in order against the resolved value.
	Conditions []ConditionRef `yaml:"conditions,omitempty" json:"conditions,omitempty"`
	// Transform names a registered transform applied to the final value.
	Transform string `yaml:"transform,omitempty" json:"transform,omitempty"`
	// Attributes are the child nodes of an object node, with paths
	// interpreted relative to the object's own resolved element.
	Attributes []*Node `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

// IsObject reports whether the node is an object node.
func (n *Node) IsObject() bool {
	return len(n.Attributes) > 0
}

// ConditionRef references a named condition from a scalar node.
type ConditionRef struct {
	// Name refers into the document's conditions section. Required.
	Name string `yaml:"name" json:"name"`
	// Output, when set, replaces the matched value in the node's output.
	Output any `yaml:"output,omitempty" json:"output,omitempty"`
	// Field is a sub-path, relative to the value under test, used to
	// extract the comparand.
	Field string `yaml:"field,omitempty" json:"field,omitempty"`
}

// Definition declares a predicate: its kind and the kind-specific payload.
type Definition struct {
	// Class selects the predicate kind (In, Regex, And, ...). Required.
	Class string `yaml:"class" json:"class"`
	// Predicate is the kind-specific configuration payload.
	Predicate any `yaml:"predicate,omitempty" json:"predicate,omitempty"`
}

// Validate checks the structural invariants the engine relies on: at least
// one object node, and a non-empty name on every node in the tree.
func (d *Document) Validate() error {
	if len(d.Objects) == 0 {
		return &FormatError{Reason: "schema must declare at least one object"}
	}
	for i, node := range d.Objects {
		if err := node.validate(fmt.Sprintf("objects[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) validate(at string) error {
	if n == nil {
		return &FormatError{Reason: fmt.Sprintf("%s: node is not a mapping", at)}
	}
	if n.Name == "" {
		return &FormatError{Reason: fmt.Sprintf("%s: node is missing a name", at)}
	}
	for i, attr := range n.Attributes {
		if err := attr.validate(fmt.Sprintf("%s.attributes[%d]", at, i)); err != nil {
			return err
		}
	}
	return nil
}
