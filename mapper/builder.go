// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

package mapper

import (
	"reflect"
	"strings"

	"github.com/aparande/json-mapping-transform/pathexpr"
	"github.com/aparande/json-mapping-transform/schema"
)

// realize produces the singleton map {node.Name: value} for one schema node
// evaluated against input.
func (m *Mapper) realize(input any, node *schema.Node) (map[string]any, error) {
	if node.IsObject() {
		return m.realizeObject(input, node)
	}
	return m.realizeScalar(input, node)
}

// realizeObject resolves the object's path, realizes every attribute against
// each resolved element, and collapses the result per the cardinality rule:
// exactly one element stays a sequence only when the node's own path ends in
// the wildcard segment.
func (m *Mapper) realizeObject(input any, node *schema.Node) (map[string]any, error) {
	value := node.Default
	if node.Path == "" {
		return map[string]any{node.Name: value}, nil
	}

	resolved, err := m.resolver.Resolve(input, node.Path)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		m.log.V(1).Info("object path resolved to nothing, using default", "name", node.Name, "path", node.Path)
		return map[string]any{node.Name: value}, nil
	}

	elements, ok := resolved.([]any)
	if !ok {
		elements = []any{resolved}
	}

	realized := make([]any, 0, len(elements))
	for _, element := range elements {
		merged := make(map[string]any, len(node.Attributes))
		for _, attr := range node.Attributes {
			partial, err := m.realize(element, attr)
			if err != nil {
				return nil, err
			}
			for key, attrValue := range partial {
				merged[key] = attrValue
			}
		}
		realized = append(realized, merged)
	}

	// The collapse decision keys off the literal path text, not off whether
	// fan-out occurred: a wildcard-terminated path keeps its array shape
	// even for a single match.
	if len(realized) == 1 && !strings.HasSuffix(node.Path, pathexpr.Wildcard) {
		value = realized[0]
	} else {
		value = realized
	}
	return map[string]any{node.Name: value}, nil
}

// realizeScalar resolves the node's path, filters the value through its
// condition references, and passes the survivor through its transform.
func (m *Mapper) realizeScalar(input any, node *schema.Node) (map[string]any, error) {
	value := node.Default
	if node.Path == "" {
		return map[string]any{node.Name: value}, nil
	}

	resolved, err := m.resolver.Resolve(input, node.Path)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		m.log.V(1).Info("scalar path resolved to nothing, using default", "name", node.Name, "path", node.Path)
		return map[string]any{node.Name: value}, nil
	}
	value = resolved

	if len(node.Conditions) > 0 {
		matched, ok, err := m.conditions.EvaluateAll(value, node.Conditions)
		if err != nil {
			return nil, err
		}
		if !ok {
			m.log.V(1).Info("no condition matched, using default", "name", node.Name)
			value = node.Default
		} else {
			value = matched
		}
	}

	if node.Transform != "" && !reflect.DeepEqual(value, node.Default) {
		transform, ok := m.transforms[node.Transform]
		if !ok {
			return nil, &TransformError{Name: node.Transform, Reason: "not registered"}
		}
		if transform == nil {
			return nil, &TransformError{Name: node.Transform, Reason: "registered entry is not callable"}
		}
		transformed, err := transform(value)
		if err != nil {
			return nil, err
		}
		value = transformed
	}

	return map[string]any{node.Name: value}, nil
}
