// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

package condition

import (
	"github.com/aparande/json-mapping-transform/schema"
)

// Predicate is a boolean test over a value under consideration.
// Implementations must be safe for concurrent use once constructed.
type Predicate interface {
	Apply(value any) bool
}

// Factory constructs a Predicate from a raw predicate payload. The registry
// is passed in so combinator kinds can recurse into nested definitions.
// Factories must validate their payload and fail fast on malformed input.
type Factory func(r *Registry, payload any) (Predicate, error)

// Built-in predicate class names.
const (
	ClassIn          = "In"
	ClassRegex       = "Regex"
	ClassAny         = "Any"
	ClassLessThan    = "LessThan"
	ClassGreaterThan = "GreaterThan"
	ClassAnd         = "And"
	ClassOr          = "Or"
	ClassNot         = "Not"
	ClassCel         = "Cel"
)

// Registry maps predicate class names to factories. It is the extension
// point for user-defined condition kinds: register a factory under a class
// name and definitions using that class construct through it exactly like
// built-ins.
type Registry struct {
	kinds map[string]Factory
}

// NewRegistry creates a Registry seeded with the built-in kinds.
func NewRegistry() *Registry {
	r := &Registry{kinds: make(map[string]Factory)}
	r.Register(ClassIn, newIn)
	r.Register(ClassRegex, newRegex)
	r.Register(ClassAny, newAny)
	r.Register(ClassLessThan, newLessThan)
	r.Register(ClassGreaterThan, newGreaterThan)
	r.Register(ClassAnd, newAnd)
	r.Register(ClassOr, newOr)
	r.Register(ClassNot, newNot)
	r.Register(ClassCel, newCel)
	return r
}

// Register adds or replaces the factory for a class name.
func (r *Registry) Register(class string, factory Factory) {
	r.kinds[class] = factory
}

// Build constructs a predicate from a definition, dispatching on its class.
// An unregistered class is an *UnknownClassError.
func (r *Registry) Build(def schema.Definition) (Predicate, error) {
	factory, ok := r.kinds[def.Class]
	if !ok {
		return nil, &UnknownClassError{Class: def.Class}
	}
	return factory(r, def.Predicate)
}

// asDefinition normalizes a nested definition payload. Combinator payloads
// decoded from YAML arrive as raw maps; programmatic callers may pass
// schema.Definition values directly.
func asDefinition(v any) (schema.Definition, bool) {
	switch def := v.(type) {
	case schema.Definition:
		return def, def.Class != ""
	case *schema.Definition:
		if def == nil {
			return schema.Definition{}, false
		}
		return *def, def.Class != ""
	case map[string]any:
		class, _ := def["class"].(string)
		return schema.Definition{Class: class, Predicate: def["predicate"]}, class != ""
	default:
		return schema.Definition{}, false
	}
}
