// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

package condition

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/aparande/json-mapping-transform/logger"
	"github.com/aparande/json-mapping-transform/pathexpr"
	"github.com/aparande/json-mapping-transform/schema"
)

// Engine holds the named predicate instances built from a schema document's
// conditions section. It is immutable after construction and safe for
// concurrent use.
type Engine struct {
	conditions map[string]Predicate
	resolver   *pathexpr.Resolver
	log        logr.Logger
}

// Option configures an Engine under construction.
type Option func(*engineConfig)

type engineConfig struct {
	log      logr.Logger
	registry *Registry
}

// WithLogger sets the logger used for evaluation diagnostics.
// The default is the global zap-backed logger.
func WithLogger(log logr.Logger) Option {
	return func(c *engineConfig) {
		c.log = log
	}
}

// WithKind registers a user-defined predicate kind under a class name,
// alongside the built-ins.
func WithKind(class string, factory Factory) Option {
	return func(c *engineConfig) {
		c.registry.Register(class, factory)
	}
}

// NewEngine instantiates every condition definition through the kind
// registry. Construction fails fast: a malformed payload is a
// *ConditionError and an unregistered class is an *UnknownClassError,
// both wrapped with the offending condition's name.
func NewEngine(defs map[string]schema.Definition, opts ...Option) (*Engine, error) {
	cfg := &engineConfig{
		log:      logger.NewLogr(),
		registry: NewRegistry(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	conditions := make(map[string]Predicate, len(defs))
	for name, def := range defs {
		predicate, err := cfg.registry.Build(def)
		if err != nil {
			return nil, fmt.Errorf("condition %q: %w", name, err)
		}
		conditions[name] = predicate
	}

	return &Engine{
		conditions: conditions,
		resolver:   pathexpr.NewResolver(pathexpr.WithLogger(cfg.log)),
		log:        cfg.log,
	}, nil
}

// EvaluateAll applies each condition reference, in order, to value and
// composes the matches. For every reference, value (coerced to a sequence)
// is filtered to the elements whose comparand satisfies the named
// predicate; the comparand is the element itself, or the value its field
// sub-path addresses when the reference carries one. A reference with no
// surviving elements contributes nothing. A reference whose input was not
// a sequence and which kept exactly one element contributes that element
// unwrapped. A reference with an output value contributes that instead of
// the filtered result.
//
// The second return reports whether anything matched: (nil, false) means
// no condition matched and the caller should fall back to its default.
// One match is returned directly; several compose into a sequence.
func (e *Engine) EvaluateAll(value any, refs []schema.ConditionRef) (any, bool, error) {
	var matched []any
	for _, ref := range refs {
		predicate, ok := e.conditions[ref.Name]
		if !ok {
			return nil, false, &ConditionError{Name: ref.Name, Reason: "condition is not defined"}
		}

		elements, wasSequence := value.([]any)
		if !wasSequence {
			elements = []any{value}
		}

		var filtered []any
		for _, element := range elements {
			comparand := element
			if ref.Field != "" {
				resolved, err := e.resolver.Resolve(element, ref.Field)
				if err != nil {
					return nil, false, err
				}
				comparand = resolved
			}
			if predicate.Apply(comparand) {
				filtered = append(filtered, element)
			}
		}
		if len(filtered) == 0 {
			e.log.V(1).Info("condition matched nothing", "condition", ref.Name)
			continue
		}

		var result any = filtered
		if !wasSequence && len(filtered) == 1 {
			result = filtered[0]
		}
		if ref.Output != nil {
			result = ref.Output
		}
		matched = append(matched, result)
	}

	switch len(matched) {
	case 0:
		return nil, false, nil
	case 1:
		return matched[0], true, nil
	default:
		return []any(matched), true, nil
	}
}
