// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

package mapper

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/aparande/json-mapping-transform/condition"
	"github.com/aparande/json-mapping-transform/logger"
	"github.com/aparande/json-mapping-transform/pathexpr"
	"github.com/aparande/json-mapping-transform/schema"
)

// TransformFunc reshapes a condition-filtered value before it is placed in
// the output. An error aborts the Apply call and propagates unwrapped.
type TransformFunc func(value any) (any, error)

// Registry maps transform names to their functions.
type Registry map[string]TransformFunc

// Mapper realizes a mapping schema against input data. All configuration is
// fixed at construction; a single Mapper is safe for concurrent Apply calls.
type Mapper struct {
	doc        *schema.Document
	conditions *condition.Engine
	transforms Registry
	resolver   *pathexpr.Resolver
	log        logr.Logger
}

// Option configures a Mapper under construction.
type Option func(*config)

type config struct {
	log     logr.Logger
	condOps []condition.Option
}

// WithLogger sets the logger used for fallback diagnostics across the
// mapper, its path resolver, and its condition engine.
// The default is the global zap-backed logger.
func WithLogger(log logr.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithConditionKind registers a user-defined predicate kind, invoked
// identically to the built-in condition classes.
func WithConditionKind(class string, factory condition.Factory) Option {
	return func(c *config) {
		c.condOps = append(c.condOps, condition.WithKind(class, factory))
	}
}

// New builds a Mapper from a schema document and a transform registry.
// A nil registry is treated as empty. Construction fails fast on a
// structurally invalid document (*schema.FormatError) or an
// uninstantiable condition definition (*condition.ConditionError,
// *condition.UnknownClassError).
func New(doc *schema.Document, transforms Registry, opts ...Option) (*Mapper, error) {
	if doc == nil {
		return nil, &schema.FormatError{Reason: "schema document is nil"}
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	cfg := &config{log: logger.NewLogr()}
	for _, opt := range opts {
		opt(cfg)
	}

	condOps := append([]condition.Option{condition.WithLogger(cfg.log)}, cfg.condOps...)
	conditions, err := condition.NewEngine(doc.Conditions, condOps...)
	if err != nil {
		return nil, fmt.Errorf("failed to build condition engine: %w", err)
	}

	if transforms == nil {
		transforms = Registry{}
	}

	return &Mapper{
		doc:        doc,
		conditions: conditions,
		transforms: transforms,
		resolver:   pathexpr.NewResolver(pathexpr.WithLogger(cfg.log)),
		log:        cfg.log,
	}, nil
}

// Apply realizes the schema against input and returns a fresh output map.
// Each top-level node contributes a single key; later nodes overwrite
// earlier ones of the same name.
func (m *Mapper) Apply(input any) (map[string]any, error) {
	output := make(map[string]any, len(m.doc.Objects))
	for _, node := range m.doc.Objects {
		partial, err := m.realize(input, node)
		if err != nil {
			return nil, err
		}
		for key, value := range partial {
			output[key] = value
		}
	}
	return output, nil
}
