// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

package pathexpr

import (
	"strconv"
	"strings"

	"github.com/go-logr/logr"

	"github.com/aparande/json-mapping-transform/logger"
)

// Wildcard is the path segment that fans resolution out over a sequence.
const Wildcard = "*"

// Resolver navigates path expressions against nested data trees.
// It is stateless apart from its logger and safe for concurrent use.
type Resolver struct {
	log logr.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for graceful-fallback diagnostics.
// The default is the global zap-backed logger.
func WithLogger(log logr.Logger) Option {
	return func(r *Resolver) {
		r.log = log
	}
}

// NewResolver creates a Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{log: logger.NewLogr()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve navigates path against root and returns the value it addresses.
// A nil result means the path addressed nothing (absent); see the package
// documentation for the traversal rules. The only error condition is a
// wildcard segment applied to a non-sequence value.
func (r *Resolver) Resolve(root any, path string) (any, error) {
	return r.resolve(root, strings.Split(path, "/"), path)
}

// resolve walks the remaining segments. The full original expression is
// carried through wildcard recursion so errors and diagnostics always name
// the path the caller wrote.
func (r *Resolver) resolve(root any, segments []string, path string) (any, error) {
	current := root
	for i, segment := range segments {
		if segment == "" {
			continue
		}
		if current == nil {
			r.log.V(1).Info("path resolution reached a null value", "path", path, "segment", segment)
			return nil, nil
		}

		if segment == Wildcard {
			sequence, ok := current.([]any)
			if !ok {
				return nil, &PathError{Path: path, Segment: segment, value: current}
			}
			results := make([]any, 0, len(sequence))
			for _, element := range sequence {
				value, err := r.resolve(element, segments[i+1:], path)
				if err != nil {
					return nil, err
				}
				results = append(results, value)
			}
			return results, nil
		}

		switch value := current.(type) {
		case map[string]any:
			next, ok := value[segment]
			if !ok {
				r.log.V(1).Info("path key not found", "path", path, "segment", segment)
				return nil, nil
			}
			current = next
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 {
				r.log.V(1).Info("path segment is not a valid sequence index", "path", path, "segment", segment)
				return nil, nil
			}
			if index >= len(value) {
				r.log.V(1).Info("path index out of range", "path", path, "segment", segment, "length", len(value))
				return nil, nil
			}
			current = value[index]
		default:
			r.log.V(1).Info("path cannot traverse scalar value", "path", path, "segment", segment)
			return nil, nil
		}
	}

	return current, nil
}
