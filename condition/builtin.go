// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

package condition

import (
	"fmt"
	"regexp"
)

// inPredicate matches values that intersect a fixed set of scalars.
type inPredicate struct {
	options []any
}

func newIn(_ *Registry, payload any) (Predicate, error) {
	options, ok := payload.([]any)
	if !ok {
		return nil, &ConditionError{Reason: fmt.Sprintf("In predicate must be an array, got %T", payload)}
	}
	return &inPredicate{options: options}, nil
}

func (p *inPredicate) Apply(value any) bool {
	if sequence, ok := value.([]any); ok {
		for _, element := range sequence {
			if p.contains(element) {
				return true
			}
		}
		return false
	}
	return p.contains(value)
}

func (p *inPredicate) contains(value any) bool {
	for _, option := range p.options {
		if scalarEqual(value, option) {
			return true
		}
	}
	return false
}

// regexPredicate matches string values against a compiled pattern.
// Non-string values never match.
type regexPredicate struct {
	pattern *regexp.Regexp
}

func newRegex(_ *Registry, payload any) (Predicate, error) {
	src, ok := payload.(string)
	if !ok {
		return nil, &ConditionError{Reason: fmt.Sprintf("Regex predicate must be a pattern string, got %T", payload)}
	}
	pattern, err := regexp.Compile(src)
	if err != nil {
		return nil, &ConditionError{Reason: fmt.Sprintf("Regex predicate %q does not compile: %s", src, err)}
	}
	return &regexPredicate{pattern: pattern}, nil
}

func (p *regexPredicate) Apply(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	return p.pattern.MatchString(s)
}

// anyPredicate matches any truthy value, or any sequence containing one.
// Its payload is ignored.
type anyPredicate struct{}

func newAny(_ *Registry, _ any) (Predicate, error) {
	return anyPredicate{}, nil
}

func (anyPredicate) Apply(value any) bool {
	if sequence, ok := value.([]any); ok {
		for _, element := range sequence {
			if truthy(element) {
				return true
			}
		}
		return false
	}
	return truthy(value)
}

// comparePredicate orders numeric values against a fixed threshold.
// Non-numeric values never match.
type comparePredicate struct {
	threshold float64
	less      bool
}

func newLessThan(_ *Registry, payload any) (Predicate, error) {
	return newCompare(payload, ClassLessThan, true)
}

func newGreaterThan(_ *Registry, payload any) (Predicate, error) {
	return newCompare(payload, ClassGreaterThan, false)
}

func newCompare(payload any, class string, less bool) (Predicate, error) {
	threshold, ok := asNumber(payload)
	if !ok {
		return nil, &ConditionError{Reason: fmt.Sprintf("%s predicate must be numeric, got %T", class, payload)}
	}
	return &comparePredicate{threshold: threshold, less: less}, nil
}

func (p *comparePredicate) Apply(value any) bool {
	n, ok := asNumber(value)
	if !ok {
		return false
	}
	if p.less {
		return n < p.threshold
	}
	return n > p.threshold
}

// allPredicate is the And combinator: true iff every sub-predicate is true.
type allPredicate struct {
	subs []Predicate
}

func newAnd(r *Registry, payload any) (Predicate, error) {
	subs, err := buildSubPredicates(r, payload, ClassAnd)
	if err != nil {
		return nil, err
	}
	return &allPredicate{subs: subs}, nil
}

func (p *allPredicate) Apply(value any) bool {
	for _, sub := range p.subs {
		if !sub.Apply(value) {
			return false
		}
	}
	return true
}

// somePredicate is the Or combinator: true iff any sub-predicate is true.
type somePredicate struct {
	subs []Predicate
}

func newOr(r *Registry, payload any) (Predicate, error) {
	subs, err := buildSubPredicates(r, payload, ClassOr)
	if err != nil {
		return nil, err
	}
	return &somePredicate{subs: subs}, nil
}

func (p *somePredicate) Apply(value any) bool {
	for _, sub := range p.subs {
		if sub.Apply(value) {
			return true
		}
	}
	return false
}

// notPredicate inverts a single wrapped predicate.
type notPredicate struct {
	sub Predicate
}

func newNot(r *Registry, payload any) (Predicate, error) {
	def, ok := asDefinition(payload)
	if !ok {
		return nil, &ConditionError{Reason: "Not predicate must be a condition definition carrying a class"}
	}
	sub, err := r.Build(def)
	if err != nil {
		return nil, err
	}
	return &notPredicate{sub: sub}, nil
}

func (p *notPredicate) Apply(value any) bool {
	return !p.sub.Apply(value)
}

// buildSubPredicates constructs the sub-predicates of an And/Or combinator.
// The payload must be a sequence of at least two condition definitions.
func buildSubPredicates(r *Registry, payload any, class string) ([]Predicate, error) {
	defs, ok := payload.([]any)
	if !ok {
		return nil, &ConditionError{Reason: fmt.Sprintf("%s predicate must be an array of condition definitions, got %T", class, payload)}
	}
	if len(defs) < 2 {
		return nil, &ConditionError{Reason: fmt.Sprintf("%s predicate requires at least 2 sub-conditions, got %d", class, len(defs))}
	}

	subs := make([]Predicate, 0, len(defs))
	for i, raw := range defs {
		def, ok := asDefinition(raw)
		if !ok {
			return nil, &ConditionError{Reason: fmt.Sprintf("%s sub-condition %d is not a condition definition", class, i)}
		}
		sub, err := r.Build(def)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}
