// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

package condition

import (
	"fmt"

	"github.com/aparande/json-mapping-transform/cel"
)

// celEngine is shared by all Cel predicates; its environment is created
// lazily and is safe for concurrent use.
var celEngine = cel.NewEngine()

// celPredicate evaluates a compiled CEL expression over the value under
// test, bound to the "value" variable.
type celPredicate struct {
	program *cel.Program
}

func newCel(_ *Registry, payload any) (Predicate, error) {
	src, ok := payload.(string)
	if !ok {
		return nil, &ConditionError{Reason: fmt.Sprintf("Cel predicate must be an expression string, got %T", payload)}
	}
	program, err := celEngine.Compile(src)
	if err != nil {
		return nil, &ConditionError{Reason: fmt.Sprintf("Cel predicate %q does not compile: %s", src, err)}
	}
	return &celPredicate{program: program}, nil
}

func (p *celPredicate) Apply(value any) bool {
	ok, err := p.program.EvalBool(map[string]any{cel.ValueVariable: value})
	if err != nil {
		// runtime type mismatches simply fail to match
		return false
	}
	return ok
}
