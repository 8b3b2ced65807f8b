// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

package cel

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

// DefaultCostLimit is the default runtime cost limit for program evaluation.
// It bounds the work a single predicate evaluation may perform.
const DefaultCostLimit = 1000000

// ValueVariable is the name of the variable holding the value under test.
const ValueVariable = "value"

// Engine compiles CEL predicate expressions. The underlying environment is
// created lazily on first use; the Engine is safe for concurrent use.
type Engine struct {
	once      sync.Once
	env       *cel.Env
	envErr    error
	envOpts   []cel.EnvOption
	costLimit uint64
}

// NewEngine creates an Engine whose environment declares the dynamic
// "value" variable plus any additional options supplied by the caller.
func NewEngine(opts ...cel.EnvOption) *Engine {
	envOpts := append([]cel.EnvOption{
		cel.Variable(ValueVariable, cel.DynType),
	}, opts...)
	return &Engine{
		envOpts:   envOpts,
		costLimit: DefaultCostLimit,
	}
}

// WithCostLimit sets the runtime cost limit applied to compiled programs.
func (e *Engine) WithCostLimit(limit uint64) *Engine {
	e.costLimit = limit
	return e
}

func (e *Engine) environment() (*cel.Env, error) {
	e.once.Do(func() {
		e.env, e.envErr = cel.NewEnv(e.envOpts...)
	})
	return e.env, e.envErr
}

// Compile parses, checks, and compiles an expression into a Program that can
// be evaluated repeatedly. Syntax and type errors are reported as a
// *CompileError.
func (e *Engine) Compile(src string) (*Program, error) {
	env, err := e.environment()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, issues := env.Compile(src)
	if issues.Err() != nil {
		return nil, newCompileError(src, issues)
	}

	program, err := env.Program(ast, cel.CostLimit(e.costLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program for %q: %w", src, err)
	}

	return &Program{source: src, program: program}, nil
}

// Program is a compiled expression, safe for concurrent evaluation.
type Program struct {
	source  string
	program cel.Program
}

// Source returns the original expression text.
func (p *Program) Source() string {
	return p.source
}

// Eval executes the program against the given variables.
func (p *Program) Eval(vars map[string]any) (any, error) {
	out, _, err := p.program.Eval(vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEvaluation, err)
	}
	return out.Value(), nil
}

// EvalBool executes the program and returns its result as a bool.
// A non-boolean result is an ErrInvalidResult error.
func (p *Program) EvalBool(vars map[string]any) (bool, error) {
	result, err := p.Eval(vars)
	if err != nil {
		return false, err
	}
	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("%w: expected bool, got %T", ErrInvalidResult, result)
	}
	return b, nil
}
