// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

package cel_test

import (
	"testing"

	celgo "github.com/google/cel-go/cel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aparande/json-mapping-transform/cel"
)

func TestEngine_Compile_ValidExpressions(t *testing.T) {
	t.Parallel()

	engine := cel.NewEngine()

	tests := []struct {
		name string
		expr string
	}{
		{
			name: "equality",
			expr: `value == "target"`,
		},
		{
			name: "numeric comparison",
			expr: `value > 100`,
		},
		{
			name: "string function",
			expr: `value.startsWith("user-")`,
		},
		{
			name: "membership",
			expr: `value in ["lb", "oz"]`,
		},
		{
			name: "nested access",
			expr: `value["price"] < 1.0`,
		},
		{
			name: "exists macro",
			expr: `value.exists(v, v > 0)`,
		},
		{
			name: "true literal",
			expr: `true`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			program, err := engine.Compile(tt.expr)
			require.NoError(t, err)
			require.NotNil(t, program)
			assert.Equal(t, tt.expr, program.Source())
		})
	}
}

func TestEngine_Compile_Errors(t *testing.T) {
	t.Parallel()

	engine := cel.NewEngine()

	tests := []struct {
		name string
		expr string
	}{
		{
			name: "syntax error",
			expr: `value ==`,
		},
		{
			name: "unclosed bracket",
			expr: `value["price"`,
		},
		{
			name: "undeclared variable",
			expr: `other == 1`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := engine.Compile(tt.expr)
			require.Error(t, err)
			assert.ErrorIs(t, err, cel.ErrCompile)

			var compileErr *cel.CompileError
			require.ErrorAs(t, err, &compileErr)
			assert.Equal(t, tt.expr, compileErr.Source)
			assert.NotEmpty(t, compileErr.Issues)
		})
	}
}

func TestProgram_EvalBool(t *testing.T) {
	t.Parallel()

	engine := cel.NewEngine()
	program, err := engine.Compile(`value < 1000`)
	require.NoError(t, err)

	ok, err := program.EvalBool(map[string]any{"value": 500})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = program.EvalBool(map[string]any{"value": 5000})
	require.NoError(t, err)
	assert.False(t, ok)

	// a runtime type mismatch is an evaluation error
	_, err = program.EvalBool(map[string]any{"value": "five"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cel.ErrEvaluation)
}

func TestProgram_EvalBool_NonBooleanResult(t *testing.T) {
	t.Parallel()

	engine := cel.NewEngine()
	program, err := engine.Compile(`"not a bool"`)
	require.NoError(t, err)

	_, err = program.EvalBool(map[string]any{"value": nil})
	require.Error(t, err)
	assert.ErrorIs(t, err, cel.ErrInvalidResult)
}

func TestProgram_Eval(t *testing.T) {
	t.Parallel()

	engine := cel.NewEngine()
	program, err := engine.Compile(`value["price"]`)
	require.NoError(t, err)

	got, err := program.Eval(map[string]any{"value": map[string]any{"price": 0.5}})
	require.NoError(t, err)
	assert.Equal(t, 0.5, got)
}

func TestNewEngine_ExtraVariables(t *testing.T) {
	t.Parallel()

	engine := cel.NewEngine(
		celgo.Variable("threshold", celgo.DoubleType),
	)
	program, err := engine.Compile(`value < threshold`)
	require.NoError(t, err)

	ok, err := program.EvalBool(map[string]any{"value": 0.5, "threshold": 1.0})
	require.NoError(t, err)
	assert.True(t, ok)
}
