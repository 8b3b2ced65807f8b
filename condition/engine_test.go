// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

package condition_test

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aparande/json-mapping-transform/condition"
	"github.com/aparande/json-mapping-transform/pathexpr"
	"github.com/aparande/json-mapping-transform/schema"
)

func newTestEngine(t *testing.T, defs map[string]schema.Definition, opts ...condition.Option) *condition.Engine {
	t.Helper()
	opts = append([]condition.Option{condition.WithLogger(logr.Discard())}, opts...)
	engine, err := condition.NewEngine(defs, opts...)
	require.NoError(t, err)
	return engine
}

func TestNewEngine_InvalidDefinitions(t *testing.T) {
	t.Parallel()

	_, err := condition.NewEngine(map[string]schema.Definition{
		"broken": {Class: condition.ClassIn, Predicate: "not-an-array"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, condition.ErrCondition)
	assert.Contains(t, err.Error(), "broken")

	_, err = condition.NewEngine(map[string]schema.Definition{
		"missing-plugin": {Class: "Telepathy"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, condition.ErrUnknownClass)
}

func TestEngine_EvaluateAll_UndefinedCondition(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)

	_, _, err := engine.EvaluateAll("anything", []schema.ConditionRef{{Name: "ghost"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, condition.ErrCondition)

	var condErr *condition.ConditionError
	require.ErrorAs(t, err, &condErr)
	assert.Equal(t, "ghost", condErr.Name)
}

func TestEngine_EvaluateAll_Composition(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, map[string]schema.Definition{
		"small":  {Class: condition.ClassLessThan, Predicate: 10},
		"big":    {Class: condition.ClassGreaterThan, Predicate: 100},
		"weight": {Class: condition.ClassIn, Predicate: []any{"lb", "oz"}},
	})

	tests := []struct {
		name      string
		value     any
		refs      []schema.ConditionRef
		want      any
		wantMatch bool
	}{
		{
			name:      "no condition matched",
			value:     50,
			refs:      []schema.ConditionRef{{Name: "small"}, {Name: "big"}},
			want:      nil,
			wantMatch: false,
		},
		{
			name:      "single match returns the value directly",
			value:     5,
			refs:      []schema.ConditionRef{{Name: "small"}, {Name: "big"}},
			want:      5,
			wantMatch: true,
		},
		{
			name:      "multiple matches compose into a sequence",
			value:     "lb",
			refs:      []schema.ConditionRef{{Name: "weight", Output: "weight"}, {Name: "weight", Output: "mass"}},
			want:      []any{"weight", "mass"},
			wantMatch: true,
		},
		{
			name:      "output substitutes the matched value",
			value:     5,
			refs:      []schema.ConditionRef{{Name: "small", Output: "tiny"}},
			want:      "tiny",
			wantMatch: true,
		},
		{
			name:      "sequence value is filtered element-wise",
			value:     []any{5, 50, 7, 500},
			refs:      []schema.ConditionRef{{Name: "small"}},
			want:      []any{5, 7},
			wantMatch: true,
		},
		{
			name:      "sequence with one survivor stays a sequence",
			value:     []any{5, 50, 500},
			refs:      []schema.ConditionRef{{Name: "small"}},
			want:      []any{5},
			wantMatch: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, matched, err := engine.EvaluateAll(tt.value, tt.refs)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMatch, matched)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_EvaluateAll_FieldComparand(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, map[string]schema.Definition{
		"cheap": {Class: condition.ClassLessThan, Predicate: 1.0},
	})

	items := []any{
		map[string]any{"itemName": "Apples", "price": 0.5},
		map[string]any{"itemName": "Caviar", "price": 90.0},
		map[string]any{"itemName": "Bananas", "price": 0.25},
	}

	got, matched, err := engine.EvaluateAll(items, []schema.ConditionRef{{Name: "cheap", Field: "price"}})
	require.NoError(t, err)
	assert.True(t, matched)

	// the filtered result keeps whole elements, not comparands
	assert.Equal(t, []any{
		map[string]any{"itemName": "Apples", "price": 0.5},
		map[string]any{"itemName": "Bananas", "price": 0.25},
	}, got)
}

func TestEngine_EvaluateAll_FieldOnScalarValue(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, map[string]schema.Definition{
		"cheap": {Class: condition.ClassLessThan, Predicate: 1.0},
	})

	item := map[string]any{"itemName": "Apples", "price": 0.5}

	got, matched, err := engine.EvaluateAll(item, []schema.ConditionRef{{Name: "cheap", Field: "price"}})
	require.NoError(t, err)
	assert.True(t, matched)

	// a non-sequence value with one survivor collapses to the element
	assert.Equal(t, item, got)
}

func TestEngine_EvaluateAll_FieldWildcardError(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, map[string]schema.Definition{
		"anything": {Class: condition.ClassAny},
	})

	_, _, err := engine.EvaluateAll(
		map[string]any{"tags": "not-a-sequence"},
		[]schema.ConditionRef{{Name: "anything", Field: "tags/*"}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, pathexpr.ErrWildcard)
}

func TestEngine_WithKind(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t,
		map[string]schema.Definition{
			"even": {Class: "Divisible", Predicate: 2},
		},
		condition.WithKind("Divisible", func(_ *condition.Registry, payload any) (condition.Predicate, error) {
			divisor, ok := payload.(int)
			if !ok || divisor == 0 {
				return nil, &condition.ConditionError{Reason: "Divisible predicate must be a non-zero integer"}
			}
			return divisibleBy(divisor), nil
		}),
	)

	got, matched, err := engine.EvaluateAll(4, []schema.ConditionRef{{Name: "even"}})
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, 4, got)

	_, matched, err = engine.EvaluateAll(5, []schema.ConditionRef{{Name: "even"}})
	require.NoError(t, err)
	assert.False(t, matched)
}
