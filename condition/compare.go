// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

package condition

import (
	"reflect"

	"github.com/spf13/cast"
)

// asNumber reports whether v carries a numeric type and returns it as a
// float64. Strings and bools are not numbers here, even when castable.
func asNumber(v any) (float64, bool) {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return cast.ToFloat64(v), true
	default:
		return 0, false
	}
}

// scalarEqual compares two values, treating all numeric types as one
// universe so a YAML int matches a JSON float of the same magnitude.
func scalarEqual(a, b any) bool {
	an, aok := asNumber(a)
	bn, bok := asNumber(b)
	if aok || bok {
		return aok && bok && an == bn
	}
	return reflect.DeepEqual(a, b)
}

// truthy reports whether a value is non-empty and non-zero.
func truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != ""
	case []any:
		return len(value) > 0
	case map[string]any:
		return len(value) > 0
	default:
		if n, ok := asNumber(v); ok {
			return n != 0
		}
		return true
	}
}
