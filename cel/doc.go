// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

/*
Package cel compiles and evaluates CEL expressions used as mapping predicates.

The engine declares a single dynamic variable, "value", holding the value
under test, and lazily initializes a shared, thread-safe CEL environment.
Compilation failures are reported as *CompileError with per-issue location
details; evaluation is bounded by a runtime cost limit.

	engine := cel.NewEngine()
	prog, err := engine.Compile(`value.startsWith("user-")`)
	if err != nil {
	    // handle compilation error
	}
	ok, err := prog.EvalBool(map[string]any{"value": "user-123"})
*/
package cel
