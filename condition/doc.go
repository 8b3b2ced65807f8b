// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

/*
Package condition implements the predicate engine used to filter and relabel
mapped values.

A predicate is anything implementing Apply(value) bool. Predicate kinds are
registered by class name in a Registry; the built-in kinds are In, Regex,
Any, LessThan, GreaterThan, the combinators And, Or, Not, and Cel
(CEL expressions over a "value" variable). New kinds plug in through
Registry.Register or the engine's WithKind option and are constructed from
the same raw predicate payload as built-ins.

An Engine holds the named predicate instances built once from a schema
document's conditions section. EvaluateAll applies a scalar node's ordered
condition references to a resolved value: each reference filters the value
(or its elements) by its predicate, optionally extracting a comparand
through a field sub-path, and the per-reference matches compose into a
single value, an array, or a no-match result.

Errors distinguish configuration mistakes (*ConditionError: malformed
payloads, references to undefined condition names) from missing plugins
(*UnknownClassError: a class with no registered kind).
*/
package condition
