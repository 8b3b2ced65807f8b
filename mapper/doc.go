// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

/*
Package mapper realizes a mapping schema against nested input data.

A Mapper is built once from a schema document and a transform registry and
is then safe for unlimited concurrent Apply calls: the schema tree and the
condition engine are read-only after construction, and every call allocates
its own output.

	doc, err := schema.LoadFile("mapping.yaml")
	m, err := mapper.New(doc, mapper.Registry{
	    "titlecase": func(v any) (any, error) { ... },
	})
	out, err := m.Apply(input)

Apply realizes each top-level schema node against the input and merges the
results left to right. Object nodes fan out over the elements their path
resolves to and realize their attributes against each element; scalar nodes
resolve their path, filter through their condition references, and pass
through their named transform. Values that resolve to nothing fall back to
the node's default rather than erroring.
*/
package mapper
