// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

// Package pathexpr resolves slash-delimited path expressions against nested
// map/sequence data trees.
//
// A path is a sequence of segments separated by "/". Empty segments (leading,
// trailing, or doubled slashes) are skipped. A segment applied to a map is a
// key lookup; applied to a sequence it is parsed as a non-negative integer
// index. The segment "*" fans out: the remaining path is resolved
// independently against every element of the current sequence, and the
// per-element results are returned as a sequence.
//
// Resolution degrades gracefully: a missing key, an out-of-range index, or a
// nil value encountered mid-path yields nil (absent) rather than an error,
// logged at debug level through the injected logger. The only resolution
// error is applying "*" to a value that is not a sequence, reported as a
// *PathError.
//
//	r := pathexpr.NewResolver()
//	v, err := r.Resolve(data, "/inventory/*/price")
package pathexpr
