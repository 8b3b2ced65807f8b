// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

/*
Package schema defines the mapping-schema document model and its loader.

A document declares an optional conditions section (named predicate
definitions) and a required objects section (the schema nodes realized
against each input). Documents are written in YAML or JSON:

	conditions:
	  cheap:
	    class: LessThan
	    predicate: 1.0
	objects:
	  - name: inventory
	    path: /inventory/*
	    attributes:
	      - name: item_name
	        path: /itemName

Load validates the raw document against an embedded JSON Schema before
decoding, so structural mistakes surface as *FormatError with precise
messages rather than as zero values deep inside the engine.
*/
package schema
