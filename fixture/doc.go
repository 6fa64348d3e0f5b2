// Package fixture holds tabular test data: rows of named fields grouped by the test method they
// feed, and the YAML (or JSON) file format they are loaded from.
//
// # File Format
//
//	version: "1"
//	methods:
//	  TestAdd:
//	    params:                      # optional, read by the param-supplier CLI
//	      - {name: a, type: int}
//	      - {name: items, type: "[]int"}
//	      - {type: set, elem: string, name: tags}
//	    rows:
//	      - {a: 1, items: "1:2:3", tags: "x:y"}
//	      - {a: 2, items: "4", tags: ""}
//
// Rows keep their declaration order; it is the order of the test invocations.
// Field values stay as decoded: quoted scalars are strings, plain numbers and booleans keep
// their YAML types.
package fixture
