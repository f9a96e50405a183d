// Package graphjson decodes and encodes morphgraph graphs as JSON, with
// JSONC (comments, trailing commas) accepted on the way in. It exists for
// fixtures and for collaborators that exchange graphs as data rather than
// DOT text.
//
// Wire shape:
//
//	{
//	    // a seed body with one limb
//	    "nodes": [
//	        {"label": "body"},
//	        {"label": "leg", "attrs": {"side": "left"}},
//	    ],
//	    "edges": [
//	        {"label": "attach", "tail": 0, "head": 1},
//	    ],
//	    "subgraphs": [
//	        {"name": "L", "nodes": [0, 1], "edges": [0]},
//	    ],
//	}
//
// Decode preprocesses the input with jsonc.ToJSON unless WithStrictJSON is
// set, then unmarshals with encoding/json and rebuilds the graph through the
// validating core constructors, so endpoint and membership indices are
// checked. Encode marshals the same shape with two-space indentation;
// attribute maps serialize with sorted keys, keeping output byte-identical
// for identical graphs.
//
// Errors:
//
//	ErrDecode - the input is not valid JSON(C) or violates the wire shape.
//	Index violations surface the wrapped core sentinel (core.ErrNodeIndex,
//	core.ErrEdgeIndex) with the offending element named.
package graphjson
