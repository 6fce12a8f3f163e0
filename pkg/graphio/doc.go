// Package graphio reads and writes the JSON wire formats for graphs and
// layout tables, plus TOML option files.
//
// The graph format is a JSON object with "nodes" and "edges" arrays; node
// identity is positional (the array index is the vertex index):
//
//	{
//	  "directed": true,
//	  "nodes": [{"attrs": {"name": "a"}}, {"attrs": {"name": "b"}}],
//	  "edges": [{"from": 0, "to": 1}]
//	}
//
// Layout documents embed the placed rows together with the graph they
// describe, so edges and paths can be reconstructed from the document alone.
// Both formats carry BSON tags as well and round-trip through the MongoDB
// cache backend unchanged.
package graphio
