// Package graph provides the attributed multigraph consumed by the layout
// algorithms.
//
// Vertices are addressed by dense integer indices 0..n-1. The vertex index is
// the positional identity of every table derived from a graph: a layout table
// row i always describes vertex i, and downstream edge drawing joins on that
// identity. Because of this, vertices can be added but never removed; edges
// can be both added and deleted.
//
// Every vertex and edge carries a Metadata map of arbitrary attributes.
// Attribute access across all vertices is columnar: NumericAttr and StringAttr
// extract one value per vertex in index order, which is how the layout
// algorithms consume sort keys, weights, and axis assignments.
//
// # Structural edits
//
// Layout algorithms never mutate their input graph. Algorithms that rewrite
// topology (hive axis splitting) accumulate an [Edit] - vertex additions, edge
// additions, edge removals - and apply it as one transaction with
// [Graph.Apply], producing a derived graph and leaving the source untouched.
//
// # Concurrency
//
// Graph is not safe for concurrent mutation. Concurrent reads are safe once
// construction is complete.
package graph
