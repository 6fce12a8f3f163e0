// Package layout computes 2-D placements for the vertices of a graph.
//
// Given an attributed graph and an algorithm name, [Compute] returns a
// [Table]: one row per vertex (or, for treemaps, per tree node) with at least
// x, y and the circular flag, plus every vertex attribute joined by index.
// Row order is vertex index order - downstream edge drawing relies on that
// positional identity.
//
// # Algorithms
//
// The package implements the custom layouts directly:
//
//   - dendrogram: bottom-up leaf-anchored tree placement
//   - linear: single-axis or circular ordering by an optional sort key
//   - treemap: aspect-ratio-driven recursive rectangle subdivision
//   - hive: angular axes with radial placement and axis splitting
//
// Generic layouts (circle, star, grid, force-directed, isomap, and the
// graphviz engines) are delegated: the closed-form ones are computed
// in place, force-directed and isomap run through gonum's layout optimizers,
// and the graphviz engines run the graph through goccy/go-graphviz and read
// the positions back.
//
// Algorithm names resolve against a closed catalog, accepting conventional
// as_/in_/with_/on_ prefixes ("in_circle" resolves to "circle"). Unmatched
// names fall through to the registry of custom algorithms ([Register]);
// unresolvable names fail with the UNKNOWN_LAYOUT code.
//
// # Failure and notices
//
// Structural failures (wrong directedness, no root, bad weights, inconsistent
// options, absent section levels, unknown names) are fatal for the call and
// carry the machine-readable codes of pkg/errors. Lossy-but-survivable
// conditions - multiple components, multiple roots or parents, ignored
// non-leaf weights - complete with a deterministic lowest-index tie-break and
// are reported as advisory [Notice] values on the table.
//
// All algorithms leave their input graph untouched. The hive layout may
// derive a rewritten graph (split copies, redirected edges); the table's
// back-referenced graph reflects that rewriting for edge extraction.
package layout
