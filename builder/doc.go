// Package builder provides reusable “functional‐options”‐style constructors
// that populate a core.Graph: node sets, the GEO lattice layer and the SOCIAL
// preferential-attachment layer.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, edge weights, barrier flag, coordinate tolerance.
//   - Node constructors:
//     – GridNodes:         H×W lattice, ids y*W+x.
//     – CoordinateNodes:   arbitrary coordinate lists.
//     – MaskNodes:         land cells of a gridgraph.GridGraph (masked lattice).
//   - GEO constructors:
//     – GeoGrid:           full rectangular rook/queen lattice with count check.
//     – GeoInferred:       unit-offset probing over integer-like coordinates.
//   - SOCIAL constructors:
//     – SocialBA:          Barabási–Albert attachment with a star seed graph.
//
// Guarantees:
//
//   - GEO edges are canonical (U < V) and never duplicated.
//   - SOCIAL construction never reads or mutates the GEO layer.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors wrapping package sentinels for errors.Is.
//   - Determinism: same nodes, options and seed ⇒ identical edge lists.
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
