// Package district grows K districts from seed nodes over the GEO layer.
//
// Growth is frontier-proportional: a district is chosen with probability
// proportional to the size of its frontier, then a uniform node of that
// frontier is claimed. Degenerate steps (all frontiers empty while nodes
// remain, as on disconnected masks) are resolved deterministically and
// reported as FallbackEvents; WithRequireConnected rejects such inputs
// up front instead.
//
// Contiguous checks the result: without fallbacks every district is
// connected by construction.
package district
