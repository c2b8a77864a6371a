// Package opinion synthesizes the per-node opinion field of a layered grid.
//
// What:
//
//   - FillHBO: the hierarchical Beta-opinion fill. Nodes are visited in a
//     uniformly random order (swap-removal pop); each draws from a Beta prior,
//     or, when it already has filled GEO neighbours, from a Beta tilted toward
//     their mean and blended with it by the influence ρ.
//   - Fill: dispatcher over the generation modes hbo, iid-beta, constant, blobs.
//   - Rescale: linear map of values between two domains (e.g. [0,1] → [0,7]).
//
// Determinism:
//
//	Every draw comes from the caller's *rand.Rand, consumed sequentially:
//	one IntN per visit, then the Beta draw (two Gamma variates via gonum).
//	Same graph, parameters and seed ⇒ identical vectors.
//
// Errors:
//
//   - core.ErrNoGeoLayer   GEO adjacency was never built (hbo).
//   - ErrBadParams         α, β ≤ 0, ρ ∉ [0,1], empty domain, bad mode knobs.
//   - ErrNeedRandSource    stochastic mode without an RNG.
//   - core.ErrSizeMismatch output vector length differs from node count.
package opinion
