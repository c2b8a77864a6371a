// SPDX-License-Identifier: MIT
// Package: frankengrid/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// Priority when several validations fail:
//   • ErrTooFewVertices : size/domain checks first (H, W, m, N).
//   • core.ErrSizeMismatch: then node-count agreement.
//   • ErrNeedRandSource : then RNG presence for stochastic builders.
//   • ErrBadCoordinates : coordinate validation for inferred lattices.
//   • ErrConstructFailed: only after the emitted topology fails its own check.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (e.g., H, W, m) or the
// node count is smaller than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Typical origin: SocialBA without RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the emitted topology violated its own
// invariant (e.g., GeoGrid edge count mismatch), or a nil constructor/graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadCoordinates indicates coordinates that cannot describe a lattice:
// non-integer-like, non-finite, or duplicated positions.
var ErrBadCoordinates = errors.New("builder: coordinates are not a lattice")
