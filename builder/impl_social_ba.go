// SPDX-License-Identifier: MIT
// Package: frankengrid/builder
//
// impl_social_ba.go: implementation of SocialBA(m) constructor.
//
// Canonical model (Barabási–Albert preferential attachment):
//   • Seed graph: star with center 0 and leaves 1..m (m edges).
//   • repeated holds every endpoint once per incident edge, so a uniform draw
//     from it is a degree-proportional draw. Initially [0]*m ++ [1..m].
//   • Each node s = m+1 .. N-1 draws uniformly from repeated until m DISTINCT
//     targets are collected (draw order kept), adds edges s→t, then appends the
//     targets and m copies of s to repeated.
//
// Contract:
//   • m ≥ 1 and N ≥ m+1 (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Never reads or mutates the GEO layer.
//   • Edge count is exactly m(N−m); every edge carries cfg.socialWeight.
//
// Complexity:
//   • Time: O(N·m) expected draws (duplicate draws are rare once N ≫ m).
//   • Space: O(N·m) for repeated.
//
// Determinism:
//   • Draws consume cfg.rng sequentially: rng.IntN(len(repeated)) per draw.

package builder

import (
	"fmt"

	"github.com/katalvlaran/frankengrid/core"
)

// SocialBA returns a Constructor that builds the SOCIAL layer over the
// existing nodes of g.
func SocialBA(m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early.
		n := g.Order()
		if m < MinAttachment {
			return fmt.Errorf("%s: m=%d < min=%d: %w", methodSocialBA, m, MinAttachment, ErrTooFewVertices)
		}
		if n < m+1 {
			return fmt.Errorf("%s: N=%d < m+1=%d: %w", methodSocialBA, n, m+1, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodSocialBA, ErrNeedRandSource)
		}

		// 2) Star seed graph.
		repeated := make([]uint32, 0, 2*m*(n-m))
		for leaf := 1; leaf <= m; leaf++ {
			if err := g.AddSocialEdge(0, uint32(leaf), cfg.socialWeight); err != nil {
				return fmt.Errorf("%s: %w", methodSocialBA, err)
			}
		}
		for i := 0; i < m; i++ {
			repeated = append(repeated, 0)
		}
		for leaf := 1; leaf <= m; leaf++ {
			repeated = append(repeated, uint32(leaf))
		}

		// 3) Attach every later node to m distinct degree-weighted targets.
		targets := make([]uint32, 0, m)
		chosen := make(map[uint32]struct{}, m)
		for s := m + 1; s < n; s++ {
			targets = targets[:0]
			clear(chosen)
			for len(targets) < m {
				t := repeated[cfg.rng.IntN(len(repeated))]
				if _, dup := chosen[t]; dup {
					continue
				}
				chosen[t] = struct{}{}
				targets = append(targets, t)
			}
			src := uint32(s)
			for _, t := range targets {
				if err := g.AddSocialEdge(src, t, cfg.socialWeight); err != nil {
					return fmt.Errorf("%s: %w", methodSocialBA, err)
				}
			}
			repeated = append(repeated, targets...)
			for i := 0; i < m; i++ {
				repeated = append(repeated, src)
			}
		}

		return nil
	}
}

// SocialBAEdgeCount returns m(N−m), the edge count SocialBA produces.
func SocialBAEdgeCount(n, m int) int {
	if m < MinAttachment || n < m+1 {
		return 0
	}
	return m * (n - m)
}
