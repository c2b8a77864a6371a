// Package core is the node/coordinate model shared by every frankengrid stage.
//
// What:
//
//   - Graph: dense uint32 node ids in [0, N) with planar coordinates.
//   - GEO layer: canonical undirected lattice adjacency (U < V, deduplicated),
//     with per-edge weight and barrier flag, plus per-node degrees.
//   - SOCIAL layer: preferential-attachment ties, independent of geography.
//   - Flat exports (NodeTable, GeoTable, SocialTable) made of primitive slices.
//
// Lifecycle:
//
//	Nodes and edges are created once by builder constructors and are read-only
//	for the opinion, seed and district stages.
//
// Concurrency:
//
//	Graph has no internal locking. Build it on one goroutine; afterwards any
//	number of readers may share it.
//
// Quick ASCII example (2×2 rook lattice, ids y*W+x):
//
//	2───3
//	│   │
//	0───1
package core
