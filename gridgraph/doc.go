// Package gridgraph reads a 2D land/water mask as the footprint of a masked
// lattice.
//
//   - GridGraph stores the mask row-major; cells ≥ LandThreshold are land.
//   - LandCells lists land in node order; builder.MaskNodes turns it into nodes.
//   - Islands labels land under Conn4 (rook) or Conn8 (queen); ConnFor picks
//     the one matching a GEO neighbourhood.
//   - ExpandIsland finds the fewest water cells joining two islands (0-1 BFS)
//     and Bridged repeats it until the mask is one island, so district growth
//     on the resulting lattice never needs a fallback.
//
// Complexity: Islands and ExpandIsland are O(W×H×d) with d = 4 or 8;
// Bridged is O(C×W×H×d) for C initial islands.
package gridgraph
