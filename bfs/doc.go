// Package bfs runs breadth-first search over the GEO layer of a core.Graph.
//
// BFS returns hop distances and the visit order from one start node, with an
// optional edge filter; district contiguity checks run one filtered BFS per
// district. Components and Connected partition a filtered node subset into
// GEO components and back the connected-layer guard of district growth.
//
// Traversal follows adjacency insertion order, so every result is
// reproducible for a given graph.
package bfs
