// Package frankengrid synthesizes layered spatial graphs for opinion-dynamics
// and redistricting experiments.
//
// What gets built:
//
//	GEO layer      rook or queen lattice over a grid, a coordinate set or a land mask
//	SOCIAL layer   Barabási–Albert preferential attachment over the same nodes
//	Opinion field  spatially correlated "HBO" fill (plus iid-beta, constant, blobs)
//	Seeds          Manhattan-spaced draws, coarse grid candidates or YAML presets
//	Districts      frontier-proportional growth from the seeds
//
// Every stochastic stage is reproducible bit-for-bit from (graph, parameters, seed).
//
// Packages:
//
//	core/       Graph with dense uint32 ids, GEO and SOCIAL layers, flat tables, RNG factory
//	builder/    Constructor + BuilderOption composition (GridNodes, GeoGrid, SocialBA, ...)
//	gridgraph/  land/water masks, islands and minimal bridging
//	bfs/        GEO traversal and connected components
//	opinion/    opinion synthesizers and domain rescaling
//	seeds/      seed selection, presets documents
//	district/   district growth and contiguity checks
//	pipeline/   YAML config, zap logging, prometheus metrics, end-to-end Generator
//
// Quick start:
//
//	cfg := pipeline.DefaultConfig()
//	gen, _ := pipeline.NewGenerator(cfg)
//	ds, _ := gen.Generate()
//	tables := ds.Tables()
//
// The frankengrid command in cmd/frankengrid runs the same pipeline from a
// YAML file.
package frankengrid
