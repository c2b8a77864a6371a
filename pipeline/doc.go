// Package pipeline wires the frankengrid stages into one reproducible run.
//
// A YAML Config selects the lattice (full grid or land mask), the SOCIAL
// attachment count, the opinion mode, the seed strategy and district options.
// Generator.Generate then runs
//
//	graph → social → opinion → seeds → districts
//
// giving each stochastic stage its own stream derived from Config.Seed with
// core.DeriveSeed, so that changing one stage's parameters never shifts the
// draws of another. Per-stage seeds may be pinned in the config.
//
// This is the only package that logs (zap) or records metrics (prometheus).
// Metrics are registered on a caller-supplied Registerer.
package pipeline
