// Package seeds selects the K seed nodes districts grow from.
//
// Selectors:
//
//   - Spaced: rejection sampling under a minimum Manhattan distance, bounded
//     by WithMaxTries (default 10000); failure is an *InfeasibilityError.
//   - SanitizeAndBackfill: keeps the valid, unique prefix of a preset list and
//     completes it by farthest-point sampling.
//   - Coarse: evenly spaced candidates over the bounding box, then backfill.
//
// Presets documents (YAML) group coordinate lists by "<grid>:<run>" keys.
//
// Every selector returns exactly k unique node ids or an error. Ids index the
// graph; coordinates are compared after half-to-even rounding.
package seeds
