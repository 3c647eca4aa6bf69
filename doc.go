// Package tacmap generates playable maps for grid-based tactical games:
// a seeded corridor network with named rooms placed along it, reduced to a
// binary walkable/blocked grid plus per-cell room metadata.
//
// 🚀 What is tacmap?
//
//	A small, deterministic map generation engine that brings together:
//		• Seeded randomness: a 32-bit LCG with a byte-stable output contract
//		• Corridor synthesis: random walks, star spokes, lattices, spines
//		• Room placement: guaranteed, separation-aware, retry-and-expand
//		• Orchestration: carve, trim to content, export cell metadata
//
// ✨ Why choose tacmap?
//
//   - Reproducible – the same seed yields the same map on every machine,
//     so networked sessions can share a seed instead of a grid
//   - Total – every requested room is placed, even on pathological inputs
//   - Pure Go – synchronous, allocation-bounded, no I/O
//
// Under the hood, everything is organized leaf-first:
//
//	prng/      — deterministic linear congruential generator
//	grid/      — points, directions and the carveable {0,1} buffer
//	corridor/  — corridor topology synthesis and on-demand growth
//	placement/ — the room placement solver with force-place fallback
//	mapgen/    — the orchestrator and public facade
//
// Quick ASCII example (a star-pattern map, # solid, . carved):
//
//	######.######
//	#....... ...#
//	......*......
//	#...#.#.#...#
//	######.######
//
// Dive into examples/ for a full session dump and mapgen for the facade API.
//
//	go get github.com/katalvlaran/tacmap
package tacmap
