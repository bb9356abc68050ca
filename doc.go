// Package pedigraph prepares multi-generational parent/offspring pedigrees
// for genetic mixed-model estimation — validate, repair, and recode any
// pedigree table into the canonical form a relationship-matrix/REML solver
// requires.
//
// 🧬 What is pedigraph?
//
//	A small, deterministic library that brings together:
//		• Permissive identifiers: numeric or symbolic, shuffled, non-contiguous
//		• Structural diagnosis: four independent pedigree properties as booleans
//		• Canonicalization: dense 1..N codes, founders synthesized, parents first
//		• Reversible coding: a bidirectional code map rides on every Pedigree
//		• Solver boundary: read-only integer views in, decoded results out
//
// ✨ Why choose pedigraph?
//
//   - Advisory checking – diagnose a broken pedigree without mutating it
//   - Silent repair – ordering, coding and completeness fixed automatically
//   - Deterministic – no globals, no randomness, same input → same Pedigree
//   - Concurrent by construction – immutable outputs, one pipeline per goroutine
//
// Everything is organized under five subpackages:
//
//	ped/     — identifier union type, raw table abstraction, canonical Pedigree
//	codec/   — dense 1..N identity coding with selectable assignment policies
//	check/   — the four-property structural checker (pure, never mutates)
//	builder/ — raw table → canonical Pedigree orchestration and repair
//	solver/  — adapter toward the external relationship-matrix/REML collaborator
//
// Quick ASCII example:
//
//	    5 ──┐
//	        ├── 7        raw rows (5,·,·) (6,5,·) (7,5,6)
//	    6 ──┘            recode to (1,0,0) (2,1,0) (3,1,2)
//
//	individuals 5,6,7 become codes 1,2,3; the code map {5:1, 6:2, 7:3}
//	translates solver output back into the original identifiers.
//
//	go get github.com/pedigraph/pedigraph
package pedigraph
