// Package solver is the thin boundary between a canonical ped.Pedigree
// and the external relationship-matrix/REML collaborator.
//
// Outbound, ToExternal exposes the pedigree as a read-only sequence of
// canonical integer triples (self, parentA-or-0, parentB-or-0) —
// 1-indexed, consecutive, parent-before-offspring — which is the exact
// contract relationship-matrix and REML programs require. Inbound,
// Decode translates per-individual solver output keyed by canonical code
// back into the caller's original identifiers via the pedigree's inverse
// code map, carrying the values through untouched.
//
// The collaborator itself is opaque: Solver models it as a single
// potentially long-running synchronous call. Cancellation and timeout
// travel through the context; the adapter performs no retries and masks
// no failures. Callers parallelize by running independent
// build→fit→decode pipelines, one per goroutine, each over its own
// immutable Pedigree (Fit wraps one such pipeline).
//
// Errors (sentinel):
//
//	ErrNilPedigree     – a nil pedigree reached the boundary.
//	ped.ErrUnknownCode – a result key outside 1..N during Decode.
package solver
