// SPDX-License-Identifier: MIT
// Package: pedigraph/builder
//
// errors.go — sentinel errors for pedigree canonicalization.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Sentinels never embed parameters; context is attached via %w at the
//     failure site (row numbers, identifiers).
//   • Build never panics at runtime; option-constructor validation panics
//     are the only permitted panics in this package.

package builder

import "errors"

// ErrMissingSelf indicates a data row whose individual column is the
// missing marker (or the numeric-zero sentinel): a pedigree row must
// define somebody.
// Usage: if errors.Is(err, ErrMissingSelf) { /* drop or fix the row */ }.
var ErrMissingSelf = errors.New("builder: row defines no individual")

// ErrCycle indicates the pedigree relation is cyclic — some individual is
// its own ancestor — so no parent-before-offspring ordering exists.
// Usage: if errors.Is(err, ErrCycle) { /* reject the table */ }.
var ErrCycle = errors.New("builder: pedigree contains a cycle")

// ErrInvariantViolation indicates Build produced rows that fail its own
// canonical-form validation. This is an internal defect (a bug in the
// builder), not a user error, and should be unreachable.
var ErrInvariantViolation = errors.New("builder: internal canonical-form violation")
