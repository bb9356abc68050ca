// Package ped defines the central data model for pedigree handling:
// the Identifier union type ID, the raw Table abstraction with column
// selection, and the canonical immutable Pedigree with its attached
// bidirectional code map.
//
// The model, in one picture:
//
//	raw Table (any identifiers, any order)
//	    │ Columns.Resolve — pick (self, parentA, parentB)
//	    ▼
//	[]Row of ID triples ──(codec+builder)──▶ Pedigree of dense codes 1..N
//	                                            │
//	                                            └─ CodeMap / InverseMap
//
// Identifiers:
//
//   - ID is a tagged union of int64 and string values with a total order:
//     the missing marker sorts first, integers next (by value), strings
//     last (lexicographically).
//   - The zero ID is the "unknown parent" marker. Numeric zero is the
//     conventional equivalent in pedigree files; Normalize folds it into
//     the zero ID so the rest of the system has a single missing notion.
//
// Canonical Pedigree invariants (enforced by NewPedigree):
//
//   - Consecutiveness: row i carries code_self == i+1, codes are 1..N.
//   - Completeness: every known parent code has its own row.
//   - Ancestor precedence: known parent codes are strictly below the
//     offspring's code, so parents always precede offspring.
//   - Acyclicity: implied by ancestor precedence.
//
// A Pedigree is immutable after construction: accessors return copies,
// so a Pedigree may be shared freely across goroutines.
//
// Errors (sentinel, branch with errors.Is):
//
//	ErrColumnSpec   – column selector does not resolve to three usable columns.
//	ErrMixedKinds   – a selected column mixes integer and string identifiers.
//	ErrBadTable     – malformed table construction input (ragged rows, nil).
//	ErrNotCanonical – NewPedigree input violates a canonical-form invariant.
//	ErrUnknownCode  – a code outside 1..N was presented for decoding.
package ped
