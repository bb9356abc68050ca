// Package check evaluates the four structural properties a pedigree
// table must satisfy before it can feed a relationship-matrix builder,
// and reports each one independently as a boolean.
//
// The checker is advisory and maximally permissive: it never mutates its
// input and never fails on malformed pedigree data — a broken property is
// reported as false, not raised — so a caller can diagnose a table before
// deciding to repair (builder.Build) or reject it. The only failures are
// structural input problems: a column selector that does not resolve
// (ped.ErrColumnSpec) or a selected column of mixed identifier kinds
// (ped.ErrMixedKinds).
//
// The four properties, each computed over the raw, uncoded table:
//
//	Consecutive      the deduplicated identifier union is exactly the
//	                 dense integer range 1..N (integer identifiers; a
//	                 symbolic pedigree is consecutive by position).
//	Complete         every known parent also has a row of its own.
//	AncestorsPrecede every known parent's row comes before every row of
//	                 its offspring.
//	Sorted           the self column is non-decreasing.
//
// All four hold on every output of builder.Build.
package check
