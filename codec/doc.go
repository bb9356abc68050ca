// Package codec assigns dense canonical integer codes 1..N to an
// arbitrary set of pedigree identifiers and translates in both
// directions.
//
// A Codec is built once over the full identifier set — the individuals
// defined in the table plus any ancestors referenced only as parents —
// and is immutable and pure afterwards: Encode and Decode have no side
// effects, and decode(encode(x)) == x for every coded x.
//
// Assignment policies:
//
//	PolicySorted     codes follow the ascending natural identifier order
//	                 (default; appropriate when identifier order already
//	                 tracks generation order, e.g. numeric animal IDs).
//	PolicyAppearance codes follow first-occurrence order in the input.
//
// The missing marker is never coded: it encodes to 0 and 0 decodes back
// to it, matching the unknown-parent convention of canonical pedigrees.
//
// Errors (sentinel):
//
//	ErrDuplicateDefinition – the same identifier is defined twice.
//	ErrUnknownID           – Encode of an identifier outside the coded set.
//	ped.ErrUnknownCode     – Decode of a code outside 1..N.
package codec
