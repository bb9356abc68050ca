package ped

import "errors"

// Sentinel errors for the ped data model.
var (
	// ErrColumnSpec indicates the column selector did not resolve to exactly
	// three distinct, existing columns of the table.
	ErrColumnSpec = errors.New("ped: invalid column specification")

	// ErrMixedKinds indicates a selected column mixes integer and string
	// identifiers; identifier kind must be homogeneous per column.
	ErrMixedKinds = errors.New("ped: mixed identifier kinds in column")

	// ErrBadTable indicates malformed table-construction input, such as a
	// nil table, ragged rows, or rows wider than the header.
	ErrBadTable = errors.New("ped: malformed table")

	// ErrNotCanonical indicates NewPedigree received rows that violate a
	// canonical-form invariant (non-dense codes or a parent not preceding
	// its offspring).
	ErrNotCanonical = errors.New("ped: rows are not in canonical form")

	// ErrUnknownCode indicates a canonical code outside 1..N was presented
	// for decoding.
	ErrUnknownCode = errors.New("ped: unknown canonical code")
)
