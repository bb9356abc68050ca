package ped

import "strconv"

// idKind discriminates the union arms of ID.
type idKind uint8

const (
	kindMissing idKind = iota // zero value: the unknown/missing marker
	kindInt                   // int64 identifier
	kindString                // string identifier
)

// ID is an opaque individual identifier: either an integer, a string, or
// the missing marker. The zero ID is the missing marker.
//
// ID is a small comparable value type; it is safe to copy and to use as a
// map key.
type ID struct {
	k idKind
	n int64
	s string
}

// IntID returns an integer identifier. IntID(0) is a valid identifier for
// a self column; Normalize folds it into the missing marker for parent
// positions, per the pedigree-file convention that 0 means "unknown".
func IntID(v int64) ID { return ID{k: kindInt, n: v} }

// StringID returns a string identifier. The empty string maps to the
// missing marker.
func StringID(s string) ID {
	if s == "" {
		return ID{}
	}
	return ID{k: kindString, s: s}
}

// MissingID returns the missing/unknown marker (the zero ID).
func MissingID() ID { return ID{} }

// IsMissing reports whether id is the missing marker.
func (id ID) IsMissing() bool { return id.k == kindMissing }

// IsInt reports whether id is an integer identifier.
func (id ID) IsInt() bool { return id.k == kindInt }

// Int returns the integer value and true when id is an integer identifier.
func (id ID) Int() (int64, bool) {
	if id.k != kindInt {
		return 0, false
	}
	return id.n, true
}

// String renders the identifier for display: integers in decimal, strings
// verbatim, the missing marker as "NA".
func (id ID) String() string {
	switch id.k {
	case kindInt:
		return strconv.FormatInt(id.n, 10)
	case kindString:
		return id.s
	default:
		return "NA"
	}
}

// Compare imposes the total order used by the sort-order coding policy:
// missing < integers < strings; integers by value, strings lexicographic.
// It returns -1, 0 or +1.
func (id ID) Compare(other ID) int {
	// 1. Different kinds order by kind rank (missing < int < string).
	if id.k != other.k {
		if id.k < other.k {
			return -1
		}
		return 1
	}
	// 2. Same kind: compare payloads.
	switch id.k {
	case kindInt:
		switch {
		case id.n < other.n:
			return -1
		case id.n > other.n:
			return 1
		}
	case kindString:
		switch {
		case id.s < other.s:
			return -1
		case id.s > other.s:
			return 1
		}
	}
	return 0
}

// Less reports whether id orders strictly before other under Compare.
func (id ID) Less(other ID) bool { return id.Compare(other) < 0 }

// Normalize folds the conventional numeric-zero sentinel into the missing
// marker, so "0" and "not recorded" are one notion downstream. All other
// identifiers pass through unchanged.
func Normalize(id ID) ID {
	if id.k == kindInt && id.n == 0 {
		return ID{}
	}
	return id
}
