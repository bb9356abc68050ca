package ped

import "fmt"

// Unknown is the canonical-code sentinel for an unknown parent. It never
// denotes an individual and never consumes a code.
const Unknown = 0

// CanonicalRow is one recoded pedigree record: dense 1-based codes, with
// Unknown (0) for an unrecorded parent.
type CanonicalRow struct {
	Self    int
	ParentA int
	ParentB int
}

// Pedigree is a canonical pedigree: N rows with Self == 1..N in order,
// every known parent strictly below its offspring's code, and the
// original-identifier mapping attached for round-tripping.
//
// A Pedigree is immutable: every accessor returns a copy, so one value
// can back any number of concurrent readers.
type Pedigree struct {
	rows []CanonicalRow
	ids  []ID       // ids[code-1] = original identifier of that code
	code map[ID]int // inverse of ids
}

// NewPedigree assembles a Pedigree from canonical rows and the original
// identifiers per code (ids[i] belongs to code i+1). The canonical-form
// invariants are verified; any violation is ErrNotCanonical with the
// offending row in the message. Inputs are copied.
func NewPedigree(rows []CanonicalRow, ids []ID) (*Pedigree, error) {
	// 1. One identifier per row, by construction of the code space.
	if len(ids) != len(rows) {
		return nil, fmt.Errorf("%w: %d rows but %d identifiers", ErrNotCanonical, len(rows), len(ids))
	}
	// 2. Row i must define code i+1 (consecutiveness) with both parents
	//    known-and-below or Unknown (completeness + ancestor precedence;
	//    acyclicity follows).
	for i, r := range rows {
		if r.Self != i+1 {
			return nil, fmt.Errorf("%w: row %d defines code %d, want %d", ErrNotCanonical, i, r.Self, i+1)
		}
		for _, p := range [2]int{r.ParentA, r.ParentB} {
			if p < Unknown || p >= r.Self {
				return nil, fmt.Errorf("%w: row %d parent code %d not below %d", ErrNotCanonical, i, p, r.Self)
			}
		}
	}
	// 3. Identifiers must be distinct (codes are a bijection).
	code := make(map[ID]int, len(ids))
	for i, id := range ids {
		if id.IsMissing() {
			return nil, fmt.Errorf("%w: code %d has no identifier", ErrNotCanonical, i+1)
		}
		if _, dup := code[id]; dup {
			return nil, fmt.Errorf("%w: identifier %s mapped to two codes", ErrNotCanonical, id)
		}
		code[id] = i + 1
	}
	return &Pedigree{
		rows: append([]CanonicalRow(nil), rows...),
		ids:  append([]ID(nil), ids...),
		code: code,
	}, nil
}

// Len returns the number of individuals N.
func (p *Pedigree) Len() int { return len(p.rows) }

// Row returns the i-th canonical row (0-based); it defines code i+1.
func (p *Pedigree) Row(i int) CanonicalRow { return p.rows[i] }

// Rows returns a copy of all canonical rows in order.
func (p *Pedigree) Rows() []CanonicalRow { return append([]CanonicalRow(nil), p.rows...) }

// CodeOf returns the canonical code of an original identifier, and false
// when the identifier was never coded.
func (p *Pedigree) CodeOf(id ID) (int, bool) {
	c, ok := p.code[id]
	return c, ok
}

// IDOf returns the original identifier behind a canonical code.
// Codes outside 1..N return ErrUnknownCode.
func (p *Pedigree) IDOf(code int) (ID, error) {
	if code < 1 || code > len(p.ids) {
		return ID{}, fmt.Errorf("%w: %d outside 1..%d", ErrUnknownCode, code, len(p.ids))
	}
	return p.ids[code-1], nil
}

// CodeMap returns a copy of the original→canonical mapping.
func (p *Pedigree) CodeMap() map[ID]int {
	m := make(map[ID]int, len(p.ids))
	for i, id := range p.ids {
		m[id] = i + 1
	}
	return m
}

// InverseMap returns a copy of the canonical→original mapping.
func (p *Pedigree) InverseMap() map[int]ID {
	m := make(map[int]ID, len(p.ids))
	for i, id := range p.ids {
		m[i+1] = id
	}
	return m
}
