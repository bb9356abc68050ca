// SPDX-License-Identifier: MIT
// Package: pedigraph/builder
//
// build.go — the canonicalization pipeline.

package builder

import (
	"fmt"

	"github.com/pedigraph/pedigraph/check"
	"github.com/pedigraph/pedigraph/codec"
	"github.com/pedigraph/pedigraph/ped"
)

// Build canonicalizes the pedigree held in t under the given column
// selection and returns the immutable result with its code map attached.
// See the package documentation for the raised-vs-repaired split.
//
// Complexity: O(R log R) for R individuals (codec sort, or the heap of
// the topological fallback); O(R) memory.
func Build(t ped.Table, cols ped.Columns, opts ...Option) (*ped.Pedigree, error) {
	// 1. Resolve options.
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Resolve the selector and extract normalized raw rows; missing
	//    sentinels (numeric 0, explicit NA) are already folded here.
	rows, err := cols.Extract(t)
	if err != nil {
		return nil, err
	}

	// 3. Every row must define an individual.
	for i, r := range rows {
		if r.Self.IsMissing() {
			return nil, fmt.Errorf("%w: row %d", ErrMissingSelf, i+1)
		}
	}

	// 4. Collect selves in table order and ancestors referenced only as
	//    parents, in first-reference order. The codec rejects duplicate
	//    self definitions.
	selves := make([]ped.ID, len(rows))
	defined := make(map[ped.ID]struct{}, len(rows))
	for i, r := range rows {
		selves[i] = r.Self
		defined[r.Self] = struct{}{}
	}
	var founders []ped.ID
	seen := make(map[ped.ID]struct{})
	for _, r := range rows {
		for _, p := range [2]ped.ID{r.ParentA, r.ParentB} {
			if p.IsMissing() {
				continue
			}
			if _, ok := defined[p]; ok {
				continue
			}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			founders = append(founders, p)
		}
	}

	cd, err := codec.New(selves, founders, codec.WithPolicy(o.policy))
	if err != nil {
		return nil, err
	}

	// 5. Recode every row, prepending a synthetic founder row (both
	//    parents unknown) for each parent-only ancestor, then slot each
	//    row at its code: codes are dense and each defines exactly one
	//    row, so slotting doubles as the sort by ascending code.
	n := cd.Len()
	byCode := make([]ped.CanonicalRow, n)
	full := make([]ped.Row, 0, n)
	for _, id := range founders {
		full = append(full, ped.Row{Self: id})
	}
	full = append(full, rows...)
	for _, r := range full {
		cr, encErr := encodeRow(cd, r)
		if encErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvariantViolation, encErr)
		}
		byCode[cr.Self-1] = cr
	}

	// 6. Ancestor precedence holds iff every parent code is below its
	//    offspring's code. If identifier order disagreed with generation
	//    order, repair with an explicit topological re-coding; perm maps
	//    each final code back to the codec's original code.
	perm := make([]int, n) // perm[finalCode-1] = codec code
	for i := range perm {
		perm[i] = i + 1
	}
	if !parentsBelow(byCode) {
		if byCode, perm, err = topoRecode(byCode); err != nil {
			return nil, err
		}
	}

	// 7. Recover the identifier behind each final code via perm.
	ids := make([]ped.ID, n)
	for i := range ids {
		id, decErr := cd.Decode(perm[i])
		if decErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvariantViolation, decErr)
		}
		ids[i] = id
	}

	// 8. Freeze, then self-validate through the checker: all four
	//    properties must hold on our own output.
	p, err := ped.NewPedigree(byCode, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}
	if err = selfCheck(p); err != nil {
		return nil, err
	}
	return p, nil
}

// encodeRow recodes one raw row through the codec.
func encodeRow(cd *codec.Codec, r ped.Row) (ped.CanonicalRow, error) {
	var cr ped.CanonicalRow
	var err error
	if cr.Self, err = cd.Encode(r.Self); err != nil {
		return cr, err
	}
	if cr.ParentA, err = cd.Encode(r.ParentA); err != nil {
		return cr, err
	}
	cr.ParentB, err = cd.Encode(r.ParentB)
	return cr, err
}

// parentsBelow reports whether every known parent code is strictly below
// its offspring's code, i.e. sort-by-code already yields precedence.
func parentsBelow(rows []ped.CanonicalRow) bool {
	for _, r := range rows {
		if r.ParentA >= r.Self || r.ParentB >= r.Self {
			return false
		}
	}
	return true
}

// selfCheck replays the four-property checker over the finished pedigree.
// Any false verdict is a builder defect, not a user error.
func selfCheck(p *ped.Pedigree) error {
	rows := make([][]ped.ID, p.Len())
	for i, r := range p.Rows() {
		rows[i] = []ped.ID{ped.IntID(int64(r.Self)), ped.IntID(int64(r.ParentA)), ped.IntID(int64(r.ParentB))}
	}
	view, err := ped.NewMemTable([]string{"self", "parent_a", "parent_b"}, rows)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}
	rep, err := check.Pedigree(view, ped.ByIndex(1, 2, 3))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}
	if !rep.Canonical() {
		return fmt.Errorf("%w: check reports %+v", ErrInvariantViolation, rep)
	}
	return nil
}
