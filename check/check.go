package check

import (
	"sort"

	"github.com/pedigraph/pedigraph/ped"
)

// Report carries the four independent structural verdicts for one table.
// Each field is computed unconditionally; no verdict depends on another.
type Report struct {
	// Consecutive: the identifier union forms the dense range 1..N.
	Consecutive bool
	// Complete: every known parent appears as a self somewhere.
	Complete bool
	// AncestorsPrecede: each known parent's row index is strictly below
	// the row index of every offspring referencing it.
	AncestorsPrecede bool
	// Sorted: the self column is non-decreasing under the natural order.
	Sorted bool
}

// Canonical reports whether all four properties hold.
func (r Report) Canonical() bool {
	return r.Consecutive && r.Complete && r.AncestorsPrecede && r.Sorted
}

// Pedigree evaluates the four structural properties of the pedigree held
// in t under the given column selection. The table is never mutated; the
// only errors are selector-resolution failures (ped.ErrColumnSpec,
// ped.ErrMixedKinds).
//
// Complexity: O(R log R) for R rows (dominated by the consecutiveness
// sort), O(R) memory.
func Pedigree(t ped.Table, cols ped.Columns) (Report, error) {
	rows, err := cols.Extract(t)
	if err != nil {
		return Report{}, err
	}
	return rows2report(rows), nil
}

// rows2report computes the four verdicts over normalized raw rows.
func rows2report(rows []ped.Row) Report {
	// 1. Index the first defining row of every self identifier.
	selfAt := make(map[ped.ID]int, len(rows))
	for i, r := range rows {
		if r.Self.IsMissing() {
			continue
		}
		if _, dup := selfAt[r.Self]; !dup {
			selfAt[r.Self] = i
		}
	}

	rep := Report{Consecutive: true, Complete: true, AncestorsPrecede: true, Sorted: true}

	// 2. Single pass for Complete, AncestorsPrecede and Sorted.
	for i, r := range rows {
		for _, p := range [2]ped.ID{r.ParentA, r.ParentB} {
			if p.IsMissing() {
				continue
			}
			j, defined := selfAt[p]
			if !defined {
				rep.Complete = false
				continue
			}
			// Strict precedence; a self-parent row (j == i) breaks it too.
			if j >= i {
				rep.AncestorsPrecede = false
			}
		}
		if i > 0 && rows[i-1].Self.Compare(r.Self) > 0 {
			rep.Sorted = false
		}
	}

	// 3. Consecutiveness over the union of all identifiers.
	rep.Consecutive = consecutive(rows)
	return rep
}

// consecutive reports whether the deduplicated union of all identifiers
// (selves and known parents) is exactly the integer range 1..N. A union
// containing any symbolic identifier is consecutive relative to position
// indices, hence trivially true; the property only bites once coded.
func consecutive(rows []ped.Row) bool {
	seen := make(map[ped.ID]struct{}, len(rows))
	var vals []int64
	for _, r := range rows {
		for _, id := range [3]ped.ID{r.Self, r.ParentA, r.ParentB} {
			if id.IsMissing() {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			v, isInt := id.Int()
			if !isInt {
				return true
			}
			vals = append(vals, v)
		}
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	for i, v := range vals {
		if v != int64(i)+1 {
			return false
		}
	}
	return true
}
