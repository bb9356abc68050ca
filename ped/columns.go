package ped

import (
	"fmt"
	"strconv"
	"strings"
)

// Columns selects the three pedigree columns of a Table: (self, parentA,
// parentB), either by name or by 1-based position. The zero Columns value
// is invalid; construct via ByName, ByIndex, or ParseColumns.
type Columns struct {
	names [3]string
	idx   [3]int
	byIdx bool
	set   bool
}

// ByName selects the three pedigree columns by header name.
func ByName(self, parentA, parentB string) Columns {
	return Columns{names: [3]string{self, parentA, parentB}, set: true}
}

// ByIndex selects the three pedigree columns by 1-based position.
func ByIndex(self, parentA, parentB int) Columns {
	return Columns{idx: [3]int{self, parentA, parentB}, byIdx: true, set: true}
}

// ParseColumns turns a three-token selector into a Columns value: when all
// tokens parse as integers they are taken as 1-based positions, otherwise
// as column names. Anything but exactly three tokens is ErrColumnSpec.
func ParseColumns(tokens []string) (Columns, error) {
	if len(tokens) != 3 {
		return Columns{}, fmt.Errorf("%w: want 3 selectors, got %d", ErrColumnSpec, len(tokens))
	}
	var idx [3]int
	numeric := true
	for i, tok := range tokens {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			numeric = false
			break
		}
		idx[i] = v
	}
	if numeric {
		return ByIndex(idx[0], idx[1], idx[2]), nil
	}
	return ByName(strings.TrimSpace(tokens[0]), strings.TrimSpace(tokens[1]), strings.TrimSpace(tokens[2])), nil
}

// Resolve maps the selector onto t, returning the three 0-based column
// indices in (self, parentA, parentB) order.
//
// Resolution errors are ErrColumnSpec: unset selector, nil table, unknown
// name, ambiguous (duplicated) header name, position out of range, or two
// selectors landing on the same column. After positional resolution each
// selected column is scanned once; a column holding both integer and
// string identifiers is ErrMixedKinds.
//
// Complexity: O(C + 3·R) for C columns and R rows.
func (c Columns) Resolve(t Table) ([3]int, error) {
	var out [3]int
	// 1. Structural guards.
	if !c.set {
		return out, fmt.Errorf("%w: selector is empty", ErrColumnSpec)
	}
	if t == nil {
		return out, fmt.Errorf("%w: nil table", ErrColumnSpec)
	}
	cols := t.Columns()
	// 2. Resolve each selector to a 0-based index.
	if c.byIdx {
		for i, pos := range c.idx {
			if pos < 1 || pos > len(cols) {
				return out, fmt.Errorf("%w: position %d outside 1..%d", ErrColumnSpec, pos, len(cols))
			}
			out[i] = pos - 1
		}
	} else {
		for i, name := range c.names {
			found := -1
			for j, col := range cols {
				if col != name {
					continue
				}
				if found >= 0 {
					return out, fmt.Errorf("%w: column name %q is ambiguous", ErrColumnSpec, name)
				}
				found = j
			}
			if found < 0 {
				return out, fmt.Errorf("%w: unknown column %q", ErrColumnSpec, name)
			}
			out[i] = found
		}
	}
	// 3. The three roles must land on three distinct columns.
	if out[0] == out[1] || out[0] == out[2] || out[1] == out[2] {
		return out, fmt.Errorf("%w: selectors overlap on one column", ErrColumnSpec)
	}
	// 4. Identifier kind must be homogeneous within each selected column.
	for _, col := range out {
		if err := scanKinds(t, col, cols[col]); err != nil {
			return out, err
		}
	}
	return out, nil
}

// scanKinds rejects a column that mixes integer and string identifiers.
// Missing markers are kind-neutral and ignored.
func scanKinds(t Table, col int, name string) error {
	var sawInt, sawStr bool
	for row := 0; row < t.Len(); row++ {
		id := t.Cell(row, col)
		switch {
		case id.IsMissing():
		case id.IsInt():
			sawInt = true
		default:
			sawStr = true
		}
		if sawInt && sawStr {
			return fmt.Errorf("%w: column %q", ErrMixedKinds, name)
		}
	}
	return nil
}

// Extract resolves the selector and materializes the raw rows of t in
// table order, with missing-parent sentinels normalized (numeric zero and
// the missing marker collapse to one notion). The self cell is normalized
// too; deciding whether a missing self is an error is the caller's policy.
func (c Columns) Extract(t Table) ([]Row, error) {
	idx, err := c.Resolve(t)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, t.Len())
	for i := range rows {
		rows[i] = Row{
			Self:    Normalize(t.Cell(i, idx[0])),
			ParentA: Normalize(t.Cell(i, idx[1])),
			ParentB: Normalize(t.Cell(i, idx[2])),
		}
	}
	return rows, nil
}
