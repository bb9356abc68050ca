package ped

import (
	"fmt"
	"strconv"
)

// Row is one raw pedigree record: an individual and its two parents, any
// of which may be the missing marker (parents only, in valid data).
// ParentA and ParentB are positional ("column 2" and "column 3"); their
// order carries no relationship meaning and is never swapped.
type Row struct {
	Self    ID
	ParentA ID
	ParentB ID
}

// Table is the minimal tabular input contract: named columns, a row
// count, and cell access. Any columnar source (CSV records, a data-frame
// binding, fixture literals) can satisfy it.
//
// Cell must be total for 0 <= row < Len() and 0 <= col < len(Columns());
// behavior outside that range is unspecified.
type Table interface {
	// Columns returns the column names, left to right.
	Columns() []string
	// Len returns the number of data rows.
	Len() int
	// Cell returns the identifier at (row, col).
	Cell(row, col int) ID
}

// MemTable is an in-memory row-major Table.
type MemTable struct {
	cols  []string
	cells [][]ID
}

// NewMemTable builds a Table over the given header and row-major cells.
// Every row must have exactly len(cols) cells; violations return
// ErrBadTable.
func NewMemTable(cols []string, rows [][]ID) (*MemTable, error) {
	// 1. A table needs at least one column to be addressable.
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrBadTable)
	}
	// 2. Reject ragged rows up front; Cell stays total afterwards.
	for i, r := range rows {
		if len(r) != len(cols) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadTable, i, len(r), len(cols))
		}
	}
	// 3. Copy both levels so later caller mutation cannot reach us.
	t := &MemTable{
		cols:  append([]string(nil), cols...),
		cells: make([][]ID, len(rows)),
	}
	for i, r := range rows {
		t.cells[i] = append([]ID(nil), r...)
	}
	return t, nil
}

// Columns returns a copy of the column names.
func (t *MemTable) Columns() []string { return append([]string(nil), t.cols...) }

// Len returns the number of data rows.
func (t *MemTable) Len() int { return len(t.cells) }

// Cell returns the identifier at (row, col).
func (t *MemTable) Cell(row, col int) ID { return t.cells[row][col] }

// TableFromRecords adapts a string matrix (e.g. parsed CSV records) into a
// MemTable. Each cell is classified once:
//
//   - a cell equal to one of the missing tokens becomes the missing marker
//     (defaults: "", "NA", "."; extra tokens extend the set);
//   - a cell parseable as a base-10 integer becomes an integer identifier
//     (so "0" stays IntID(0) until Normalize runs in a parent position);
//   - anything else becomes a string identifier.
//
// Rows longer or shorter than the header return ErrBadTable.
func TableFromRecords(header []string, records [][]string, missing ...string) (*MemTable, error) {
	// 1. Build the missing-token set: defaults plus caller extras.
	na := map[string]struct{}{"": {}, "NA": {}, ".": {}}
	for _, tok := range missing {
		na[tok] = struct{}{}
	}
	// 2. Classify every cell.
	rows := make([][]ID, len(records))
	for i, rec := range records {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("%w: record %d has %d fields, want %d", ErrBadTable, i, len(rec), len(header))
		}
		cells := make([]ID, len(rec))
		for j, cell := range rec {
			if _, ok := na[cell]; ok {
				cells[j] = MissingID()
				continue
			}
			if v, err := strconv.ParseInt(cell, 10, 64); err == nil {
				cells[j] = IntID(v)
				continue
			}
			cells[j] = StringID(cell)
		}
		rows[i] = cells
	}
	return NewMemTable(header, rows)
}
