package ped_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedigraph/pedigraph/ped"
)

// TestNewMemTable_RejectsRaggedRows verifies row width is enforced.
func TestNewMemTable_RejectsRaggedRows(t *testing.T) {
	_, err := ped.NewMemTable(
		[]string{"a", "b"},
		[][]ped.ID{{ped.IntID(1)}},
	)
	assert.ErrorIs(t, err, ped.ErrBadTable)

	_, err = ped.NewMemTable(nil, nil)
	assert.ErrorIs(t, err, ped.ErrBadTable)
}

// TestMemTable_CopiesInput verifies later caller mutation cannot reach
// the table.
func TestMemTable_CopiesInput(t *testing.T) {
	cols := []string{"id"}
	rows := [][]ped.ID{{ped.IntID(1)}}
	tbl, err := ped.NewMemTable(cols, rows)
	require.NoError(t, err)

	rows[0][0] = ped.IntID(99)
	cols[0] = "mutated"

	assert.Equal(t, ped.IntID(1), tbl.Cell(0, 0))
	assert.Equal(t, []string{"id"}, tbl.Columns())
}

// TestTableFromRecords_Classification covers missing tokens, integer
// detection, and string fallback.
func TestTableFromRecords_Classification(t *testing.T) {
	tbl, err := ped.TableFromRecords(
		[]string{"self", "sire", "dam"},
		[][]string{
			{"5", "NA", ""},
			{"bess", ".", "-12"},
			{"7", "unk", "5"},
		},
		"unk", // caller-declared extra missing token
	)
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())

	assert.Equal(t, ped.IntID(5), tbl.Cell(0, 0))
	assert.True(t, tbl.Cell(0, 1).IsMissing())
	assert.True(t, tbl.Cell(0, 2).IsMissing())

	assert.Equal(t, ped.StringID("bess"), tbl.Cell(1, 0))
	assert.True(t, tbl.Cell(1, 1).IsMissing())
	assert.Equal(t, ped.IntID(-12), tbl.Cell(1, 2))

	assert.True(t, tbl.Cell(2, 1).IsMissing())
	assert.Equal(t, ped.IntID(5), tbl.Cell(2, 2))
}

// TestTableFromRecords_ZeroStaysInteger verifies "0" parses as IntID(0);
// folding it into the missing marker is Normalize's job, not parsing's.
func TestTableFromRecords_ZeroStaysInteger(t *testing.T) {
	tbl, err := ped.TableFromRecords([]string{"x"}, [][]string{{"0"}})
	require.NoError(t, err)
	assert.Equal(t, ped.IntID(0), tbl.Cell(0, 0))
	assert.True(t, ped.Normalize(tbl.Cell(0, 0)).IsMissing())
}

// TestTableFromRecords_RejectsShortRecord verifies field count checks.
func TestTableFromRecords_RejectsShortRecord(t *testing.T) {
	_, err := ped.TableFromRecords(
		[]string{"a", "b"},
		[][]string{{"1", "2"}, {"3"}},
	)
	assert.ErrorIs(t, err, ped.ErrBadTable)
}
