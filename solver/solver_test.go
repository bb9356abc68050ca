package solver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedigraph/pedigraph/builder"
	"github.com/pedigraph/pedigraph/ped"
	"github.com/pedigraph/pedigraph/solver"
)

// shifted returns the 5/6/7 fixture pedigree (codes 1..3).
func shifted(t *testing.T) *ped.Pedigree {
	t.Helper()
	tbl, err := ped.TableFromRecords(
		[]string{"self", "parent_a", "parent_b"},
		[][]string{
			{"5", "0", "0"},
			{"6", "5", "0"},
			{"7", "5", "6"},
		},
	)
	require.NoError(t, err)
	p, err := builder.Build(tbl, ped.ByIndex(1, 2, 3))
	require.NoError(t, err)
	return p
}

// TestToExternal_Contract verifies the solver-facing triples: 1-indexed,
// consecutive, parents before offspring.
func TestToExternal_Contract(t *testing.T) {
	v, err := solver.ToExternal(shifted(t))
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())

	want := [][3]int{{1, 0, 0}, {2, 1, 0}, {3, 1, 2}}
	assert.Equal(t, want, v.Triples())
	for i := 0; i < v.Len(); i++ {
		tr := v.Triple(i)
		assert.Equal(t, i+1, tr[0])
		assert.Less(t, tr[1], tr[0])
		assert.Less(t, tr[2], tr[0])
	}
}

// TestToExternal_NilPedigree guards the boundary.
func TestToExternal_NilPedigree(t *testing.T) {
	_, err := solver.ToExternal(nil)
	assert.ErrorIs(t, err, solver.ErrNilPedigree)
}

// TestView_TriplesIsACopy verifies callers cannot reach the view's rows.
func TestView_TriplesIsACopy(t *testing.T) {
	v, err := solver.ToExternal(shifted(t))
	require.NoError(t, err)
	got := v.Triples()
	got[0][0] = 99
	assert.Equal(t, [3]int{1, 0, 0}, v.Triple(0))
}

// TestDecode_RekeysByOriginalIdentifier: {2: 0.37} against the 5/6/7 map
// becomes {6: 0.37}; attached values survive untouched.
func TestDecode_RekeysByOriginalIdentifier(t *testing.T) {
	p := shifted(t)

	got, err := solver.Decode(p, map[int]float64{2: 0.37})
	require.NoError(t, err)
	assert.Equal(t, map[ped.ID]float64{ped.IntID(6): 0.37}, got)

	// Metadata-bearing values pass through by value, unchanged.
	type estimate struct {
		Value  float64
		StdErr float64
	}
	rich, err := solver.Decode(p, map[int]estimate{
		1: {Value: 1.2, StdErr: 0.3},
		3: {Value: 0.9, StdErr: 0.1},
	})
	require.NoError(t, err)
	assert.Equal(t, map[ped.ID]estimate{
		ped.IntID(5): {Value: 1.2, StdErr: 0.3},
		ped.IntID(7): {Value: 0.9, StdErr: 0.1},
	}, rich)
}

// TestDecode_UnknownCode rejects result keys outside 1..N.
func TestDecode_UnknownCode(t *testing.T) {
	p := shifted(t)
	for _, code := range []int{0, 4, -1} {
		_, err := solver.Decode(p, map[int]float64{code: 1})
		assert.ErrorIs(t, err, ped.ErrUnknownCode)
	}
	_, err := solver.Decode[float64](nil, nil)
	assert.ErrorIs(t, err, solver.ErrNilPedigree)
}

// fakeSolver returns one result per individual, or its configured error.
type fakeSolver struct {
	err  error
	seen *solver.View
}

func (f *fakeSolver) Fit(ctx context.Context, view *solver.View) (map[int]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	f.seen = view
	out := make(map[int]float64, view.Len())
	for i := 0; i < view.Len(); i++ {
		out[view.Triple(i)[0]] = float64(i)
	}
	return out, nil
}

// TestFit_Pipeline runs build→fit→decode end to end.
func TestFit_Pipeline(t *testing.T) {
	tbl, err := ped.TableFromRecords(
		[]string{"self", "parent_a", "parent_b"},
		[][]string{
			{"7", "5", "6"},
			{"5", "0", "0"},
			{"6", "5", "0"},
		},
	)
	require.NoError(t, err)

	fs := &fakeSolver{}
	got, err := solver.Fit(context.Background(), fs, tbl, ped.ByIndex(1, 2, 3))
	require.NoError(t, err)

	// The solver saw the canonical contract...
	require.NotNil(t, fs.seen)
	assert.Equal(t, [][3]int{{1, 0, 0}, {2, 1, 0}, {3, 1, 2}}, fs.seen.Triples())
	// ...and the caller got original identifiers back.
	assert.Equal(t, map[ped.ID]float64{
		ped.IntID(5): 0, ped.IntID(6): 1, ped.IntID(7): 2,
	}, got)
}

// TestFit_SurfacesFailures: solver and build errors pass through unmasked.
func TestFit_SurfacesFailures(t *testing.T) {
	tbl, err := ped.TableFromRecords(
		[]string{"self", "parent_a", "parent_b"},
		[][]string{{"1", "0", "0"}},
	)
	require.NoError(t, err)

	boom := errors.New("solver exploded")
	_, err = solver.Fit(context.Background(), &fakeSolver{err: boom}, tbl, ped.ByIndex(1, 2, 3))
	assert.ErrorIs(t, err, boom)

	_, err = solver.Fit(context.Background(), &fakeSolver{}, tbl, ped.ByIndex(1, 2, 9))
	assert.ErrorIs(t, err, ped.ErrColumnSpec)
}

// TestFit_ContextCancellation: a dead context reaches the collaborator
// and its refusal is surfaced, not retried.
func TestFit_ContextCancellation(t *testing.T) {
	tbl, err := ped.TableFromRecords(
		[]string{"self", "parent_a", "parent_b"},
		[][]string{{"1", "0", "0"}},
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = solver.Fit(ctx, &fakeSolver{}, tbl, ped.ByIndex(1, 2, 3))
	assert.ErrorIs(t, err, context.Canceled)
}
