package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/pedigraph/pedigraph/builder"
	"github.com/pedigraph/pedigraph/ped"
)

// ErrNilPedigree indicates a nil pedigree was handed to the boundary.
var ErrNilPedigree = errors.New("solver: nil pedigree")

// View is the read-only pedigree surface consumed by the external
// collaborator: N canonical triples, 1-indexed, consecutive, with every
// parent preceding its offspring. A View never exposes the code map.
type View struct {
	triples [][3]int
}

// ToExternal projects a canonical pedigree onto its solver view.
func ToExternal(p *ped.Pedigree) (*View, error) {
	if p == nil {
		return nil, ErrNilPedigree
	}
	v := &View{triples: make([][3]int, p.Len())}
	for i, r := range p.Rows() {
		v.triples[i] = [3]int{r.Self, r.ParentA, r.ParentB}
	}
	return v, nil
}

// Len returns the number of individuals N.
func (v *View) Len() int { return len(v.triples) }

// Triple returns the i-th canonical triple (0-based row order).
func (v *View) Triple(i int) [3]int { return v.triples[i] }

// Triples returns a copy of all triples in row order.
func (v *View) Triples() [][3]int {
	out := make([][3]int, len(v.triples))
	copy(out, v.triples)
	return out
}

// Solver models the external relationship-matrix/REML collaborator: one
// opaque, potentially long-running synchronous call that accepts the
// prepared pedigree view and returns per-individual results keyed by
// canonical code. Implementations must honor ctx cancellation; the
// adapter adds no retries and surfaces every failure unchanged.
type Solver interface {
	Fit(ctx context.Context, view *View) (map[int]float64, error)
}

// Decode rekeys solver output from canonical codes to the original
// identifiers through the pedigree's inverse code map. Values ride along
// untouched, so any attached metadata type survives the translation.
// A key outside 1..N is ped.ErrUnknownCode.
func Decode[V any](p *ped.Pedigree, byCode map[int]V) (map[ped.ID]V, error) {
	if p == nil {
		return nil, ErrNilPedigree
	}
	out := make(map[ped.ID]V, len(byCode))
	for code, v := range byCode {
		id, err := p.IDOf(code)
		if err != nil {
			return nil, fmt.Errorf("decode result: %w", err)
		}
		out[id] = v
	}
	return out, nil
}

// Fit runs one full pipeline — canonicalize the table, invoke the
// external solver, decode its output — and returns results keyed by the
// caller's original identifiers. Each call owns its Pedigree exclusively;
// run independent Fit calls concurrently for bootstrap or grid workloads.
func Fit(ctx context.Context, s Solver, t ped.Table, cols ped.Columns, opts ...builder.Option) (map[ped.ID]float64, error) {
	p, err := builder.Build(t, cols, opts...)
	if err != nil {
		return nil, err
	}
	view, err := ToExternal(p)
	if err != nil {
		return nil, err
	}
	byCode, err := s.Fit(ctx, view)
	if err != nil {
		return nil, err
	}
	return Decode(p, byCode)
}
