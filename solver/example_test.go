package solver_test

import (
	"context"
	"fmt"

	"github.com/pedigraph/pedigraph/builder"
	"github.com/pedigraph/pedigraph/ped"
	"github.com/pedigraph/pedigraph/solver"
)

// heritability is a stand-in for the external REML program: it returns a
// fake per-individual estimate keyed by canonical code.
type heritability struct{}

func (heritability) Fit(_ context.Context, view *solver.View) (map[int]float64, error) {
	out := make(map[int]float64, view.Len())
	for i := 0; i < view.Len(); i++ {
		out[view.Triple(i)[0]] = 0.25
	}
	return out, nil
}

// ExampleDecode shows the round trip: solver results keyed by canonical
// code come back keyed by the caller's original identifiers.
func ExampleDecode() {
	table, _ := ped.TableFromRecords(
		[]string{"animal", "sire", "dam"},
		[][]string{
			{"5", "0", "0"},
			{"6", "5", "0"},
			{"7", "5", "6"},
		},
	)
	p, _ := builder.Build(table, ped.ByName("animal", "sire", "dam"))

	byID, _ := solver.Decode(p, map[int]float64{2: 0.37})
	fmt.Println(byID[ped.IntID(6)])

	// Output:
	// 0.37
}

// ExampleFit runs one full pipeline against a collaborator.
func ExampleFit() {
	table, _ := ped.TableFromRecords(
		[]string{"animal", "sire", "dam"},
		[][]string{
			{"6", "5", "0"},
			{"5", "0", "0"},
		},
	)

	byID, err := solver.Fit(context.Background(), heritability{}, table, ped.ByName("animal", "sire", "dam"))
	if err != nil {
		fmt.Println("fit:", err)
		return
	}
	fmt.Println(byID[ped.IntID(5)], byID[ped.IntID(6)])

	// Output:
	// 0.25 0.25
}
