// SPDX-License-Identifier: MIT
// Package: pedigraph/builder
//
// topo.go — deterministic topological re-coding for pedigrees whose
// identifier order disagrees with generation order.
//
// Kahn's algorithm over the parent→offspring relation, with a min-heap
// frontier keyed by the provisional code so the result is deterministic
// and stays as close to the codec's order as precedence allows.
//
// Complexity:
//
//   - Time:   O(N log N)  (each code pushed/popped once, heap ops log N)
//   - Memory: O(N)        (adjacency, indegrees, heap)

package builder

import (
	"container/heap"
	"fmt"

	"github.com/pedigraph/pedigraph/ped"
)

// codeHeap is a min-heap of provisional codes for the Kahn frontier.
type codeHeap []int

func (h codeHeap) Len() int            { return len(h) }
func (h codeHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h codeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *codeHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *codeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// topoRecode reorders rows (indexed by provisional code-1) so that every
// parent precedes its offspring, then reassigns codes by position. It
// returns the recoded rows plus perm, where perm[finalCode-1] is the
// provisional code that final code replaced. An unfinished ordering means
// the parent relation is cyclic: ErrCycle.
func topoRecode(rows []ped.CanonicalRow) ([]ped.CanonicalRow, []int, error) {
	n := len(rows)
	// 1. Build offspring adjacency and indegrees over codes 1..N.
	children := make([][]int, n+1)
	indeg := make([]int, n+1)
	for _, r := range rows {
		for _, p := range [2]int{r.ParentA, r.ParentB} {
			if p == ped.Unknown {
				continue
			}
			children[p] = append(children[p], r.Self)
			indeg[r.Self]++
		}
	}
	// 2. Seed the frontier with every founder, smallest code first.
	frontier := &codeHeap{}
	heap.Init(frontier)
	for c := 1; c <= n; c++ {
		if indeg[c] == 0 {
			heap.Push(frontier, c)
		}
	}
	// 3. Drain: each pop fixes the next final code.
	perm := make([]int, 0, n)
	for frontier.Len() > 0 {
		c := heap.Pop(frontier).(int)
		perm = append(perm, c)
		for _, child := range children[c] {
			indeg[child]--
			if indeg[child] == 0 {
				heap.Push(frontier, child)
			}
		}
	}
	// 4. Codes never reached have an ancestor loop above them.
	if len(perm) != n {
		return nil, nil, fmt.Errorf("%w: %d of %d individuals unreachable from founders", ErrCycle, n-len(perm), n)
	}
	// 5. Reassign codes by topological position and remap every row.
	final := make([]int, n+1) // provisional code → final code
	for pos, c := range perm {
		final[c] = pos + 1
	}
	out := make([]ped.CanonicalRow, n)
	remap := func(c int) int {
		if c == ped.Unknown {
			return ped.Unknown
		}
		return final[c]
	}
	for _, r := range rows {
		out[final[r.Self]-1] = ped.CanonicalRow{
			Self:    final[r.Self],
			ParentA: remap(r.ParentA),
			ParentB: remap(r.ParentB),
		}
	}
	return out, perm, nil
}
