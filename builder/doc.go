// Package builder turns an arbitrary raw pedigree table into the
// canonical form required by relationship-matrix and REML programs:
// dense 1..N codes, a synthetic founder row for every ancestor that had
// no row of its own, and every parent strictly preceding its offspring.
//
// Build is strict about structural input problems and silent about
// everything it can repair:
//
//   - raised: unresolvable column selectors (ped.ErrColumnSpec,
//     ped.ErrMixedKinds), duplicate individual definitions
//     (codec.ErrDuplicateDefinition), a row with no individual
//     (ErrMissingSelf), and a pedigree cycle (ErrCycle);
//   - repaired: shuffled or non-contiguous identifiers, offspring listed
//     before parents, ancestors referenced but never defined, and the
//     0-vs-missing parent convention.
//
// Ordering guarantee: codes are first assigned by the codec policy and
// rows sorted by code. When the identifier order already respects
// generation order — the common case for numeric animal IDs — that sort
// alone yields ancestor precedence. When it does not, Build falls back to
// an explicit deterministic topological sort (smallest ready code first)
// and reassigns codes by topological position, so the output is canonical
// for every acyclic input.
//
// The returned ped.Pedigree is immutable and carries the bidirectional
// code map; Build(build-output) is the identity up to that map.
package builder
