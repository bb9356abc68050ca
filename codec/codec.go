// SPDX-License-Identifier: MIT
// Package: pedigraph/codec
//
// codec.go — Codec construction and the Encode/Decode pair.

package codec

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pedigraph/pedigraph/ped"
)

// Sentinel errors for identity coding.
var (
	// ErrDuplicateDefinition indicates the same identifier was defined as
	// an individual twice; a pedigree defines each individual exactly once.
	ErrDuplicateDefinition = errors.New("codec: identifier defined twice")

	// ErrUnknownID indicates Encode was asked for an identifier outside
	// the coded set.
	ErrUnknownID = errors.New("codec: identifier was never coded")
)

// Codec is an immutable bijection between a fixed identifier set and the
// dense code range 1..N. Build one with New; the zero Codec is empty.
type Codec struct {
	ids  []ped.ID       // ids[code-1] = identifier
	code map[ped.ID]int // identifier → code
}

// New builds a Codec over the union of selves (identifiers defined as
// individuals; duplicates are ErrDuplicateDefinition) and extra
// (identifiers referenced only as parents; deduplicated, entries already
// in selves ignored). Missing markers in either list never consume a
// code. Codes are assigned per the configured Policy.
//
// Complexity: O(N log N) under PolicySorted, O(N) under PolicyAppearance.
func New(selves, extra []ped.ID, opts ...Option) (*Codec, error) {
	// 1. Resolve options.
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// 2. Union the two lists in first-occurrence order, guarding selves
	//    against double definition.
	seen := make(map[ped.ID]struct{}, len(selves)+len(extra))
	union := make([]ped.ID, 0, len(selves)+len(extra))
	for _, id := range selves {
		if id.IsMissing() {
			continue
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDefinition, id)
		}
		seen[id] = struct{}{}
		union = append(union, id)
	}
	for _, id := range extra {
		if id.IsMissing() {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		union = append(union, id)
	}
	// 3. Order the union per policy; appearance order is already in hand.
	if o.policy == PolicySorted {
		sort.Slice(union, func(i, j int) bool { return union[i].Less(union[j]) })
	}
	// 4. Freeze the bijection.
	c := &Codec{ids: union, code: make(map[ped.ID]int, len(union))}
	for i, id := range union {
		c.code[id] = i + 1
	}
	return c, nil
}

// Len returns N, the number of coded identifiers.
func (c *Codec) Len() int { return len(c.ids) }

// Encode returns the canonical code of id. The missing marker encodes to
// ped.Unknown (0); identifiers outside the coded set are ErrUnknownID.
func (c *Codec) Encode(id ped.ID) (int, error) {
	if id.IsMissing() {
		return ped.Unknown, nil
	}
	code, ok := c.code[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownID, id)
	}
	return code, nil
}

// Decode returns the identifier behind a canonical code. ped.Unknown (0)
// decodes to the missing marker; codes outside 0..N are ped.ErrUnknownCode.
func (c *Codec) Decode(code int) (ped.ID, error) {
	if code == ped.Unknown {
		return ped.MissingID(), nil
	}
	if code < 1 || code > len(c.ids) {
		return ped.ID{}, fmt.Errorf("%w: %d outside 1..%d", ped.ErrUnknownCode, code, len(c.ids))
	}
	return c.ids[code-1], nil
}

// IDs returns a copy of the coded identifiers in code order
// (IDs()[i] carries code i+1).
func (c *Codec) IDs() []ped.ID { return append([]ped.ID(nil), c.ids...) }
