// SPDX-License-Identifier: MIT
// Package: pedigraph/codec
//
// options.go — functional configuration for code assignment.
//
// Design:
//   • Policy is the only knob; defaults are deterministic and documented.
//   • WithPolicy panics on an unknown policy (programmer error at the
//     option-construction site, never at runtime).

package codec

import "fmt"

// Policy selects how canonical codes are assigned over the identifier set.
type Policy uint8

const (
	// PolicySorted assigns codes by ascending natural identifier order.
	// This is the default.
	PolicySorted Policy = iota

	// PolicyAppearance assigns codes by first-occurrence order in the
	// input sequence (defined individuals first, then parent-only
	// ancestors, each in encounter order).
	PolicyAppearance
)

// String names the policy for diagnostics and CLI flags.
func (p Policy) String() string {
	switch p {
	case PolicySorted:
		return "sorted"
	case PolicyAppearance:
		return "appearance"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// ParsePolicy maps a flag token onto a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "sorted":
		return PolicySorted, nil
	case "appearance":
		return PolicyAppearance, nil
	default:
		return 0, fmt.Errorf("codec: unknown policy %q", s)
	}
}

// Option configures a Codec under construction.
type Option func(*options)

// options holds resolved construction settings.
type options struct {
	policy Policy
}

// defaultOptions returns the documented defaults (PolicySorted).
func defaultOptions() options { return options{policy: PolicySorted} }

// WithPolicy selects the code-assignment policy.
// Panics on a policy value outside the declared set.
func WithPolicy(p Policy) Option {
	if p != PolicySorted && p != PolicyAppearance {
		panic(fmt.Sprintf("codec: WithPolicy(%d): unknown policy", uint8(p)))
	}
	return func(o *options) { o.policy = p }
}
