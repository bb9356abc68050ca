// SPDX-License-Identifier: MIT
// Package: pedigraph/builder
//
// options.go — functional configuration for Build.
//
// Deterministic defaults (no surprises):
//   • codec policy = codec.PolicySorted

package builder

import "github.com/pedigraph/pedigraph/codec"

// Option configures a single Build call.
type Option func(*options)

// options holds resolved Build settings; passed by value internally.
type options struct {
	policy codec.Policy
}

// defaultOptions returns the documented defaults.
func defaultOptions() options { return options{policy: codec.PolicySorted} }

// WithCodecPolicy forwards a code-assignment policy to the codec.
// Panics (via codec.WithPolicy at apply time) on an unknown policy.
func WithCodecPolicy(p codec.Policy) Option {
	return func(o *options) { o.policy = p }
}
