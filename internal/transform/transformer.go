// Package transform implements the text transform chain applied to every
// string leaf of a result payload before it reaches the terminal.
package transform

import "go.trai.ch/rlo/internal/core/domain"

// Transformer rewrites a single string leaf. Implementations must be safe
// for repeated calls and hold no per-call state; one-time initialization
// state set at construction is fine.
type Transformer interface {
	// Priority orders transformers when several are in play. Higher runs
	// later.
	Priority() int
	Transform(input string) string
}

// Apply walks a value and replaces every string leaf with the transformer's
// output. The walk is structure-preserving: mapping keys, sequence order
// and length, and non-string scalars all pass through unchanged.
func Apply(t Transformer, v domain.Value) domain.Value {
	switch v := v.(type) {
	case domain.String:
		return domain.String(t.Transform(string(v)))
	case domain.Sequence:
		out := make(domain.Sequence, len(v))
		for i, e := range v {
			out[i] = Apply(t, e)
		}
		return out
	case domain.Mapping:
		out := make(domain.Mapping, len(v))
		for i, p := range v {
			out[i] = domain.Pair{Key: p.Key, Val: Apply(t, p.Val)}
		}
		return out
	default:
		return v
	}
}
