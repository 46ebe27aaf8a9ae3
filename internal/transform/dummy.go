package transform

// Dummy replaces every string with a fixed marker. Useful for checking
// which parts of the output pass through the user chain.
type Dummy struct{}

// Priority implements Transformer.
func (Dummy) Priority() int { return 10 }

// Transform implements Transformer.
func (Dummy) Transform(string) string { return "RLODUMMYTRANSFORMER" }
