package transform

// Identity returns its input unchanged. It is the default user transformer.
type Identity struct{}

// Priority implements Transformer.
func (Identity) Priority() int { return 0 }

// Transform implements Transformer.
func (Identity) Transform(input string) string { return input }
