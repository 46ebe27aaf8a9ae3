package domain

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Value is a tagged representation of a result payload. Payloads are
// converted once at the ingestion boundary so that every traversal over
// them is exhaustive.
type Value interface {
	isValue()
}

// Null is the absent value.
type Null struct{}

// Bool is a boolean scalar.
type Bool bool

// Int is an integer scalar.
type Int int64

// Float is a floating-point scalar.
type Float float64

// String is a text scalar. It is the only variant the transform chain
// rewrites.
type String string

// Sequence is an ordered list of values.
type Sequence []Value

// Pair is a single key/value entry of a Mapping.
type Pair struct {
	Key string
	Val Value
}

// Mapping is an order-preserving set of key/value pairs.
type Mapping []Pair

func (Null) isValue()     {}
func (Bool) isValue()     {}
func (Int) isValue()      {}
func (Float) isValue()    {}
func (String) isValue()   {}
func (Sequence) isValue() {}
func (Mapping) isValue()  {}

// Get returns the value stored under key.
func (m Mapping) Get(key string) (Value, bool) {
	for _, p := range m {
		if p.Key == key {
			return p.Val, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (m Mapping) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set replaces the value under key, appending the pair if it is new.
func (m Mapping) Set(key string, v Value) Mapping {
	for i, p := range m {
		if p.Key == key {
			m[i].Val = v
			return m
		}
	}
	return append(m, Pair{Key: key, Val: v})
}

// Delete removes key, preserving the order of the remaining pairs.
func (m Mapping) Delete(key string) Mapping {
	for i, p := range m {
		if p.Key == key {
			return append(m[:i:i], m[i+1:]...)
		}
	}
	return m
}

// FromAny converts a decoded JSON/YAML payload into a Value. Unrecognized
// leaf types become a sentinel error string instead of failing the whole
// conversion. Map keys are sorted so the conversion is deterministic.
func FromAny(in any) Value {
	switch v := in.(type) {
	case nil:
		return Null{}
	case Value:
		return v
	case bool:
		return Bool(v)
	case int:
		return Int(v)
	case int64:
		return Int(v)
	case float64:
		return Float(v)
	case string:
		return String(v)
	case []any:
		seq := make(Sequence, len(v))
		for i, e := range v {
			seq[i] = FromAny(e)
		}
		return seq
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := make(Mapping, 0, len(v))
		for _, k := range keys {
			m = append(m, Pair{Key: k, Val: FromAny(v[k])})
		}
		return m
	default:
		return String(fmt.Sprintf("<RLO error - unrecognized type - %T>", in))
	}
}

// Dump renders a value as indented YAML text suitable for printing below a
// log line. Every line is prefixed with two spaces and trailing whitespace
// is stripped.
func Dump(v Value) (string, error) {
	var buf strings.Builder
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(v)); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}

	dumped := "  " + strings.Join(strings.Split(buf.String(), "\n"), "\n  ")
	return strings.TrimRight(dumped, " \n"), nil
}

func yamlNode(v Value) *yaml.Node {
	switch v := v.(type) {
	case Null:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprintf("%t", bool(v))}
	case Int:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("%d", int64(v))}
	case Float:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: fmt.Sprintf("%g", float64(v))}
	case String:
		return stringNode(string(v))
	case Sequence:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range v {
			node.Content = append(node.Content, yamlNode(e))
		}
		return node
	case Mapping:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, p := range v {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Key},
				yamlNode(p.Val))
		}
		return node
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: fmt.Sprintf("<RLO error - unrecognized type - %T>", v)}
	}
}

// stringNode renders multi-line strings in literal block style so command
// output stays readable. Block scalars cannot carry characters that would
// break the block, so those are scrubbed first.
func stringNode(s string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	if !shouldUseBlock(s) {
		return node
	}

	node.Style = yaml.LiteralStyle
	node.Value = cleanForBlock(s)
	return node
}

// shouldUseBlock reports whether a string should be emitted in block format.
func shouldUseBlock(s string) bool {
	for _, r := range s {
		switch r {
		case '\n', '\r', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			return true
		}
	}
	return false
}

func cleanForBlock(s string) string {
	// We care more about readable than accuracy, so tabs are expanded and
	// non-printables, stray vertical whitespace and trailing space dropped.
	s = expandTabs(s, 8)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\v', '\f', '\r':
			continue
		}
		if r == '\n' || r >= 0xA0 || unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}

	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), " \n")
}

func expandTabs(s string, tabstop int) string {
	var b strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			pad := tabstop - col%tabstop
			b.WriteString(strings.Repeat(" ", pad))
			col += pad
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}
