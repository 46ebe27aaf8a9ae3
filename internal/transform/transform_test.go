package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/rlo/internal/core/domain"
	"go.trai.ch/rlo/internal/transform"
)

func TestSanitizer(t *testing.T) {
	s := transform.NewSanitizer()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "clean text passes through",
			input:    "hello world",
			expected: "hello world",
		},
		{
			name:     "escape sequence is neutralized",
			input:    "before\x1b[31mred\x1b[0mafter",
			expected: "before<ESC>[31mred<ESC>[0mafter",
		},
		{
			name:     "bell backspace formfeed",
			input:    "a\x07b\x08c\x0cd",
			expected: "a<BEL>b<BS>c<FF>d",
		},
		{
			name:     "carriage return and delete",
			input:    "line\r\x7f",
			expected: "line<CR><DEL>",
		},
		{
			name:     "tab and newline are kept",
			input:    "col1\tcol2\nrow2",
			expected: "col1\tcol2\nrow2",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Transform(tt.input)
			assert.Equal(t, tt.expected, got)

			// The placeholders contain no blacklisted bytes, so a second
			// pass must be a no-op.
			assert.Equal(t, got, s.Transform(got), "sanitizer is not idempotent")
		})
	}
}

func TestSanitizer_Priority(t *testing.T) {
	s := transform.NewSanitizer()
	assert.Greater(t, s.Priority(), transform.Identity{}.Priority())
	assert.Greater(t, s.Priority(), transform.Dummy{}.Priority())
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, "anything\x1bat all", transform.Identity{}.Transform("anything\x1bat all"))
}

func TestDummy(t *testing.T) {
	assert.Equal(t, "RLODUMMYTRANSFORMER", transform.Dummy{}.Transform("secret"))
	assert.Equal(t, "RLODUMMYTRANSFORMER", transform.Dummy{}.Transform(""))
}

func TestApply_PreservesStructure(t *testing.T) {
	in := domain.Mapping{
		{Key: "msg", Val: domain.String("hello")},
		{Key: "rc", Val: domain.Int(0)},
		{Key: "results", Val: domain.Sequence{
			domain.String("one"),
			domain.Bool(true),
			domain.Mapping{{Key: "stdout", Val: domain.String("two")}},
		}},
		{Key: "null", Val: domain.Null{}},
	}

	got := transform.Apply(transform.Dummy{}, in)

	m, ok := got.(domain.Mapping)
	require.True(t, ok)
	require.Len(t, m, 4)

	// Keys and order survive, only string leaves change.
	assert.Equal(t, "msg", m[0].Key)
	assert.Equal(t, domain.String("RLODUMMYTRANSFORMER"), m[0].Val)
	assert.Equal(t, domain.Int(0), m[1].Val)

	seq, ok := m[2].Val.(domain.Sequence)
	require.True(t, ok)
	require.Len(t, seq, 3)
	assert.Equal(t, domain.String("RLODUMMYTRANSFORMER"), seq[0])
	assert.Equal(t, domain.Bool(true), seq[1])

	inner, ok := seq[2].(domain.Mapping)
	require.True(t, ok)
	assert.Equal(t, domain.String("RLODUMMYTRANSFORMER"), inner[0].Val)

	assert.Equal(t, domain.Null{}, m[3].Val)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := domain.Sequence{domain.String("original")}
	_ = transform.Apply(transform.Dummy{}, in)
	assert.Equal(t, domain.String("original"), in[0])
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    string
		wantErr bool
	}{
		{name: "builtin identity", spec: "/Identity", want: "in"},
		{name: "builtin dummy", spec: "/Dummy", want: "RLODUMMYTRANSFORMER"},
		{name: "builtin sanitizer", spec: "/Sanitizer", want: "in"},
		{name: "unknown builtin", spec: "/Nope", wantErr: true},
		{name: "no separator", spec: "Identity", wantErr: true},
		{name: "too many separators", spec: "a/b/c", wantErr: true},
		{name: "empty spec", spec: "", wantErr: true},
		{name: "missing plugin module", spec: "does/NotExist", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := transform.Resolve(tt.spec)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrBadTransformer)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.Transform("in"))
		})
	}
}

func TestRegister(t *testing.T) {
	transform.Register("Upper", func() transform.Transformer { return transform.Dummy{} })

	tr, err := transform.Resolve("/Upper")
	require.NoError(t, err)
	assert.Equal(t, "RLODUMMYTRANSFORMER", tr.Transform("x"))
}
