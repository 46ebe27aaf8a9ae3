package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.trai.ch/rlo/internal/adapters/render"
	"go.trai.ch/rlo/internal/core/domain"
)

func TestFormatDiff(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name     string
		diff     domain.Value
		expected string
	}{
		{
			name: "prepared diff wins",
			diff: domain.Mapping{
				{Key: "prepared", Val: domain.String("-workers 2\n+workers 8\n")},
				{Key: "before", Val: domain.String("ignored")},
			},
			expected: "-workers 2\n+workers 8",
		},
		{
			name: "before and after with headers",
			diff: domain.Mapping{
				{Key: "before_header", Val: domain.String("/etc/demo.conf (old)")},
				{Key: "after_header", Val: domain.String("/etc/demo.conf (new)")},
				{Key: "before", Val: domain.String("workers 2\n")},
				{Key: "after", Val: domain.String("workers 8\n")},
			},
			expected: "--- /etc/demo.conf (old)\nworkers 2\n+++ /etc/demo.conf (new)\nworkers 8",
		},
		{
			name: "headers default to side names",
			diff: domain.Mapping{
				{Key: "before", Val: domain.String("a")},
				{Key: "after", Val: domain.String("b")},
			},
			expected: "--- before\na\n+++ after\nb",
		},
		{
			name: "only one side",
			diff: domain.Mapping{
				{Key: "after", Val: domain.String("fresh content")},
			},
			expected: "+++ after\nfresh content",
		},
		{
			name:     "not a mapping",
			diff:     domain.String("free text"),
			expected: "",
		},
		{
			name:     "empty mapping",
			diff:     domain.Mapping{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, render.FormatDiff(tt.diff))
		})
	}
}
