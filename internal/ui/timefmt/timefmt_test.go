package timefmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go.trai.ch/rlo/internal/ui/timefmt"
)

func TestElapsed(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{name: "zero", d: 0, expected: ".000"},
		{name: "sub second", d: 3 * time.Millisecond, expected: ".003"},
		{name: "just under a second", d: 999 * time.Millisecond, expected: ".999"},
		{name: "exactly one second", d: time.Second, expected: "0:00:01.000"},
		{name: "minute and fraction", d: 65*time.Second + 500*time.Millisecond, expected: "0:01:05.500"},
		{name: "over an hour", d: time.Hour + 2*time.Minute + 5*time.Second + 125*time.Millisecond, expected: "1:02:05.125"},
		{name: "hours do not pad", d: 25 * time.Hour, expected: "25:00:00.000"},
		{name: "negative clamps to zero", d: -time.Second, expected: ".000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timefmt.Elapsed(tt.d))
		})
	}
}

func TestStamp(t *testing.T) {
	at := time.Date(2024, 5, 14, 9, 3, 7, 0, time.UTC)
	assert.Equal(t, "09:03:07", timefmt.Stamp(at))

	afternoon := time.Date(2024, 5, 14, 17, 42, 0, 0, time.UTC)
	assert.Equal(t, "17:42:00", timefmt.Stamp(afternoon))
}
