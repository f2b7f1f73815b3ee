package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/taskora/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"tomorrow", now.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"3 days future", now.Add(3 * 24 * time.Hour), "In 3d"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"3 weeks future", now.Add(21 * 24 * time.Hour), "In 3w"},
		{"3 months future", now.Add(90 * 24 * time.Hour), "In 3mo"},
		{"3 months past", now.Add(-90 * 24 * time.Hour), "3mo ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.input, now))
		})
	}
}

func TestDueLabel(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
	assert.Contains(t, DueLabel(nil, now), "--")

	due := now.Add(48 * time.Hour)
	assert.Contains(t, DueLabel(&due, now), "In 2d")
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "Free", Money(0, "EUR"))
	assert.Equal(t, "24.99 EUR", Money(24.99, "eur"))
}

func TestModeLabel(t *testing.T) {
	assert.Equal(t, "one-time", ModeLabel(domain.ModePayment))
	assert.Equal(t, "per month", ModeLabel(domain.ModeSubscription))
}

func TestTruncID(t *testing.T) {
	assert.Contains(t, TruncID("0123456789abcdef"), "01234567")
	assert.NotContains(t, TruncID("0123456789abcdef"), "89")
	assert.Contains(t, TruncID("short"), "short")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{{"long cell", "x"}, {"y"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[2], "long cell")
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name    string
		percent int
		want    string
	}{
		{"zero", 0, "  0%"},
		{"half", 50, " 50%"},
		{"full", 100, "100%"},
		{"clamps high", 150, "100%"},
		{"clamps low", -5, "  0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.percent, 10)
			assert.True(t, strings.HasSuffix(got, tt.want), got)
			assert.Contains(t, got, "[")
		})
	}

	assert.NotContains(t, RenderProgress(0, 4), filledBlock)
	assert.NotContains(t, RenderProgress(100, 4), emptyBlock)
}
