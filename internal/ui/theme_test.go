package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
		{1099511627776, "1.0 TB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.bytes), "bytes=%d", tt.bytes)
	}
}

func TestGradientBarClamps(t *testing.T) {
	// Out-of-range percentages must not panic or overflow the bar width.
	assert.NotEmpty(t, GradientBar(-10, 10))
	assert.NotEmpty(t, GradientBar(150, 10))
	assert.NotEmpty(t, GradientBar(50, 0))
}
