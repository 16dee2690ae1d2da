package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "clip.mp4", 20, "clip.mp4"},
		{"ascii cut", "clip.mp4", 4, "clip"},
		{"zero width", "clip.mp4", 0, ""},
		{"negative width", "clip.mp4", -1, ""},
		{"empty", "", 10, ""},
		{"full width kept whole", "日本語", 6, "日本語"},
		{"no half character", "日本語", 5, "日本"},
		{"mixed", "a日b", 3, "a日"},
		{"control dropped", "a\tb\n", 10, "ab"},
		{"unencodable dropped", "a😀b", 10, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FitWidth(tt.input, tt.width))
		})
	}
}

