package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeManaCost(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1BB", "1 B B"},
		{"2U/B", "2 U/B"},
		{"W/UW/U", "W/U W/U"},
		{"3", "3"},
		{"WUBRG", "W U B R G"},
		{"10GG", "1 0 G G"},
		{"", ""},
		{"??", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TokenizeManaCost(tt.in), "mana: %q", tt.in)
	}
}
