package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Grams", "grams"},
		{"  Fluid   Ounces ", "fluid ounces"},
		{"10-Pack", "10-pack"},
		{"", ""},
		{"   ", ""},
		{"STRASSE", "strasse"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.in))
		})
	}
}
