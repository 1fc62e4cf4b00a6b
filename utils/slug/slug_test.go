package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "NEET Foundation", "neet-foundation"},
		{"punctuation", "JEE (Main + Advanced)", "jee-main-advanced"},
		{"extra spaces", "  Crash   Course  ", "crash-course"},
		{"already a slug", "neet-dropper-batch", "neet-dropper-batch"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("neet-foundation"))
	assert.True(t, IsValid("jee-2026"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("NEET-Foundation"))
	assert.False(t, IsValid("has spaces"))
	assert.False(t, IsValid("-leading"))
	assert.False(t, IsValid("trailing-"))
	assert.False(t, IsValid("double--hyphen"))
}
