package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("parent@example.com"))
	assert.True(t, ValidateEmail("a.b+c@sub.example.co.in"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@domain"))
	assert.False(t, ValidateEmail(""))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "NEET Foundation", SanitizeString("  NEET Foundation  "))
	assert.Equal(t, "abc", SanitizeString("a\x00bc"))
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Name  string `validate:"required,min=2"`
		Email string `validate:"required,email"`
	}

	v := NewValidator()
	assert.NoError(t, v.ValidateStruct(payload{Name: "Ok", Email: "a@b.com"}))
	assert.Error(t, v.ValidateStruct(payload{Name: "", Email: "a@b.com"}))
	assert.Error(t, v.ValidateStruct(payload{Name: "Ok", Email: "nope"}))
}
