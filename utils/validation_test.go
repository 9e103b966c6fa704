package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("meera@example.com"))
	assert.True(t, ValidateEmail("  meera.k+orders@shop.co.in  "))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail(""))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("9876543210"))
	assert.True(t, ValidatePhone("+919876543210"))
	assert.True(t, ValidatePhone("98765 43210"))
	assert.False(t, ValidatePhone("12345"))
	assert.False(t, ValidatePhone("call-me"))
}

func TestValidateZipCode(t *testing.T) {
	assert.True(t, ValidateZipCode("302001"))
	assert.True(t, ValidateZipCode("90210"))
	assert.False(t, ValidateZipCode("3020"))
	assert.False(t, ValidateZipCode("30200A"))
}
