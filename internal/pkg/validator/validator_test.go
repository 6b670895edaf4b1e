package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.co",
		"user+tag@example.io",
	}
	invalid := []string{
		"",
		"plain",
		"@example.com",
		"user@",
		"user@domain",
	}

	for _, e := range valid {
		assert.True(t, IsValidEmail(e), "expected %q valid", e)
	}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), "expected %q invalid", e)
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("01912f7a-5b4c-7def-8abc-0123456789ab"))
	assert.False(t, IsValidUUID("01912f7a-5b4c-4def-8abc-0123456789ab")) // v4
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-03-10")
	assert.True(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("10/03/2025")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	_, ok := IsValidDateTime("2025-03-10T09:00:00Z")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2025-03-10T09:00:00+03:00")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2025-03-10 09:00")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password is required"},
	}

	assert.Equal(t, "email: email is required; password: password is required", errs.Error())

	m := errs.ToMap()
	assert.Equal(t, "email is required", m["email"])
	assert.Equal(t, "password is required", m["password"])
}
