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
	assert.True(t, IsValidEmail("admin@school.edu"))
	assert.True(t, IsValidEmail("first.last+tag@example.co.id"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("018f2c6a-9d3e-7a4b-8c1d-2e3f4a5b6c7d"))
	assert.True(t, IsValidUUID("A1B2C3D4-E5F6-4071-9ABC-DEF012345678"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidMonth(t *testing.T) {
	for m := 1; m <= 12; m++ {
		assert.True(t, IsValidMonth(m))
	}
	assert.False(t, IsValidMonth(0))
	assert.False(t, IsValidMonth(13))
	assert.False(t, IsValidMonth(-1))
}

func TestIsValidYear(t *testing.T) {
	assert.True(t, IsValidYear(2024))
	assert.True(t, IsValidYear(2000))
	assert.False(t, IsValidYear(1999))
	assert.False(t, IsValidYear(2101))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-02-29")
	assert.True(t, ok)
	assert.Equal(t, 2024, date.Year())

	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("29-02-2024")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "must be between 1 and 12"},
		{Field: "year", Message: "is required"},
	}

	assert.Equal(t, "month: must be between 1 and 12; year: is required", errs.Error())

	m := errs.ToMap()
	assert.Equal(t, "must be between 1 and 12", m["month"])
	assert.Equal(t, "is required", m["year"])
}
