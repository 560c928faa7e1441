package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+79161234567"))
	assert.True(t, ValidatePhone("89161234567"))

	assert.False(t, ValidatePhone("+7916123456"))   // too short
	assert.False(t, ValidatePhone("+791612345678")) // too long
	assert.False(t, ValidatePhone("79161234567"))   // no prefix
	assert.False(t, ValidatePhone("+7916123456a"))
	assert.False(t, ValidatePhone(""))
}

func TestToISODate(t *testing.T) {
	iso, err := ToISODate("05.03.2026")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-05", iso)

	_, err = ToISODate("2026-03-05")
	assert.Error(t, err)
	_, err = ToISODate("32.01.2026")
	assert.Error(t, err)
}
