package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	require.True(t, ValidateEmail("user@example.com"))
	require.True(t, ValidateEmail(" user@example.com "))
	require.False(t, ValidateEmail(""))
	require.False(t, ValidateEmail("not-an-email"))
	require.False(t, ValidateEmail("user@"))
}

func TestValidatePhone(t *testing.T) {
	require.True(t, ValidatePhone("+9779812345678"))
	require.True(t, ValidatePhone("9812345678"))
	require.False(t, ValidatePhone(""))
	require.False(t, ValidatePhone("0123"))
	require.False(t, ValidatePhone("phone"))
}

func TestValidatePassword(t *testing.T) {
	require.True(t, ValidatePassword("hunter22"))
	require.False(t, ValidatePassword("short"))
}
