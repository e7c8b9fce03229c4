package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStrongPassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"válida", "Segura123", ""},
		{"corta", "Ab1", "8 caracteres"},
		{"sin mayúscula", "segura123", "mayúscula"},
		{"sin minúscula", "SEGURA123", "minúscula"},
		{"sin número", "SeguraSegura", "número"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStrongPassword(tc.password)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	assert.NoError(t, ValidatePhoneNumber(""))
	assert.NoError(t, ValidatePhoneNumber("+56912345678"))
	assert.NoError(t, ValidatePhoneNumber("912345678"))
	assert.NoError(t, ValidatePhoneNumber("+569 1234 5678"))
	assert.NoError(t, ValidatePhoneNumber("600-123-456"))

	assert.Error(t, ValidatePhoneNumber("abc"))
	assert.Error(t, ValidatePhoneNumber("12345"))
	assert.Error(t, ValidatePhoneNumber("+12345678901234567890"))
}

func TestValidateAvatar(t *testing.T) {
	const max = 2 * 1024 * 1024

	assert.NoError(t, ValidateAvatar(1024, "image/png", max))
	assert.NoError(t, ValidateAvatar(1024, "IMAGE/JPEG", max))

	err := ValidateAvatar(max+1, "image/png", max)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2MB")

	err = ValidateAvatar(1024, "application/pdf", max)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "formato")
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Secreta99")
	require.NoError(t, err)
	assert.NotEqual(t, "Secreta99", hash)

	assert.True(t, CheckPassword(hash, "Secreta99"))
	assert.False(t, CheckPassword(hash, "Secreta98"))
}
