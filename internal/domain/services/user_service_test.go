package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
	"github.com/MatiPium/proyecto-nuevo-backend2/utils"
)

func TestRegisterCreatesReaderWithProfile(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db, testConfig(t))

	user, err := service.Register(&RegisterRequest{
		Username:        "mperez",
		Email:           "mperez@test.local",
		Password:        "Password1",
		PasswordConfirm: "Password1",
		FirstName:       "María",
		LastName:        "Pérez",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleReader, user.Role)
	assert.True(t, user.IsActive)
	assert.True(t, utils.CheckPassword(user.Password, "Password1"))

	// El perfil se crea junto con la cuenta
	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
}

func TestRegisterPasswordRules(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db, testConfig(t))

	cases := []struct {
		name     string
		password string
		confirm  string
		wantErr  string
	}{
		{"no coinciden", "Password1", "Password2", "no coinciden"},
		{"muy corta", "Pa1", "Pa1", "8 caracteres"},
		{"sin mayúscula", "password1", "password1", "mayúscula"},
		{"sin minúscula", "PASSWORD1", "PASSWORD1", "minúscula"},
		{"sin número", "Passwordx", "Passwordx", "número"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Register(&RegisterRequest{
				Username:        "u_" + strings.ReplaceAll(tc.name, " ", "_"),
				Email:           strings.ReplaceAll(tc.name, " ", "") + "@test.local",
				Password:        tc.password,
				PasswordConfirm: tc.confirm,
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db, testConfig(t))

	_, err := service.Register(&RegisterRequest{
		Username:        "original",
		Email:           "original@test.local",
		Password:        "Password1",
		PasswordConfirm: "Password1",
	})
	require.NoError(t, err)

	_, err = service.Register(&RegisterRequest{
		Username:        "original",
		Email:           "otro@test.local",
		Password:        "Password1",
		PasswordConfirm: "Password1",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nombre de usuario")

	_, err = service.Register(&RegisterRequest{
		Username:        "distinto",
		Email:           "original@test.local",
		Password:        "Password1",
		PasswordConfirm: "Password1",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "correo")
}

func TestUpdateProfileChangesPassword(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db, testConfig(t))

	user, err := service.Register(&RegisterRequest{
		Username:        "cambio",
		Email:           "cambio@test.local",
		Password:        "Password1",
		PasswordConfirm: "Password1",
	})
	require.NoError(t, err)

	updated, passwordChanged, err := service.UpdateProfile(user.ID, &UpdateProfileRequest{
		FirstName:       "Carlos",
		LastName:        "García",
		Phone:           "+34 600 123 456",
		NewPassword:     "Renovada9",
		PasswordConfirm: "Renovada9",
	})
	require.NoError(t, err)
	assert.True(t, passwordChanged)
	assert.Equal(t, "Carlos", updated.FirstName)
	assert.Equal(t, "+34 600 123 456", updated.Profile.Phone)
	assert.True(t, utils.CheckPassword(updated.Password, "Renovada9"))
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(db, testConfig(t))

	_, err := service.Register(&RegisterRequest{
		Username:        "primero",
		Email:           "primero@test.local",
		Password:        "Password1",
		PasswordConfirm: "Password1",
	})
	require.NoError(t, err)

	second, err := service.Register(&RegisterRequest{
		Username:        "segundo",
		Email:           "segundo@test.local",
		Password:        "Password1",
		PasswordConfirm: "Password1",
	})
	require.NoError(t, err)

	_, _, err = service.UpdateProfile(second.ID, &UpdateProfileRequest{
		Email: "primero@test.local",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "correo")

	// Los espacios alrededor no esquivan la comprobación de unicidad
	_, _, err = service.UpdateProfile(second.ID, &UpdateProfileRequest{
		Email: "  primero@test.local  ",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "correo")
}

func TestSaveAvatarValidatesTypeAndSize(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig(t)
	service := NewUserService(db, cfg)

	user, err := service.Register(&RegisterRequest{
		Username:        "avatar",
		Email:           "avatar@test.local",
		Password:        "Password1",
		PasswordConfirm: "Password1",
	})
	require.NoError(t, err)

	_, err = service.SaveAvatar(user.ID, "foto.pdf", 1024, "application/pdf", strings.NewReader("datos"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "formato")

	_, err = service.SaveAvatar(user.ID, "foto.png", cfg.AvatarMaxBytes+1, "image/png", strings.NewReader("datos"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2MB")

	path, err := service.SaveAvatar(user.ID, "foto.png", 1024, "image/png", strings.NewReader("datos"))
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	reloaded, err := service.GetUserWithProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, path, reloaded.Profile.Avatar)
}
