package utils

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var phoneRegex = regexp.MustCompile(`^\+?[\d]{8,15}$`)

// Tipos de imagen permitidos para el avatar
var allowedAvatarTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// ValidateStrongPassword verifica los requisitos de seguridad de la
// contraseña y devuelve un error específico por cada regla incumplida:
// mínimo 8 caracteres, al menos una mayúscula, una minúscula y un número.
func ValidateStrongPassword(password string) error {
	if len(password) < 8 {
		return errors.New("la contraseña debe tener al menos 8 caracteres")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return errors.New("la contraseña debe contener al menos una letra mayúscula")
	}
	if !hasLower {
		return errors.New("la contraseña debe contener al menos una letra minúscula")
	}
	if !hasDigit {
		return errors.New("la contraseña debe contener al menos un número")
	}

	return nil
}

// ValidatePhoneNumber valida el formato del teléfono.
// Acepta formatos como +56912345678, 912345678 o +569 1234 5678.
func ValidatePhoneNumber(phone string) error {
	if phone == "" {
		return nil
	}

	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(phone)
	if !phoneRegex.MatchString(cleaned) {
		return errors.New("formato de teléfono inválido, usa formato: +56912345678 o 912345678")
	}

	return nil
}

// ValidateAvatar verifica tamaño y tipo de la imagen de perfil
func ValidateAvatar(size int64, contentType string, maxBytes int64) error {
	if size > maxBytes {
		return errors.New("la imagen no puede superar los 2MB")
	}
	if !allowedAvatarTypes[strings.ToLower(contentType)] {
		return errors.New("formato de imagen inválido, usa JPG, PNG o GIF")
	}
	return nil
}
