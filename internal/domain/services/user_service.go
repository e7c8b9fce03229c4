package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/infrastructure/config"
	"github.com/MatiPium/proyecto-nuevo-backend2/utils"
)

// InterfaceUserService define las operaciones de cuentas y perfiles
type InterfaceUserService interface {
	Register(req *RegisterRequest) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserWithProfile(id uint) (*models.User, error)
	UpdateProfile(userID uint, req *UpdateProfileRequest) (*models.User, bool, error)
	SaveAvatar(userID uint, filename string, size int64, contentType string, src io.Reader) (string, error)
}

// RegisterRequest son los datos de registro de una cuenta
type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
}

// UpdateProfileRequest son los datos editables del perfil
type UpdateProfileRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Bio             string `json:"bio"`
	NewPassword     string `json:"new_password"`
	PasswordConfirm string `json:"password_confirm"`
}

// UserService gestiona cuentas y perfiles
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService crea el servicio de usuarios
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{DB: db, Config: cfg}
}

// 1 Register crea una cuenta nueva con rol lector por defecto.
// El perfil se crea automáticamente junto con el usuario.
func (s *UserService) Register(req *RegisterRequest) (*models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, errors.New("todos los campos son obligatorios")
	}

	if req.Password != req.PasswordConfirm {
		return nil, errors.New("las contraseñas no coinciden")
	}

	if err := utils.ValidateStrongPassword(req.Password); err != nil {
		return nil, err
	}

	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("el nombre de usuario ya está en uso")
	}

	if err := s.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("el correo electrónico ya está registrado")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.RoleReader,
		IsActive:  true,
	}

	if err := s.DB.Create(user).Error; err != nil {
		return nil, errors.New("error al crear el usuario, intenta con otros datos")
	}

	return user, nil
}

// 2 GetUserByID busca una cuenta por ID
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("el usuario no existe")
		}
		return nil, err
	}
	return &user, nil
}

// 3 GetUserWithProfile busca una cuenta con su perfil cargado.
// Si el perfil aún no existe lo crea, igual que hacía la vista de
// perfil original.
func (s *UserService) GetUserWithProfile(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.Preload("Profile").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("el usuario no existe")
		}
		return nil, err
	}

	if user.Profile == nil {
		profile := models.UserProfile{UserID: user.ID}
		if err := s.DB.Create(&profile).Error; err != nil {
			return nil, err
		}
		user.Profile = &profile
	}

	return &user, nil
}

// 4 UpdateProfile actualiza los datos de la cuenta y el perfil.
// Devuelve true como segundo valor cuando la contraseña cambió y el
// usuario debe volver a iniciar sesión.
func (s *UserService) UpdateProfile(userID uint, req *UpdateProfileRequest) (*models.User, bool, error) {
	user, err := s.GetUserWithProfile(userID)
	if err != nil {
		return nil, false, err
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email != "" && req.Email != user.Email {
		var count int64
		if err := s.DB.Model(&models.User{}).Where("email = ? AND id != ?", req.Email, userID).Count(&count).Error; err != nil {
			return nil, false, err
		}
		if count > 0 {
			return nil, false, errors.New("el correo electrónico ya está en uso")
		}
		user.Email = req.Email
	}

	if err := utils.ValidatePhoneNumber(req.Phone); err != nil {
		return nil, false, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Profile.Phone = req.Phone
	user.Profile.Bio = req.Bio

	passwordChanged := false
	if req.NewPassword != "" {
		if req.NewPassword != req.PasswordConfirm {
			return nil, false, errors.New("las contraseñas no coinciden")
		}
		if err := utils.ValidateStrongPassword(req.NewPassword); err != nil {
			return nil, false, err
		}
		hashed, err := utils.HashPassword(req.NewPassword)
		if err != nil {
			return nil, false, err
		}
		user.Password = hashed
		passwordChanged = true
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		return tx.Save(user.Profile).Error
	})
	if err != nil {
		return nil, false, errors.New("error al actualizar el perfil")
	}

	return user, passwordChanged, nil
}

// 5 SaveAvatar valida y guarda la imagen de perfil en disco.
// El procesamiento es síncrono dentro de la misma petición.
func (s *UserService) SaveAvatar(userID uint, filename string, size int64, contentType string, src io.Reader) (string, error) {
	user, err := s.GetUserWithProfile(userID)
	if err != nil {
		return "", err
	}

	if err := utils.ValidateAvatar(size, contentType, s.Config.AvatarMaxBytes); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.Config.AvatarDir, 0755); err != nil {
		return "", fmt.Errorf("no se pudo crear el directorio de avatares: %v", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	dest := filepath.Join(s.Config.AvatarDir, uuid.New().String()+ext)

	out, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dest)
		return "", err
	}

	user.Profile.Avatar = dest
	if err := s.DB.Save(user.Profile).Error; err != nil {
		return "", err
	}

	return dest, nil
}
