package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/infrastructure/config"
	"github.com/MatiPium/proyecto-nuevo-backend2/utils"
)

// InterfaceJWTService define el servicio de autenticación por token
type InterfaceJWTService interface {
	GenerateToken(user *models.User) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	Login(identifier, password string) (*LoginResult, error)
}

// LoginResult representa el resultado de un inicio de sesión
type LoginResult struct {
	Token       string      `json:"token"`
	UserID      uint        `json:"user_id"`
	Username    string      `json:"username"`
	Role        string      `json:"role"`
	IsSuperuser bool        `json:"is_superuser"`
	CreatedAt   interface{} `json:"created_at"`
}

// JWTClaims define las declaraciones del token
type JWTClaims struct {
	UserID      uint   `json:"user_id"`
	Role        string `json:"role"`
	IsSuperuser bool   `json:"is_superuser"`
	jwt.RegisteredClaims
}

// JWTService emite y valida tokens firmados con HS256
type JWTService struct {
	secretKey string
	issuer    string
	DB        *gorm.DB
}

// NewJWTService crea el servicio JWT
func NewJWTService(cfg *config.Config, db *gorm.DB) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "ecoenergy-monitor",
		DB:        db,
	}
}

// 1 GenerateToken genera un token con 24 horas de validez
func (s *JWTService) GenerateToken(user *models.User) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	claims := &JWTClaims{
		UserID:      user.ID,
		Role:        user.Role,
		IsSuperuser: user.IsSuperuser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// 2 ValidateToken valida la firma y vigencia del token
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// 3 Login autentica por nombre de usuario o correo
func (s *JWTService) Login(identifier, password string) (*LoginResult, error) {
	var user models.User
	if err := s.DB.Where("username = ? OR email = ?", identifier, identifier).First(&user).Error; err != nil {
		return nil, errors.New("usuario o contraseña incorrectos")
	}

	if !user.IsActive {
		return nil, errors.New("la cuenta está desactivada")
	}

	if !utils.CheckPassword(user.Password, password) {
		return nil, errors.New("usuario o contraseña incorrectos")
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:       token,
		UserID:      user.ID,
		Username:    user.Username,
		Role:        user.Role,
		IsSuperuser: user.IsSuperuser,
		CreatedAt:   user.CreatedAt,
	}, nil
}
