package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/code"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/response"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/infrastructure/config"
)

var (
	jwtService  services.InterfaceJWTService
	roleService services.InterfaceRoleService
	authDB      *gorm.DB
)

// InitAuthMiddleware inicializa el middleware de autenticación
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	jwtService = services.NewJWTService(cfg, db)
	roleService = services.NewRoleService(db)
	authDB = db
}

// extractToken quita el prefijo "Bearer " del encabezado de autorización
func extractToken(authHeader string) string {
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// Authentication valida el token y carga el usuario completo con su
// perfil en el contexto. El scoping por organización necesita el perfil,
// por eso no alcanza con las claims del token.
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.FailWithMessage(c, code.ErrTokenInvalid, "se requiere el encabezado de autorización", nil)
			c.Abort()
			return
		}

		tokenString := extractToken(authHeader)
		token, err := jwtService.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			response.FailWithMessage(c, code.ErrTokenInvalid, "token inválido o expirado", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.FailWithMessage(c, code.ErrTokenInvalid, "las claims del token son inválidas", nil)
			c.Abort()
			return
		}

		userIDClaim, ok := claims["user_id"].(float64)
		if !ok {
			response.FailWithMessage(c, code.ErrTokenInvalid, "las claims del token son inválidas", nil)
			c.Abort()
			return
		}

		var user models.User
		if err := authDB.Preload("Profile").First(&user, uint(userIDClaim)).Error; err != nil {
			response.FailWithMessage(c, code.ErrTokenInvalid, "el usuario del token no existe", nil)
			c.Abort()
			return
		}
		if !user.IsActive {
			response.FailWithMessage(c, code.ErrTokenInvalid, "la cuenta está desactivada", nil)
			c.Abort()
			return
		}

		c.Set("currentUser", &user)
		c.Set("userID", user.ID)
		c.Set("role", user.Role)
		c.Next()
	}
}

// CurrentUser devuelve el usuario cargado por Authentication
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get("currentUser")
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// RequirePermission recorta el acceso según el permiso del rol.
// Los superusuarios pasan siempre.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		allowed, err := roleService.HasPermission(user, permission)
		if err != nil {
			response.Fail(c, code.ErrDatabase, nil)
			c.Abort()
			return
		}
		if !allowed {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
