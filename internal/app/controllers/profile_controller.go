package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/app/middleware"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services/container"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/code"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/response"
)

// ProfileController procesa las peticiones del perfil propio
type ProfileController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewProfileController crea un controlador de perfil
func NewProfileController(ctx *gin.Context, container *container.ServiceContainer) *ProfileController {
	return &ProfileController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleProfileFunc devuelve el manejador Gin para el método indicado
func HandleProfileFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewProfileController(ctx, container)

		switch method {
		case "getProfile":
			controller.GetProfile()
		case "updateProfile":
			controller.UpdateProfile()
		case "uploadAvatar":
			controller.UploadAvatar()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "método inválido", nil)
		}
	}
}

// GetProfile devuelve la cuenta con su perfil y los permisos del rol
func (c *ProfileController) GetProfile() {
	current := middleware.CurrentUser(c.Ctx)

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	roleService := c.Container.GetService("role").(services.InterfaceRoleService)

	user, err := userService.GetUserWithProfile(current.ID)
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	permissions, err := roleService.PermissionsForRole(user.Role)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"user":        user,
		"permissions": permissions,
	})
}

// UpdateProfile actualiza los datos de la cuenta y el perfil.
// Si la contraseña cambió el token actual deja de ser de confianza y
// el cliente debe iniciar sesión de nuevo.
func (c *ProfileController) UpdateProfile() {
	current := middleware.CurrentUser(c.Ctx)

	var req services.UpdateProfileRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de petición inválidos", nil)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)

	user, passwordChanged, err := userService.UpdateProfile(current.ID, &req)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	message := "perfil actualizado correctamente"
	if passwordChanged {
		message = "perfil actualizado, vuelve a iniciar sesión con tu nueva contraseña"
	}

	response.SuccessWithMessage(c.Ctx, message, gin.H{
		"user":             user,
		"password_changed": passwordChanged,
	})
}

// UploadAvatar guarda la imagen de perfil enviada como multipart
func (c *ProfileController) UploadAvatar() {
	current := middleware.CurrentUser(c.Ctx)

	file, err := c.Ctx.FormFile("avatar")
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "no se recibió ninguna imagen", nil)
		return
	}

	src, err := file.Open()
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}
	defer src.Close()

	userService := c.Container.GetService("user").(services.InterfaceUserService)

	path, err := userService.SaveAvatar(current.ID, file.Filename, file.Size, file.Header.Get("Content-Type"), src)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "avatar actualizado correctamente", gin.H{
		"avatar": path,
	})
}
