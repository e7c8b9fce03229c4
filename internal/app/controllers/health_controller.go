package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/app/middleware"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services/container"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/code"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/response"
)

// HealthController responde las comprobaciones de salud
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController crea un controlador de salud
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc devuelve el manejador Gin para el método indicado
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		case "cacheStats":
			controller.CacheStats()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "método inválido", nil)
		}
	}
}

// Ping responde pong
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Status comprueba la base de datos
func (c *HealthController) Status() {
	db := c.Container.GetDB()

	sqlDB, err := db.DB()
	if err != nil || sqlDB.Ping() != nil {
		response.Fail(c.Ctx, code.ErrDatabase, gin.H{"database": "down"})
		return
	}

	response.Success(c.Ctx, gin.H{"database": "up"})
}

// CacheStats devuelve el estado del caché de respuestas
func (c *HealthController) CacheStats() {
	response.Success(c.Ctx, middleware.CacheStats())
}
