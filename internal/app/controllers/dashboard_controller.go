package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/app/middleware"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services/container"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/code"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/response"
)

// DashboardController procesa el resumen del panel
type DashboardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDashboardController crea un controlador del panel
func NewDashboardController(ctx *gin.Context, container *container.ServiceContainer) *DashboardController {
	return &DashboardController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleDashboardFunc devuelve el manejador Gin para el método indicado
func HandleDashboardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDashboardController(ctx, container)

		switch method {
		case "getSummary":
			controller.GetSummary()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "método inválido", nil)
		}
	}
}

// GetSummary devuelve los totales y la actividad reciente del usuario
func (c *DashboardController) GetSummary() {
	user := middleware.CurrentUser(c.Ctx)
	dashboardService := c.Container.GetService("dashboard").(services.InterfaceDashboardService)

	summary, err := dashboardService.GetSummary(user)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, summary)
}
