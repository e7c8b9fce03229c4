package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/app/middleware"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services/container"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/code"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/response"
)

// InterfaceAlertController define el controlador de alertas
type InterfaceAlertController interface {
	GetAlerts()
	GetAlert()
	CreateAlert()
	ResolveAlert()
	DeleteAlert()
}

// AlertController procesa las peticiones de alertas
type AlertController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAlertController crea un controlador de alertas
func NewAlertController(ctx *gin.Context, container *container.ServiceContainer) *AlertController {
	return &AlertController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAlertFunc devuelve el manejador Gin para el método indicado
func HandleAlertFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAlertController(ctx, container)

		switch method {
		case "getAlerts":
			controller.GetAlerts()
		case "getAlert":
			controller.GetAlert()
		case "createAlert":
			controller.CreateAlert()
		case "resolveAlert":
			controller.ResolveAlert()
		case "deleteAlert":
			controller.DeleteAlert()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "método inválido", nil)
		}
	}
}

// GetAlerts lista las alertas visibles, con filtro por estado
// (all, active, resolved)
func (c *AlertController) GetAlerts() {
	var q services.AlertListQuery
	if err := c.Ctx.ShouldBindQuery(&q); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de consulta inválidos", nil)
		return
	}
	q.PageSize = resolvePageSize(c.Ctx, c.Container, "alerts", 10)

	user := middleware.CurrentUser(c.Ctx)
	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)

	alerts, total, err := alertService.GetAlerts(user, &q)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, pagedResponse(alerts, total, q.Page, q.PageSize))
}

// GetAlert devuelve el detalle de una alerta
func (c *AlertController) GetAlert() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de alerta inválido")
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)

	alert, err := alertService.GetAlertByID(user, id)
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, alert)
}

// CreateAlert registra una alerta nueva
func (c *AlertController) CreateAlert() {
	var req services.AlertRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de petición inválidos", nil)
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)

	alert, err := alertService.CreateAlert(user, &req)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "alerta creada correctamente", alert)
}

// ResolveAlert marca una alerta como resuelta
func (c *AlertController) ResolveAlert() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de alerta inválido")
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)

	alert, err := alertService.ResolveAlert(user, id)
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.SuccessWithMessage(c.Ctx, "alerta resuelta correctamente", alert)
}

// DeleteAlert elimina una alerta
func (c *AlertController) DeleteAlert() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de alerta inválido")
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)

	if err := alertService.DeleteAlert(user, id); err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.SuccessWithMessage(c.Ctx, "alerta eliminada correctamente", nil)
}
