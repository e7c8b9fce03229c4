package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/app/middleware"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services/container"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/code"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/response"
)

// ZoneController procesa las peticiones de zonas
type ZoneController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewZoneController crea un controlador de zonas
func NewZoneController(ctx *gin.Context, container *container.ServiceContainer) *ZoneController {
	return &ZoneController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleZoneFunc devuelve el manejador Gin para el método indicado
func HandleZoneFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewZoneController(ctx, container)

		switch method {
		case "getZones":
			controller.GetZones()
		case "getZone":
			controller.GetZone()
		case "createZone":
			controller.CreateZone()
		case "updateZone":
			controller.UpdateZone()
		case "deleteZone":
			controller.DeleteZone()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "método inválido", nil)
		}
	}
}

// GetZones lista las zonas de la organización del usuario
func (c *ZoneController) GetZones() {
	var q models.ListQuery
	if err := c.Ctx.ShouldBindQuery(&q); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de consulta inválidos", nil)
		return
	}
	q.PageSize = resolvePageSize(c.Ctx, c.Container, "zones", 10)

	user := middleware.CurrentUser(c.Ctx)
	zoneService := c.Container.GetService("zone").(services.InterfaceZoneService)

	zones, total, err := zoneService.GetZones(user, &q)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, pagedResponse(zones, total, q.Page, q.PageSize))
}

// GetZone devuelve el detalle de una zona
func (c *ZoneController) GetZone() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de zona inválido")
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	zoneService := c.Container.GetService("zone").(services.InterfaceZoneService)

	zone, err := zoneService.GetZoneByID(user, id)
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, zone)
}

// CreateZone crea una zona nueva
func (c *ZoneController) CreateZone() {
	var req services.ZoneRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de petición inválidos", nil)
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	zoneService := c.Container.GetService("zone").(services.InterfaceZoneService)

	zone, err := zoneService.CreateZone(user, &req)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "zona creada correctamente", zone)
}

// UpdateZone actualiza una zona
func (c *ZoneController) UpdateZone() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de zona inválido")
		return
	}

	var req services.ZoneRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de petición inválidos", nil)
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	zoneService := c.Container.GetService("zone").(services.InterfaceZoneService)

	zone, err := zoneService.UpdateZone(user, id, &req)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "zona actualizada correctamente", zone)
}

// DeleteZone elimina una zona
func (c *ZoneController) DeleteZone() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de zona inválido")
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	zoneService := c.Container.GetService("zone").(services.InterfaceZoneService)

	if err := zoneService.DeleteZone(user, id); err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.SuccessWithMessage(c.Ctx, "zona eliminada correctamente", nil)
}
