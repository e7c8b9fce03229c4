package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/app/middleware"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services/container"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/code"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/response"
)

// InterfaceMeasurementController define el controlador de mediciones
type InterfaceMeasurementController interface {
	GetMeasurements()
	GetMeasurement()
	CreateMeasurement()
	UpdateMeasurement()
	DeleteMeasurement()
}

// MeasurementController procesa las peticiones de mediciones
type MeasurementController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewMeasurementController crea un controlador de mediciones
func NewMeasurementController(ctx *gin.Context, container *container.ServiceContainer) *MeasurementController {
	return &MeasurementController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleMeasurementFunc devuelve el manejador Gin para el método indicado
func HandleMeasurementFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMeasurementController(ctx, container)

		switch method {
		case "getMeasurements":
			controller.GetMeasurements()
		case "getMeasurement":
			controller.GetMeasurement()
		case "createMeasurement":
			controller.CreateMeasurement()
		case "updateMeasurement":
			controller.UpdateMeasurement()
		case "deleteMeasurement":
			controller.DeleteMeasurement()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "método inválido", nil)
		}
	}
}

// GetMeasurements lista las mediciones visibles para el usuario
// @Summary      Listar mediciones
// @Description  Lista paginada con filtros por dispositivo y rango de fechas
// @Tags         Measurements
// @Produce      json
// @Security     BearerAuth
// @Router       /measurements [get]
func (c *MeasurementController) GetMeasurements() {
	var q services.MeasurementListQuery
	if err := c.Ctx.ShouldBindQuery(&q); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de consulta inválidos", nil)
		return
	}
	q.PageSize = resolvePageSize(c.Ctx, c.Container, "measurements", 15)

	user := middleware.CurrentUser(c.Ctx)
	measurementService := c.Container.GetService("measurement").(services.InterfaceMeasurementService)

	measurements, total, err := measurementService.GetMeasurements(user, &q)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, pagedResponse(measurements, total, q.Page, q.PageSize))
}

// GetMeasurement devuelve el detalle de una medición
func (c *MeasurementController) GetMeasurement() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de medición inválido")
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	measurementService := c.Container.GetService("measurement").(services.InterfaceMeasurementService)

	measurement, err := measurementService.GetMeasurementByID(user, id)
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, measurement)
}

// CreateMeasurement registra una medición nueva
func (c *MeasurementController) CreateMeasurement() {
	var req services.MeasurementRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de petición inválidos", nil)
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	measurementService := c.Container.GetService("measurement").(services.InterfaceMeasurementService)

	measurement, err := measurementService.CreateMeasurement(user, &req)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "medición registrada correctamente", measurement)
}

// UpdateMeasurement edita una medición existente
func (c *MeasurementController) UpdateMeasurement() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de medición inválido")
		return
	}

	var req services.MeasurementRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de petición inválidos", nil)
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	measurementService := c.Container.GetService("measurement").(services.InterfaceMeasurementService)

	measurement, err := measurementService.UpdateMeasurement(user, id, &req)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "medición actualizada correctamente", measurement)
}

// DeleteMeasurement elimina una medición
func (c *MeasurementController) DeleteMeasurement() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de medición inválido")
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	measurementService := c.Container.GetService("measurement").(services.InterfaceMeasurementService)

	if err := measurementService.DeleteMeasurement(user, id); err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.SuccessWithMessage(c.Ctx, "medición eliminada correctamente", nil)
}
