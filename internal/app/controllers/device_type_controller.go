package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services/container"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/code"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/response"
)

// DeviceTypeController procesa las peticiones del catálogo de tipos
type DeviceTypeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDeviceTypeController crea un controlador de tipos de dispositivo
func NewDeviceTypeController(ctx *gin.Context, container *container.ServiceContainer) *DeviceTypeController {
	return &DeviceTypeController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleDeviceTypeFunc devuelve el manejador Gin para el método indicado
func HandleDeviceTypeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDeviceTypeController(ctx, container)

		switch method {
		case "getDeviceTypes":
			controller.GetDeviceTypes()
		case "getDeviceType":
			controller.GetDeviceType()
		case "createDeviceType":
			controller.CreateDeviceType()
		case "updateDeviceType":
			controller.UpdateDeviceType()
		case "deleteDeviceType":
			controller.DeleteDeviceType()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "método inválido", nil)
		}
	}
}

// GetDeviceTypes lista el catálogo de tipos
func (c *DeviceTypeController) GetDeviceTypes() {
	var q models.ListQuery
	if err := c.Ctx.ShouldBindQuery(&q); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de consulta inválidos", nil)
		return
	}
	q.PageSize = resolvePageSize(c.Ctx, c.Container, "device_types", 10)

	deviceTypeService := c.Container.GetService("device_type").(services.InterfaceDeviceTypeService)

	types, total, err := deviceTypeService.GetDeviceTypes(&q)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, pagedResponse(types, total, q.Page, q.PageSize))
}

// GetDeviceType devuelve el detalle de un tipo
func (c *DeviceTypeController) GetDeviceType() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de tipo inválido")
		return
	}

	deviceTypeService := c.Container.GetService("device_type").(services.InterfaceDeviceTypeService)

	deviceType, err := deviceTypeService.GetDeviceTypeByID(id)
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, deviceType)
}

// CreateDeviceType crea un tipo nuevo
func (c *DeviceTypeController) CreateDeviceType() {
	var req services.DeviceTypeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de petición inválidos", nil)
		return
	}

	deviceTypeService := c.Container.GetService("device_type").(services.InterfaceDeviceTypeService)

	deviceType, err := deviceTypeService.CreateDeviceType(&req)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "tipo de dispositivo creado correctamente", deviceType)
}

// UpdateDeviceType actualiza un tipo
func (c *DeviceTypeController) UpdateDeviceType() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de tipo inválido")
		return
	}

	var req services.DeviceTypeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de petición inválidos", nil)
		return
	}

	deviceTypeService := c.Container.GetService("device_type").(services.InterfaceDeviceTypeService)

	deviceType, err := deviceTypeService.UpdateDeviceType(id, &req)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "tipo de dispositivo actualizado correctamente", deviceType)
}

// DeleteDeviceType elimina un tipo sin dispositivos asociados
func (c *DeviceTypeController) DeleteDeviceType() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de tipo inválido")
		return
	}

	deviceTypeService := c.Container.GetService("device_type").(services.InterfaceDeviceTypeService)

	if err := deviceTypeService.DeleteDeviceType(id); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "tipo de dispositivo eliminado correctamente", nil)
}
