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

// InterfaceDeviceController define el controlador de dispositivos
type InterfaceDeviceController interface {
	GetDevices()
	GetDevice()
	CreateDevice()
	UpdateDevice()
	DeleteDevice()
}

// DeviceController procesa las peticiones de dispositivos
type DeviceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDeviceController crea un controlador de dispositivos
func NewDeviceController(ctx *gin.Context, container *container.ServiceContainer) *DeviceController {
	return &DeviceController{
		Ctx:       ctx,
		Container: container,
	}
}

// DeviceRequest representa la petición de alta o edición de un dispositivo
type DeviceRequest struct {
	Name           string `json:"name" binding:"required" example:"Medidor 01"`
	Description    string `json:"description"`
	Location       string `json:"location" example:"Zona Norte"`
	DeviceTypeID   uint   `json:"device_type_id" binding:"required" example:"1"`
	Status         string `json:"status" example:"active"`
	CategoryID     *uint  `json:"category_id"`
	ZoneID         *uint  `json:"zone_id"`
	OrganizationID *uint  `json:"organization_id"`
}

// HandleDeviceFunc devuelve el manejador Gin para el método indicado
func HandleDeviceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDeviceController(ctx, container)

		switch method {
		case "getDevices":
			controller.GetDevices()
		case "getDevice":
			controller.GetDevice()
		case "createDevice":
			controller.CreateDevice()
		case "updateDevice":
			controller.UpdateDevice()
		case "deleteDevice":
			controller.DeleteDevice()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "método inválido", nil)
		}
	}
}

// GetDevices lista los dispositivos visibles para el usuario
// @Summary      Listar dispositivos
// @Description  Lista paginada con búsqueda, filtros y orden
// @Tags         Devices
// @Produce      json
// @Security     BearerAuth
// @Router       /devices [get]
func (c *DeviceController) GetDevices() {
	var q services.DeviceListQuery
	if err := c.Ctx.ShouldBindQuery(&q); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de consulta inválidos", nil)
		return
	}
	q.PageSize = resolvePageSize(c.Ctx, c.Container, "devices", 10)

	user := middleware.CurrentUser(c.Ctx)
	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)

	devices, total, err := deviceService.GetDevices(user, &q)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, pagedResponse(devices, total, q.Page, q.PageSize))
}

// GetDevice devuelve el detalle de un dispositivo
func (c *DeviceController) GetDevice() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de dispositivo inválido")
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)

	device, err := deviceService.GetDeviceByID(user, id)
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, device)
}

// CreateDevice registra un dispositivo nuevo
func (c *DeviceController) CreateDevice() {
	var req DeviceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de petición inválidos", nil)
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)

	device := &models.Device{
		Name:           req.Name,
		Description:    req.Description,
		Location:       req.Location,
		DeviceTypeID:   req.DeviceTypeID,
		Status:         models.DeviceStatus(req.Status),
		CategoryID:     req.CategoryID,
		ZoneID:         req.ZoneID,
		OrganizationID: req.OrganizationID,
	}

	if err := deviceService.CreateDevice(user, device); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	created, err := deviceService.GetDeviceByID(user, device.ID)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "dispositivo creado correctamente", created)
}

// UpdateDevice actualiza los campos enviados
func (c *DeviceController) UpdateDevice() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de dispositivo inválido")
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de petición inválidos", nil)
		return
	}

	// Los campos de pertenencia no se cambian desde este endpoint
	delete(updates, "owner_id")
	delete(updates, "id")

	user := middleware.CurrentUser(c.Ctx)
	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)

	device, err := deviceService.UpdateDevice(user, id, updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "dispositivo actualizado correctamente", device)
}

// DeleteDevice elimina un dispositivo con sus mediciones y alertas
func (c *DeviceController) DeleteDevice() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de dispositivo inválido")
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)

	if err := deviceService.DeleteDevice(user, id); err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.SuccessWithMessage(c.Ctx, "dispositivo eliminado correctamente", nil)
}
