package controllers

import (
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/app/middleware"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services/container"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/code"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/response"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportController genera las descargas en Excel
type ExportController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewExportController crea un controlador de exportación
func NewExportController(ctx *gin.Context, container *container.ServiceContainer) *ExportController {
	return &ExportController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleExportFunc devuelve el manejador Gin para el método indicado
func HandleExportFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewExportController(ctx, container)

		switch method {
		case "exportDevices":
			controller.ExportDevices()
		case "exportMeasurements":
			controller.ExportMeasurements()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "método inválido", nil)
		}
	}
}

// writeWorkbook envía el libro como descarga adjunta
func (c *ExportController) writeWorkbook(f *excelize.File, filename string) {
	c.Ctx.Header("Content-Type", xlsxContentType)
	c.Ctx.Header("Content-Disposition", `attachment; filename="`+url.PathEscape(filename)+`"`)

	if err := f.Write(c.Ctx.Writer); err != nil {
		response.ServerError(c.Ctx)
	}
}

// ExportDevices descarga los dispositivos visibles en Excel.
// Acepta los mismos filtros que la lista.
// @Summary      Exportar dispositivos
// @Tags         Export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Router       /export/devices [get]
func (c *ExportController) ExportDevices() {
	var q services.DeviceListQuery
	if err := c.Ctx.ShouldBindQuery(&q); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de consulta inválidos", nil)
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	exportService := c.Container.GetService("export").(services.InterfaceExportService)

	f, filename, err := exportService.ExportDevices(user, &q)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	c.writeWorkbook(f, filename)
}

// ExportMeasurements descarga las mediciones visibles en Excel con la
// hoja de resumen
func (c *ExportController) ExportMeasurements() {
	var q services.MeasurementListQuery
	if err := c.Ctx.ShouldBindQuery(&q); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de consulta inválidos", nil)
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	exportService := c.Container.GetService("export").(services.InterfaceExportService)

	f, filename, err := exportService.ExportMeasurements(user, &q)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	c.writeWorkbook(f, filename)
}
