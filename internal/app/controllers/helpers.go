package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/app/middleware"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services/container"
)

// parseID convierte el parámetro :id de la ruta
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// resolvePageSize decide el tamaño de página de una lista. Un tamaño
// válido en la petición se guarda como preferencia del usuario; sin
// parámetro se usa la preferencia guardada o el valor por defecto de
// la vista.
func resolvePageSize(ctx *gin.Context, c *container.ServiceContainer, view string, defaultSize int) int {
	user := middleware.CurrentUser(ctx)
	if user == nil {
		return defaultSize
	}

	redisService := c.GetService("redis").(services.InterfaceRedisService)

	raw := ctx.Query("page_size")
	if raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && models.ValidPageSize(size) {
			// La preferencia se guarda con el mejor esfuerzo, sin Redis
			// la lista funciona igual
			_ = redisService.SetPageSize(ctx.Request.Context(), user.ID, view, size)
			return size
		}
	}

	return redisService.GetPageSize(ctx.Request.Context(), user.ID, view, defaultSize)
}

// pagedResponse arma el cuerpo de una respuesta paginada
func pagedResponse(items interface{}, total int64, page, pageSize int) gin.H {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return gin.H{
		"items":       items,
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": totalPages,
	}
}
