package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services/container"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/code"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/error/response"
)

// OrganizationController procesa las peticiones de organizaciones
type OrganizationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewOrganizationController crea un controlador de organizaciones
func NewOrganizationController(ctx *gin.Context, container *container.ServiceContainer) *OrganizationController {
	return &OrganizationController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleOrganizationFunc devuelve el manejador Gin para el método indicado
func HandleOrganizationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewOrganizationController(ctx, container)

		switch method {
		case "getOrganizations":
			controller.GetOrganizations()
		case "getOrganization":
			controller.GetOrganization()
		case "createOrganization":
			controller.CreateOrganization()
		case "updateOrganization":
			controller.UpdateOrganization()
		case "deleteOrganization":
			controller.DeleteOrganization()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "método inválido", nil)
		}
	}
}

// GetOrganizations lista las organizaciones
func (c *OrganizationController) GetOrganizations() {
	var q models.ListQuery
	if err := c.Ctx.ShouldBindQuery(&q); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de consulta inválidos", nil)
		return
	}
	q.PageSize = resolvePageSize(c.Ctx, c.Container, "organizations", 10)

	organizationService := c.Container.GetService("organization").(services.InterfaceOrganizationService)

	organizations, total, err := organizationService.GetOrganizations(&q)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, pagedResponse(organizations, total, q.Page, q.PageSize))
}

// GetOrganization devuelve el detalle con sus zonas
func (c *OrganizationController) GetOrganization() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de organización inválido")
		return
	}

	organizationService := c.Container.GetService("organization").(services.InterfaceOrganizationService)

	organization, err := organizationService.GetOrganizationByID(id)
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, organization)
}

// CreateOrganization crea una organización nueva
func (c *OrganizationController) CreateOrganization() {
	var req services.OrganizationRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de petición inválidos", nil)
		return
	}

	organizationService := c.Container.GetService("organization").(services.InterfaceOrganizationService)

	organization, err := organizationService.CreateOrganization(&req)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "organización creada correctamente", organization)
}

// UpdateOrganization actualiza nombre y descripción
func (c *OrganizationController) UpdateOrganization() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de organización inválido")
		return
	}

	var req services.OrganizationRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de petición inválidos", nil)
		return
	}

	organizationService := c.Container.GetService("organization").(services.InterfaceOrganizationService)

	organization, err := organizationService.UpdateOrganization(id, &req)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "organización actualizada correctamente", organization)
}

// DeleteOrganization hace el borrado lógico
func (c *OrganizationController) DeleteOrganization() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de organización inválido")
		return
	}

	organizationService := c.Container.GetService("organization").(services.InterfaceOrganizationService)

	if err := organizationService.DeleteOrganization(id); err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.SuccessWithMessage(c.Ctx, "organización eliminada correctamente", nil)
}
