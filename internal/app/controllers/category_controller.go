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

// CategoryController procesa las peticiones de categorías
type CategoryController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCategoryController crea un controlador de categorías
func NewCategoryController(ctx *gin.Context, container *container.ServiceContainer) *CategoryController {
	return &CategoryController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleCategoryFunc devuelve el manejador Gin para el método indicado
func HandleCategoryFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCategoryController(ctx, container)

		switch method {
		case "getCategories":
			controller.GetCategories()
		case "getCategory":
			controller.GetCategory()
		case "createCategory":
			controller.CreateCategory()
		case "updateCategory":
			controller.UpdateCategory()
		case "deleteCategory":
			controller.DeleteCategory()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "método inválido", nil)
		}
	}
}

// GetCategories lista las categorías propias y globales
func (c *CategoryController) GetCategories() {
	var q models.ListQuery
	if err := c.Ctx.ShouldBindQuery(&q); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de consulta inválidos", nil)
		return
	}
	q.PageSize = resolvePageSize(c.Ctx, c.Container, "categories", 10)

	user := middleware.CurrentUser(c.Ctx)
	categoryService := c.Container.GetService("category").(services.InterfaceCategoryService)

	categories, total, err := categoryService.GetCategories(user, &q)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, pagedResponse(categories, total, q.Page, q.PageSize))
}

// GetCategory devuelve el detalle de una categoría
func (c *CategoryController) GetCategory() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de categoría inválido")
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	categoryService := c.Container.GetService("category").(services.InterfaceCategoryService)

	category, err := categoryService.GetCategoryByID(user, id)
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, category)
}

// CreateCategory crea una categoría nueva
func (c *CategoryController) CreateCategory() {
	var req services.CategoryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de petición inválidos", nil)
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	categoryService := c.Container.GetService("category").(services.InterfaceCategoryService)

	category, err := categoryService.CreateCategory(user, &req)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "categoría creada correctamente", category)
}

// UpdateCategory actualiza una categoría
func (c *CategoryController) UpdateCategory() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de categoría inválido")
		return
	}

	var req services.CategoryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parámetros de petición inválidos", nil)
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	categoryService := c.Container.GetService("category").(services.InterfaceCategoryService)

	category, err := categoryService.UpdateCategory(user, id, &req)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "categoría actualizada correctamente", category)
}

// DeleteCategory elimina una categoría
func (c *CategoryController) DeleteCategory() {
	id, ok := parseID(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "identificador de categoría inválido")
		return
	}

	user := middleware.CurrentUser(c.Ctx)
	categoryService := c.Container.GetService("category").(services.InterfaceCategoryService)

	if err := categoryService.DeleteCategory(user, id); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "categoría eliminada correctamente", nil)
}
