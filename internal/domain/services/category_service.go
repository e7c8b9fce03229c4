package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
)

// CategoryRequest son los datos de una categoría. Global indica que la
// categoría no pertenece a ninguna organización y la ven todos; solo un
// superusuario puede crearlas así.
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Global      bool   `json:"global"`
}

// InterfaceCategoryService define el servicio de categorías
type InterfaceCategoryService interface {
	GetCategories(user *models.User, q *models.ListQuery) ([]models.Category, int64, error)
	GetCategoryByID(user *models.User, id uint) (*models.Category, error)
	CreateCategory(user *models.User, req *CategoryRequest) (*models.Category, error)
	UpdateCategory(user *models.User, id uint, req *CategoryRequest) (*models.Category, error)
	DeleteCategory(user *models.User, id uint) error
}

// CategoryService gestiona categorías propias y globales
type CategoryService struct {
	DB    *gorm.DB
	Scope InterfaceScopeService
}

// NewCategoryService crea el servicio de categorías
func NewCategoryService(db *gorm.DB, scope InterfaceScopeService) InterfaceCategoryService {
	return &CategoryService{DB: db, Scope: scope}
}

// 1 GetCategories lista las categorías visibles con búsqueda por nombre
func (s *CategoryService) GetCategories(user *models.User, q *models.ListQuery) ([]models.Category, int64, error) {
	normalizeListQuery(q, 10)

	query := s.Scope.ScopedCategories(user)
	if q.Search != "" {
		like := "%" + q.Search + "%"
		query = query.Where("categories.name LIKE ? OR categories.description LIKE ?", like, like)
	}
	query = query.Order("categories.name")

	var categories []models.Category
	total, err := paginate(query, q.Page, q.PageSize, &categories)
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// 2 GetCategoryByID busca una categoría visible para el usuario
func (s *CategoryService) GetCategoryByID(user *models.User, id uint) (*models.Category, error) {
	var category models.Category
	err := s.Scope.ScopedCategories(user).
		First(&category, "categories.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("la categoría no existe")
		}
		return nil, err
	}
	return &category, nil
}

// 3 CreateCategory crea una categoría de la organización del usuario o,
// para superusuarios, una global sin organización
func (s *CategoryService) CreateCategory(user *models.User, req *CategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("el nombre es obligatorio")
	}

	category := &models.Category{Name: name, Description: req.Description}

	if req.Global {
		if !user.IsSuperuser {
			return nil, errors.New("solo un superusuario puede crear categorías globales")
		}
	} else {
		org := userOrganization(user)
		if org == nil && !user.IsSuperuser {
			return nil, errors.New("necesitas pertenecer a una organización para crear categorías")
		}
		category.OrganizationID = org
	}

	if err := s.DB.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// 4 UpdateCategory actualiza una categoría visible.
// Las globales solo las edita un superusuario.
func (s *CategoryService) UpdateCategory(user *models.User, id uint, req *CategoryRequest) (*models.Category, error) {
	category, err := s.GetCategoryByID(user, id)
	if err != nil {
		return nil, err
	}

	if category.OrganizationID == nil && !user.IsSuperuser {
		return nil, errors.New("solo un superusuario puede editar categorías globales")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("el nombre es obligatorio")
	}

	category.Name = name
	category.Description = req.Description
	if err := s.DB.Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// 5 DeleteCategory elimina una categoría visible. Los dispositivos de
// la categoría quedan sin categoría.
func (s *CategoryService) DeleteCategory(user *models.User, id uint) error {
	category, err := s.GetCategoryByID(user, id)
	if err != nil {
		return err
	}

	if category.OrganizationID == nil && !user.IsSuperuser {
		return errors.New("solo un superusuario puede eliminar categorías globales")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Device{}).Where("category_id = ?", category.ID).Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, category.ID).Error
	})
}
