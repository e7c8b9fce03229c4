package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
)

// OrganizationRequest son los datos de una organización
type OrganizationRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// InterfaceOrganizationService define el servicio de organizaciones
type InterfaceOrganizationService interface {
	GetOrganizations(q *models.ListQuery) ([]models.Organization, int64, error)
	GetOrganizationByID(id uint) (*models.Organization, error)
	CreateOrganization(req *OrganizationRequest) (*models.Organization, error)
	UpdateOrganization(id uint, req *OrganizationRequest) (*models.Organization, error)
	DeleteOrganization(id uint) error
}

// OrganizationService gestiona organizaciones. Solo los administradores
// llegan hasta aquí, el recorte de permisos vive en el middleware.
type OrganizationService struct {
	DB *gorm.DB
}

// NewOrganizationService crea el servicio de organizaciones
func NewOrganizationService(db *gorm.DB) InterfaceOrganizationService {
	return &OrganizationService{DB: db}
}

// 1 GetOrganizations lista organizaciones con búsqueda por nombre
func (s *OrganizationService) GetOrganizations(q *models.ListQuery) ([]models.Organization, int64, error) {
	normalizeListQuery(q, 10)

	query := s.DB.Model(&models.Organization{})
	if q.Search != "" {
		like := "%" + q.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	query = query.Order("name")

	var organizations []models.Organization
	total, err := paginate(query, q.Page, q.PageSize, &organizations)
	if err != nil {
		return nil, 0, err
	}
	return organizations, total, nil
}

// 2 GetOrganizationByID busca una organización con sus zonas
func (s *OrganizationService) GetOrganizationByID(id uint) (*models.Organization, error) {
	var organization models.Organization
	if err := s.DB.Preload("Zones").First(&organization, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("la organización no existe")
		}
		return nil, err
	}
	return &organization, nil
}

// 3 CreateOrganization crea una organización con nombre único
func (s *OrganizationService) CreateOrganization(req *OrganizationRequest) (*models.Organization, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("el nombre es obligatorio")
	}

	var count int64
	if err := s.DB.Model(&models.Organization{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("ya existe una organización con ese nombre")
	}

	organization := &models.Organization{Name: name, Description: req.Description}
	if err := s.DB.Create(organization).Error; err != nil {
		return nil, err
	}
	return organization, nil
}

// 4 UpdateOrganization actualiza nombre y descripción
func (s *OrganizationService) UpdateOrganization(id uint, req *OrganizationRequest) (*models.Organization, error) {
	organization, err := s.GetOrganizationByID(id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("el nombre es obligatorio")
	}

	var count int64
	if err := s.DB.Model(&models.Organization{}).Where("name = ? AND id != ?", name, id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("ya existe una organización con ese nombre")
	}

	organization.Name = name
	organization.Description = req.Description
	if err := s.DB.Save(organization).Error; err != nil {
		return nil, err
	}
	return organization, nil
}

// 5 DeleteOrganization hace un borrado lógico de la organización.
// Las zonas, dispositivos y perfiles conservan la referencia por si
// la organización se restaura.
func (s *OrganizationService) DeleteOrganization(id uint) error {
	organization, err := s.GetOrganizationByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(organization).Error
}
