package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
)

// ZoneRequest son los datos de una zona
type ZoneRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	OrganizationID uint   `json:"organization_id"`
}

// InterfaceZoneService define el servicio de zonas
type InterfaceZoneService interface {
	GetZones(user *models.User, q *models.ListQuery) ([]models.Zone, int64, error)
	GetZoneByID(user *models.User, id uint) (*models.Zone, error)
	CreateZone(user *models.User, req *ZoneRequest) (*models.Zone, error)
	UpdateZone(user *models.User, id uint, req *ZoneRequest) (*models.Zone, error)
	DeleteZone(user *models.User, id uint) error
}

// ZoneService gestiona zonas dentro de la organización del usuario
type ZoneService struct {
	DB    *gorm.DB
	Scope InterfaceScopeService
}

// NewZoneService crea el servicio de zonas
func NewZoneService(db *gorm.DB, scope InterfaceScopeService) InterfaceZoneService {
	return &ZoneService{DB: db, Scope: scope}
}

// 1 GetZones lista las zonas visibles con búsqueda por nombre
func (s *ZoneService) GetZones(user *models.User, q *models.ListQuery) ([]models.Zone, int64, error) {
	normalizeListQuery(q, 10)

	query := s.Scope.ScopedZones(user)
	if q.Search != "" {
		like := "%" + q.Search + "%"
		query = query.Where("zones.name LIKE ? OR zones.description LIKE ?", like, like)
	}
	query = query.Order("zones.name").Preload("Organization")

	var zones []models.Zone
	total, err := paginate(query, q.Page, q.PageSize, &zones)
	if err != nil {
		return nil, 0, err
	}
	return zones, total, nil
}

// 2 GetZoneByID busca una zona visible para el usuario
func (s *ZoneService) GetZoneByID(user *models.User, id uint) (*models.Zone, error) {
	var zone models.Zone
	err := s.Scope.ScopedZones(user).
		Preload("Organization").
		First(&zone, "zones.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("la zona no existe")
		}
		return nil, err
	}
	return &zone, nil
}

// resolveZoneOrganization decide a qué organización pertenece la zona.
// Un superusuario puede elegirla, el resto usa siempre la propia.
func (s *ZoneService) resolveZoneOrganization(user *models.User, requested uint) (uint, error) {
	if user.IsSuperuser && requested != 0 {
		return requested, nil
	}
	org := userOrganization(user)
	if org == nil {
		return 0, errors.New("necesitas pertenecer a una organización para gestionar zonas")
	}
	return *org, nil
}

// 3 CreateZone crea una zona en la organización del usuario
func (s *ZoneService) CreateZone(user *models.User, req *ZoneRequest) (*models.Zone, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("el nombre es obligatorio")
	}

	orgID, err := s.resolveZoneOrganization(user, req.OrganizationID)
	if err != nil {
		return nil, err
	}

	zone := &models.Zone{
		Name:           name,
		Description:    req.Description,
		OrganizationID: orgID,
	}
	if err := s.DB.Create(zone).Error; err != nil {
		return nil, err
	}
	return s.GetZoneByID(user, zone.ID)
}

// 4 UpdateZone actualiza una zona visible
func (s *ZoneService) UpdateZone(user *models.User, id uint, req *ZoneRequest) (*models.Zone, error) {
	zone, err := s.GetZoneByID(user, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("el nombre es obligatorio")
	}

	zone.Name = name
	zone.Description = req.Description
	if err := s.DB.Save(zone).Error; err != nil {
		return nil, err
	}
	return zone, nil
}

// 5 DeleteZone elimina una zona visible. Los dispositivos de la zona
// quedan sin zona asignada.
func (s *ZoneService) DeleteZone(user *models.User, id uint) error {
	zone, err := s.GetZoneByID(user, id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Device{}).Where("zone_id = ?", zone.ID).Update("zone_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Zone{}, zone.ID).Error
	})
}
