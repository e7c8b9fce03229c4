package services

import (
	"gorm.io/gorm"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
)

// InterfaceScopeService define el filtro de visibilidad por tenant.
// Toda lista, detalle o exportación de dispositivos, mediciones, alertas,
// zonas y categorías pasa primero por aquí; los filtros de búsqueda se
// aplican después y solo pueden reducir el conjunto, nunca ampliarlo.
type InterfaceScopeService interface {
	ScopedDevices(user *models.User) *gorm.DB
	ScopedMeasurements(user *models.User) *gorm.DB
	ScopedAlerts(user *models.User) *gorm.DB
	ScopedZones(user *models.User) *gorm.DB
	ScopedCategories(user *models.User) *gorm.DB
}

// ScopeService aplica la regla de aislamiento de tenants:
//   - superusuario: sin filtro, visibilidad completa
//   - usuario con organización: filas cuya organización coincide, directa
//     o a través de su dispositivo; un dispositivo sin organización sigue
//     visible para su propietario directo
//   - usuario sin organización: solo filas de su propiedad
type ScopeService struct {
	DB *gorm.DB
}

// NewScopeService crea el servicio de scoping
func NewScopeService(db *gorm.DB) InterfaceScopeService {
	return &ScopeService{DB: db}
}

// userOrganization resuelve la organización del usuario vía su perfil
func userOrganization(user *models.User) *uint {
	if user == nil || user.Profile == nil {
		return nil
	}
	return user.Profile.OrganizationID
}

// 1 ScopedDevices devuelve la consulta de dispositivos visibles
func (s *ScopeService) ScopedDevices(user *models.User) *gorm.DB {
	q := s.DB.Model(&models.Device{})
	if user.IsSuperuser {
		return q
	}

	if org := userOrganization(user); org != nil {
		return q.Where("devices.organization_id = ? OR devices.owner_id = ?", *org, user.ID)
	}

	return q.Where("devices.owner_id = ?", user.ID)
}

// 2 ScopedMeasurements devuelve la consulta de mediciones visibles
func (s *ScopeService) ScopedMeasurements(user *models.User) *gorm.DB {
	q := s.DB.Model(&models.Measurement{}).
		Select("measurements.*").
		Joins("JOIN devices ON devices.id = measurements.device_id")
	if user.IsSuperuser {
		return q
	}

	if org := userOrganization(user); org != nil {
		return q.Where("measurements.organization_id = ? OR devices.organization_id = ? OR devices.owner_id = ?", *org, *org, user.ID)
	}

	return q.Where("devices.owner_id = ?", user.ID)
}

// 3 ScopedAlerts devuelve la consulta de alertas visibles
func (s *ScopeService) ScopedAlerts(user *models.User) *gorm.DB {
	q := s.DB.Model(&models.Alert{}).
		Select("alerts.*").
		Joins("JOIN devices ON devices.id = alerts.device_id")
	if user.IsSuperuser {
		return q
	}

	if org := userOrganization(user); org != nil {
		return q.Where("alerts.organization_id = ? OR devices.organization_id = ? OR devices.owner_id = ?", *org, *org, user.ID)
	}

	return q.Where("devices.owner_id = ?", user.ID)
}

// 4 ScopedZones devuelve la consulta de zonas visibles.
// Las zonas pertenecen siempre a una organización: un usuario sin
// organización no ve ninguna.
func (s *ScopeService) ScopedZones(user *models.User) *gorm.DB {
	q := s.DB.Model(&models.Zone{})
	if user.IsSuperuser {
		return q
	}

	if org := userOrganization(user); org != nil {
		return q.Where("zones.organization_id = ?", *org)
	}

	return q.Where("1 = 0")
}

// 5 ScopedCategories devuelve la consulta de categorías visibles.
// Las categorías globales (sin organización) son visibles para todos.
func (s *ScopeService) ScopedCategories(user *models.User) *gorm.DB {
	q := s.DB.Model(&models.Category{})
	if user.IsSuperuser {
		return q
	}

	if org := userOrganization(user); org != nil {
		return q.Where("categories.organization_id = ? OR categories.organization_id IS NULL", *org)
	}

	return q.Where("categories.organization_id IS NULL")
}
