package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/infrastructure/config"
)

// DeviceListQuery son los filtros de la lista de dispositivos
type DeviceListQuery struct {
	models.ListQuery
	DeviceType uint   `form:"device_type"`
	Status     string `form:"status"`
	Category   uint   `form:"category"`
	Zone       uint   `form:"zone"`
}

// InterfaceDeviceService define el servicio de dispositivos
type InterfaceDeviceService interface {
	GetDevices(user *models.User, q *DeviceListQuery) ([]models.Device, int64, error)
	AllDevices(user *models.User, q *DeviceListQuery) ([]models.Device, error)
	GetDeviceByID(user *models.User, id uint) (*models.Device, error)
	CreateDevice(user *models.User, device *models.Device) error
	UpdateDevice(user *models.User, id uint, updates map[string]interface{}) (*models.Device, error)
	DeleteDevice(user *models.User, id uint) error
}

// Columnas de orden permitidas para dispositivos
var deviceSortFields = map[string]string{
	"name":        "devices.name",
	"device_type": "device_types.name",
	"location":    "devices.location",
	"status":      "devices.status",
	"created_at":  "devices.created_at",
}

// DeviceService gestiona dispositivos dentro del alcance del usuario
type DeviceService struct {
	DB     *gorm.DB
	Config *config.Config
	Scope  InterfaceScopeService
}

// NewDeviceService crea el servicio de dispositivos
func NewDeviceService(db *gorm.DB, cfg *config.Config, scope InterfaceScopeService) InterfaceDeviceService {
	return &DeviceService{DB: db, Config: cfg, Scope: scope}
}

// filteredDevices arma la consulta: primero el scoping del tenant y
// después los filtros de búsqueda, que solo reducen el conjunto
func (s *DeviceService) filteredDevices(user *models.User, q *DeviceListQuery) *gorm.DB {
	query := s.Scope.ScopedDevices(user).
		Select("devices.*").
		Joins("JOIN device_types ON device_types.id = devices.device_type_id")

	if search := q.Search; search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"devices.name LIKE ? OR devices.description LIKE ? OR devices.location LIKE ? OR device_types.name LIKE ?",
			like, like, like, like,
		)
	}

	if q.DeviceType != 0 {
		query = query.Where("devices.device_type_id = ?", q.DeviceType)
	}
	if q.Status != "" {
		query = query.Where("devices.status = ?", q.Status)
	}
	if q.Category != 0 {
		query = query.Where("devices.category_id = ?", q.Category)
	}
	if q.Zone != 0 {
		query = query.Where("devices.zone_id = ?", q.Zone)
	}

	return query.Order(sortExpr(q.Sort, deviceSortFields, "devices.created_at DESC"))
}

// 1 GetDevices devuelve la página pedida de dispositivos visibles
func (s *DeviceService) GetDevices(user *models.User, q *DeviceListQuery) ([]models.Device, int64, error) {
	normalizeListQuery(&q.ListQuery, 10)

	var devices []models.Device
	query := s.filteredDevices(user, q).
		Preload("DeviceType").Preload("Category").Preload("Zone")

	total, err := paginate(query, q.Page, q.PageSize, &devices)
	if err != nil {
		return nil, 0, err
	}
	return devices, total, nil
}

// 2 AllDevices devuelve todos los dispositivos visibles con los mismos
// filtros que la lista; lo usa la exportación a Excel
func (s *DeviceService) AllDevices(user *models.User, q *DeviceListQuery) ([]models.Device, error) {
	var devices []models.Device
	err := s.filteredDevices(user, q).
		Preload("DeviceType").
		Find(&devices).Error
	if err != nil {
		return nil, err
	}
	return devices, nil
}

// 3 GetDeviceByID busca un dispositivo dentro del alcance del usuario
func (s *DeviceService) GetDeviceByID(user *models.User, id uint) (*models.Device, error) {
	var device models.Device
	err := s.Scope.ScopedDevices(user).
		Preload("DeviceType").Preload("Category").Preload("Zone").Preload("Organization").
		First(&device, "devices.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("el dispositivo no existe")
		}
		return nil, err
	}
	return &device, nil
}

// validateDeviceType comprueba que el tipo exista en el catálogo
func (s *DeviceService) validateDeviceType(typeID uint) error {
	var count int64
	if err := s.DB.Model(&models.DeviceType{}).Where("id = ?", typeID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errors.New("el tipo de dispositivo no existe")
	}
	return nil
}

// validateZone comprueba que la zona pertenezca a la organización del
// dispositivo
func (s *DeviceService) validateZone(orgID *uint, zoneID uint) error {
	var zone models.Zone
	if err := s.DB.First(&zone, zoneID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("la zona no existe")
		}
		return err
	}
	if orgID == nil || zone.OrganizationID != *orgID {
		return errors.New("la zona no pertenece a la organización del dispositivo")
	}
	return nil
}

// validateCategory comprueba que la categoría sea global o de la
// organización del dispositivo
func (s *DeviceService) validateCategory(orgID *uint, categoryID uint) error {
	var category models.Category
	if err := s.DB.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("la categoría no existe")
		}
		return err
	}
	if category.OrganizationID == nil {
		return nil
	}
	if orgID == nil || *category.OrganizationID != *orgID {
		return errors.New("la categoría no pertenece a la organización del dispositivo")
	}
	return nil
}

// 4 CreateDevice registra un dispositivo a nombre del usuario.
// La organización nunca sale de la petición: el dispositivo hereda
// siempre la del usuario, salvo que un superusuario indique otra.
func (s *DeviceService) CreateDevice(user *models.User, device *models.Device) error {
	if device.Status == "" {
		device.Status = models.DeviceStatusActive
	}
	if !models.ValidDeviceStatus(device.Status) {
		return errors.New("estado de dispositivo inválido")
	}

	if err := s.validateDeviceType(device.DeviceTypeID); err != nil {
		return err
	}

	device.OwnerID = user.ID
	if user.IsSuperuser {
		if device.OrganizationID == nil {
			device.OrganizationID = userOrganization(user)
		}
	} else {
		device.OrganizationID = userOrganization(user)
	}

	if device.ZoneID != nil {
		if err := s.validateZone(device.OrganizationID, *device.ZoneID); err != nil {
			return err
		}
	}
	if device.CategoryID != nil {
		if err := s.validateCategory(device.OrganizationID, *device.CategoryID); err != nil {
			return err
		}
	}

	return s.DB.Create(device).Error
}

// updateID lee un identificador numérico del mapa de cambios; los
// números de JSON llegan como float64
func updateID(updates map[string]interface{}, key string) (uint, bool) {
	switch v := updates[key].(type) {
	case float64:
		return uint(v), v > 0
	case int:
		return uint(v), v > 0
	case uint:
		return v, v > 0
	}
	return 0, false
}

// 5 UpdateDevice actualiza los campos recibidos. Los campos de
// pertenencia se descartan y las referencias a zona, categoría y tipo
// se validan contra la organización del dispositivo.
func (s *DeviceService) UpdateDevice(user *models.User, id uint, updates map[string]interface{}) (*models.Device, error) {
	device, err := s.GetDeviceByID(user, id)
	if err != nil {
		return nil, err
	}

	delete(updates, "id")
	delete(updates, "owner_id")
	delete(updates, "organization_id")

	if status, ok := updates["status"].(string); ok {
		if !models.ValidDeviceStatus(models.DeviceStatus(status)) {
			return nil, errors.New("estado de dispositivo inválido")
		}
	}

	if typeID, ok := updateID(updates, "device_type_id"); ok {
		if err := s.validateDeviceType(typeID); err != nil {
			return nil, err
		}
	}
	if zoneID, ok := updateID(updates, "zone_id"); ok {
		if err := s.validateZone(device.OrganizationID, zoneID); err != nil {
			return nil, err
		}
	}
	if categoryID, ok := updateID(updates, "category_id"); ok {
		if err := s.validateCategory(device.OrganizationID, categoryID); err != nil {
			return nil, err
		}
	}

	if err := s.DB.Model(device).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetDeviceByID(user, id)
}

// 6 DeleteDevice elimina el dispositivo y sus dependientes en cascada
// para no dejar mediciones ni alertas huérfanas
func (s *DeviceService) DeleteDevice(user *models.User, id uint) error {
	device, err := s.GetDeviceByID(user, id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("device_id = ?", device.ID).Delete(&models.Measurement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("device_id = ?", device.ID).Delete(&models.Alert{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Device{}, device.ID).Error
	})
}
