package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
)

// DeviceTypeRequest son los datos de un tipo de dispositivo
type DeviceTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// InterfaceDeviceTypeService define el catálogo de tipos de dispositivo
type InterfaceDeviceTypeService interface {
	GetDeviceTypes(q *models.ListQuery) ([]models.DeviceType, int64, error)
	GetDeviceTypeByID(id uint) (*models.DeviceType, error)
	CreateDeviceType(req *DeviceTypeRequest) (*models.DeviceType, error)
	UpdateDeviceType(id uint, req *DeviceTypeRequest) (*models.DeviceType, error)
	DeleteDeviceType(id uint) error
}

// DeviceTypeService gestiona el catálogo compartido de tipos.
// Los tipos son globales, no llevan scoping por organización.
type DeviceTypeService struct {
	DB *gorm.DB
}

// NewDeviceTypeService crea el servicio de tipos de dispositivo
func NewDeviceTypeService(db *gorm.DB) InterfaceDeviceTypeService {
	return &DeviceTypeService{DB: db}
}

// 1 GetDeviceTypes lista los tipos con búsqueda por nombre
func (s *DeviceTypeService) GetDeviceTypes(q *models.ListQuery) ([]models.DeviceType, int64, error) {
	normalizeListQuery(q, 10)

	query := s.DB.Model(&models.DeviceType{})
	if q.Search != "" {
		like := "%" + q.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	query = query.Order("name")

	var types []models.DeviceType
	total, err := paginate(query, q.Page, q.PageSize, &types)
	if err != nil {
		return nil, 0, err
	}
	return types, total, nil
}

// 2 GetDeviceTypeByID busca un tipo por ID
func (s *DeviceTypeService) GetDeviceTypeByID(id uint) (*models.DeviceType, error) {
	var deviceType models.DeviceType
	if err := s.DB.First(&deviceType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("el tipo de dispositivo no existe")
		}
		return nil, err
	}
	return &deviceType, nil
}

// 3 CreateDeviceType crea un tipo con nombre único
func (s *DeviceTypeService) CreateDeviceType(req *DeviceTypeRequest) (*models.DeviceType, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("el nombre es obligatorio")
	}

	var count int64
	if err := s.DB.Model(&models.DeviceType{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("ya existe un tipo de dispositivo con ese nombre")
	}

	deviceType := &models.DeviceType{Name: name, Description: req.Description}
	if err := s.DB.Create(deviceType).Error; err != nil {
		return nil, err
	}
	return deviceType, nil
}

// 4 UpdateDeviceType actualiza nombre y descripción
func (s *DeviceTypeService) UpdateDeviceType(id uint, req *DeviceTypeRequest) (*models.DeviceType, error) {
	deviceType, err := s.GetDeviceTypeByID(id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("el nombre es obligatorio")
	}

	var count int64
	if err := s.DB.Model(&models.DeviceType{}).Where("name = ? AND id != ?", name, id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("ya existe un tipo de dispositivo con ese nombre")
	}

	deviceType.Name = name
	deviceType.Description = req.Description
	if err := s.DB.Save(deviceType).Error; err != nil {
		return nil, err
	}
	return deviceType, nil
}

// 5 DeleteDeviceType elimina un tipo sin dispositivos asociados
func (s *DeviceTypeService) DeleteDeviceType(id uint) error {
	deviceType, err := s.GetDeviceTypeByID(id)
	if err != nil {
		return err
	}

	var count int64
	if err := s.DB.Model(&models.Device{}).Where("device_type_id = ?", deviceType.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("no se puede eliminar un tipo con dispositivos asociados")
	}

	return s.DB.Delete(&models.DeviceType{}, deviceType.ID).Error
}
