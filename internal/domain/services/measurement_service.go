package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
)

// MeasurementListQuery son los filtros de la lista de mediciones
type MeasurementListQuery struct {
	models.ListQuery
	Device   uint   `form:"device"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}

// MeasurementRequest son los datos para crear o editar una medición
type MeasurementRequest struct {
	DeviceID       uint       `json:"device_id" binding:"required"`
	Value          float64    `json:"value" binding:"required"`
	Unit           string     `json:"unit" binding:"required"`
	Timestamp      *time.Time `json:"timestamp"`
	OrganizationID *uint      `json:"organization_id"`
}

// InterfaceMeasurementService define el servicio de mediciones
type InterfaceMeasurementService interface {
	GetMeasurements(user *models.User, q *MeasurementListQuery) ([]models.Measurement, int64, error)
	AllMeasurements(user *models.User, q *MeasurementListQuery) ([]models.Measurement, error)
	GetMeasurementByID(user *models.User, id uint) (*models.Measurement, error)
	CreateMeasurement(user *models.User, req *MeasurementRequest) (*models.Measurement, error)
	UpdateMeasurement(user *models.User, id uint, req *MeasurementRequest) (*models.Measurement, error)
	DeleteMeasurement(user *models.User, id uint) error
}

// Columnas de orden permitidas para mediciones
var measurementSortFields = map[string]string{
	"timestamp": "measurements.timestamp",
	"value":     "measurements.value",
	"unit":      "measurements.unit",
	"device":    "devices.name",
}

// MeasurementService gestiona mediciones dentro del alcance del usuario
type MeasurementService struct {
	DB    *gorm.DB
	Scope InterfaceScopeService
}

// NewMeasurementService crea el servicio de mediciones
func NewMeasurementService(db *gorm.DB, scope InterfaceScopeService) InterfaceMeasurementService {
	return &MeasurementService{DB: db, Scope: scope}
}

func (s *MeasurementService) filteredMeasurements(user *models.User, q *MeasurementListQuery) *gorm.DB {
	query := s.Scope.ScopedMeasurements(user)

	if search := q.Search; search != "" {
		like := "%" + search + "%"
		query = query.Where("devices.name LIKE ? OR measurements.unit LIKE ?", like, like)
	}

	if q.Device != 0 {
		query = query.Where("measurements.device_id = ?", q.Device)
	}
	if q.DateFrom != "" {
		if from, err := time.Parse("2006-01-02", q.DateFrom); err == nil {
			query = query.Where("measurements.timestamp >= ?", from)
		}
	}
	if q.DateTo != "" {
		// El límite superior es inclusivo hasta el final del día
		if to, err := time.Parse("2006-01-02", q.DateTo); err == nil {
			query = query.Where("measurements.timestamp < ?", to.AddDate(0, 0, 1))
		}
	}

	return query.Order(sortExpr(q.Sort, measurementSortFields, "measurements.timestamp DESC"))
}

// 1 GetMeasurements devuelve la página pedida de mediciones visibles
func (s *MeasurementService) GetMeasurements(user *models.User, q *MeasurementListQuery) ([]models.Measurement, int64, error) {
	normalizeListQuery(&q.ListQuery, 15)

	var measurements []models.Measurement
	query := s.filteredMeasurements(user, q).Preload("Device").Preload("Device.DeviceType")

	total, err := paginate(query, q.Page, q.PageSize, &measurements)
	if err != nil {
		return nil, 0, err
	}
	return measurements, total, nil
}

// 2 AllMeasurements devuelve todas las mediciones visibles con los
// mismos filtros que la lista; lo usa la exportación a Excel
func (s *MeasurementService) AllMeasurements(user *models.User, q *MeasurementListQuery) ([]models.Measurement, error) {
	var measurements []models.Measurement
	err := s.filteredMeasurements(user, q).
		Preload("Device").Preload("Device.DeviceType").
		Find(&measurements).Error
	if err != nil {
		return nil, err
	}
	return measurements, nil
}

// 3 GetMeasurementByID busca una medición dentro del alcance del usuario
func (s *MeasurementService) GetMeasurementByID(user *models.User, id uint) (*models.Measurement, error) {
	var measurement models.Measurement
	err := s.Scope.ScopedMeasurements(user).
		Preload("Device").Preload("Device.DeviceType").
		First(&measurement, "measurements.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("la medición no existe")
		}
		return nil, err
	}
	return &measurement, nil
}

// validateMeasurement aplica las reglas de consistencia: el valor debe
// ser positivo y la organización de la medición no puede contradecir a
// la del dispositivo
func (s *MeasurementService) validateMeasurement(device *models.Device, value float64, orgID *uint) error {
	if value <= 0 {
		return errors.New("el valor de la medición debe ser mayor que cero")
	}
	if orgID != nil {
		if device.OrganizationID == nil || *device.OrganizationID != *orgID {
			return errors.New("la organización de la medición no coincide con la del dispositivo")
		}
	}
	return nil
}

// 4 CreateMeasurement registra una medición sobre un dispositivo visible.
// Sin organización explícita hereda la del dispositivo.
func (s *MeasurementService) CreateMeasurement(user *models.User, req *MeasurementRequest) (*models.Measurement, error) {
	var device models.Device
	if err := s.Scope.ScopedDevices(user).First(&device, "devices.id = ?", req.DeviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("el dispositivo no existe")
		}
		return nil, err
	}

	if err := s.validateMeasurement(&device, req.Value, req.OrganizationID); err != nil {
		return nil, err
	}

	orgID := req.OrganizationID
	if orgID == nil {
		orgID = device.OrganizationID
	}

	timestamp := time.Now()
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	measurement := &models.Measurement{
		DeviceID:       device.ID,
		OrganizationID: orgID,
		Value:          req.Value,
		Unit:           req.Unit,
		Timestamp:      timestamp,
	}

	if err := s.DB.Create(measurement).Error; err != nil {
		return nil, err
	}
	return s.GetMeasurementByID(user, measurement.ID)
}

// 5 UpdateMeasurement edita una medición existente con las mismas reglas
func (s *MeasurementService) UpdateMeasurement(user *models.User, id uint, req *MeasurementRequest) (*models.Measurement, error) {
	measurement, err := s.GetMeasurementByID(user, id)
	if err != nil {
		return nil, err
	}

	var device models.Device
	if err := s.Scope.ScopedDevices(user).First(&device, "devices.id = ?", req.DeviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("el dispositivo no existe")
		}
		return nil, err
	}

	if err := s.validateMeasurement(&device, req.Value, req.OrganizationID); err != nil {
		return nil, err
	}

	measurement.DeviceID = device.ID
	measurement.Value = req.Value
	measurement.Unit = req.Unit
	if req.Timestamp != nil {
		measurement.Timestamp = *req.Timestamp
	}
	if req.OrganizationID != nil {
		measurement.OrganizationID = req.OrganizationID
	} else {
		measurement.OrganizationID = device.OrganizationID
	}

	if err := s.DB.Save(measurement).Error; err != nil {
		return nil, err
	}
	return s.GetMeasurementByID(user, id)
}

// 6 DeleteMeasurement elimina una medición visible
func (s *MeasurementService) DeleteMeasurement(user *models.User, id uint) error {
	measurement, err := s.GetMeasurementByID(user, id)
	if err != nil {
		return err
	}
	return s.DB.Delete(&models.Measurement{}, measurement.ID).Error
}
