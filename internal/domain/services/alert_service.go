package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
)

// AlertListQuery son los filtros de la lista de alertas.
// Status acepta all, active o resolved.
type AlertListQuery struct {
	models.ListQuery
	Device uint   `form:"device"`
	Type   string `form:"type"`
	Status string `form:"status"`
}

// AlertRequest son los datos para crear o editar una alerta
type AlertRequest struct {
	DeviceID       uint   `json:"device_id" binding:"required"`
	AlertType      string `json:"alert_type"`
	Message        string `json:"message" binding:"required"`
	OrganizationID *uint  `json:"organization_id"`
}

// InterfaceAlertService define el servicio de alertas
type InterfaceAlertService interface {
	GetAlerts(user *models.User, q *AlertListQuery) ([]models.Alert, int64, error)
	GetAlertByID(user *models.User, id uint) (*models.Alert, error)
	CreateAlert(user *models.User, req *AlertRequest) (*models.Alert, error)
	ResolveAlert(user *models.User, id uint) (*models.Alert, error)
	DeleteAlert(user *models.User, id uint) error
}

// Columnas de orden permitidas para alertas
var alertSortFields = map[string]string{
	"created_at": "alerts.created_at",
	"alert_type": "alerts.alert_type",
	"device":     "devices.name",
}

// AlertService gestiona alertas dentro del alcance del usuario
type AlertService struct {
	DB    *gorm.DB
	Scope InterfaceScopeService
}

// NewAlertService crea el servicio de alertas
func NewAlertService(db *gorm.DB, scope InterfaceScopeService) InterfaceAlertService {
	return &AlertService{DB: db, Scope: scope}
}

// 1 GetAlerts devuelve la página pedida de alertas visibles
func (s *AlertService) GetAlerts(user *models.User, q *AlertListQuery) ([]models.Alert, int64, error) {
	normalizeListQuery(&q.ListQuery, 10)

	query := s.Scope.ScopedAlerts(user)

	if search := q.Search; search != "" {
		like := "%" + search + "%"
		query = query.Where("alerts.message LIKE ? OR devices.name LIKE ?", like, like)
	}

	if q.Device != 0 {
		query = query.Where("alerts.device_id = ?", q.Device)
	}
	if q.Type != "" {
		query = query.Where("alerts.alert_type = ?", q.Type)
	}
	switch q.Status {
	case "active":
		query = query.Where("alerts.is_resolved = ?", false)
	case "resolved":
		query = query.Where("alerts.is_resolved = ?", true)
	}

	query = query.
		Order(sortExpr(q.Sort, alertSortFields, "alerts.created_at DESC")).
		Preload("Device")

	var alerts []models.Alert
	total, err := paginate(query, q.Page, q.PageSize, &alerts)
	if err != nil {
		return nil, 0, err
	}
	return alerts, total, nil
}

// 2 GetAlertByID busca una alerta dentro del alcance del usuario
func (s *AlertService) GetAlertByID(user *models.User, id uint) (*models.Alert, error) {
	var alert models.Alert
	err := s.Scope.ScopedAlerts(user).
		Preload("Device").
		First(&alert, "alerts.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("la alerta no existe")
		}
		return nil, err
	}
	return &alert, nil
}

// 3 CreateAlert registra una alerta sobre un dispositivo visible.
// La organización explícita debe coincidir con la del dispositivo.
func (s *AlertService) CreateAlert(user *models.User, req *AlertRequest) (*models.Alert, error) {
	var device models.Device
	if err := s.Scope.ScopedDevices(user).First(&device, "devices.id = ?", req.DeviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("el dispositivo no existe")
		}
		return nil, err
	}

	alertType := models.AlertType(req.AlertType)
	if alertType == "" {
		alertType = models.AlertTypeInfo
	}
	if !models.ValidAlertType(alertType) {
		return nil, errors.New("tipo de alerta inválido")
	}

	if req.OrganizationID != nil {
		if device.OrganizationID == nil || *device.OrganizationID != *req.OrganizationID {
			return nil, errors.New("la organización de la alerta no coincide con la del dispositivo")
		}
	}

	orgID := req.OrganizationID
	if orgID == nil {
		orgID = device.OrganizationID
	}

	alert := &models.Alert{
		DeviceID:       device.ID,
		OrganizationID: orgID,
		AlertType:      alertType,
		Message:        req.Message,
	}

	if err := s.DB.Create(alert).Error; err != nil {
		return nil, err
	}
	return s.GetAlertByID(user, alert.ID)
}

// 4 ResolveAlert marca la alerta como resuelta con la hora actual.
// Resolver una alerta ya resuelta no cambia nada.
func (s *AlertService) ResolveAlert(user *models.User, id uint) (*models.Alert, error) {
	alert, err := s.GetAlertByID(user, id)
	if err != nil {
		return nil, err
	}

	if !alert.IsResolved {
		now := time.Now()
		alert.IsResolved = true
		alert.ResolvedAt = &now
		if err := s.DB.Save(alert).Error; err != nil {
			return nil, err
		}
	}

	return alert, nil
}

// 5 DeleteAlert elimina una alerta visible
func (s *AlertService) DeleteAlert(user *models.User, id uint) error {
	alert, err := s.GetAlertByID(user, id)
	if err != nil {
		return err
	}
	return s.DB.Delete(&models.Alert{}, alert.ID).Error
}
