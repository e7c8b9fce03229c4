package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
)

// DashboardSummary es el resumen que muestra la pantalla principal
type DashboardSummary struct {
	TotalDevices       int64                `json:"total_devices"`
	ActiveDevices      int64                `json:"active_devices"`
	TotalMeasurements  int64                `json:"total_measurements"`
	ActiveAlerts       int64                `json:"active_alerts"`
	AverageValue30Days float64              `json:"average_value_30_days"`
	RecentMeasurements []models.Measurement `json:"recent_measurements"`
	RecentAlerts       []models.Alert       `json:"recent_alerts"`
}

// InterfaceDashboardService define el resumen del panel
type InterfaceDashboardService interface {
	GetSummary(user *models.User) (*DashboardSummary, error)
}

// DashboardService arma el resumen del panel sobre los datos visibles
// para el usuario
type DashboardService struct {
	DB    *gorm.DB
	Scope InterfaceScopeService
}

// NewDashboardService crea el servicio del panel
func NewDashboardService(db *gorm.DB, scope InterfaceScopeService) InterfaceDashboardService {
	return &DashboardService{DB: db, Scope: scope}
}

// 1 GetSummary calcula los totales, las 10 mediciones más recientes,
// las 5 alertas sin resolver más recientes y el promedio de los
// últimos 30 días
func (s *DashboardService) GetSummary(user *models.User) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	if err := s.Scope.ScopedDevices(user).Count(&summary.TotalDevices).Error; err != nil {
		return nil, err
	}
	if err := s.Scope.ScopedDevices(user).
		Where("devices.status = ?", models.DeviceStatusActive).
		Count(&summary.ActiveDevices).Error; err != nil {
		return nil, err
	}

	if err := s.Scope.ScopedMeasurements(user).Count(&summary.TotalMeasurements).Error; err != nil {
		return nil, err
	}
	if err := s.Scope.ScopedAlerts(user).
		Where("alerts.is_resolved = ?", false).
		Count(&summary.ActiveAlerts).Error; err != nil {
		return nil, err
	}

	if err := s.Scope.ScopedMeasurements(user).
		Order("measurements.timestamp DESC").
		Limit(10).
		Preload("Device").
		Find(&summary.RecentMeasurements).Error; err != nil {
		return nil, err
	}

	if err := s.Scope.ScopedAlerts(user).
		Where("alerts.is_resolved = ?", false).
		Order("alerts.created_at DESC").
		Limit(5).
		Preload("Device").
		Find(&summary.RecentAlerts).Error; err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -30)
	var avg *float64
	err := s.Scope.ScopedMeasurements(user).
		Where("measurements.timestamp >= ?", since).
		Select("AVG(measurements.value)").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if avg != nil {
		summary.AverageValue30Days = *avg
	}

	return summary, nil
}
