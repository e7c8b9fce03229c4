package models

import "time"

// AlertType representa la severidad de una alerta
type AlertType string

const (
	AlertTypeInfo     AlertType = "info"
	AlertTypeWarning  AlertType = "warning"
	AlertTypeCritical AlertType = "critical"
)

// ValidAlertType indica si la severidad es una de las permitidas
func ValidAlertType(t AlertType) bool {
	switch t {
	case AlertTypeInfo, AlertTypeWarning, AlertTypeCritical:
		return true
	}
	return false
}

// Alert es un aviso levantado sobre un dispositivo
type Alert struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	DeviceID       uint       `gorm:"not null;index" json:"device_id"`
	OrganizationID *uint      `gorm:"index" json:"organization_id,omitempty"`
	AlertType      AlertType  `gorm:"type:varchar(20);default:'info'" json:"alert_type"`
	Message        string     `gorm:"type:text;not null" json:"message"`
	IsResolved     bool       `gorm:"default:false" json:"is_resolved"`
	CreatedAt      time.Time  `json:"created_at"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`

	Device       *Device       `gorm:"foreignKey:DeviceID" json:"device,omitempty"`
	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}
