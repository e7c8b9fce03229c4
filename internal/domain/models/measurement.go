package models

import "time"

// Measurement es una lectura puntual de un dispositivo.
// Si OrganizationID está presente debe coincidir con la organización
// del dispositivo; la validación vive en MeasurementService.
type Measurement struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	DeviceID       uint      `gorm:"not null;index" json:"device_id"`
	OrganizationID *uint     `gorm:"index" json:"organization_id,omitempty"`
	Value          float64   `gorm:"not null" json:"value"`
	Unit           string    `gorm:"type:varchar(50);not null" json:"unit"`
	Timestamp      time.Time `gorm:"index" json:"timestamp"`

	Device       *Device       `gorm:"foreignKey:DeviceID" json:"device,omitempty"`
	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}
