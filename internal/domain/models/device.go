package models

// DeviceStatus representa el estado operativo de un dispositivo
type DeviceStatus string

const (
	DeviceStatusActive      DeviceStatus = "active"
	DeviceStatusInactive    DeviceStatus = "inactive"
	DeviceStatusMaintenance DeviceStatus = "maintenance"
	DeviceStatusError       DeviceStatus = "error"
)

// ValidDeviceStatus indica si el estado es uno de los permitidos
func ValidDeviceStatus(s DeviceStatus) bool {
	switch s {
	case DeviceStatusActive, DeviceStatusInactive, DeviceStatusMaintenance, DeviceStatusError:
		return true
	}
	return false
}

// Device es un dispositivo IoT registrado por un usuario.
// OrganizationID puede ser nulo: un dispositivo sin organización sigue
// siendo visible para su propietario directo.
type Device struct {
	BaseModel
	Name           string       `gorm:"type:varchar(200);not null" json:"name"`
	Description    string       `gorm:"type:text" json:"description,omitempty"`
	Location       string       `gorm:"type:varchar(200)" json:"location,omitempty"`
	DeviceTypeID   uint         `gorm:"not null;index" json:"device_type_id"`
	Status         DeviceStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	CategoryID     *uint        `gorm:"index" json:"category_id,omitempty"`
	ZoneID         *uint        `gorm:"index" json:"zone_id,omitempty"`
	OwnerID        uint         `gorm:"not null;index" json:"owner_id"`
	OrganizationID *uint        `gorm:"index" json:"organization_id,omitempty"`

	DeviceType   *DeviceType   `gorm:"foreignKey:DeviceTypeID" json:"device_type,omitempty"`
	Category     *Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Zone         *Zone         `gorm:"foreignKey:ZoneID" json:"zone,omitempty"`
	Owner        *User         `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`

	// Se eliminan en cascada junto con el dispositivo
	Measurements []Measurement `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE" json:"measurements,omitempty"`
	Alerts       []Alert       `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE" json:"alerts,omitempty"`
}
