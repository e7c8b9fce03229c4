package models

// DeviceType es el catálogo de tipos de dispositivo (Sensor, Medidor, etc.)
type DeviceType struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	Devices []Device `gorm:"foreignKey:DeviceTypeID" json:"devices,omitempty"`
}
