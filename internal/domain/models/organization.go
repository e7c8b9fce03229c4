package models

import "gorm.io/gorm"

// Organization es el límite raíz de cada tenant
type Organization struct {
	BaseModel
	Name        string         `gorm:"type:varchar(200);uniqueIndex;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Zones   []Zone   `gorm:"foreignKey:OrganizationID" json:"zones,omitempty"`
	Devices []Device `gorm:"foreignKey:OrganizationID" json:"devices,omitempty"`
}
