package models

// Zone es una subdivisión de una organización (edificio, planta, sector)
type Zone struct {
	BaseModel
	Name           string `gorm:"type:varchar(200);not null" json:"name"`
	Description    string `gorm:"type:text" json:"description,omitempty"`
	OrganizationID uint   `gorm:"not null;index" json:"organization_id"`

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Devices      []Device      `gorm:"foreignKey:ZoneID" json:"devices,omitempty"`
}
