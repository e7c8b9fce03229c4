package models

// Category clasifica dispositivos. OrganizationID nulo = categoría global,
// visible para todas las organizaciones.
type Category struct {
	BaseModel
	Name           string `gorm:"type:varchar(200);not null" json:"name"`
	Description    string `gorm:"type:text" json:"description,omitempty"`
	OrganizationID *uint  `gorm:"index" json:"organization_id,omitempty"`

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Devices      []Device      `gorm:"foreignKey:CategoryID" json:"devices,omitempty"`
}
