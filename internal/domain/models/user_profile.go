package models

// UserProfile extiende la cuenta con datos de contacto y el tenant
// al que pertenece el usuario
type UserProfile struct {
	BaseModel
	UserID         uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Phone          string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Bio            string `gorm:"type:text" json:"bio,omitempty"`
	Avatar         string `gorm:"type:varchar(255)" json:"avatar,omitempty"`
	OrganizationID *uint  `gorm:"index" json:"organization_id,omitempty"`
	ZoneID         *uint  `gorm:"index" json:"zone_id,omitempty"`

	User         *User         `gorm:"foreignKey:UserID" json:"-"`
	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Zone         *Zone         `gorm:"foreignKey:ZoneID" json:"zone,omitempty"`
}
