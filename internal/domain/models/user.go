package models

import "gorm.io/gorm"

// Roles fijos del sistema
const (
	RoleAdministrator = "administrator"
	RoleEditor        = "editor"
	RoleReader        = "reader"
)

// ValidRole indica si el rol es uno de los tres fijos
func ValidRole(role string) bool {
	return role == RoleAdministrator || role == RoleEditor || role == RoleReader
}

// User es una cuenta del sistema. El perfil asociado se crea
// automáticamente al crear el usuario.
type User struct {
	BaseModel
	Username    string `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email       string `gorm:"type:varchar(254);uniqueIndex;not null" json:"email"`
	Password    string `gorm:"type:varchar(128);not null" json:"-"`
	FirstName   string `gorm:"type:varchar(150)" json:"first_name,omitempty"`
	LastName    string `gorm:"type:varchar(150)" json:"last_name,omitempty"`
	Role        string `gorm:"type:varchar(20);default:'reader'" json:"role"`
	IsSuperuser bool   `gorm:"default:false" json:"is_superuser"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	Profile *UserProfile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Devices []Device     `gorm:"foreignKey:OwnerID" json:"devices,omitempty"`
}

// AfterCreate crea el perfil vacío del usuario recién registrado
func (u *User) AfterCreate(tx *gorm.DB) error {
	return tx.Create(&UserProfile{UserID: u.ID}).Error
}
