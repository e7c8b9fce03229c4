package services

import (
	"gorm.io/gorm"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
)

// InterfaceRoleService define la consulta y materialización de permisos
type InterfaceRoleService interface {
	SetupRoles() error
	HasPermission(user *models.User, permission string) (bool, error)
	PermissionsForRole(role string) ([]string, error)
}

// RoleService resuelve permisos contra los conjuntos fijos materializados
// por el comando de seed. No es un motor de autorización: es una búsqueda
// simple sobre role_permissions, con bypass para superusuarios.
type RoleService struct {
	DB *gorm.DB
}

// NewRoleService crea el servicio de roles
func NewRoleService(db *gorm.DB) InterfaceRoleService {
	return &RoleService{DB: db}
}

// 1 SetupRoles materializa los tres conjuntos fijos de permisos.
// Borra los existentes y los vuelve a crear para que la tabla quede
// alineada con DefaultRolePermissions.
func (s *RoleService) SetupRoles() error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.RolePermission{}).Error; err != nil {
			return err
		}

		for role, perms := range models.DefaultRolePermissions {
			for _, perm := range perms {
				row := models.RolePermission{Role: role, Permission: perm}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// 2 HasPermission indica si el rol del usuario incluye el permiso
func (s *RoleService) HasPermission(user *models.User, permission string) (bool, error) {
	if user.IsSuperuser {
		return true, nil
	}

	var count int64
	err := s.DB.Model(&models.RolePermission{}).
		Where("role = ? AND permission = ?", user.Role, permission).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// 3 PermissionsForRole devuelve el conjunto materializado de un rol
func (s *RoleService) PermissionsForRole(role string) ([]string, error) {
	var rows []models.RolePermission
	if err := s.DB.Where("role = ?", role).Order("permission").Find(&rows).Error; err != nil {
		return nil, err
	}

	perms := make([]string, 0, len(rows))
	for _, row := range rows {
		perms = append(perms, row.Permission)
	}
	return perms, nil
}
