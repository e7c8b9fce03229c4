package models

// Permisos por recurso, con la forma "<recurso>:<acción>"
const (
	PermDeviceView   = "device:view"
	PermDeviceAdd    = "device:add"
	PermDeviceChange = "device:change"
	PermDeviceDelete = "device:delete"

	PermMeasurementView   = "measurement:view"
	PermMeasurementAdd    = "measurement:add"
	PermMeasurementChange = "measurement:change"
	PermMeasurementDelete = "measurement:delete"

	PermAlertView   = "alert:view"
	PermAlertAdd    = "alert:add"
	PermAlertChange = "alert:change"
	PermAlertDelete = "alert:delete"

	PermDeviceTypeView   = "devicetype:view"
	PermDeviceTypeAdd    = "devicetype:add"
	PermDeviceTypeChange = "devicetype:change"
	PermDeviceTypeDelete = "devicetype:delete"

	PermOrganizationView   = "organization:view"
	PermOrganizationAdd    = "organization:add"
	PermOrganizationChange = "organization:change"
	PermOrganizationDelete = "organization:delete"

	PermZoneView   = "zone:view"
	PermZoneAdd    = "zone:add"
	PermZoneChange = "zone:change"
	PermZoneDelete = "zone:delete"

	PermCategoryView   = "category:view"
	PermCategoryAdd    = "category:add"
	PermCategoryChange = "category:change"
	PermCategoryDelete = "category:delete"

	PermUserView   = "user:view"
	PermUserAdd    = "user:add"
	PermUserChange = "user:change"
	PermUserDelete = "user:delete"
)

// AllPermissions es el universo de permisos conocidos
var AllPermissions = []string{
	PermDeviceView, PermDeviceAdd, PermDeviceChange, PermDeviceDelete,
	PermMeasurementView, PermMeasurementAdd, PermMeasurementChange, PermMeasurementDelete,
	PermAlertView, PermAlertAdd, PermAlertChange, PermAlertDelete,
	PermDeviceTypeView, PermDeviceTypeAdd, PermDeviceTypeChange, PermDeviceTypeDelete,
	PermOrganizationView, PermOrganizationAdd, PermOrganizationChange, PermOrganizationDelete,
	PermZoneView, PermZoneAdd, PermZoneChange, PermZoneDelete,
	PermCategoryView, PermCategoryAdd, PermCategoryChange, PermCategoryDelete,
	PermUserView, PermUserAdd, PermUserChange, PermUserDelete,
}

// DefaultRolePermissions define los conjuntos fijos que materializa
// el comando de seed "roles":
//   - Administrador: todos los permisos
//   - Editor: crear/editar/ver dispositivos, mediciones y alertas; solo ver tipos
//   - Lector: solo ver
var DefaultRolePermissions = map[string][]string{
	RoleAdministrator: AllPermissions,
	RoleEditor: {
		PermDeviceView, PermDeviceAdd, PermDeviceChange,
		PermMeasurementView, PermMeasurementAdd, PermMeasurementChange,
		PermAlertView, PermAlertAdd, PermAlertChange,
		PermDeviceTypeView,
		PermOrganizationView, PermZoneView, PermCategoryView,
	},
	RoleReader: {
		PermDeviceView,
		PermMeasurementView,
		PermAlertView,
		PermDeviceTypeView,
		PermOrganizationView, PermZoneView, PermCategoryView,
	},
}

// RolePermission es una fila del conjunto de permisos materializado de un rol
type RolePermission struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Role       string `gorm:"type:varchar(20);not null;uniqueIndex:idx_role_permission" json:"role"`
	Permission string `gorm:"type:varchar(50);not null;uniqueIndex:idx_role_permission" json:"permission"`
}
