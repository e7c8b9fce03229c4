package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/infrastructure/config"
	"github.com/MatiPium/proyecto-nuevo-backend2/utils"
)

// newTestDB abre una base en memoria con el esquema completo
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("no se pudo abrir la base en memoria: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("no se pudo obtener la conexión: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Organization{},
		&models.Zone{},
		&models.Category{},
		&models.DeviceType{},
		&models.User{},
		&models.UserProfile{},
		&models.RolePermission{},
		&models.Device{},
		&models.Measurement{},
		&models.Alert{},
	)
	if err != nil {
		t.Fatalf("la migración falló: %v", err)
	}

	return db
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		JWTSecretKey:     "clave-de-prueba",
		AvatarDir:        t.TempDir(),
		AvatarMaxBytes:   2 * 1024 * 1024,
		DefaultAdminPass: "Admin123!",
	}
}

// createUser da de alta un usuario con contraseña conocida y, si se
// indica, lo asocia a la organización vía su perfil
func createUser(t *testing.T, db *gorm.DB, username string, orgID *uint, superuser bool) *models.User {
	t.Helper()

	hashed, err := utils.HashPassword("Password1")
	if err != nil {
		t.Fatalf("no se pudo generar el hash: %v", err)
	}

	user := &models.User{
		Username:    username,
		Email:       username + "@test.local",
		Password:    hashed,
		Role:        models.RoleEditor,
		IsSuperuser: superuser,
		IsActive:    true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("no se pudo crear el usuario %s: %v", username, err)
	}

	if orgID != nil {
		err := db.Model(&models.UserProfile{}).
			Where("user_id = ?", user.ID).
			Update("organization_id", *orgID).Error
		if err != nil {
			t.Fatalf("no se pudo asignar la organización: %v", err)
		}
	}

	// Recargar con el perfil para que el scoping lo encuentre
	var loaded models.User
	if err := db.Preload("Profile").First(&loaded, user.ID).Error; err != nil {
		t.Fatalf("no se pudo recargar el usuario: %v", err)
	}
	return &loaded
}

func createOrganization(t *testing.T, db *gorm.DB, name string) *models.Organization {
	t.Helper()
	org := &models.Organization{Name: name}
	if err := db.Create(org).Error; err != nil {
		t.Fatalf("no se pudo crear la organización %s: %v", name, err)
	}
	return org
}

func createDeviceType(t *testing.T, db *gorm.DB, name string) *models.DeviceType {
	t.Helper()
	deviceType := &models.DeviceType{Name: name}
	if err := db.Create(deviceType).Error; err != nil {
		t.Fatalf("no se pudo crear el tipo %s: %v", name, err)
	}
	return deviceType
}

func createDevice(t *testing.T, db *gorm.DB, name string, typeID, ownerID uint, orgID *uint) *models.Device {
	t.Helper()
	device := &models.Device{
		Name:           name,
		DeviceTypeID:   typeID,
		Status:         models.DeviceStatusActive,
		OwnerID:        ownerID,
		OrganizationID: orgID,
	}
	if err := db.Create(device).Error; err != nil {
		t.Fatalf("no se pudo crear el dispositivo %s: %v", name, err)
	}
	return device
}
