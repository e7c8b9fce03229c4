package services

import (
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/infrastructure/config"
	"github.com/MatiPium/proyecto-nuevo-backend2/utils"
)

// InterfaceSeedService define los comandos de carga de datos iniciales
type InterfaceSeedService interface {
	SetupDeviceTypes() error
	CreateDemoUsers() error
	SeedMinimal() error
}

// SeedService carga los catálogos y datos de demostración.
// Todos los comandos son idempotentes: se pueden ejecutar varias veces
// sin duplicar registros.
type SeedService struct {
	DB     *gorm.DB
	Config *config.Config
	Roles  InterfaceRoleService
}

// NewSeedService crea el servicio de seed
func NewSeedService(db *gorm.DB, cfg *config.Config, roles InterfaceRoleService) InterfaceSeedService {
	return &SeedService{DB: db, Config: cfg, Roles: roles}
}

// Catálogo inicial de tipos de dispositivo
var defaultDeviceTypes = []models.DeviceType{
	{Name: "Sensor de Temperatura", Description: "Mide temperatura ambiente o de proceso"},
	{Name: "Sensor de Humedad", Description: "Mide humedad relativa"},
	{Name: "Medidor de Energía", Description: "Registra consumo eléctrico en kWh"},
	{Name: "Panel Solar", Description: "Genera energía fotovoltaica"},
	{Name: "Actuador", Description: "Ejecuta acciones sobre equipos remotos"},
}

// 1 SetupDeviceTypes carga el catálogo de tipos si no existe
func (s *SeedService) SetupDeviceTypes() error {
	for _, deviceType := range defaultDeviceTypes {
		row := deviceType
		err := s.DB.Where("name = ?", row.Name).FirstOrCreate(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// ensureUser crea la cuenta si no existe y devuelve la existente si ya está
func (s *SeedService) ensureUser(user models.User, password string) (*models.User, error) {
	var existing models.User
	err := s.DB.Where("username = ?", user.Username).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user.Password = hashed
	user.IsActive = true

	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// 2 CreateDemoUsers crea las tres cuentas de demostración, una por rol
func (s *SeedService) CreateDemoUsers() error {
	pass := s.Config.DefaultAdminPass

	users := []models.User{
		{Username: "admin", Email: "admin@ecoenergy.local", FirstName: "Ana", LastName: "Administradora", Role: models.RoleAdministrator, IsSuperuser: true},
		{Username: "editor", Email: "editor@ecoenergy.local", FirstName: "Emilio", LastName: "Editor", Role: models.RoleEditor},
		{Username: "lector", Email: "lector@ecoenergy.local", FirstName: "Laura", LastName: "Lectora", Role: models.RoleReader},
	}

	for _, user := range users {
		if _, err := s.ensureUser(user, pass); err != nil {
			return err
		}
	}
	return nil
}

// 3 SeedMinimal carga un escenario mínimo de demostración: una
// organización con zonas, categorías, dispositivos, mediciones de la
// última semana y un par de alertas
func (s *SeedService) SeedMinimal() error {
	if err := s.Roles.SetupRoles(); err != nil {
		return err
	}
	if err := s.SetupDeviceTypes(); err != nil {
		return err
	}
	if err := s.CreateDemoUsers(); err != nil {
		return err
	}

	org := models.Organization{Name: "EcoEnergy Corp"}
	if err := s.DB.Where("name = ?", org.Name).
		Attrs(models.Organization{Description: "Organización de demostración"}).
		FirstOrCreate(&org).Error; err != nil {
		return err
	}

	// Las cuentas de demostración pertenecen a la organización
	var demoUsers []models.User
	if err := s.DB.Where("username IN ?", []string{"admin", "editor", "lector"}).Find(&demoUsers).Error; err != nil {
		return err
	}
	for i := range demoUsers {
		err := s.DB.Model(&models.UserProfile{}).
			Where("user_id = ?", demoUsers[i].ID).
			Update("organization_id", org.ID).Error
		if err != nil {
			return err
		}
	}

	zones := make([]models.Zone, 0, 3)
	for _, name := range []string{"Zona Norte", "Zona Centro", "Zona Sur"} {
		zone := models.Zone{Name: name, OrganizationID: org.ID}
		if err := s.DB.Where("name = ? AND organization_id = ?", name, org.ID).FirstOrCreate(&zone).Error; err != nil {
			return err
		}
		zones = append(zones, zone)
	}

	orgID := org.ID
	categories := make([]models.Category, 0, 4)
	for _, name := range []string{"Energía Solar", "Energía Eólica", "Energía Hidráulica", "Energía Térmica"} {
		category := models.Category{Name: name, OrganizationID: &orgID}
		if err := s.DB.Where("name = ? AND organization_id = ?", name, org.ID).FirstOrCreate(&category).Error; err != nil {
			return err
		}
		categories = append(categories, category)
	}

	var meter models.DeviceType
	if err := s.DB.Where("name = ?", "Medidor de Energía").First(&meter).Error; err != nil {
		return err
	}
	var admin models.User
	if err := s.DB.Where("username = ?", "admin").First(&admin).Error; err != nil {
		return err
	}

	devices := make([]models.Device, 0, 7)
	for i := 1; i <= 7; i++ {
		zone := zones[(i-1)%len(zones)]
		category := categories[(i-1)%len(categories)]
		device := models.Device{
			Name:           fmt.Sprintf("Medidor %02d", i),
			Location:       zone.Name,
			DeviceTypeID:   meter.ID,
			Status:         models.DeviceStatusActive,
			CategoryID:     &category.ID,
			ZoneID:         &zone.ID,
			OwnerID:        admin.ID,
			OrganizationID: &orgID,
		}
		err := s.DB.Where("name = ? AND organization_id = ?", device.Name, org.ID).FirstOrCreate(&device).Error
		if err != nil {
			return err
		}
		devices = append(devices, device)
	}

	var measurementCount int64
	if err := s.DB.Model(&models.Measurement{}).Where("organization_id = ?", org.ID).Count(&measurementCount).Error; err != nil {
		return err
	}
	if measurementCount == 0 {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		now := time.Now()
		for _, device := range devices {
			for day := 0; day < 7; day++ {
				measurement := models.Measurement{
					DeviceID:       device.ID,
					OrganizationID: &orgID,
					Value:          50 + rng.Float64()*450,
					Unit:           "kWh",
					Timestamp:      now.AddDate(0, 0, -day),
				}
				if err := s.DB.Create(&measurement).Error; err != nil {
					return err
				}
			}
		}
	}

	var alertCount int64
	if err := s.DB.Model(&models.Alert{}).Where("organization_id = ?", org.ID).Count(&alertCount).Error; err != nil {
		return err
	}
	if alertCount == 0 && len(devices) >= 2 {
		alerts := []models.Alert{
			{DeviceID: devices[0].ID, OrganizationID: &orgID, AlertType: models.AlertTypeWarning, Message: "Consumo por encima del promedio semanal"},
			{DeviceID: devices[1].ID, OrganizationID: &orgID, AlertType: models.AlertTypeCritical, Message: "Sin mediciones en las últimas 24 horas"},
		}
		for _, alert := range alerts {
			row := alert
			if err := s.DB.Create(&row).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
