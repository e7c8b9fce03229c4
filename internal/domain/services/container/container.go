package container

import (
	"context"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/infrastructure/config"
)

// ServiceContainer gestiona la inyección de dependencias de todos los
// servicios de la aplicación
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// Servicios base
	jwtService   services.InterfaceJWTService
	roleService  services.InterfaceRoleService
	scopeService services.InterfaceScopeService
	redisService services.InterfaceRedisService

	// Servicios de negocio
	userService         services.InterfaceUserService
	deviceService       services.InterfaceDeviceService
	measurementService  services.InterfaceMeasurementService
	alertService        services.InterfaceAlertService
	organizationService services.InterfaceOrganizationService
	zoneService         services.InterfaceZoneService
	categoryService     services.InterfaceCategoryService
	deviceTypeService   services.InterfaceDeviceTypeService
	dashboardService    services.InterfaceDashboardService
	exportService       services.InterfaceExportService
	seedService         services.InterfaceSeedService

	mu sync.RWMutex
}

// NewServiceContainer crea el contenedor de servicios
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("la conexión a la base de datos es nula")
	}
	if cfg == nil {
		panic("la configuración es nula")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices inicializa todos los servicios
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Servicios base
	c.jwtService = services.NewJWTService(c.config, c.db)
	c.roleService = services.NewRoleService(c.db)
	c.scopeService = services.NewScopeService(c.db)
	c.redisService = services.NewRedisService(c.config)

	// Probar la conexión a Redis, la aplicación funciona sin caché
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.redisService.Ping(ctx); err != nil {
		log.Printf("Redis no disponible: %v, las preferencias de sesión usarán los valores por defecto", err)
	}

	// Servicios de negocio
	c.userService = services.NewUserService(c.db, c.config)
	c.deviceService = services.NewDeviceService(c.db, c.config, c.scopeService)
	c.measurementService = services.NewMeasurementService(c.db, c.scopeService)
	c.alertService = services.NewAlertService(c.db, c.scopeService)
	c.organizationService = services.NewOrganizationService(c.db)
	c.zoneService = services.NewZoneService(c.db, c.scopeService)
	c.categoryService = services.NewCategoryService(c.db, c.scopeService)
	c.deviceTypeService = services.NewDeviceTypeService(c.db)
	c.dashboardService = services.NewDashboardService(c.db, c.scopeService)
	c.exportService = services.NewExportService(c.deviceService, c.measurementService)
	c.seedService = services.NewSeedService(c.db, c.config, c.roleService)
}

// GetService devuelve el servicio con el nombre indicado
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "role":
		return c.roleService
	case "scope":
		return c.scopeService
	case "redis":
		return c.redisService
	case "user":
		return c.userService
	case "device":
		return c.deviceService
	case "measurement":
		return c.measurementService
	case "alert":
		return c.alertService
	case "organization":
		return c.organizationService
	case "zone":
		return c.zoneService
	case "category":
		return c.categoryService
	case "device_type":
		return c.deviceTypeService
	case "dashboard":
		return c.dashboardService
	case "export":
		return c.exportService
	case "seed":
		return c.seedService
	default:
		return nil
	}
}

// GetDB devuelve la conexión a la base de datos
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
