package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/app/controllers"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/app/middleware"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services/container"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/infrastructure/config"
)

// SetupRouter inicializa y devuelve el router configurado
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// Middleware de CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	serviceContainer := container.NewServiceContainer(db, cfg)
	middleware.InitAuthMiddleware(cfg, db)

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configura todas las rutas de la API
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registra las rutas sin autenticación
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// Límite por IP: 10 peticiones por segundo con ráfagas de 20
	api.Use(middleware.IPRateLimiter(10, 20))

	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping"))

	healthGroup := api.Group("/health")
	healthGroup.GET("/status", controllers.HandleHealthFunc(container, "status"))
	healthGroup.GET("/cache-stats", controllers.HandleHealthFunc(container, "cacheStats"))

	// Autenticación con límite más estricto por ruta
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.PathRateLimiter(5, 10))
	authGroup.POST("/login", controllers.HandleAuthFunc(container, "login"))
	authGroup.POST("/register", controllers.HandleAuthFunc(container, "register"))
	authGroup.POST("/password-reset", controllers.HandleAuthFunc(container, "passwordReset"))
}

// registerAuthenticatedRoutes registra las rutas que requieren token
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.Authentication())
	auth.Use(middleware.IPRateLimiter(30, 50))

	// Panel
	auth.GET("/dashboard", middleware.Cache(middleware.CacheConfig{Expiration: 15 * time.Second}), controllers.HandleDashboardFunc(container, "getSummary"))

	// Dispositivos
	devicesGroup := auth.Group("/devices")
	{
		devicesGroup.GET("", middleware.RequirePermission(models.PermDeviceView), controllers.HandleDeviceFunc(container, "getDevices"))
		devicesGroup.GET("/:id", middleware.RequirePermission(models.PermDeviceView), controllers.HandleDeviceFunc(container, "getDevice"))
		devicesGroup.POST("", middleware.RequirePermission(models.PermDeviceAdd), controllers.HandleDeviceFunc(container, "createDevice"))
		devicesGroup.PUT("/:id", middleware.RequirePermission(models.PermDeviceChange), controllers.HandleDeviceFunc(container, "updateDevice"))
		devicesGroup.DELETE("/:id", middleware.RequirePermission(models.PermDeviceDelete), controllers.HandleDeviceFunc(container, "deleteDevice"))
	}

	// Mediciones
	measurementsGroup := auth.Group("/measurements")
	{
		measurementsGroup.GET("", middleware.RequirePermission(models.PermMeasurementView), controllers.HandleMeasurementFunc(container, "getMeasurements"))
		measurementsGroup.GET("/:id", middleware.RequirePermission(models.PermMeasurementView), controllers.HandleMeasurementFunc(container, "getMeasurement"))
		measurementsGroup.POST("", middleware.RequirePermission(models.PermMeasurementAdd), controllers.HandleMeasurementFunc(container, "createMeasurement"))
		measurementsGroup.PUT("/:id", middleware.RequirePermission(models.PermMeasurementChange), controllers.HandleMeasurementFunc(container, "updateMeasurement"))
		measurementsGroup.DELETE("/:id", middleware.RequirePermission(models.PermMeasurementDelete), controllers.HandleMeasurementFunc(container, "deleteMeasurement"))
	}

	// Alertas
	alertsGroup := auth.Group("/alerts")
	{
		alertsGroup.GET("", middleware.RequirePermission(models.PermAlertView), controllers.HandleAlertFunc(container, "getAlerts"))
		alertsGroup.GET("/:id", middleware.RequirePermission(models.PermAlertView), controllers.HandleAlertFunc(container, "getAlert"))
		alertsGroup.POST("", middleware.RequirePermission(models.PermAlertAdd), controllers.HandleAlertFunc(container, "createAlert"))
		alertsGroup.POST("/:id/resolve", middleware.RequirePermission(models.PermAlertChange), controllers.HandleAlertFunc(container, "resolveAlert"))
		alertsGroup.DELETE("/:id", middleware.RequirePermission(models.PermAlertDelete), controllers.HandleAlertFunc(container, "deleteAlert"))
	}

	// Organizaciones
	organizationsGroup := auth.Group("/organizations")
	{
		organizationsGroup.GET("", middleware.RequirePermission(models.PermOrganizationView), controllers.HandleOrganizationFunc(container, "getOrganizations"))
		organizationsGroup.GET("/:id", middleware.RequirePermission(models.PermOrganizationView), controllers.HandleOrganizationFunc(container, "getOrganization"))
		organizationsGroup.POST("", middleware.RequirePermission(models.PermOrganizationAdd), controllers.HandleOrganizationFunc(container, "createOrganization"))
		organizationsGroup.PUT("/:id", middleware.RequirePermission(models.PermOrganizationChange), controllers.HandleOrganizationFunc(container, "updateOrganization"))
		organizationsGroup.DELETE("/:id", middleware.RequirePermission(models.PermOrganizationDelete), controllers.HandleOrganizationFunc(container, "deleteOrganization"))
	}

	// Zonas
	zonesGroup := auth.Group("/zones")
	{
		zonesGroup.GET("", middleware.RequirePermission(models.PermZoneView), controllers.HandleZoneFunc(container, "getZones"))
		zonesGroup.GET("/:id", middleware.RequirePermission(models.PermZoneView), controllers.HandleZoneFunc(container, "getZone"))
		zonesGroup.POST("", middleware.RequirePermission(models.PermZoneAdd), controllers.HandleZoneFunc(container, "createZone"))
		zonesGroup.PUT("/:id", middleware.RequirePermission(models.PermZoneChange), controllers.HandleZoneFunc(container, "updateZone"))
		zonesGroup.DELETE("/:id", middleware.RequirePermission(models.PermZoneDelete), controllers.HandleZoneFunc(container, "deleteZone"))
	}

	// Categorías
	categoriesGroup := auth.Group("/categories")
	{
		categoriesGroup.GET("", middleware.RequirePermission(models.PermCategoryView), controllers.HandleCategoryFunc(container, "getCategories"))
		categoriesGroup.GET("/:id", middleware.RequirePermission(models.PermCategoryView), controllers.HandleCategoryFunc(container, "getCategory"))
		categoriesGroup.POST("", middleware.RequirePermission(models.PermCategoryAdd), controllers.HandleCategoryFunc(container, "createCategory"))
		categoriesGroup.PUT("/:id", middleware.RequirePermission(models.PermCategoryChange), controllers.HandleCategoryFunc(container, "updateCategory"))
		categoriesGroup.DELETE("/:id", middleware.RequirePermission(models.PermCategoryDelete), controllers.HandleCategoryFunc(container, "deleteCategory"))
	}

	// Tipos de dispositivo
	deviceTypesGroup := auth.Group("/device-types")
	{
		deviceTypesGroup.GET("", middleware.RequirePermission(models.PermDeviceTypeView), middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleDeviceTypeFunc(container, "getDeviceTypes"))
		deviceTypesGroup.GET("/:id", middleware.RequirePermission(models.PermDeviceTypeView), controllers.HandleDeviceTypeFunc(container, "getDeviceType"))
		deviceTypesGroup.POST("", middleware.RequirePermission(models.PermDeviceTypeAdd), controllers.HandleDeviceTypeFunc(container, "createDeviceType"))
		deviceTypesGroup.PUT("/:id", middleware.RequirePermission(models.PermDeviceTypeChange), controllers.HandleDeviceTypeFunc(container, "updateDeviceType"))
		deviceTypesGroup.DELETE("/:id", middleware.RequirePermission(models.PermDeviceTypeDelete), controllers.HandleDeviceTypeFunc(container, "deleteDeviceType"))
	}

	// Perfil propio
	profileGroup := auth.Group("/profile")
	{
		profileGroup.GET("", controllers.HandleProfileFunc(container, "getProfile"))
		profileGroup.PUT("", controllers.HandleProfileFunc(container, "updateProfile"))
		profileGroup.POST("/avatar", controllers.HandleProfileFunc(container, "uploadAvatar"))
	}

	// Exportación a Excel
	exportGroup := auth.Group("/export")
	{
		exportGroup.GET("/devices", middleware.RequirePermission(models.PermDeviceView), controllers.HandleExportFunc(container, "exportDevices"))
		exportGroup.GET("/measurements", middleware.RequirePermission(models.PermMeasurementView), controllers.HandleExportFunc(container, "exportMeasurements"))
	}
}
