// @title           EcoEnergy Monitor API
// @version         1.0
// @description     Back office multi-tenant para monitoreo de dispositivos IoT de energía

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Token con el prefijo `Bearer `
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/app/routes"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/models"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/infrastructure/config"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/infrastructure/database"
	Logger "github.com/MatiPium/proyecto-nuevo-backend2/pkg/logger"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("error al inicializar el log: %v\n", err)
		os.Exit(1)
	}

	// Cargar el archivo .env si existe; sin él se usan las variables
	// de entorno ya definidas
	if err := godotenv.Load(); err != nil {
		Logger.Warning("no se pudo cargar el archivo .env: %v", err)
	} else {
		Logger.Info("archivo .env cargado correctamente")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("no se pudo crear el pool de conexiones: %v", err)
	}
	db := pool.GetDB()

	if err := autoMigrate(db); err != nil {
		log.Fatalf("la migración automática falló: %v", err)
	}

	ensureAdminExists(db, cfg)

	r := routes.SetupRouter(db, cfg)

	printSystemInfo(pool)

	port := cfg.ServerPort
	Logger.Info("servidor iniciado en: http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("el servidor no pudo iniciarse: %v", err)
		os.Exit(1)
	}
}

// autoMigrate agrega columnas y tablas nuevas sin tocar las existentes
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
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
		return err
	}

	fmt.Println("Migración de base de datos completada")
	return nil
}

// ensureAdminExists garantiza que exista al menos un superusuario
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.User{}).Where("is_superuser = ?", true).Count(&count)

	if count == 0 {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.DefaultAdminPass), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("error al generar el hash de la contraseña: %v", err)
		}

		admin := models.User{
			Username:    "admin",
			Email:       "admin@ecoenergy.local",
			Password:    string(hashedPassword),
			Role:        models.RoleAdministrator,
			IsSuperuser: true,
			IsActive:    true,
		}

		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("error al crear el superusuario por defecto: %v", err)
		}

		log.Println("superusuario por defecto creado")
	}
}

// printSystemInfo imprime el estado del pool y del sistema al arrancar
func printSystemInfo(pool *database.ConnectionPool) {
	stats, err := pool.Stats()
	if err == nil {
		log.Printf("estado del pool de conexiones: %+v", stats)
	}

	log.Printf("núcleos de CPU: %d", runtime.NumCPU())
	log.Printf("goroutines activas: %d", runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("memoria en uso: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
