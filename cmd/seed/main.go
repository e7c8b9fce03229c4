// Comandos de carga de datos iniciales.
//
// Uso:
//
//	seed -cmd roles         materializa los permisos de los tres roles
//	seed -cmd device-types  carga el catálogo de tipos de dispositivo
//	seed -cmd demo-users    crea las cuentas admin, editor y lector
//	seed -cmd seed-min      carga el escenario mínimo de demostración
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/domain/services"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/infrastructure/config"
	"github.com/MatiPium/proyecto-nuevo-backend2/internal/infrastructure/database"
)

func main() {
	cmd := flag.String("cmd", "", "comando a ejecutar: roles, device-types, demo-users, seed-min")
	flag.Parse()

	if *cmd == "" {
		flag.Usage()
		log.Fatal("falta el comando")
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("no se pudo cargar el archivo .env: %v", err)
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("no se pudo crear el pool de conexiones: %v", err)
	}
	defer pool.Close()
	db := pool.GetDB()

	roleService := services.NewRoleService(db)
	seedService := services.NewSeedService(db, cfg, roleService)

	switch *cmd {
	case "roles":
		err = roleService.SetupRoles()
	case "device-types":
		err = seedService.SetupDeviceTypes()
	case "demo-users":
		err = seedService.CreateDemoUsers()
	case "seed-min":
		err = seedService.SeedMinimal()
	default:
		log.Fatalf("comando desconocido: %s", *cmd)
	}

	if err != nil {
		log.Fatalf("el comando %s falló: %v", *cmd, err)
	}

	log.Printf("comando %s ejecutado correctamente", *cmd)
}
