// @title VidyAI Backend API
// @version 1.0
// @description Backend server for the VidyAI inclusive learning platform.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"vidyai_backend/internal/app"
	"vidyai_backend/internal/config"
	"vidyai_backend/pkg/configwatcher"
	"vidyai_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	migrate := flag.Bool("migrate", false, "force database migration on startup, even in release mode")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration complete, exiting")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", application.ReloadConfig)

	application.Run()
}
