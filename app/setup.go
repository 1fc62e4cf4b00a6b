package app

import (
	"fmt"
	"log"
	"os"

	"github.com/sankalp-academy/site-api/api"
	"github.com/sankalp-academy/site-api/config"
	"github.com/sankalp-academy/site-api/database"
	"github.com/sankalp-academy/site-api/router"
	"github.com/sankalp-academy/site-api/services/cron"
)

func SetupAndRunServer() error {
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	store, err := database.StartGORM()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := store.Init(); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	// Cron jobs run unless explicitly disabled
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" {
		cronManager = cron.NewCronManager(store.GetDB())
		if err := cronManager.Start(); err != nil {
			log.Printf("Warning: Failed to start cron jobs: %v", err)
			cronManager = nil
		}
	}

	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		store.Close()
	}()

	server := api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	router.SetupRoutes(app, store)

	return server.Run()
}
