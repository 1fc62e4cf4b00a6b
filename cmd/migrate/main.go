package main

import (
	"log"

	"github.com/sankalp-academy/site-api/config"
	"github.com/sankalp-academy/site-api/database"
)

// Runs migrations against the configured database and verifies the
// connection. Usage: go run ./cmd/migrate
func main() {
	if err := config.LoadENV(); err != nil {
		log.Fatal(err)
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatalf("running migrations: %v", err)
	}

	if err := store.HealthCheck(); err != nil {
		log.Fatalf("health check: %v", err)
	}

	log.Println("Migrations completed successfully")
}
