package main

import (
	"log"

	"github.com/sankalp-academy/site-api/config"
	"github.com/sankalp-academy/site-api/database"
)

// Seeds the database with an admin user and sample content.
// Usage: go run ./cmd/seed
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

	seeder := database.NewSeeder(store.GetDB())
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("seeding: %v", err)
	}

	log.Println("Database seeded successfully")
}
