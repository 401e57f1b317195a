package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/m3tering/explorer-backend-go/internal/api"
	"github.com/m3tering/explorer-backend-go/internal/config"
	"github.com/m3tering/explorer-backend-go/internal/database"
	"github.com/m3tering/explorer-backend-go/internal/demo"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()
	if err := database.NewMigrationManager(db).Run(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if cfg.DemoSeed {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		if err := demo.NewSeeder(db, rng).Run(time.Now()); err != nil {
			log.Fatal("Failed to seed demo data:", err)
		}
	}

	router := api.SetupRouter(cfg, db)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
