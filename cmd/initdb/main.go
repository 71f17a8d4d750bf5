package main

import (
	"context"
	"log"

	"github.com/yakhltv/yakhltv-api/internal/config"
	"github.com/yakhltv/yakhltv-api/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	if err := db.RunMigrations(database.DB); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if err := db.Seed(context.Background(), database); err != nil {
		log.Fatal("Failed to seed demo data:", err)
	}

	log.Println("DB initialized at", cfg.DBPath)
}
