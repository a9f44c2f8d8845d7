package main

import (
	"log"

	"github.com/joho/godotenv"

	"metapool/adapters/api"
	"metapool/internal/config"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	app := api.NewApp(appConfig)
	if err := app.Start(); err != nil {
		log.Fatal("Server failed:", err)
	}
}
