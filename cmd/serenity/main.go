package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/serenity-space/serenity/db"
	"github.com/serenity-space/serenity/internal/auth"
	"github.com/serenity-space/serenity/internal/router"
	"github.com/serenity-space/serenity/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT: %v", err)
	}

	if err := db.ConnectDatabase(os.Getenv("DATABASE_URL")); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	services.InitMailer()
	services.InitStorage(context.Background())

	r := router.NewRouter()

	port := os.Getenv("PORT")

	if port == "" {
		port = "5000"
		log.Println("PORT not set, defaulting to 5000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
