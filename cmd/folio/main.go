package main

import (
	"context"
	"log"
	"os"

	"github.com/folio-dev/folio/db"
	"github.com/folio-dev/folio/internal/auth"
	"github.com/folio-dev/folio/internal/blobstore"
	"github.com/folio-dev/folio/internal/router"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	if err := db.ConnectDatabase(os.Getenv("DATABASE_URL")); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	store, err := blobstore.NewS3Store(context.Background())

	if err != nil {
		log.Fatalf("Failed to initialize blob store: %v", err)
	}

	blobstore.Init(store)

	r := router.NewRouter()

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "5000"
		log.Println("PORT not set, defaulting to 5000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
