package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/skillforge/skillforge-backend/internal/api"
	"github.com/skillforge/skillforge-backend/internal/database"
	"github.com/skillforge/skillforge-backend/internal/services"
	"github.com/skillforge/skillforge-backend/pkg/session"
)

// main entry point - sets up everything and starts the server
func main() {
	// load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Failed to load .env file: %s\n", err)
		// not a big deal - Docker will set these anyway
	}

	dbURL := os.Getenv("DB_URL")

	// connect to postgres
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %s\n", err)
		return
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply database schema: %s\n", err)
	}

	queries := database.New(db)
	session.Initialize(queries) // global session store - not ideal but works

	ctx := context.Background()

	// AI generation client - missing keys disable features, not the server
	generator, err := services.NewGenerator(ctx, services.GeneratorConfig{
		APIKey:         os.Getenv("GEMINI_API_KEY"),
		FallbackAPIKey: os.Getenv("GEMINI_API_KEY_FALLBACK"),
		Model:          os.Getenv("GEMINI_MODEL"),
	})
	if err != nil {
		log.Fatalf("Failed to set up Gemini client: %s\n", err)
	}
	defer generator.Close()
	if !generator.IsConfigured() {
		log.Println("Warning: GEMINI_API_KEY is not set, AI course generation will not work")
	}

	videos, err := services.NewVideoFinder(ctx, services.VideoFinderConfig{
		APIKey: os.Getenv("YOUTUBE_API_KEY"),
	})
	if err != nil {
		log.Fatalf("Failed to set up YouTube client: %s\n", err)
	}

	// wire everything together
	server := api.NewServer(db, generator, videos)
	handler := server.EnableCORS(server) // needed for frontend requests

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Println("Starting server on :" + port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Could not start server: %s\n", err)
	}
}
