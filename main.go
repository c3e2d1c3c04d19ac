package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/mindweave/mindweave-api/config"
	"github.com/mindweave/mindweave-api/handlers"
	"github.com/mindweave/mindweave-api/middleware"
	"github.com/mindweave/mindweave-api/session"
	"github.com/mindweave/mindweave-api/suggest"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	environment, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := config.Connect(environment); err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	// Suggestion provider: a remote service when configured, always with the
	// derived fallback so expansion never hard-fails.
	var provider suggest.Provider = suggest.Derived{}
	if environment.SuggestionURL != "" {
		provider = suggest.WithFallback(suggest.NewHTTPProvider(environment.SuggestionURL), suggest.Derived{})
	}

	handler := &handlers.Handler{
		DB:       config.Database,
		Sessions: session.NewRegistry(provider),
	}
	mux := handler.Routes()

	authMiddleware := middleware.EnsureValidToken(environment.JWTSecret)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   environment.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(authMiddleware(mux))

	serverAddr := "0.0.0.0:" + environment.Port
	log.Printf("Listening on %s", serverAddr)

	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
