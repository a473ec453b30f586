package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/pulse-assessments/backend/internal/assessments"
	"github.com/pulse-assessments/backend/internal/auth"
	"github.com/pulse-assessments/backend/internal/cache"
	"github.com/pulse-assessments/backend/internal/database"
	"github.com/pulse-assessments/backend/internal/middleware"
	"github.com/pulse-assessments/backend/internal/narrative"
	"github.com/pulse-assessments/backend/internal/session"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// The Redis run cache is optional: if the server cannot reach Redis at
	// startup it runs without caching rather than refusing to start.
	var runCache cache.RunCache
	redisClient := cache.NewClient()
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Printf("Redis unavailable, running without run cache: %v", err)
		redisClient.Close()
	} else {
		runCache = cache.NewRunCache(redisClient)
		defer redisClient.Close()
	}
	cancel()

	// Initialize handlers
	authHandler := auth.NewHandler(db)
	sessionService := session.NewService(session.NewStore(db), runCache)
	sessionHandler := session.NewHandler(sessionService)
	assessmentHandler := assessments.NewHandler()
	narrativeService := narrative.NewService(narrative.NewClient())
	narrativeHandler := narrative.NewHandler(sessionService, narrativeService)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")
	assessmentHandler.RegisterRoutes(protected)
	sessionHandler.RegisterRoutes(protected)
	narrativeHandler.RegisterRoutes(protected)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
