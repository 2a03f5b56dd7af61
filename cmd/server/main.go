package main

import (
	"log"
	"os"

	"petit/internal/cache"
	"petit/internal/db"
	"petit/internal/handlers"
	"petit/internal/middleware"
	"petit/internal/router"
	"petit/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Optional redis cache (like guard, trending tags)
	cache.InitRedis(os.Getenv("REDIS_ADDR"))

	// Background view-count batching
	services.GetViewService()

	// Google sign-in
	handlers.InitGoogleOAuth()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("petit_session", store))

	// Middleware
	r.Use(middleware.LoadUser())

	router.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Petit server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
