package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/DebuggingNinjas/GeoAssist/internal/application"
	"github.com/DebuggingNinjas/GeoAssist/internal/handler"
	"github.com/DebuggingNinjas/GeoAssist/internal/infrastructure/database"
	"github.com/DebuggingNinjas/GeoAssist/internal/repository"
)

// The auth service is a separate process from the API server: it owns the
// relational accounts store and issues the session tokens the API server
// verifies.
func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		fmt.Println("⚠️  Missing required environment variables:")
		fmt.Println("  DATABASE_URL - PostgreSQL connection string for the accounts table")
		fmt.Println("  JWT_SECRET   - shared secret for session tokens")
		log.Fatal("Environment variables not set")
	}

	fmt.Println("Initializing PostgreSQL client...")
	dbClient, err := database.NewPostgreSQLClient()
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer dbClient.Close()

	if err := dbClient.HealthCheck(); err != nil {
		log.Fatalf("PostgreSQL health check failed: %v", err)
	}
	fmt.Println("✅ PostgreSQL connection successful!")

	accountsRepo := repository.NewPostgresAccountsRepository(dbClient)
	accountsService := application.NewAccountsService(accountsRepo, jwtSecret)
	authHandler := handler.NewAuthHandler(accountsService)

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origin := os.Getenv("WEB_ORIGIN"); origin != "" {
		corsConfig.AllowOrigins = []string{origin}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "geoassist-auth"})
	})

	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)

	port := os.Getenv("AUTH_PORT")
	if port == "" {
		port = "5050"
	}

	fmt.Printf("GeoAssist auth service starting on :%s...\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Auth service failed to start: %v", err)
	}
}
