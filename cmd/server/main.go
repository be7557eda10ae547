package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/DebuggingNinjas/GeoAssist/internal/application"
	"github.com/DebuggingNinjas/GeoAssist/internal/database"
	"github.com/DebuggingNinjas/GeoAssist/internal/handler"
	"github.com/DebuggingNinjas/GeoAssist/internal/infrastructure/firestore"
	"github.com/DebuggingNinjas/GeoAssist/internal/infrastructure/places"
	"github.com/DebuggingNinjas/GeoAssist/internal/repository"
	"github.com/DebuggingNinjas/GeoAssist/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	mapsAPIKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	jwtSecret := os.Getenv("JWT_SECRET")

	if projectID == "" || mapsAPIKey == "" || jwtSecret == "" {
		fmt.Println("⚠️  Missing required environment variables:")
		fmt.Println("  GOOGLE_CLOUD_PROJECT - Firestore project for the catalog store")
		fmt.Println("  GOOGLE_MAPS_API_KEY  - key for the external place search")
		fmt.Println("  JWT_SECRET           - shared secret for session tokens")
		fmt.Println("\nCreate a .env file or set the variables in the environment")
		log.Fatal("Environment variables not set")
	}

	ctx := context.Background()

	fmt.Println("Initializing Firestore client...")
	firestoreClient, err := firestore.NewFirestoreClient(ctx, projectID)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	fmt.Println("Initializing Supabase client...")
	supabaseClient, err := database.NewSupabaseClient()
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}
	if err := supabaseClient.HealthCheck(); err != nil {
		log.Fatalf("Supabase health check failed: %v", err)
	}
	fmt.Println("✅ Supabase connection successful!")

	// Repositories and providers
	locationsRepo := repository.NewFirestoreLocationsRepository(firestoreClient.GetClient())
	subscribersRepo := repository.NewSupabaseSubscribersRepository(supabaseClient)
	searchProvider := places.NewGooglePlacesProvider(mapsAPIKey)

	// Services and use cases
	searchUseCase := usecase.NewSearchUseCase(locationsRepo, searchProvider)
	newsletterService := application.NewNewsletterService(subscribersRepo)

	// Handlers
	searchHandler := handler.NewSearchHandler(searchUseCase)
	locationsHandler := handler.NewLocationsHandler(locationsRepo)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService)

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origin := os.Getenv("WEB_ORIGIN"); origin != "" {
		corsConfig.AllowOrigins = []string{origin}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "geoassist-api"})
	})

	router.GET("/api/search", searchHandler.Search)
	router.GET("/api/locations", locationsHandler.List)
	router.GET("/api/locations/:id", locationsHandler.Get)
	router.POST("/api/newsletter", newsletterHandler.Subscribe)

	adminEmails := strings.Split(os.Getenv("ADMIN_EMAILS"), ",")
	admin := router.Group("/api/admin")
	admin.Use(handler.AuthMiddleware(jwtSecret), handler.RequireAdmin(adminEmails))
	{
		admin.POST("/locations", locationsHandler.Create)
		admin.PUT("/locations/:id", locationsHandler.Update)
		admin.DELETE("/locations/:id", locationsHandler.Delete)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("GeoAssist API server starting on :%s...\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
