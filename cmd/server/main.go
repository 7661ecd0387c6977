package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/config"
	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/handler"
	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/middleware"
	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/repository"
	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/service"
	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		log.Fatalf("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHours := int64(24)
	if jwtExpHoursStr := os.Getenv("JWT_EXPIRATION_HOURS"); jwtExpHoursStr != "" {
		jwtExpHours, err = strconv.ParseInt(jwtExpHoursStr, 10, 64)
		if err != nil {
			log.Printf("Invalid JWT_EXPIRATION_HOURS, defaulting to 24: %v", err)
			jwtExpHours = 24
		}
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(jwtSecret, jwtExpHours)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	jobRepo := repository.NewJobRepository(dbPool)
	appRepo := repository.NewApplicationRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	jobService := service.NewJobService(jobRepo)
	applicationService := service.NewApplicationService(appRepo, jobRepo, userRepo)
	documentService := service.NewDocumentService(userRepo, jobRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	documentHandler := handler.NewDocumentHandler(documentService)

	// --- Setup Gin Router ---
	router := gin.Default()

	// CORS (allow all for development)
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	router.Use(cors.New(corsCfg))

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	employerMW := middleware.EmployerMiddleware()
	seekerMW := middleware.JobSeekerMiddleware()

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup, jwtAuthMW)
	jobHandler.RegisterJobRoutes(apiGroup, jwtAuthMW, employerMW)
	applicationHandler.RegisterApplicationRoutes(apiGroup, jwtAuthMW, seekerMW, employerMW)
	documentHandler.RegisterDocumentRoutes(apiGroup, jwtAuthMW, seekerMW)

	apiGroup.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "timestamp": time.Now().UTC()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
