package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emoquiz-service/internal/cache"
	"emoquiz-service/internal/catalog"
	"emoquiz-service/internal/config"
	"emoquiz-service/internal/db"
	"emoquiz-service/internal/event"
	"emoquiz-service/internal/handlers"
	"emoquiz-service/internal/middleware"
	"emoquiz-service/internal/repository"
	"emoquiz-service/internal/service"
	"emoquiz-service/internal/storage"
	"emoquiz-service/pkg/discovery"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	// Static content
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Loaded catalog: %d pillars, %d questions", len(cat.Pillars()), cat.TotalQuestionCount())

	// MongoDB
	if err := db.InitMongo(cfg.MongoDB); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	database := db.Client.Database(cfg.MongoDB.Database)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" {
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	// MinIO evidence storage
	evidenceStore, err := storage.NewEvidenceStore(cfg.MinIO)
	if err != nil {
		log.Fatalf("Failed to initialize evidence storage: %v", err)
	}

	// Redis progress cache
	var progressCache *cache.ProgressCache
	progressCache, err = cache.NewProgressCache(cfg.Redis)
	if err != nil {
		log.Printf("Warning: Redis unavailable, progress will be computed on every read: %v", err)
		progressCache = nil
	} else {
		defer progressCache.Close()
	}

	// Repositories
	sessionRepo := repository.NewSessionRepository(database)
	completionRepo := repository.NewCompletionRepository(database)
	profileRepo := repository.NewProfileRepository(database)

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	if err := completionRepo.CreateIndexes(indexCtx); err != nil {
		log.Printf("Warning: Failed to create completion indexes: %v", err)
	}
	if err := profileRepo.CreateIndexes(indexCtx); err != nil {
		log.Printf("Warning: Failed to create profile indexes: %v", err)
	}
	cancelIndex()

	// Services
	sessionService := service.NewSessionService(sessionRepo, cat, publisher)
	completionService := service.NewCompletionService(completionRepo, evidenceStore, cat, progressCache, publisher)
	profileService := service.NewProfileService(profileRepo, completionRepo, progressCache, publisher)

	// Handlers
	catalogHandler := handlers.NewCatalogHandler(cat)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	completionHandler := handlers.NewCompletionHandler(completionService)
	profileHandler := handlers.NewProfileHandler(profileService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Public routes - catalog content needs no identity
	publicCatalog := r.Group("/public/emoquiz/catalog")
	{
		publicCatalog.GET("/", catalogHandler.GetCatalog)
		publicCatalog.GET("/pillars/:index", catalogHandler.GetPillar)
	}

	// Protected routes
	protected := r.Group("/protected/emoquiz")
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))
	{
		protected.POST("/session", sessionHandler.CreateOrResume)
		protected.GET("/session/:id", sessionHandler.GetSession)
		protected.POST("/session/:id/start", sessionHandler.Start)
		protected.POST("/session/:id/answer", sessionHandler.Answer)
		protected.POST("/session/:id/next", sessionHandler.Next)
		protected.POST("/session/:id/previous", sessionHandler.Previous)
		protected.POST("/session/:id/restart", sessionHandler.Restart)
		protected.GET("/session/:id/results", sessionHandler.Results)

		protected.POST("/completion", completionHandler.Submit)
		protected.GET("/completion", completionHandler.Timeline)

		protected.GET("/profile", profileHandler.GetProfile)
		protected.PUT("/profile", profileHandler.UpsertProfile)
		protected.GET("/profile/progress", profileHandler.GetProgress)
	}

	// Consul registration
	if cfg.Consul.Address != "" {
		registry, err := discovery.NewServiceRegistry(cfg)
		if err != nil {
			log.Printf("Warning: Consul unavailable: %v", err)
		} else if err := registry.Register(); err != nil {
			log.Printf("Warning: Consul registration failed: %v", err)
		} else {
			defer registry.Deregister()
		}
	}

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	db.Close(ctx)
	log.Println("Server stopped")
}
