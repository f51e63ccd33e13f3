package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"formforge/internal/cache"
	"formforge/internal/config"
	"formforge/internal/repository"
	"formforge/internal/service"
	"formforge/internal/storage"
	"formforge/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Upload storage
	uploads, err := storage.NewDisk(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to prepare upload dir:", err)
	}

	// Initialize repositories
	formRepo := repository.NewFormRepo(db)
	responseRepo := repository.NewResponseRepo(db)

	// Initialize caches
	formCache := cache.NewFormCache(rdb, cfg.CacheTTL)

	// Initialize services
	formSvc := service.NewFormService(formRepo, formCache)
	responseSvc := service.NewResponseService(responseRepo)

	// Create router with container
	container := &rest.Container{
		FormService:     formSvc,
		ResponseService: responseSvc,
		Uploads:         uploads,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST/GET /api/forms")
		log.Println("  GET/PUT/DELETE /api/forms/{id}")
		log.Println("  POST /api/forms/{id}/validate")
		log.Println("  GET  /api/forms/{id}/view")
		log.Println("  POST /api/forms/{id}/questions")
		log.Println("  POST /api/responses")
		log.Println("  GET  /api/responses/form/{id}")
		log.Println("  POST /api/upload")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
