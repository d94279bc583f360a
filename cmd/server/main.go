package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pddtools/config"
	"pddtools/internal/cache"
	"pddtools/internal/repository"
	"pddtools/internal/service"
	"pddtools/internal/transport/rest"
	"pddtools/internal/transport/ws"
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

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	trainerSessionRepo := repository.NewTrainerSessionRepo(mongoClient)
	toolSessionRepo := repository.NewToolSessionRepo(mongoClient)
	templateRepo := repository.NewTemplateRepo(mongoClient)

	// Initialize caches
	sessionCache := cache.NewSessionCache(rdb)
	barrierCache := cache.NewBarrierCache(rdb)
	statsCache := cache.NewStatsCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	trainerSvc := service.NewTrainerService(trainerSessionRepo, sessionCache, statsCache)
	barrierSvc := service.NewBarrierService(barrierCache, toolSessionRepo)
	syncSvc := service.NewSyncService(toolSessionRepo)
	journalSvc := service.NewJournalService(templateRepo, syncSvc)

	// Create router with container
	container := &rest.Container{
		AuthService:    authSvc,
		TrainerService: trainerSvc,
		BarrierService: barrierSvc,
		JournalService: journalSvc,
		SyncService:    syncSvc,
		WSHub:          wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/auth/token")
		log.Println("  GET  /v1/trainers")
		log.Println("  POST /v1/trainers/{trainerId}/sessions")
		log.Println("  POST /v1/barrier/answers")
		log.Println("  POST /v1/diary/entries")
		log.Println("  POST /v1/progress/entries")
		log.Println("  POST /v1/sync/{toolType}/merge")
		log.Println("  WS   /v1/ws/barrier")

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
