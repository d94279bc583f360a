package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"pddtools/internal/service"
	"pddtools/internal/transport/rest/handler"
	"pddtools/internal/transport/rest/middleware"
	"pddtools/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService    *service.AuthService
	TrainerService *service.TrainerService
	BarrierService *service.BarrierService
	JournalService *service.JournalService
	SyncService    *service.SyncService
	WSHub          *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	trainerHandler := handler.NewTrainerHandler(c.TrainerService)
	barrierHandler := handler.NewBarrierHandler(c.BarrierService)
	journalHandler := handler.NewJournalHandler(c.JournalService)
	syncHandler := handler.NewSyncHandler(c.SyncService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.BarrierService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/token", authHandler.UserToken).Methods("POST", "OPTIONS")
	v1.HandleFunc("/trainers", trainerHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/diary/templates", journalHandler.DiaryTemplates).Methods("GET", "OPTIONS")
	v1.HandleFunc("/progress/templates", journalHandler.ProgressTemplates).Methods("GET", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/barrier", wsHandler.BarrierWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// User routes (require user auth)
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/trainers/stats", trainerHandler.Stats).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/trainers/{trainerId}/sessions", trainerHandler.Start).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/trainers/{trainerId}/sessions/current", trainerHandler.Current).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/trainers/{trainerId}/sessions/current/answers", trainerHandler.Answer).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/trainers/{trainerId}/sessions/current/skip", trainerHandler.Skip).Methods("POST", "OPTIONS")

	userRoutes.HandleFunc("/barrier/start", barrierHandler.Start).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/barrier/current", barrierHandler.Current).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/barrier/answers", barrierHandler.Answer).Methods("POST", "OPTIONS")

	userRoutes.HandleFunc("/diary/entries", journalHandler.AnalyzeDiary).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/diary/support", journalHandler.DiarySupport).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/progress/entries", journalHandler.ProgressCheckIn).Methods("POST", "OPTIONS")

	userRoutes.HandleFunc("/sync/{toolType}", syncHandler.Load).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/sync/{toolType}", syncHandler.Save).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/sync/{toolType}/merge", syncHandler.Sync).Methods("POST", "OPTIONS")

	// Admin routes (require admin auth)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/admin/diary/templates", journalHandler.SetDiaryTemplates).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/admin/progress/templates", journalHandler.SetProgressTemplates).Methods("PUT", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
