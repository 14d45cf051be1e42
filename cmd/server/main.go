// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/traza-ai/trainhub/internal/config"
	"github.com/traza-ai/trainhub/internal/domain"
	"github.com/traza-ai/trainhub/internal/handlers"
	"github.com/traza-ai/trainhub/internal/middleware"
	"github.com/traza-ai/trainhub/internal/ratelimit"
	kvrepo "github.com/traza-ai/trainhub/internal/repository/kv"
	userrepo "github.com/traza-ai/trainhub/internal/repository/user"
	"github.com/traza-ai/trainhub/internal/services"
	"github.com/traza-ai/trainhub/internal/services/ai"
	"github.com/traza-ai/trainhub/internal/services/theory"
	"github.com/traza-ai/trainhub/internal/store"
)

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	cfg := config.Load()
	logger := services.NewLogger("trainhub")

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.KVEntry{}); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}

	// --- Repositories ---
	userRepo := userrepo.NewGormUserRepository(db)
	kvRepo := kvrepo.NewKVRepository(db)

	// --- Services ---
	aiConfig := ai.DefaultConfig()
	aiConfig.BaseURL = cfg.AIBaseURL
	aiConfig.ServerKey = cfg.AnthropicAPIKey
	if err := aiConfig.Validate(); err != nil {
		log.Fatalf("FATAL: Invalid AI configuration: %v", err)
	}
	provider := ai.NewAnthropicProvider(aiConfig)

	userService := services.NewUserService(userRepo, cfg.JWTSecretKey)
	theoryService := theory.NewService(provider, logger)

	// --- Stores ---
	promptStore := store.NewPromptStore(kvRepo, logger)
	chatStore := store.NewChatStore(kvRepo, logger)

	// One-time sweep that backs up and clears legacy chat histories.
	chatStore.MigrateOldChatData(context.Background())

	// --- Rate Limiters ---
	generationLimiter := ratelimit.NewSlidingWindowLimiter(ratelimit.GenerationConfig())
	defer generationLimiter.Close()
	authLimiter := ratelimit.NewSlidingWindowLimiter(ratelimit.DefaultAuthConfig())
	defer authLimiter.Close()

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(userService)
	theoryHandler := handlers.NewTheoryHandler(theoryService, promptStore, userService)
	promptHandler := handlers.NewPromptHandler(promptStore)
	chatHandler := handlers.NewChatHandler(provider, promptStore, chatStore, userService)
	settingsHandler := handlers.NewSettingsHandler(userService, provider, cfg.AnthropicAPIKey != "")

	// --- Router Setup ---
	r := mux.NewRouter()
	authMiddleware := middleware.NewJWTMiddleware([]byte(cfg.JWTSecretKey))

	r.Use(corsMiddleware)
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	// --- Public Routes ---
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")
	r.HandleFunc("/api/log", handlers.LogFrontendEvent).Methods("POST")

	authRoutes := r.PathPrefix("/api/auth").Subrouter()
	authRoutes.Use(middleware.RateLimitMiddleware(authLimiter, "auth"))
	authRoutes.HandleFunc("/register", authHandler.Register).Methods("POST")
	authRoutes.HandleFunc("/login", authHandler.Login).Methods("POST")
	authRoutes.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	// --- Protected Routes ---
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware)

	api.Handle("/generate-theory",
		middleware.RateLimitMiddleware(generationLimiter, "generate-theory")(
			http.HandlerFunc(theoryHandler.GenerateTheory))).Methods("POST")
	api.HandleFunc("/theory", theoryHandler.GetTheory).Methods("GET")
	api.HandleFunc("/theory/html", theoryHandler.GetTheoryHTML).Methods("GET")
	api.HandleFunc("/theory/reset", theoryHandler.ResetTheory).Methods("POST")

	api.HandleFunc("/prompts/export", promptHandler.ExportPrompts).Methods("GET")
	api.HandleFunc("/prompts/import", promptHandler.ImportPrompts).Methods("POST")
	api.HandleFunc("/prompts/{type}", promptHandler.GetPrompt).Methods("GET")
	api.HandleFunc("/prompts/{type}", promptHandler.SetPrompt).Methods("PUT")
	api.HandleFunc("/prompts/{type}", promptHandler.ResetPrompt).Methods("DELETE")
	api.HandleFunc("/prompts/{type}/suggested", promptHandler.GetSuggested).Methods("GET")
	api.HandleFunc("/prompts/{type}/suggested", promptHandler.SetSuggested).Methods("PUT")
	api.HandleFunc("/prompts/{type}/suggested", promptHandler.ResetSuggested).Methods("DELETE")
	api.HandleFunc("/prompts/{type}/context", promptHandler.GetContext).Methods("GET")
	api.HandleFunc("/prompts/{type}/context", promptHandler.SetContext).Methods("PUT")
	api.HandleFunc("/prompts/{type}/context", promptHandler.ResetContext).Methods("DELETE")

	api.HandleFunc("/model", promptHandler.GetModel).Methods("GET")
	api.HandleFunc("/model", promptHandler.SetModel).Methods("PUT")

	api.HandleFunc("/chat/{type}", chatHandler.StreamChat).Methods("POST")
	api.HandleFunc("/chat/{type}", chatHandler.ClearChat).Methods("DELETE")
	api.HandleFunc("/chat/{type}/messages", chatHandler.GetMessages).Methods("GET")
	api.HandleFunc("/chat/{type}/archives", chatHandler.GetArchives).Methods("GET")
	api.HandleFunc("/chat/{type}/archives/{id}/restore", chatHandler.RestoreArchive).Methods("POST")
	api.HandleFunc("/chat/{type}/archives/{id}", chatHandler.DeleteArchive).Methods("DELETE")

	api.HandleFunc("/settings/api-key", settingsHandler.GetAPIKeyStatus).Methods("GET")
	api.HandleFunc("/settings/api-key", settingsHandler.SetAPIKey).Methods("POST")
	api.HandleFunc("/settings/api-key", settingsHandler.DeleteAPIKey).Methods("DELETE")

	// --- Server Configuration ---
	port := ":8080"
	if cfg.ServerPort != "" {
		port = ":" + cfg.ServerPort
	}
	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("TrainHub server starting on port %s", port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}
