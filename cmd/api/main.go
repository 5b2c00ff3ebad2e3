package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-ai/internal/config"
	"github.com/iamasit07/connect4-ai/internal/service/cleanup"
	"github.com/iamasit07/connect4-ai/internal/service/game"
	transportHttp "github.com/iamasit07/connect4-ai/internal/transport/http"
	"github.com/iamasit07/connect4-ai/internal/transport/http/middleware"
	"github.com/iamasit07/connect4-ai/internal/transport/websocket"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	// 1. Initialize Services
	sessionManager := game.NewSessionManager()

	// 2. Initialize Background Workers
	ctx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	cleanupWorker := cleanup.NewWorker(sessionManager, cfg.CleanupInterval, cfg.SessionTTL)
	go cleanupWorker.Start(ctx)

	// 3. Initialize Handlers
	gameHandler := transportHttp.NewGameHandler(sessionManager, transportHttp.GameDefaults{
		Rows:       cfg.BoardRows,
		Cols:       cfg.BoardCols,
		Difficulty: cfg.AIDifficulty,
	})
	wsHandler := websocket.NewHandler(sessionManager, game.NewGameOptions{
		Rows:       cfg.BoardRows,
		Cols:       cfg.BoardCols,
		Difficulty: cfg.AIDifficulty,
		HumanFirst: true,
	}, func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || middleware.IsOriginAllowed(origin, cfg.AllowedOrigins)
	})

	// 4. Setup Gin Router
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": sessionManager.Count()})
	})
	gameHandler.Register(router)

	// WebSocket Route
	router.GET("/ws", gin.WrapF(wsHandler.HandleWebSocket))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")
	stopWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
