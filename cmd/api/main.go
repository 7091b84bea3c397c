package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vpricescan/vpricego/internal/ai"
	"github.com/vpricescan/vpricego/internal/config"
	"github.com/vpricescan/vpricego/internal/database"
	"github.com/vpricescan/vpricego/internal/handlers"
	"github.com/vpricescan/vpricego/internal/models"
	"github.com/vpricescan/vpricego/internal/scan"
	"github.com/vpricescan/vpricego/internal/scraper"
	"github.com/vpricescan/vpricego/internal/services/valuation"
	"github.com/vpricescan/vpricego/internal/store"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize database (detects embedded vs external automatically)
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	// Note: db.Close() is called manually in the shutdown handler below

	// 3. Synchronize schema
	log.Println("🚀 Synchronizing database schema...")
	if err := db.AutoMigrate(&models.Scan{}); err != nil {
		log.Printf("⚠️ Migration warning: %v", err)
	} else {
		log.Println("✅ Schema synchronized successfully")
	}

	scans := store.NewScans(db)

	// 4. Valuation engine (optional: history still works without a key)
	var valuer scan.Valuer
	if cfg.AI.APIKey == "" {
		log.Println("⚠️ GEMINI_API_KEY not set, /analyze/specs will be unavailable")
	} else {
		aiClient, err := ai.NewClient(context.Background(), cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			log.Fatalf("Failed to init valuation model: %v", err)
		}
		defer aiClient.Close()
		valuer = valuation.New(aiClient, scraper.New(cfg.Scraper))
	}

	session := scan.NewSession(valuer, scans)

	// 5. HTTP router and server
	router := handlers.NewRouter(scans, session, cfg.FrontendDir)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("🚀 V-Price scan server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ Server shutdown: %v", err)
	}
	if err := db.Close(); err != nil {
		log.Printf("⚠️ Database shutdown: %v", err)
	}
	log.Println("✅ Shutdown complete")
}
