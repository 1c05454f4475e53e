// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medlavka/storefront/internal/catalog"
	"github.com/medlavka/storefront/internal/config"
	"github.com/medlavka/storefront/internal/database"
	"github.com/medlavka/storefront/internal/i18n"
	"github.com/medlavka/storefront/internal/router"
	"github.com/medlavka/storefront/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database
	db, err := database.Initialize(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close(db)

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Seed the default catalog on first boot
	if err := database.SeedInitialData(db); err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}

	// Initialize i18n
	if err := i18n.Initialize(); err != nil {
		log.Fatal("Failed to initialize i18n:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Catalog cache, change-event plumbing. The listener subscribes before
	// the full load so no change can slip between the two; events that commit
	// during the load queue up in the listener's buffer.
	st := store.NewPostgres(db)
	cache := catalog.NewCache()
	broker := catalog.NewBroker()

	listener, err := store.NewListener(cfg.Database.DSN(), st)
	if err != nil {
		log.Fatal("Failed to subscribe to catalog changes:", err)
	}
	go listener.Run(ctx)

	// Initial full load. A failure leaves the cache empty rather than taking
	// the server down; nothing retries automatically.
	if books, err := st.FetchAll(ctx); err != nil {
		log.Printf("Initial catalog load failed, starting empty: %v", err)
	} else {
		cache.ReplaceAll(books)
		log.Printf("Catalog loaded: %d books", len(books))
	}

	// The reconciler starts only after the snapshot is in place, so queued
	// changes always land on top of it as id-keyed upserts and deletes. The
	// snapshot must never race the event stream: a full replace applied after
	// an event would clobber it.
	reconciler := catalog.NewReconciler(cache, broker)
	go reconciler.Run(ctx, listener.Events())

	// Initialize router
	r := router.Initialize(db, cfg, cache, broker)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Stop the listener and reconciler, then drain the HTTP server
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
