//	@title			Media Service API
//	@version		1.0
//	@description	File proxy endpoints over an S3-compatible object store.

package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/r2box/media-service/internal/config"
	"github.com/r2box/media-service/internal/http/handlers/files"
	"github.com/r2box/media-service/internal/http/router"
	"github.com/r2box/media-service/internal/services/media"
	"github.com/r2box/media-service/internal/storage/minio"
	"github.com/r2box/media-service/internal/upload"
)

func main() {
	// load config
	cfg := config.MustLoad()

	// object storage setup
	store, err := minio.New(cfg.Storage)
	if err != nil {
		log.Fatal("Failed to initialize object storage:", err)
	}

	ensureCtx, cancelEnsure := context.WithTimeout(context.Background(), 10*time.Second)
	if err := store.EnsureBucket(ensureCtx, cfg.Storage.Bucket); err != nil {
		log.Fatal("Failed to ensure bucket:", err)
	}
	cancelEnsure()
	slog.Info("Connected to object storage", slog.String("bucket", cfg.Storage.Bucket))

	// wire service and handlers
	svc := media.NewService(store, cfg.Storage)
	r := router.New(files.NewHandlers(svc))

	// sweep temp files orphaned by crashed requests
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go upload.NewSweeper(10*time.Minute, time.Hour, slog.Default()).Run(sweepCtx)

	server := http.Server{
		Addr:    cfg.HTTPServer.Address,
		Handler: r,
	}

	log.Println("server started on", cfg.HTTPServer.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %s", err)
		}
	}()

	<-done

	slog.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = server.Shutdown(ctx)
	if err != nil {
		slog.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
		return
	}

	slog.Info("Server stopped")
}
