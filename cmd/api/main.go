package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"link-refresh-go/pkg/api"
	"link-refresh-go/pkg/config"
	"link-refresh-go/pkg/refresher"
	"link-refresh-go/pkg/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	runner := refresher.NewRunner(refresher.NewFetcher())
	refreshService := services.NewRefreshService(cfg.Links.File, runner)
	router := api.NewRouter(refreshService)

	srv := api.NewServer(cfg.Addr(), router)
	if err := srv.Start(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
	log.Printf("reading links from %s", cfg.Links.File)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-srv.Errors():
		if err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		log.Fatalf("%v", err)
	}

	log.Println("server exited")
}
