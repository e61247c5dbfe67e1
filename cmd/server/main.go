package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"farmdash/config"
	"farmdash/pkg/app"
)

func main() {
	// 1) Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[cfg] %v", err)
	}
	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			log.Fatalf("[cfg] TZ: %v", err)
		}
		time.Local = loc
	}

	// 2) Data source + services
	svcs, err := app.Build(cfg)
	if err != nil {
		log.Fatalf("[app] %v", err)
	}

	// 3) Echo + routes
	e := newServer(cfg, svcs)
	e.Server.ReadHeaderTimeout = 10 * time.Second

	// 4) Start, stop on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		log.Printf("listening on :%s", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if svcs.DB != nil {
		if sqlDB, err := svcs.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
