package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/patiponrmutl/TutorDesk/config"
	"github.com/patiponrmutl/TutorDesk/database"
	"github.com/patiponrmutl/TutorDesk/logging"
	"github.com/patiponrmutl/TutorDesk/metrics"
	"github.com/patiponrmutl/TutorDesk/routes"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.IsDev())

	// no tables, no service: Connect exits on failure
	db := database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(logging.RequestLogger())
	e.Use(metrics.Middleware())
	e.Use(middleware.CORS())

	routes.RegisterRoutes(e, db, cfg)

	addr := ":" + cfg.AppPort
	go func() {
		log.Info().Str("addr", addr).Str("driver", cfg.DBDriver).Msg("server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
