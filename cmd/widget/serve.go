//go:build !wasm

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	httpadapter "github.com/SVignesh2004/Weather-App/internal/adapter/http"
	"github.com/SVignesh2004/Weather-App/internal/adapter/openweather"
	"github.com/SVignesh2004/Weather-App/internal/config"
	"github.com/SVignesh2004/Weather-App/internal/observability"
	"github.com/SVignesh2004/Weather-App/internal/ui"
	"github.com/SVignesh2004/Weather-App/web"
)

func serve() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()
	metrics.AppInfo.WithLabelValues(version).Set(1)

	if cfg.OpenWeatherAppID == "" {
		logger.Warn("OWM_APP_ID is not set; every lookup will fail until it is")
	}

	// The browser calls the provider itself; the server-side client only
	// backs the readiness check.
	provider := openweather.NewClient(cfg.OpenWeatherAppID, cfg.OpenWeatherURL, 0, logger)

	srv := httpadapter.NewServer(cfg.HTTPAddr, newAppHandler(cfg), web.FS, provider, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

// newAppHandler configures the go-app shell and the settings handed to the browser.
func newAppHandler(cfg *config.Config) *app.Handler {
	h := &app.Handler{
		Name:        "Weather",
		ShortName:   "weather",
		Title:       "Weather",
		Description: "Current weather by city",
		Icon:        app.Icon{SVG: "/web/icon.svg"},
		Styles:      []string{"/web/weather.css"},
		Env: map[string]string{
			ui.EnvAppID:       cfg.OpenWeatherAppID,
			ui.EnvBaseURL:     cfg.OpenWeatherURL,
			ui.EnvDefaultCity: cfg.DefaultCity,
			ui.EnvCancelStale: strconv.FormatBool(cfg.CancelStale),
		},
		Version: version,
	}
	if cfg.Dev {
		h.Version = ""
		h.Env[ui.EnvDev] = "1"
	}
	return h
}
