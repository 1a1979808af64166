package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/market-intel/app/api"
	"github.com/lysyi3m/market-intel/app/cfg"
	"github.com/lysyi3m/market-intel/app/dataset"
	"github.com/lysyi3m/market-intel/app/market"
	"github.com/lysyi3m/market-intel/app/tasks"
	"github.com/lysyi3m/market-intel/app/view"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown
		return
	}

	level := slog.LevelInfo
	if appCfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	if appCfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	slog.Info("Starting MarketIntel server", "version", appCfg.Version)

	ds, err := dataset.NewLoader(appCfg.DataFile, appCfg.FeedFile).Run()
	if err != nil {
		slog.Error("Failed to load dataset", "error", err)
		os.Exit(1)
	}

	theme, err := view.ParseTheme(appCfg.Theme)
	if err != nil {
		slog.Error("Invalid theme", "error", err)
		os.Exit(1)
	}

	filterer := market.NewFilterer()
	user := view.User{Name: appCfg.UserName, Title: appCfg.UserTitle}
	store := view.NewStore(ds, filterer, user, time.Duration(appCfg.SearchDelay)*time.Millisecond)
	themeSetting := view.NewThemeSetting(theme)

	scheduler := tasks.NewScheduler(store,
		time.Duration(appCfg.SessionTTL)*time.Second,
		time.Duration(appCfg.SchedulerInterval)*time.Second,
		appCfg.WorkerCount)
	scheduler.Start()
	defer scheduler.Stop()

	apiHandler := api.NewHandler(ds, filterer, store, themeSetting, appCfg.BaseUrl, appCfg.Version)
	server := api.NewServer(apiHandler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	slog.Info("MarketIntel server started",
		"results", len(ds.Results()),
		"trends", len(ds.Trends()),
		"history", len(ds.History()),
		"theme", theme)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	slog.Info("MarketIntel server shutdown complete")
}
