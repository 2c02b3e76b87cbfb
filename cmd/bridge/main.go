package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	bizconfigimpl "github.com/fixlifyapp/fixlyfy-ai-automate-sub009/external/bizconfig"
	callstoreimpl "github.com/fixlifyapp/fixlyfy-ai-automate-sub009/external/callstore"
	configloader "github.com/fixlifyapp/fixlyfy-ai-automate-sub009/external/config"
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/external/postgres"
	realtimeimpl "github.com/fixlifyapp/fixlyfy-ai-automate-sub009/external/realtime"
	telephonyimpl "github.com/fixlifyapp/fixlyfy-ai-automate-sub009/external/telephony"
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/config"
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/session"
	"github.com/samber/do/v2"
)

func main() {
	slog.Info("startup: loading configuration")
	cfg := mustLoadConfig()
	initLogger(cfg)
	slog.Info("startup: configuration loaded", "env", cfg.Env)

	slog.Info("startup: building dependency graph")
	injector := setupDI(cfg)

	slog.Info("startup: launching voice bridge")
	runServer(injector)
}

func mustLoadConfig() *config.Config {
	cfg, err := configloader.Load()
	if err != nil {
		slog.Error("config validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

func initLogger(cfg *config.Config) {
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))
}

func setupDI(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	postgres.RegisterDI(injector)
	callstoreimpl.RegisterDI(injector)
	bizconfigimpl.RegisterDI(injector)
	realtimeimpl.RegisterDI(injector)
	session.RegisterDI(injector)
	telephonyimpl.RegisterDI(injector)

	return injector
}

func runServer(injector do.Injector) {
	server, err := do.Invoke[*telephonyimpl.Server](injector)
	if err != nil {
		slog.Error("failed to resolve telephony server", "error", err)
		os.Exit(1)
	}

	done := make(chan struct{})
	go func() {
		if err := server.Run(); err != nil {
			slog.Error("telephony server stopped", "error", err)
		}
		close(done)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		slog.Info("shutting down")
	case <-done:
	}
}
