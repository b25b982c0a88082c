package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/samber/do/v2"

	blobstoreimpl "github.com/foxseedlab/emovoice/external/blobstore"
	captureimpl "github.com/foxseedlab/emovoice/external/capture"
	configloader "github.com/foxseedlab/emovoice/external/config"
	repositoryimpl "github.com/foxseedlab/emovoice/external/repository"
	uploaderimpl "github.com/foxseedlab/emovoice/external/uploader"
	"github.com/foxseedlab/emovoice/internal/config"
	"github.com/foxseedlab/emovoice/internal/protocol"
	"github.com/foxseedlab/emovoice/internal/tui"
)

func main() {
	_ = godotenv.Load()

	slog.Info("startup: loading configuration")
	cfg := mustLoadConfig()
	initLogger(cfg)
	slog.Info("startup: configuration loaded",
		"env", cfg.Env,
		"language", cfg.ProtocolLanguage,
		"remote_store", cfg.HasRemoteStore())

	slog.Info("startup: building dependency graph")
	injector := setupDI(cfg)

	runSession(injector)
}

func mustLoadConfig() *config.Config {
	cfg, err := configloader.Load()
	if err != nil {
		slog.Error("config validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// initLogger writes JSON logs to stderr; stdout belongs to the terminal UI.
func initLogger(cfg *config.Config) {
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}

func setupDI(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	blobstoreimpl.RegisterDI(injector)
	repositoryimpl.RegisterDI(injector)
	captureimpl.RegisterDI(injector)
	uploaderimpl.RegisterDI(injector)
	protocol.RegisterDI(injector)

	return injector
}

func runSession(injector do.Injector) {
	engine, err := do.Invoke[*protocol.Engine](injector)
	if err != nil {
		slog.Error("failed to resolve session engine", "error", err)
		os.Exit(1)
	}
	defer engine.Dispose()

	program := tea.NewProgram(tui.New(engine, "."), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		slog.Error("terminal ui failed", "error", err)
		os.Exit(1)
	}
	slog.Info("shutting down")
}
