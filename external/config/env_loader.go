package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	internalconfig "github.com/foxseedlab/emovoice/internal/config"
)

type envConfig struct {
	Env               string `env:"ENV" envDefault:"production"`
	ProtocolLanguage  string `env:"PROTOCOL_LANGUAGE" envDefault:"en"`
	RecordingsDir     string `env:"RECORDINGS_DIR" envDefault:"recordings"`
	CaptureDeviceAddr string `env:"CAPTURE_DEVICE_ADDR"`
	DatabaseURL       string `env:"DATABASE_URL"`
	StorageURL        string `env:"STORAGE_URL"`
	StorageAPIKey     string `env:"STORAGE_API_KEY"`
	StorageBucket     string `env:"STORAGE_BUCKET" envDefault:"voice-logs"`
}

func Load() (*internalconfig.Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("environment variables are invalid or missing: %w", err)
	}

	cfg := &internalconfig.Config{
		Env:               raw.Env,
		ProtocolLanguage:  raw.ProtocolLanguage,
		RecordingsDir:     raw.RecordingsDir,
		CaptureDeviceAddr: raw.CaptureDeviceAddr,
		DatabaseURL:       raw.DatabaseURL,
		StorageURL:        raw.StorageURL,
		StorageAPIKey:     raw.StorageAPIKey,
		StorageBucket:     raw.StorageBucket,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
