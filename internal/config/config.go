package config

import (
	"fmt"
)

type Config struct {
	Env               string
	ProtocolLanguage  string
	RecordingsDir     string
	CaptureDeviceAddr string
	DatabaseURL       string
	StorageURL        string
	StorageAPIKey     string
	StorageBucket     string
}

var supportedLanguages = []string{"en", "ja"}

func (c *Config) Validate() error {
	for _, req := range c.requiredFieldChecks() {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}
	if !isSupportedLanguage(c.ProtocolLanguage) {
		return fmt.Errorf("PROTOCOL_LANGUAGE must be one of %v, got %q", supportedLanguages, c.ProtocolLanguage)
	}
	if (c.StorageURL == "") != (c.StorageAPIKey == "") {
		return fmt.Errorf("STORAGE_URL and STORAGE_API_KEY must be set together")
	}
	if c.StorageURL != "" && c.StorageBucket == "" {
		return fmt.Errorf("STORAGE_BUCKET is required when STORAGE_URL is set")
	}
	return nil
}

type requiredEnvField struct {
	name  string
	value string
}

func (c *Config) requiredFieldChecks() []requiredEnvField {
	return []requiredEnvField{
		{name: "PROTOCOL_LANGUAGE", value: c.ProtocolLanguage},
		{name: "RECORDINGS_DIR", value: c.RecordingsDir},
	}
}

func isSupportedLanguage(lang string) bool {
	for _, l := range supportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// HasCaptureDevice reports whether a capture daemon address is configured.
// Without one the protocol runs with recording unavailable.
func (c *Config) HasCaptureDevice() bool {
	return c.CaptureDeviceAddr != ""
}

func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

func (c *Config) HasStorage() bool {
	return c.StorageURL != "" && c.StorageAPIKey != ""
}

// HasRemoteStore reports whether any remote persistence path is active.
// Absence is a capability reduction, not an error.
func (c *Config) HasRemoteStore() bool {
	return c.HasDatabase() || c.HasStorage()
}
