package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Port: "8080", Host: "0.0.0.0", Environment: "test"},
		Dataset: DatasetConfig{MaxParticipants: 5000, PreviewRows: 5, SessionTTL: 2 * time.Hour},
		Export:  ExportConfig{SnapshotPath: ".", Filename: "hackathon_data.csv"},
		Image:   ImageConfig{MaxUploadBytes: 10 << 20},
	}
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero max participants", func(c *Config) { c.Dataset.MaxParticipants = 0 }},
		{"negative preview rows", func(c *Config) { c.Dataset.PreviewRows = -1 }},
		{"zero upload limit", func(c *Config) { c.Image.MaxUploadBytes = 0 }},
		{"empty export filename", func(c *Config) { c.Export.Filename = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("invalid config accepted")
			}
		})
	}
}
