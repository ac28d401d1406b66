package config

import (
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid memory backend config",
			config: Config{
				Port:        "8080",
				DataBackend: "memory",
				LogLevel:    "info",
				CacheTTL:    30 * time.Second,
			},
			wantErr: false,
		},
		{
			name: "valid sqlite backend config",
			config: Config{
				Port:         "8081",
				DataBackend:  "sqlite",
				SQLiteDBPath: "./test.db",
				LogLevel:     "debug",
				CacheTTL:     time.Minute,
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:        "abc",
				DataBackend: "memory",
				LogLevel:    "info",
				CacheTTL:    30 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name: "invalid port - out of range",
			config: Config{
				Port:        "70000",
				DataBackend: "memory",
				LogLevel:    "info",
				CacheTTL:    30 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name: "invalid backend",
			config: Config{
				Port:        "8080",
				DataBackend: "postgres",
				LogLevel:    "info",
				CacheTTL:    30 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid data backend 'postgres'",
		},
		{
			name: "sqlite backend without path",
			config: Config{
				Port:        "8080",
				DataBackend: "sqlite",
				LogLevel:    "info",
				CacheTTL:    30 * time.Second,
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
		{
			name: "invalid log level",
			config: Config{
				Port:        "8080",
				DataBackend: "memory",
				LogLevel:    "verbose",
				CacheTTL:    30 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
		{
			name: "cache TTL too small",
			config: Config{
				Port:        "8080",
				DataBackend: "memory",
				LogLevel:    "info",
				CacheTTL:    100 * time.Millisecond,
			},
			wantErr:     true,
			errorString: "invalid cache TTL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() should have failed")
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("Validate() error = %q, want it to contain %q", err, tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %s, want 8080", cfg.Port)
	}
	if cfg.DataBackend != "memory" {
		t.Errorf("DataBackend = %s, want memory", cfg.DataBackend)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("CACHE_TTL", "2m")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %s, want 9090", cfg.Port)
	}
	if cfg.DataBackend != "sqlite" {
		t.Errorf("DataBackend = %s, want sqlite", cfg.DataBackend)
	}
	if cfg.CacheTTL != 2*time.Minute {
		t.Errorf("CacheTTL = %v, want 2m", cfg.CacheTTL)
	}
}
