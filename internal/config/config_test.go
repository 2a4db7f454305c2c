package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != ModeBatch {
		t.Errorf("Expected default mode to be 'batch', got '%s'", cfg.Mode)
	}

	if cfg.Host != "127.0.0.1" {
		t.Errorf("Expected default host to be '127.0.0.1', got '%s'", cfg.Host)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected default port to be 8080, got %d", cfg.Port)
	}

	if cfg.ServerName != "sds-extract" {
		t.Errorf("Expected default server name to be 'sds-extract', got '%s'", cfg.ServerName)
	}

	if cfg.OutputPath != DefaultOutputPath {
		t.Errorf("Expected default output path to be '%s', got '%s'", DefaultOutputPath, cfg.OutputPath)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.MaxFileSize != 100*1024*1024 {
		t.Errorf("Expected default max file size to be 100MB, got %d", cfg.MaxFileSize)
	}

	currentDir, _ := os.Getwd()
	if cfg.SDSDirectory != currentDir {
		t.Errorf("Expected default SDS directory to be '%s', got '%s'", currentDir, cfg.SDSDirectory)
	}
}

func TestConfigValidate(t *testing.T) {
	tempDir := func(t *testing.T) string {
		t.Helper()
		return t.TempDir()
	}

	tests := []struct {
		name    string
		config  func(t *testing.T) *Config
		wantErr bool
	}{
		{
			name:    "valid config - batch mode",
			config:  func(t *testing.T) *Config { return DefaultConfig() },
			wantErr: false,
		},
		{
			name: "valid config - server mode",
			config: func(t *testing.T) *Config {
				return &Config{
					Mode:         ModeServer,
					Host:         "127.0.0.1",
					Port:         8080,
					SDSDirectory: tempDir(t),
					OutputPath:   "out.csv",
					LogLevel:     "info",
					MaxFileSize:  1024,
				}
			},
			wantErr: false,
		},
		{
			name: "invalid mode",
			config: func(t *testing.T) *Config {
				return &Config{
					Mode:         "invalid",
					SDSDirectory: tempDir(t),
					OutputPath:   "out.csv",
					LogLevel:     "info",
					MaxFileSize:  1024,
				}
			},
			wantErr: true,
		},
		{
			name: "invalid port in server mode",
			config: func(t *testing.T) *Config {
				return &Config{
					Mode:         ModeServer,
					Host:         "127.0.0.1",
					Port:         0,
					SDSDirectory: tempDir(t),
					OutputPath:   "out.csv",
					LogLevel:     "info",
					MaxFileSize:  1024,
				}
			},
			wantErr: true,
		},
		{
			name: "invalid port ignored in batch mode",
			config: func(t *testing.T) *Config {
				return &Config{
					Mode:         ModeBatch,
					Port:         0,
					SDSDirectory: tempDir(t),
					OutputPath:   "out.csv",
					LogLevel:     "info",
					MaxFileSize:  1024,
				}
			},
			wantErr: false,
		},
		{
			name: "empty SDS directory",
			config: func(t *testing.T) *Config {
				return &Config{
					Mode:        ModeBatch,
					OutputPath:  "out.csv",
					LogLevel:    "info",
					MaxFileSize: 1024,
				}
			},
			wantErr: true,
		},
		{
			name: "empty output path in batch mode",
			config: func(t *testing.T) *Config {
				return &Config{
					Mode:         ModeBatch,
					SDSDirectory: tempDir(t),
					LogLevel:     "info",
					MaxFileSize:  1024,
				}
			},
			wantErr: true,
		},
		{
			name: "empty output path allowed in stdio mode",
			config: func(t *testing.T) *Config {
				return &Config{
					Mode:         ModeStdio,
					SDSDirectory: tempDir(t),
					LogLevel:     "info",
					MaxFileSize:  1024,
				}
			},
			wantErr: false,
		},
		{
			name: "nonexistent keywords file",
			config: func(t *testing.T) *Config {
				return &Config{
					Mode:         ModeBatch,
					SDSDirectory: tempDir(t),
					OutputPath:   "out.csv",
					KeywordsFile: filepath.Join(tempDir(t), "missing.yaml"),
					LogLevel:     "info",
					MaxFileSize:  1024,
				}
			},
			wantErr: true,
		},
		{
			name: "zero max file size",
			config: func(t *testing.T) *Config {
				return &Config{
					Mode:         ModeBatch,
					SDSDirectory: tempDir(t),
					OutputPath:   "out.csv",
					LogLevel:     "info",
					MaxFileSize:  0,
				}
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: func(t *testing.T) *Config {
				return &Config{
					Mode:         ModeBatch,
					SDSDirectory: tempDir(t),
					OutputPath:   "out.csv",
					LogLevel:     "verbose",
					MaxFileSize:  1024,
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config(t).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidateCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "to-be-created")
	cfg := &Config{
		Mode:         ModeBatch,
		SDSDirectory: dir,
		OutputPath:   "out.csv",
		LogLevel:     "info",
		MaxFileSize:  1024,
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Expected directory to be created: %v", err)
	}
}

func TestConfigHelpers(t *testing.T) {
	cfg := &Config{Mode: ModeServer, Host: "0.0.0.0", Port: 9090, LogLevel: "debug"}

	if cfg.Address() != "0.0.0.0:9090" {
		t.Errorf("Expected address '0.0.0.0:9090', got '%s'", cfg.Address())
	}

	if !cfg.IsDebug() {
		t.Error("Expected IsDebug to be true")
	}

	if !cfg.IsServerMode() || cfg.IsStdioMode() || cfg.IsBatchMode() {
		t.Error("Expected server mode helpers to reflect the mode")
	}
}
