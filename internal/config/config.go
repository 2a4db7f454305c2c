package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeBatch  = "batch"
	ModeStdio  = "stdio"
	ModeServer = "server"

	// Default values
	DefaultPort        = 8080
	DefaultHost        = "127.0.0.1"
	DefaultLogLevel    = "info"
	DefaultOutputPath  = "extracted_information.csv"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the SDS extraction service.
type Config struct {
	// Execution mode: "batch" processes a directory into a CSV and exits;
	// "stdio" and "server" run the MCP tool surface.
	Mode string
	Host string
	Port int

	// SDS configuration
	SDSDirectory string
	OutputPath   string
	KeywordsFile string

	// Application configuration
	Version     string
	ServerName  string
	LogLevel    string
	MaxFileSize int64
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "."
	}

	return &Config{
		Mode:         ModeBatch,
		Host:         DefaultHost,
		Port:         DefaultPort,
		SDSDirectory: currentDir,
		OutputPath:   DefaultOutputPath,
		Version:      "1.0.0",
		ServerName:   "sds-extract",
		LogLevel:     DefaultLogLevel,
		MaxFileSize:  DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and environment variables and
// returns a validated configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	if cfg.SDSDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.SDSDirectory); err == nil {
			cfg.SDSDirectory = expandedPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("SDS_EXTRACT")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("host", cfg.Host)
	viper.SetDefault("port", cfg.Port)
	viper.SetDefault("dir", cfg.SDSDirectory)
	viper.SetDefault("output", cfg.OutputPath)
	viper.SetDefault("keywords", cfg.KeywordsFile)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode,
		"Execution mode: 'batch' for directory-to-CSV extraction, 'stdio' for MCP standard I/O, 'server' for HTTP server")
	pflag.String("host", cfg.Host, "Server host address (server mode only)")
	pflag.Int("port", cfg.Port, "Server port (server mode only)")
	pflag.String("dir", cfg.SDSDirectory, "Directory containing SDS PDF files")
	pflag.String("output", cfg.OutputPath, "CSV output path (batch mode only)")
	pflag.String("keywords", cfg.KeywordsFile, "Optional YAML file overriding the section keyword map")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("host", pflag.Lookup("host"))
	_ = viper.BindPFlag("port", pflag.Lookup("port"))
	_ = viper.BindPFlag("dir", pflag.Lookup("dir"))
	_ = viper.BindPFlag("output", pflag.Lookup("output"))
	_ = viper.BindPFlag("keywords", pflag.Lookup("keywords"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nSDS Extract - heuristic field extraction from Safety Data Sheet PDFs\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --dir=/path/to/sds                       # batch mode, CSV in working directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dir=/path/to/sds --output=out.csv      # batch mode, explicit output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=stdio --dir=/path/to/sds          # MCP stdio mode\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=server --host=0.0.0.0 --port=8081 # MCP server on all interfaces\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  SDS_EXTRACT_MODE        Execution mode\n")
		fmt.Fprintf(os.Stderr, "  SDS_EXTRACT_HOST        Server host\n")
		fmt.Fprintf(os.Stderr, "  SDS_EXTRACT_PORT        Server port\n")
		fmt.Fprintf(os.Stderr, "  SDS_EXTRACT_DIR         SDS directory\n")
		fmt.Fprintf(os.Stderr, "  SDS_EXTRACT_OUTPUT      CSV output path\n")
		fmt.Fprintf(os.Stderr, "  SDS_EXTRACT_KEYWORDS    Keyword map YAML path\n")
		fmt.Fprintf(os.Stderr, "  SDS_EXTRACT_LOGLEVEL    Log level\n")
		fmt.Fprintf(os.Stderr, "  SDS_EXTRACT_MAXFILESIZE Maximum file size\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.SDSDirectory = viper.GetString("dir")
	cfg.OutputPath = viper.GetString("output")
	cfg.KeywordsFile = viper.GetString("keywords")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Mode != ModeBatch && c.Mode != ModeStdio && c.Mode != ModeServer {
		return errors.New("mode must be one of 'batch', 'stdio', or 'server'")
	}

	if c.Mode == ModeServer && (c.Port < 1 || c.Port > 65535) {
		return errors.New("port must be between 1 and 65535")
	}

	if c.SDSDirectory == "" {
		return errors.New("SDS directory cannot be empty")
	}

	if _, err := os.Stat(c.SDSDirectory); os.IsNotExist(err) {
		if err := os.MkdirAll(c.SDSDirectory, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create SDS directory %s: %w", c.SDSDirectory, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot access SDS directory %s: %w", c.SDSDirectory, err)
	}

	if c.Mode == ModeBatch && c.OutputPath == "" {
		return errors.New("output path cannot be empty in batch mode")
	}

	if c.KeywordsFile != "" {
		if _, err := os.Stat(c.KeywordsFile); err != nil {
			return fmt.Errorf("cannot access keywords file %s: %w", c.KeywordsFile, err)
		}
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// Address returns the server address as host:port.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// IsBatchMode returns true when running the directory-to-CSV pipeline.
func (c *Config) IsBatchMode() bool {
	return c.Mode == ModeBatch
}

// IsServerMode returns true if running in HTTP server mode.
func (c *Config) IsServerMode() bool {
	return c.Mode == ModeServer
}

// IsStdioMode returns true if running in MCP stdio mode.
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, Host: %s, Port: %d, SDSDirectory: %s, OutputPath: %s, LogLevel: %s, MaxFileSize: %d}",
		c.Mode, c.Host, c.Port, c.SDSDirectory, c.OutputPath, c.LogLevel, c.MaxFileSize)
}
