package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/chemloop/sds-extract/internal/batch"
	"github.com/chemloop/sds-extract/internal/config"
	"github.com/chemloop/sds-extract/internal/mcp"
	"github.com/chemloop/sds-extract/internal/pdf"
	"github.com/chemloop/sds-extract/internal/report"
	"github.com/chemloop/sds-extract/internal/sds"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures logging based on the execution mode
func setupLogging(cfg *config.Config) {
	if cfg.IsStdioMode() {
		// In stdio mode, redirect log output to stderr to avoid interfering with MCP protocol
		log.SetOutput(os.Stderr)
		// Reduce log verbosity in stdio mode unless debug is enabled
		if !cfg.IsDebug() {
			log.SetOutput(os.NewFile(0, os.DevNull))
		}
	} else {
		// In batch and server modes, use normal logging with more detail
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
}

// loadKeywords returns the section keyword map, from file when configured
func loadKeywords(cfg *config.Config) (sds.SectionKeywords, error) {
	if cfg.KeywordsFile == "" {
		return nil, nil
	}
	return sds.LoadSectionKeywords(cfg.KeywordsFile)
}

// runBatchMode extracts every SDS PDF in the configured directory into a CSV
func runBatchMode(ctx context.Context, cfg *config.Config, service *pdf.Service) {
	runner := batch.NewRunner(service, service, log.Default())

	result, err := runner.Run(ctx, cfg.SDSDirectory)
	if err != nil {
		log.Fatalf("Batch run failed: %v", err)
	}

	if err := report.WriteCSVFile(cfg.OutputPath, result.Records); err != nil {
		log.Fatalf("Failed to write CSV output: %v", err)
	}

	log.Printf("Processed %d file(s), skipped %d, output written to %s",
		result.Processed, len(result.Skipped), cfg.OutputPath)
}

// runServerMode handles server mode execution with signal handling
func runServerMode(ctx context.Context, cancel context.CancelFunc, server *mcp.Server) {
	// Set up signal handling for graceful shutdown
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	// Start server in a goroutine
	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- server.Run(ctx)
	}()

	// Wait for shutdown signal or server error
	select {
	case sig := <-signalCh:
		log.Printf("Received signal: %s", sig)
		log.Println("Initiating graceful shutdown...")
		cancel()

		// Wait for server to shutdown
		if err := <-serverErrCh; err != nil {
			log.Printf("Server shutdown with error: %v", err)
			os.Exit(1)
		}

	case err := <-serverErrCh:
		if err != nil {
			log.Printf("Server error: %v", err)
			os.Exit(1)
		}
	}

	log.Println("Server stopped successfully")
}

// runStdioMode handles stdio mode execution
func runStdioMode(ctx context.Context, _ context.CancelFunc, server *mcp.Server) {
	// In stdio mode, the parent process controls our lifecycle
	// We should exit cleanly when stdin is closed or we get an error

	// Start server and wait for it to complete
	if err := server.Run(ctx); err != nil {
		// Only log to stderr in debug mode to avoid protocol interference
		if os.Getenv("DEBUG") != "" {
			log.Printf("Server error: %v", err)
		}
		os.Exit(1)
	}
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	// Load configuration from flags first
	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging based on mode
	setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() && !cfg.IsStdioMode() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	keywords, err := loadKeywords(cfg)
	if err != nil {
		log.Fatalf("Failed to load keyword map: %v", err)
	}

	// Create the SDS extraction service
	service, err := pdf.NewService(cfg.MaxFileSize, cfg.SDSDirectory, keywords)
	if err != nil {
		log.Fatalf("Failed to create SDS service: %v", err)
	}

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.IsBatchMode() {
		runBatchMode(ctx, cfg, service)
		return
	}

	// Create MCP server for stdio and server modes
	server, err := mcp.NewServer(cfg, service)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	if cfg.IsServerMode() {
		runServerMode(ctx, cancel, server)
	} else {
		runStdioMode(ctx, cancel, server)
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("SDS Extract\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
