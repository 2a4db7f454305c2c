package mcp

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chemloop/sds-extract/internal/batch"
	"github.com/chemloop/sds-extract/internal/config"
	"github.com/chemloop/sds-extract/internal/descriptions"
	"github.com/chemloop/sds-extract/internal/pdf"
	"github.com/chemloop/sds-extract/internal/sds"
	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// shutdownTimeout bounds graceful HTTP shutdown on context cancellation.
const shutdownTimeout = 10 * time.Second

// Server represents the MCP server instance
type Server struct {
	config     *config.Config
	sdsService *pdf.Service
	runner     *batch.Runner
	mcpServer  *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, sdsService *pdf.Service) (*Server, error) {
	if sdsService == nil {
		return nil, fmt.Errorf("sdsService cannot be nil")
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:     cfg,
		sdsService: sdsService,
		runner:     batch.NewRunner(sdsService, sdsService, nil),
		mcpServer:  mcpServer,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	// Register SDS extract file tool
	extractFileTool := mcpgo.NewTool(
		"sds_extract_file",
		mcpgo.WithDescription(descriptions.SDSExtractFileDescription),
		mcpgo.WithString("path",
			mcpgo.Required(),
			mcpgo.Description("Full path to the SDS PDF file"),
		),
	)
	s.mcpServer.AddTool(extractFileTool, s.handleExtractFile)

	// Register SDS extract directory tool
	extractDirectoryTool := mcpgo.NewTool(
		"sds_extract_directory",
		mcpgo.WithDescription(descriptions.SDSExtractDirectoryDescription),
		mcpgo.WithString("directory",
			mcpgo.Description("Directory to process (uses the configured directory if empty)"),
		),
	)
	s.mcpServer.AddTool(extractDirectoryTool, s.handleExtractDirectory)

	// Register SDS validate file tool
	validateFileTool := mcpgo.NewTool(
		"sds_validate_file",
		mcpgo.WithDescription(descriptions.SDSValidateFileDescription),
		mcpgo.WithString("path",
			mcpgo.Required(),
			mcpgo.Description("Full path to the SDS PDF file"),
		),
	)
	s.mcpServer.AddTool(validateFileTool, s.handleValidateFile)

	// Register SDS stats file tool
	statsFileTool := mcpgo.NewTool(
		"sds_stats_file",
		mcpgo.WithDescription(descriptions.SDSStatsFileDescription),
		mcpgo.WithString("path",
			mcpgo.Required(),
			mcpgo.Description("Full path to the SDS PDF file"),
		),
	)
	s.mcpServer.AddTool(statsFileTool, s.handleStatsFile)

	// Register SDS search directory tool
	searchDirectoryTool := mcpgo.NewTool(
		"sds_search_directory",
		mcpgo.WithDescription(descriptions.SDSSearchDirectoryDescription),
		mcpgo.WithString("directory",
			mcpgo.Description("Directory path to search (uses the configured directory if empty)"),
		),
		mcpgo.WithString("query",
			mcpgo.Description("Optional file name substring to match"),
		),
	)
	s.mcpServer.AddTool(searchDirectoryTool, s.handleSearchDirectory)

	// Register SDS server info tool
	serverInfoTool := mcpgo.NewTool(
		"sds_server_info",
		mcpgo.WithDescription(descriptions.SDSServerInfoDescription),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleServerInfo)
}

// Handler functions
func (s *Server) handleExtractFile(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	record, err := s.sdsService.ExtractFile(path)
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	return mcpgo.NewToolResultText(s.formatRecord(record)), nil
}

func (s *Server) handleExtractDirectory(ctx context.Context, request mcpgo.CallToolRequest) (
	*mcpgo.CallToolResult, error,
) {
	args := request.GetArguments()

	directory := s.config.SDSDirectory // default
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	result, err := s.runner.Run(ctx, directory)
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	return mcpgo.NewToolResultText(s.formatBatchResult(directory, result)), nil
}

func (s *Server) handleValidateFile(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	req := pdf.ValidateFileRequest{Path: path}
	result, err := s.sdsService.ValidateFile(req)
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.Valid {
		responseText = fmt.Sprintf("PDF file %s is valid and readable", result.Path)
	} else {
		responseText = fmt.Sprintf("PDF validation failed for %s: %s", result.Path, result.Message)
	}

	return mcpgo.NewToolResultText(responseText), nil
}

func (s *Server) handleStatsFile(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	req := pdf.StatsFileRequest{Path: path}
	result, err := s.sdsService.StatsFile(req)
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	return mcpgo.NewToolResultText(s.formatStatsFileResult(result)), nil
}

func (s *Server) handleSearchDirectory(ctx context.Context, request mcpgo.CallToolRequest) (
	*mcpgo.CallToolResult, error,
) {
	args := request.GetArguments()

	directory := s.config.SDSDirectory // default
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	query := ""
	if q, ok := args["query"].(string); ok {
		query = q
	}

	req := pdf.SearchDirectoryRequest{
		Directory: directory,
		Query:     query,
	}

	result, err := s.sdsService.SearchDirectory(req)
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.TotalCount == 0 {
		responseText = fmt.Sprintf("No PDF files found in directory: %s", result.Directory)
		if result.SearchQuery != "" {
			responseText += fmt.Sprintf(" (searched for: %s)", result.SearchQuery)
		}
	} else {
		responseText = s.formatSearchDirectoryResult(result)
	}

	return mcpgo.NewToolResultText(responseText), nil
}

func (s *Server) handleServerInfo(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	files, err := s.sdsService.FindPDFsInDirectory(s.config.SDSDirectory)
	if err != nil {
		// The directory listing is informational; report the info we have.
		files = nil
	}

	return mcpgo.NewToolResultText(s.formatServerInfo(files)), nil
}

// Formatting methods
func (s *Server) formatRecord(record *sds.Record) string {
	value := func(v string) string {
		if v == "" {
			return "(not found)"
		}
		return v
	}

	text := fmt.Sprintf("SDS extraction results for: %s\n\n", record.FileName)
	text += fmt.Sprintf("Product Name: %s\n", value(record.ProductName))
	text += fmt.Sprintf("Product Number: %s\n", value(record.ProductNumber))
	text += fmt.Sprintf("Manufacturer: %s\n", value(record.Manufacturer))
	text += fmt.Sprintf("Usage: %s\n", value(record.Usage))
	text += fmt.Sprintf("Revision Date: %s\n", value(record.RevisionDate))
	text += fmt.Sprintf("CAS Numbers: %s\n", value(record.CASNumbers))

	return text
}

func (s *Server) formatBatchResult(directory string, result *batch.Result) string {
	text := fmt.Sprintf("Processed %d SDS file(s) in directory: %s\n", result.Processed, directory)

	if len(result.Skipped) > 0 {
		text += fmt.Sprintf("\nSkipped %d file(s):\n", len(result.Skipped))
		for _, path := range result.Skipped {
			text += fmt.Sprintf("  %s\n", path)
		}
	}

	for i, record := range result.Records {
		text += "\n" + s.formatRecord(record)
		if i < len(result.Records)-1 {
			text += "\n"
		}
	}

	return text
}

func (s *Server) formatStatsFileResult(result *pdf.StatsFileResult) string {
	text := "SDS File Statistics\n"
	text += fmt.Sprintf("File: %s\n", result.Path)
	text += fmt.Sprintf("Size: %d bytes\n", result.Size)
	text += fmt.Sprintf("Pages: %d\n", result.Pages)
	text += fmt.Sprintf("Modified: %s\n", result.ModifiedDate)

	if result.Title != "" {
		text += fmt.Sprintf("Title: %s\n", result.Title)
	}
	if result.Author != "" {
		text += fmt.Sprintf("Author: %s\n", result.Author)
	}
	if result.Subject != "" {
		text += fmt.Sprintf("Subject: %s\n", result.Subject)
	}
	if result.Producer != "" {
		text += fmt.Sprintf("Producer: %s\n", result.Producer)
	}
	if result.CreatedDate != "" {
		text += fmt.Sprintf("Created: %s\n", result.CreatedDate)
	}

	return text
}

func (s *Server) formatSearchDirectoryResult(result *pdf.SearchDirectoryResult) string {
	text := fmt.Sprintf("Found %d PDF file(s) in directory: %s\n", result.TotalCount, result.Directory)
	if result.SearchQuery != "" {
		text += fmt.Sprintf("Search query: %s\n", result.SearchQuery)
	}
	text += "\nFiles:\n"

	for i, file := range result.Files {
		text += fmt.Sprintf("%d. %s\n", i+1, file.Name)
		text += fmt.Sprintf("   Path: %s\n", file.Path)
		text += fmt.Sprintf("   Size: %d bytes\n", file.Size)
		text += fmt.Sprintf("   Modified: %s\n", file.ModifiedTime)
		if i < len(result.Files)-1 {
			text += "\n"
		}
	}

	return text
}

func (s *Server) formatServerInfo(files []pdf.FileInfo) string {
	text := fmt.Sprintf("%s v%s - Server Information\n", s.config.ServerName, s.config.Version)
	text += fmt.Sprintf("SDS Directory: %s\n", s.config.SDSDirectory)
	text += fmt.Sprintf("Max File Size: %d MB\n\n", s.config.MaxFileSize/(1024*1024))

	// Directory contents
	if len(files) > 0 {
		text += fmt.Sprintf("Directory Contents (%d PDF files found):\n", len(files))
		for i, file := range files {
			if i >= 10 { // Limit to first 10 files for readability
				text += fmt.Sprintf("   ... and %d more files\n", len(files)-10)
				break
			}
			text += fmt.Sprintf("   %d. %s (%d bytes)\n", i+1, file.Name, file.Size)
		}
		text += "\n"
	} else {
		text += "Directory Contents: No PDF files found in SDS directory\n\n"
	}

	// Available tools
	text += "Available Tools:\n"
	for _, tool := range serverToolSummaries {
		text += fmt.Sprintf("\n• %s\n", tool.name)
		text += fmt.Sprintf("  Usage: %s\n", tool.usage)
	}

	text += "\nStart with sds_server_info to confirm the directory, validate unknown files, " +
		"then extract single files or whole directories.\n"

	return text
}

type toolSummary struct {
	name  string
	usage string
}

var serverToolSummaries = []toolSummary{
	{"sds_extract_file", "Extract SDS fields from a single PDF by path"},
	{"sds_extract_directory", "Extract SDS fields from every PDF in a directory"},
	{"sds_validate_file", "Check that a file is a readable PDF"},
	{"sds_stats_file", "Get size, page count, and metadata for a PDF"},
	{"sds_search_directory", "List SDS PDFs in a directory, optionally filtered by name"},
	{"sds_server_info", "Show server configuration, directory contents, and tools"},
}

// Run starts the MCP server in the configured mode
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting SDS MCP server in stdio mode")
		log.Printf("SDS directory: %s", s.config.SDSDirectory)
	}

	// Use the mark3labs/mcp-go server.ServeStdio function
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server over streamable HTTP on the configured address
func (s *Server) runServerMode(ctx context.Context) error {
	httpServer := server.NewStreamableHTTPServer(s.mcpServer)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting SDS MCP server on %s", s.config.Address())
		errCh <- httpServer.Start(s.config.Address())
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to serve HTTP: %w", err)
		}
		return nil
	}
}
