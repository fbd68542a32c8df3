// ABOUTME: MCP server exposing fitlog records, progress, stats, and export.
// ABOUTME: Wraps the MCP server around the store and its analytics components.
package mcp

import (
	"context"

	"github.com/harperreed/fitlog/internal/backup"
	"github.com/harperreed/fitlog/internal/progress"
	"github.com/harperreed/fitlog/internal/records"
	"github.com/harperreed/fitlog/internal/stats"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	records   *records.Detector
	progress  *progress.Aggregator
	stats     *stats.Aggregator
	backup    *backup.Service
}

// NewServer creates a new MCP server with the given storage.
func NewServer(repo storage.Repository) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fitlog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		records:   records.NewDetector(repo),
		progress:  progress.NewAggregator(repo),
		stats:     stats.NewAggregator(repo),
		backup:    backup.NewService(repo),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
