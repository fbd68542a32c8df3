// ABOUTME: MCP resources for fitlog.
// ABOUTME: Provides fitlog://stats and fitlog://prs snapshots as JSON.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	statsURI = "fitlog://stats"
	prsURI   = "fitlog://prs"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         statsURI,
		Name:        "Training Summary",
		Description: "Whole-history workout and cardio statistics",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         prsURI,
		Name:        "Personal Records",
		Description: "All-time heaviest set per exercise",
		MIMEType:    "application/json",
	}, s.handlePRsResource)
}

func (s *Server) handleStatsResource(ctx context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summary, err := s.stats.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	cardio, err := s.stats.CardioStats(ctx, "", models.DateRange{})
	if err != nil {
		return nil, fmt.Errorf("failed to compute cardio stats: %w", err)
	}

	return jsonResource(statsURI, map[string]any{
		"summary": summary,
		"cardio":  cardio,
	})
}

func (s *Server) handlePRsResource(ctx context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	prs, err := s.records.AllPRs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return jsonResource(prsURI, prs)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
