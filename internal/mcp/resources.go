// ABOUTME: MCP resource implementations for the pulse record store.
// ABOUTME: Provides pulse://recent and pulse://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// pulse://recent - last 10 committed records
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "pulse://recent",
		Name:        "Recent Records",
		Description: "Last 10 committed health records across all categories",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// pulse://summary - record counts per category
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "pulse://summary",
		Name:        "Dataset Summary",
		Description: "Committed record counts per category",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	records, err := s.repo.ListRecords(nil, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "pulse://recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	counts, err := s.repo.CountByCategory()
	if err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}

	out := make(map[string]int, len(counts))
	for c, n := range counts {
		out[string(c)] = n
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "pulse://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
