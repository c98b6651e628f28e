// ABOUTME: MCP server setup for the pulse record store.
// ABOUTME: Exposes parsing and committed records to MCP-compatible assistants.
package mcp

import (
	"context"

	"github.com/harperreed/pulse/internal/resolve"
	"github.com/harperreed/pulse/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage and resolver access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	resolver  *resolve.Resolver
}

// NewServer creates a new MCP server over the given repository and resolver.
func NewServer(repo storage.Repository, resolver *resolve.Resolver) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "pulse",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		resolver:  resolver,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
