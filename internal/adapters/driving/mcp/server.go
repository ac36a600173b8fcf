// Package mcp exposes the identity service as a Model Context Protocol tool server.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/adoid/internal/core/domain"
	"github.com/custodia-labs/adoid/internal/core/ports/driving"
	"github.com/custodia-labs/adoid/internal/logger"
)

// ToolGetMe is the name of the caller identity tool.
const ToolGetMe = "get_me"

// Connection is the Azure DevOps connection every tool call runs against.
type Connection struct {
	ServerURL string
	Auth      domain.AuthConfig
}

// GetMeInput is the (empty) argument object of get_me.
type GetMeInput struct{}

// Server serves identity tools for a single connection.
type Server struct {
	identity   driving.IdentityService
	connection Connection
	server     *mcp.Server
}

// NewServer creates a tool server with get_me registered.
func NewServer(identity driving.IdentityService, connection Connection, version string) *Server {
	s := &Server{
		identity:   identity,
		connection: connection,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    "adoid",
			Title:   "Azure DevOps Identity",
			Version: version,
		}, nil),
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolGetMe,
		Description: "Get details of the currently authenticated Azure DevOps user (id, display name, email).",
	}, s.getMe)

	return s
}

// Run serves requests over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Connect attaches the server to an arbitrary transport.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, transport, nil)
}

// getMe returns handler errors as tool errors so the classified message reaches the client.
func (s *Server) getMe(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ GetMeInput,
) (*mcp.CallToolResult, domain.UserProfile, error) {
	profile, err := s.identity.GetMe(ctx, s.connection.ServerURL, s.connection.Auth)
	if err != nil {
		logger.Warn("mcp: %s failed: %v", ToolGetMe, err)
		return nil, domain.UserProfile{}, err
	}
	return nil, *profile, nil
}
