// Package mcp exposes the token toolkit as an MCP server.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gnana997/tokensmith/pkg/importer"
	"github.com/gnana997/tokensmith/pkg/mcplog"
	"github.com/gnana997/tokensmith/pkg/plugin"
)

const serverVersion = "0.1.0-dev"

// Server is the MCP server. Tools read and mutate one plugin session.
type Server struct {
	mcpServer *server.MCPServer
	session   *plugin.Session
	importer  *importer.Importer
	logger    *mcplog.Logger // nil disables call logging
	log       *slog.Logger
}

// NewServer creates an MCP server over session. callLog may be nil.
func NewServer(session *plugin.Session, im *importer.Importer, callLog *mcplog.Logger, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{session: session, importer: im, logger: callLog, log: log}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if callLog != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}
	s.mcpServer = server.NewMCPServer("tokensmith", serverVersion, opts...)
	s.mcpServer.AddTools(s.tools()...)
	return s
}

func (s *Server) tools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: checkContrastTool(), Handler: s.handleCheckContrast},
		{Tool: adjustColorTool(), Handler: s.handleAdjustColor},
		{Tool: generatePaletteTool(), Handler: s.handleGeneratePalette},
		{Tool: generateTypeScaleTool(), Handler: s.handleGenerateTypeScale},
		{Tool: importTokensTool(), Handler: s.handleImportTokens},
		{Tool: listTokensTool(), Handler: s.handleListTokens},
		{Tool: exportTokensTool(), Handler: s.handleExportTokens},
		{Tool: auditContrastTool(), Handler: s.handleAuditContrast},
	}
}

// ServeStdio serves MCP over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	s.log.Info("serving MCP on stdio", "tools", len(s.tools()))
	return server.ServeStdio(s.mcpServer)
}
