// Package bridge implements the call bridge between the desktop front end
// and sweep's filesystem operations. The front end spawns "sweep serve" and
// invokes tools over stdio; this package owns the server lifecycle and
// routes each call to the handler an extension registered for it.
package bridge

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/sweep/extension"
	"github.com/jpl-au/sweep/internal/config"
	"github.com/jpl-au/sweep/internal/fsops"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the bridge server over stdio and blocks until the front end
// closes the connection.
//
// The tool registry is assembled at startup from the registered extensions:
// each handler receives its dependencies through the extension context, so
// there is no hidden shared state between invocations. Calls may run
// concurrently; nothing here serialises overlapping operations on the same
// path - that race belongs to the filesystem.
func Serve() error {
	// Log to stderr; stdout is reserved for bridge JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return err
	}

	extCtx := extension.NewContext(fsops.NewOS(), cfg)

	s := server.NewMCPServer(
		"sweep",
		Version,
		server.WithToolCapabilities(true),
	)

	tools := registerTools(s, extCtx)

	slog.Info("sweep bridge ready", "version", Version, "transport", "stdio", "tools", tools)

	err = server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// registerTools adds every tool the registered extensions expose, binding
// each handler to the shared extension context. Returns the tool count.
func registerTools(s *server.MCPServer, extCtx extension.Context) int {
	n := 0
	for _, ext := range extension.All() {
		for _, t := range ext.BridgeTools() {
			handler := t.Handler
			s.AddTool(t.Tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handler(ctx, extCtx, req)
			})
			n++
		}
	}
	return n
}
