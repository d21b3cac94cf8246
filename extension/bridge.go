// bridge.go defines types for bridge tool registration by extensions.
//
// Separated from extension.go to isolate bridge-specific concerns. Not all
// extensions need bridge tools - some only provide CLI commands.
//
// Design: BridgeTool pairs the tool definition with its handler, enabling
// extensions to register complete tool implementations. The handler receives
// both Go context (for cancellation) and extension Context (for filesystem
// and config access).

package extension

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// BridgeTool pairs a bridge tool definition with its handler.
type BridgeTool struct {
	Tool    mcp.Tool
	Handler BridgeHandler
}

// BridgeHandler processes bridge tool requests from the front end.
// The Context provides access to the filesystem and configuration.
type BridgeHandler func(ctx context.Context, extCtx Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
