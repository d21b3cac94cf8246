// bridge.go implements the bridge tools for the filesystem extension.
//
// These tools are what the desktop front end actually invokes; the CLI
// commands in this package are the human-facing mirror of the same
// operations. Handlers return tool error results rather than Go errors so
// the front end receives the failure message instead of a protocol-level
// fault.
//
// Design principles:
//
//  1. Pass-through contract: remove_dir_all forwards the caller's path to
//     the filesystem unchecked. No normalisation, no sandbox, no prompt.
//     The front end supplies paths it already showed the user.
//
//  2. Error-as-string at the boundary: failures carry the OS error text.
//     Internally every failure is classified with a kind sentinel
//     (fsops.ErrNotFound etc); the serialisation to a message string
//     happens only here.

package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jpl-au/sweep/extension"
	"github.com/jpl-au/sweep/internal/du"
	"github.com/jpl-au/sweep/internal/log"
	"github.com/jpl-au/sweep/internal/ls"
	"github.com/jpl-au/sweep/internal/remove"
	"github.com/mark3labs/mcp-go/mcp"
)

// BridgeTools returns the filesystem tools exposed to the front end.
func (e *Extension) BridgeTools() []extension.BridgeTool {
	return []extension.BridgeTool{
		{
			Tool: mcp.NewTool("remove_dir_all",
				mcp.WithDescription("Delete a directory and everything it contains. Irreversible. Fails if the path does not exist."),
				mcp.WithString("path", mcp.Required(), mcp.Description("Target path, passed to the filesystem unchecked")),
			),
			Handler: removeDirAll,
		},
		{
			Tool: mcp.NewTool("dir_usage",
				mcp.WithDescription("Report the total size of a directory tree and its largest children"),
				mcp.WithString("path", mcp.Required(), mcp.Description("Directory to scan")),
				mcp.WithNumber("top", mcp.Description("Number of largest children to report")),
			),
			Handler: dirUsage,
		},
		{
			Tool: mcp.NewTool("list_dir",
				mcp.WithDescription("List the immediate entries of a directory"),
				mcp.WithString("path", mcp.Required(), mcp.Description("Directory to list")),
				mcp.WithBoolean("dirs_only", mcp.Description("List only subdirectories")),
			),
			Handler: listDir,
		},
	}
}

// removeDirAll handles remove_dir_all tool calls.
//
// Success carries no payload - the front end only needs to know the tree is
// gone. The operation is stateless and uncoordinated: two overlapping calls
// race at the filesystem, and the loser surfaces whatever error concurrent
// unlinking produces.
func removeDirAll(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil
	}

	l := log.Event("bridge:remove_dir_all", "delete").Path(path)

	_, err = remove.Run(ctx, io.Discard, extCtx.FS(), path)
	l.Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(""), nil
}

// dirUsage handles dir_usage tool calls.
func dirUsage(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil
	}

	top := getInt(req, "top", 0)
	if top < 0 {
		return mcp.NewToolResultError(fmt.Sprintf("top must be >= 0, got %d", top)), nil
	}
	if top == 0 {
		top = extCtx.Config().ScanTop()
	}

	l := log.Event("bridge:dir_usage", "scan").Path(path).Detail("top", top)

	result, err := du.Run(ctx, io.Discard, extCtx.FS(), path, du.Options{Top: top})
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	l.Bytes(result.TotalBytes).Entries(len(result.Largest)).Write(nil)
	return jsonResult(result)
}

// listDir handles list_dir tool calls.
func listDir(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil
	}

	l := log.Event("bridge:list_dir", "list").Path(path)

	result, err := ls.Run(ctx, io.Discard, extCtx.FS(), path, ls.Options{DirsOnly: getBool(req, "dirs_only", false)})
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	l.Entries(len(result.Entries)).Write(nil)
	return jsonResult(result)
}

// getBool extracts a boolean parameter, returning the default when missing.
// Permissive extraction: an optional parameter the front end omits or sends
// in the wrong type should never fail the tool call.
func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// getInt extracts an integer parameter. JSON numbers decode as float64, so
// the assertion goes through float64 before converting.
func getInt(req mcp.CallToolRequest, name string, def int) int {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return def
}

// jsonResult serialises v as indented JSON wrapped in a text result.
// Pretty-printing costs little and keeps the payload readable when
// inspecting front-end logs.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
