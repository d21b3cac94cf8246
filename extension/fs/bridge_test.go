package fs

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/sweep/extension"
	"github.com/jpl-au/sweep/internal/config"
	"github.com/jpl-au/sweep/internal/du"
	"github.com/jpl-au/sweep/internal/fsops"
	"github.com/jpl-au/sweep/internal/ls"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toolRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: args}}
}

func osContext() extension.Context {
	return extension.NewContext(fsops.NewOS(), &config.Config{})
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func TestRemoveDirAll(t *testing.T) {
	t.Run("removes tree and returns empty payload", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "cache")
		require.NoError(t, os.MkdirAll(filepath.Join(target, "nested"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(target, "nested", "blob"), []byte("data"), 0644))

		res, err := removeDirAll(context.Background(), osContext(), toolRequest(map[string]any{"path": target}))
		require.NoError(t, err)
		assert.False(t, res.IsError)
		assert.Empty(t, resultText(t, res))
		assert.NoDirExists(t, target)
	})

	t.Run("nonexistent path is a tool error", func(t *testing.T) {
		res, err := removeDirAll(context.Background(), osContext(), toolRequest(map[string]any{"path": "/nonexistent/path/xyz"}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "does not exist")
	})

	t.Run("second delete fails", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "once")
		require.NoError(t, os.Mkdir(target, 0755))

		res, err := removeDirAll(context.Background(), osContext(), toolRequest(map[string]any{"path": target}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		res, err = removeDirAll(context.Background(), osContext(), toolRequest(map[string]any{"path": target}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})

	t.Run("empty path is a tool error", func(t *testing.T) {
		res, err := removeDirAll(context.Background(), osContext(), toolRequest(map[string]any{"path": ""}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})

	t.Run("missing path argument is a tool error", func(t *testing.T) {
		res, err := removeDirAll(context.Background(), osContext(), toolRequest(map[string]any{}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Equal(t, "path is required", resultText(t, res))
	})

	t.Run("denied removal deletes nothing", func(t *testing.T) {
		fake := fsops.NewFake("/protected", "/protected/sub")
		fake.RemoveErr = fs.ErrPermission
		extCtx := extension.NewContext(fake, &config.Config{})

		res, err := removeDirAll(context.Background(), extCtx, toolRequest(map[string]any{"path": "/protected"}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "permission denied")
		// Target still present
		_, err = fake.Lstat("/protected")
		assert.NoError(t, err)
	})
}

func TestDirUsage(t *testing.T) {
	t.Run("reports totals and largest children", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "blob"), make([]byte, 200), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(root, "loose"), make([]byte, 100), 0644))

		res, err := dirUsage(context.Background(), osContext(), toolRequest(map[string]any{"path": root}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var result du.Result
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &result))
		assert.Equal(t, int64(300), result.TotalBytes)
		assert.Equal(t, int64(2), result.FileCount)
		require.Len(t, result.Largest, 2)
		assert.Equal(t, "sub", result.Largest[0].Name)
	})

	t.Run("top caps reported children", func(t *testing.T) {
		root := t.TempDir()
		for _, name := range []string{"a", "b", "c"} {
			require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0644))
		}

		res, err := dirUsage(context.Background(), osContext(), toolRequest(map[string]any{"path": root, "top": float64(2)}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var result du.Result
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &result))
		assert.Len(t, result.Largest, 2)
	})

	t.Run("negative top is a tool error", func(t *testing.T) {
		res, err := dirUsage(context.Background(), osContext(), toolRequest(map[string]any{"path": t.TempDir(), "top": float64(-1)}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})

	t.Run("nonexistent path is a tool error", func(t *testing.T) {
		res, err := dirUsage(context.Background(), osContext(), toolRequest(map[string]any{"path": "/nonexistent/path/xyz"}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}

func TestListDir(t *testing.T) {
	t.Run("lists entries directories first", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "blob"), []byte("data"), 0644))

		res, err := listDir(context.Background(), osContext(), toolRequest(map[string]any{"path": root}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var result ls.Result
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &result))
		require.Len(t, result.Entries, 2)
		assert.Equal(t, "sub", result.Entries[0].Name)
		assert.True(t, result.Entries[0].Dir)
		assert.Equal(t, "blob", result.Entries[1].Name)
	})

	t.Run("dirs_only filters files", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "blob"), []byte("data"), 0644))

		res, err := listDir(context.Background(), osContext(), toolRequest(map[string]any{"path": root, "dirs_only": true}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var result ls.Result
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &result))
		require.Len(t, result.Entries, 1)
		assert.Equal(t, "sub", result.Entries[0].Name)
	})

	t.Run("nonexistent path is a tool error", func(t *testing.T) {
		res, err := listDir(context.Background(), osContext(), toolRequest(map[string]any{"path": "/nonexistent/path/xyz"}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}

func TestGetInt(t *testing.T) {
	req := toolRequest(map[string]any{"top": float64(7), "name": "x"})
	assert.Equal(t, 7, getInt(req, "top", 0))
	assert.Equal(t, 3, getInt(req, "missing", 3))
	assert.Equal(t, 3, getInt(req, "name", 3))
}

func TestGetBool(t *testing.T) {
	req := toolRequest(map[string]any{"flag": true, "name": "x"})
	assert.True(t, getBool(req, "flag", false))
	assert.False(t, getBool(req, "missing", false))
	assert.True(t, getBool(req, "name", true))
}
