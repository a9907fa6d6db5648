package mcp

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"codehere/internal/application/commands"
	"codehere/internal/ports"
)

// RegisterTools adds the editor tools to the MCP server.
// Relative paths given to open_editor resolve against baseDir.
func RegisterTools(s *server.MCPServer, launcher ports.EditorLauncher, baseDir string) {
	s.AddTool(openEditorTool(), openEditorHandler(launcher, baseDir))
	s.AddTool(editorStatusTool(), editorStatusHandler(launcher))
}

// --- open_editor ---

func openEditorTool() mcp.Tool {
	return mcp.NewTool("open_editor",
		mcp.WithDescription("Open a directory in the configured editor (VS Code by default). Returns as soon as the editor process has started."),
		mcp.WithString("path",
			mcp.Description("Directory to open. Relative paths resolve against the server's working directory. Omit to open the working directory itself."),
		),
	)
}

func openEditorHandler(launcher ports.EditorLauncher, baseDir string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dir := req.GetString("path", "")
		switch {
		case dir == "":
			dir = baseDir
		case !filepath.IsAbs(dir):
			dir = filepath.Join(baseDir, dir)
		}

		launch := commands.NewLaunchEditorCommand(launcher)
		launch.Dir = filepath.Clean(dir)

		info, err := launch.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf("Opened %s in %s (pid %d)", info.Dir, info.Editor, info.PID)), nil
	}
}

// --- editor_status ---

func editorStatusTool() mcp.Tool {
	return mcp.NewTool("editor_status",
		mcp.WithDescription("Report the configured editor command and whether it resolves on PATH."),
	)
}

func editorStatusHandler(launcher ports.EditorLauncher) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := launcher.Resolve()
		if err != nil {
			return mcp.NewToolResultText(fmt.Sprintf("editor %q is not available: %v", launcher.Editor(), err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("editor %q resolves to %s", launcher.Editor(), path)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
