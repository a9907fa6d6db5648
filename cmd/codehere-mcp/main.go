package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"codehere/internal/adapters/editor"
	mcpadapter "codehere/internal/adapters/mcp"
	"codehere/internal/config"
)

func main() {
	editorFlag := flag.String("editor", config.EditorCommand(), "editor command")
	flag.Parse()

	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("codehere-mcp: %v", err)
	}

	// stdio carries the MCP protocol, so the editor must not inherit it.
	launcher := editor.NewLauncher(*editorFlag, editor.WithStdio(nil, nil, nil))

	mcpServer := server.NewMCPServer(
		"codehere-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check: returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, launcher, wd)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("codehere-mcp: %v", err)
	}
}
