package config

import (
	"os"
	"strings"
)

// EditorEnvVar names the environment variable that overrides the editor command.
const EditorEnvVar = "CODEHERE_EDITOR"

// DefaultEditorCommand is VS Code's command-line launcher.
const DefaultEditorCommand = "code"

// EditorCommand returns the editor command from CODEHERE_EDITOR,
// falling back to DefaultEditorCommand.
func EditorCommand() string {
	if env := os.Getenv(EditorEnvVar); strings.TrimSpace(env) != "" {
		return env
	}
	return DefaultEditorCommand
}
