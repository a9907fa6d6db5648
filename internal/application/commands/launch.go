package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"codehere/internal/application"
	"codehere/internal/ports"
)

// LaunchEditorCommand opens a directory in the external editor
type LaunchEditorCommand struct {
	launcher ports.EditorLauncher
	getwd    func() (string, error)

	// Dir is the directory to open. Empty means the current working directory.
	Dir string
}

// NewLaunchEditorCommand creates a new LaunchEditorCommand for the current working directory
func NewLaunchEditorCommand(launcher ports.EditorLauncher) *LaunchEditorCommand {
	return &LaunchEditorCommand{
		launcher: launcher,
		getwd:    os.Getwd,
	}
}

// Validate checks that the editor is configured and dir is an existing directory
func (c *LaunchEditorCommand) Validate(dir string) error {
	if strings.TrimSpace(c.launcher.Editor()) == "" {
		return &application.ValidationError{
			Field:   "editor",
			Message: "editor command is required",
		}
	}

	if dir == "" {
		return &application.ValidationError{
			Field:   "dir",
			Message: "directory is required",
		}
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("checking directory: %w", err)
	}
	if !info.IsDir() {
		return &application.ValidationError{
			Field:   "dir",
			Message: fmt.Sprintf("not a directory: %s", dir),
		}
	}

	return nil
}

// Execute starts the editor. Every failure is returned as *application.LaunchError.
func (c *LaunchEditorCommand) Execute(ctx context.Context) (*ports.LaunchInfo, error) {
	editor := c.launcher.Editor()

	if err := ctx.Err(); err != nil {
		return nil, &application.LaunchError{Editor: editor, Dir: c.Dir, Err: err}
	}

	dir := c.Dir
	if dir == "" {
		wd, err := c.getwd()
		if err != nil {
			return nil, &application.LaunchError{
				Editor: editor,
				Err:    fmt.Errorf("getting working directory: %w", err),
			}
		}
		dir = wd
	}

	if err := c.Validate(dir); err != nil {
		return nil, &application.LaunchError{Editor: editor, Dir: dir, Err: err}
	}

	info, err := c.launcher.Launch(dir)
	if err != nil {
		return nil, &application.LaunchError{Editor: editor, Dir: dir, Err: err}
	}

	return info, nil
}
