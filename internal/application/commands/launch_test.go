package commands

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"codehere/internal/application"
	"codehere/internal/ports"
)

// fakeLauncher records the directories it was asked to open
type fakeLauncher struct {
	editor string
	err    error
	dirs   []string
}

func (f *fakeLauncher) Editor() string { return f.editor }

func (f *fakeLauncher) Resolve() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "/usr/bin/" + f.editor, nil
}

func (f *fakeLauncher) Launch(dir string) (*ports.LaunchInfo, error) {
	f.dirs = append(f.dirs, dir)
	if f.err != nil {
		return nil, f.err
	}
	return &ports.LaunchInfo{Editor: f.editor, Path: "/usr/bin/" + f.editor, Dir: dir, PID: 4242}, nil
}

func TestLaunchEditorCommand_Execute(t *testing.T) {
	base := t.TempDir()
	spaced := filepath.Join(base, "My Project")
	if err := os.Mkdir(spaced, 0o755); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(base, "notes.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	notFound := &exec.Error{Name: "code", Err: exec.ErrNotFound}

	tests := []struct {
		name       string
		editor     string
		launchErr  error
		dir        string
		wd         string
		wdErr      error
		wantDir    string
		wantErr    bool
		errMsg     string
		wantCalled bool
	}{
		{
			name:       "opens working directory",
			editor:     "code",
			wd:         base,
			wantDir:    base,
			wantCalled: true,
		},
		{
			name:       "working directory with spaces",
			editor:     "code",
			wd:         spaced,
			wantDir:    spaced,
			wantCalled: true,
		},
		{
			name:       "explicit directory wins over working directory",
			editor:     "code",
			dir:        spaced,
			wd:         base,
			wantDir:    spaced,
			wantCalled: true,
		},
		{
			name:       "editor not found",
			editor:     "code",
			launchErr:  notFound,
			wd:         base,
			wantErr:    true,
			errMsg:     "executable file not found",
			wantCalled: true,
		},
		{
			name:    "empty editor command",
			editor:  " ",
			wd:      base,
			wantErr: true,
			errMsg:  "editor command is required",
		},
		{
			name:    "working directory unavailable",
			editor:  "code",
			wdErr:   errors.New("getwd: no such file or directory"),
			wantErr: true,
			errMsg:  "getting working directory",
		},
		{
			name:    "directory does not exist",
			editor:  "code",
			dir:     filepath.Join(base, "missing"),
			wantErr: true,
			errMsg:  "checking directory",
		},
		{
			name:    "path is a file",
			editor:  "code",
			dir:     file,
			wantErr: true,
			errMsg:  "not a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			launcher := &fakeLauncher{editor: tt.editor, err: tt.launchErr}
			cmd := NewLaunchEditorCommand(launcher)
			cmd.Dir = tt.dir
			cmd.getwd = func() (string, error) { return tt.wd, tt.wdErr }

			info, err := cmd.Execute(context.Background())

			if called := len(launcher.dirs) > 0; called != tt.wantCalled {
				t.Errorf("launcher called = %v, want %v", called, tt.wantCalled)
			}

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !errors.Is(err, application.ErrLaunchFailed) {
					t.Errorf("expected LaunchError, got %T: %v", err, err)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if info.Dir != tt.wantDir {
				t.Errorf("info.Dir = %q, want %q", info.Dir, tt.wantDir)
			}
			if launcher.dirs[0] != tt.wantDir {
				t.Errorf("launched with %q, want %q", launcher.dirs[0], tt.wantDir)
			}
		})
	}
}

func TestLaunchEditorCommand_UnwrapsCause(t *testing.T) {
	notFound := &exec.Error{Name: "code", Err: exec.ErrNotFound}
	cmd := NewLaunchEditorCommand(&fakeLauncher{editor: "code", err: notFound})
	cmd.Dir = t.TempDir()

	_, err := cmd.Execute(context.Background())

	var launchErr *application.LaunchError
	if !errors.As(err, &launchErr) {
		t.Fatalf("expected *application.LaunchError, got %T", err)
	}
	if launchErr.Editor != "code" || launchErr.Dir != cmd.Dir {
		t.Errorf("unexpected LaunchError fields: %+v", launchErr)
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Error("expected errors.Is(err, exec.ErrNotFound)")
	}
}

func TestLaunchEditorCommand_ValidationErrorIsReachable(t *testing.T) {
	cmd := NewLaunchEditorCommand(&fakeLauncher{editor: ""})
	cmd.Dir = t.TempDir()

	_, err := cmd.Execute(context.Background())

	var validationErr *application.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *application.ValidationError, got %v", err)
	}
	if validationErr.Field != "editor" {
		t.Errorf("Field = %q, want %q", validationErr.Field, "editor")
	}
}

func TestLaunchEditorCommand_CanceledContext(t *testing.T) {
	launcher := &fakeLauncher{editor: "code"}
	cmd := NewLaunchEditorCommand(launcher)
	cmd.Dir = t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cmd.Execute(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(launcher.dirs) != 0 {
		t.Error("launcher should not be called with a canceled context")
	}
}

func TestLaunchEditorCommand_SameOutcomeOnRepeat(t *testing.T) {
	for _, launchErr := range []error{nil, &exec.Error{Name: "code", Err: exec.ErrNotFound}} {
		launcher := &fakeLauncher{editor: "code", err: launchErr}
		cmd := NewLaunchEditorCommand(launcher)
		cmd.Dir = t.TempDir()

		_, first := cmd.Execute(context.Background())
		_, second := cmd.Execute(context.Background())

		if (first == nil) != (second == nil) {
			t.Errorf("outcomes differ: %v then %v", first, second)
		}
	}
}
