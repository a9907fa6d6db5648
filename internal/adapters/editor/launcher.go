package editor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"

	"codehere/internal/ports"
)

// Launcher implements ports.EditorLauncher
type Launcher struct {
	command string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// Ensure Launcher implements EditorLauncher
var _ ports.EditorLauncher = (*Launcher)(nil)

// Option configures the Launcher
type Option func(*Launcher)

// WithStdio sets the standard streams handed to the editor process.
// Nil streams are connected to the null device.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(l *Launcher) {
		l.stdin = stdin
		l.stdout = stdout
		l.stderr = stderr
	}
}

// NewLauncher creates a launcher for the given editor command.
// The command may carry extra arguments, e.g. "code --new-window";
// quote the binary when it contains spaces and is followed by arguments.
func NewLauncher(command string, opts ...Option) *Launcher {
	l := &Launcher{
		command: command,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Editor returns the configured editor command
func (l *Launcher) Editor() string {
	return l.command
}

// Resolve looks the editor binary up on PATH. On Windows PATHEXT is
// honoured, so "code" resolves to code.cmd without going through a shell.
func (l *Launcher) Resolve() (string, error) {
	path, _, err := l.argv()
	return path, err
}

// argv splits the editor command into the resolved binary and its extra
// arguments. A command that names an existing executable as a whole is
// used verbatim, so unquoted install paths with spaces work
// ("/Applications/Visual Studio Code.app/.../bin/code").
func (l *Launcher) argv() (string, []string, error) {
	command := strings.TrimSpace(l.command)
	if command == "" {
		return "", nil, fmt.Errorf("no editor command configured")
	}

	if path, err := exec.LookPath(command); err == nil {
		return path, nil, nil
	}

	fields, err := shellwords.Parse(command)
	if err != nil {
		return "", nil, fmt.Errorf("parsing editor command %q: %w", l.command, err)
	}
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("no editor command configured")
	}

	path, err := exec.LookPath(fields[0])
	if err != nil {
		return "", nil, err
	}
	return path, fields[1:], nil
}

// Command returns an exec.Cmd that opens dir in the editor.
// dir is always passed as a single, final argument.
func (l *Launcher) Command(dir string) (*exec.Cmd, error) {
	path, extra, err := l.argv()
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, len(extra)+1)
	args = append(args, extra...)
	args = append(args, dir)

	cmd := exec.Command(path, args...)
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	return cmd, nil
}

// Launch starts the editor on dir. It returns as soon as the process
// is running; the child is reaped in the background.
func (l *Launcher) Launch(dir string) (*ports.LaunchInfo, error) {
	cmd, err := l.Command(dir)
	if err != nil {
		return nil, err
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", cmd.Path, err)
	}

	info := &ports.LaunchInfo{
		Editor: l.command,
		Path:   cmd.Path,
		Dir:    dir,
		PID:    cmd.Process.Pid,
	}

	go func() {
		_ = cmd.Wait()
	}()

	return info, nil
}
