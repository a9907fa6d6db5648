package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"codehere/internal/adapters/editor"
	"codehere/internal/adapters/prompt"
	"codehere/internal/adapters/tui/styles"
	"codehere/internal/application"
	"codehere/internal/application/commands"
	"codehere/internal/config"
	"codehere/internal/ports"
)

// exitFunc is swapped out by tests to observe the exit code.
var exitFunc = os.Exit

// app holds the collaborators of a single invocation
type app struct {
	launcher        ports.EditorLauncher
	newAcknowledger func(in io.Reader, out io.Writer) ports.Acknowledger

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func newApp() *app {
	return &app{
		launcher:        editor.NewLauncher(config.EditorCommand()),
		newAcknowledger: prompt.New,
		in:              os.Stdin,
		out:             os.Stdout,
		errOut:          os.Stderr,
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "codehere",
		Short: "Open the current directory in your editor",
		Long: `codehere opens the current working directory in VS Code.

The editor command defaults to "code" and can be replaced with the
` + config.EditorEnvVar + ` environment variable, e.g.:
  ` + config.EditorEnvVar + `="codium" codehere`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			launch := commands.NewLaunchEditorCommand(a.launcher)
			_, err := launch.Execute(cmd.Context())
			return err
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	return root
}

// execute runs the root command with args and returns the exit code: 0 or 1.
func (a *app) execute(args []string) int {
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}
	root := a.rootCmd()
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}

	var launchErr *application.LaunchError
	if errors.As(err, &launchErr) {
		reportLaunchFailure(a.out, launchErr)
		if ackErr := a.newAcknowledger(a.in, a.out).Acknowledge(prompt.DefaultMessage); ackErr != nil {
			fmt.Fprintf(a.errOut, "error: %v\n", ackErr)
		}
		return 1
	}

	fmt.Fprintf(a.errOut, "error: %v\n", err)
	return 1
}

func reportLaunchFailure(w io.Writer, err *application.LaunchError) {
	fmt.Fprintln(w, styles.ErrorTitle.Render(fmt.Sprintf("error: could not invoke editor %q", err.Editor)))
	fmt.Fprintln(w, styles.ErrorDetail.Render(err.Err.Error()))
}

// Execute runs codehere and exits the process
func Execute() {
	exitFunc(newApp().execute(os.Args[1:]))
}
