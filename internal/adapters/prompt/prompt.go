// Package prompt asks the user to acknowledge a message before the
// process exits.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"codehere/internal/adapters/tui"
	"codehere/internal/ports"
)

// DefaultMessage is shown when waiting for acknowledgment
const DefaultMessage = "Press Enter to exit..."

// New returns a terminal prompt when in is a TTY and a plain line
// reader otherwise (pipes, redirected files, tests).
func New(in io.Reader, out io.Writer) ports.Acknowledger {
	if f, ok := in.(*os.File); ok && isTerminal(f.Fd()) {
		return tui.NewAcknowledger(in, out)
	}
	return NewLineAcknowledger(in, out)
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// LineAcknowledger implements ports.Acknowledger by reading a single line
type LineAcknowledger struct {
	in  io.Reader
	out io.Writer
}

// Ensure LineAcknowledger implements ports.Acknowledger
var _ ports.Acknowledger = (*LineAcknowledger)(nil)

// NewLineAcknowledger creates a prompt that writes to out and reads one line from in
func NewLineAcknowledger(in io.Reader, out io.Writer) *LineAcknowledger {
	return &LineAcknowledger{in: in, out: out}
}

// Acknowledge prints message and blocks until a line (or EOF) is read
func (a *LineAcknowledger) Acknowledge(message string) error {
	if _, err := fmt.Fprint(a.out, message); err != nil {
		return fmt.Errorf("writing prompt: %w", err)
	}

	if _, err := bufio.NewReader(a.in).ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading acknowledgment: %w", err)
	}

	return nil
}
