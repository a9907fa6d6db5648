package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"codehere/internal/adapters/tui/styles"
	"codehere/internal/ports"
)

// AcknowledgeKeyMap defines key bindings for the acknowledgment prompt
type AcknowledgeKeyMap struct {
	Dismiss key.Binding
}

// DefaultAcknowledgeKeys returns the default acknowledgment key bindings
var DefaultAcknowledgeKeys = AcknowledgeKeyMap{
	Dismiss: key.NewBinding(
		key.WithKeys("enter", "q", "esc", "ctrl+c"),
		key.WithHelp("enter", "exit"),
	),
}

// AcknowledgeModel shows a message and waits for the user to dismiss it
type AcknowledgeModel struct {
	Message string
	Keys    AcknowledgeKeyMap
	done    bool
}

// NewAcknowledgeModel creates an acknowledgment prompt with default keys
func NewAcknowledgeModel(message string) AcknowledgeModel {
	return AcknowledgeModel{
		Message: message,
		Keys:    DefaultAcknowledgeKeys,
	}
}

// Init implements tea.Model
func (m AcknowledgeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m AcknowledgeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.Keys.Dismiss) {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model
func (m AcknowledgeModel) View() string {
	if m.done {
		return ""
	}

	help := m.Keys.Dismiss.Help()

	var b strings.Builder
	b.WriteString(styles.MutedText.Render(m.Message))
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render(help.Key))
	b.WriteString(styles.HelpDesc.Render(" to " + help.Desc))
	b.WriteString("\n")
	return b.String()
}

// Done reports whether the prompt was dismissed
func (m AcknowledgeModel) Done() bool {
	return m.done
}

// Acknowledger implements ports.Acknowledger with a bubbletea program
type Acknowledger struct {
	in  io.Reader
	out io.Writer
}

// Ensure Acknowledger implements ports.Acknowledger
var _ ports.Acknowledger = (*Acknowledger)(nil)

// NewAcknowledger creates a terminal acknowledgment prompt reading keys from in
func NewAcknowledger(in io.Reader, out io.Writer) *Acknowledger {
	return &Acknowledger{in: in, out: out}
}

// Acknowledge blocks until a dismiss key is pressed
func (a *Acknowledger) Acknowledge(message string) error {
	p := tea.NewProgram(
		NewAcknowledgeModel(message),
		tea.WithInput(a.in),
		tea.WithOutput(a.out),
	)
	_, err := p.Run()
	return err
}
