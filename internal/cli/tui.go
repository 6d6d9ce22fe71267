package cli

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/playfair/pkg/pipeline"
)

// Form styles
var (
	formLabelStyle   = lipgloss.NewStyle().Foreground(colorGray).Width(8)
	formFocusStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Width(8)
	formValueStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	formDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	formChosenStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	formCursor       = "▏"
	formMaskRune     = "•"
	formActionMarker = "▸ "
)

// interactiveCommand creates the interactive command.
func (c *CLI) interactiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"tui"},
		Short:   "Encrypt and decrypt in an interactive terminal form",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m := NewFormModel(ctx, c.newRunner(ctx))
			p := tea.NewProgram(m,
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			if _, err := p.Run(); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return err
			}
			return nil
		},
	}
}

// =============================================================================
// FormModel - Interactive cipher form
// =============================================================================

// formField identifies the focused part of the form.
type formField int

const (
	fieldText formField = iota
	fieldKey
	fieldAction
	fieldCount
)

// formResultMsg carries the line produced by a submitted form.
type formResultMsg struct {
	line   string
	failed bool
}

// FormModel is the bubbletea model for the interactive form. It mirrors the
// web form: a text field, a key field, an action toggle and a result line.
type FormModel struct {
	Text   string
	Key    string
	Action pipeline.Action
	Result string
	Failed bool
	Focus  formField

	ctx    context.Context
	runner *pipeline.Runner
}

// NewFormModel creates an empty form that submits to runner.
func NewFormModel(ctx context.Context, runner *pipeline.Runner) FormModel {
	return FormModel{
		Action: pipeline.ActionEncrypt,
		ctx:    ctx,
		runner: runner,
	}
}

func (m FormModel) Init() tea.Cmd {
	return nil
}

func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case formResultMsg:
		m.Result = msg.line
		m.Failed = msg.failed
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			m.Focus = (m.Focus + 1) % fieldCount
			return m, nil
		case "shift+tab", "up":
			m.Focus = (m.Focus + fieldCount - 1) % fieldCount
			return m, nil
		case "enter":
			return m, m.submit()
		case "ctrl+u":
			m.setField("")
			return m, nil
		}

		if m.Focus == fieldAction {
			switch msg.String() {
			case "left", "right", " ", "h", "l":
				m.toggleAction()
			}
			return m, nil
		}

		switch msg.Type {
		case tea.KeyBackspace:
			v := []rune(m.field())
			if len(v) > 0 {
				m.setField(string(v[:len(v)-1]))
			}
		case tea.KeySpace:
			m.setField(m.field() + " ")
		case tea.KeyRunes:
			m.setField(m.field() + string(msg.Runes))
		}
	}
	return m, nil
}

func (m *FormModel) field() string {
	if m.Focus == fieldKey {
		return m.Key
	}
	return m.Text
}

func (m *FormModel) setField(v string) {
	switch m.Focus {
	case fieldText:
		m.Text = v
	case fieldKey:
		m.Key = v
	}
}

func (m *FormModel) toggleAction() {
	if m.Action == pipeline.ActionEncrypt {
		m.Action = pipeline.ActionDecrypt
	} else {
		m.Action = pipeline.ActionEncrypt
	}
}

// submit runs the current form contents through the runner off the UI loop.
func (m FormModel) submit() tea.Cmd {
	ctx, runner := m.ctx, m.runner
	opts := pipeline.Options{Text: m.Text, Key: m.Key, Action: string(m.Action)}
	return func() tea.Msg {
		line, err := runner.Message(ctx, opts)
		if err != nil {
			return formResultMsg{line: "Error: internal error.", failed: true}
		}
		refused := line == pipeline.MessageInvalidKey || line == pipeline.MessageInvalidAction
		return formResultMsg{line: line, failed: refused}
	}
}

func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Playfair Cipher"))
	b.WriteString("\n")
	b.WriteString(formDimStyle.Render("tab/↑/↓ move  ←/→ action  ⏎ run  esc quit"))
	b.WriteString("\n\n")

	b.WriteString(m.label(fieldText, "Text"))
	b.WriteString(formValueStyle.Render(m.Text))
	if m.Focus == fieldText {
		b.WriteString(formCursor)
	}
	b.WriteString("\n")

	b.WriteString(m.label(fieldKey, "Key"))
	b.WriteString(formValueStyle.Render(strings.Repeat(formMaskRune, len([]rune(m.Key)))))
	if m.Focus == fieldKey {
		b.WriteString(formCursor)
	}
	b.WriteString("\n")

	b.WriteString(m.label(fieldAction, "Action"))
	for i, a := range pipeline.Actions {
		if i > 0 {
			b.WriteString("  ")
		}
		if a == m.Action {
			b.WriteString(formChosenStyle.Render(formActionMarker + string(a)))
		} else {
			b.WriteString(formDimStyle.Render("  " + string(a)))
		}
	}
	b.WriteString("\n\n")

	if m.Result != "" {
		style := StyleSuccess
		if m.Failed {
			style = StyleError
		}
		b.WriteString(formLabelStyle.Render("Result"))
		b.WriteString(style.Render(m.Result))
		b.WriteString("\n")
	}

	return b.String()
}

func (m FormModel) label(f formField, name string) string {
	if m.Focus == f {
		return formFocusStyle.Render(name)
	}
	return formLabelStyle.Render(name)
}
