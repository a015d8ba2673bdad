package actions

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrPromptCancelled is returned when the user aborts a prompt
var ErrPromptCancelled = errors.New("cancelled")

// Prompter asks the user for input
type Prompter interface {
	// Text asks for a single line of free-form text
	Text(prompt, defaultValue string) (string, error)
	// Select asks the user to pick one of options
	Select(prompt string, options []string, defaultValue string) (string, error)
}

// TerminalPrompter prompts on the controlling terminal
type TerminalPrompter struct{}

// NewTerminalPrompter returns the prompter used outside tests
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// textInputModel is a simple text input prompt model
type textInputModel struct {
	textInput textinput.Model
	prompt    string
	done      bool
	err       error
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrPromptCancelled
			m.done = true
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() string {
	if m.done {
		return ""
	}
	style := lipgloss.NewStyle().Margin(1, 0)
	return style.Render(fmt.Sprintf("%s\n%s\n\n(Press Enter to submit, Ctrl+C to cancel)", m.prompt, m.textInput.View()))
}

// Text reads a line with a bubbletea text input
func (p *TerminalPrompter) Text(prompt, defaultValue string) (string, error) {
	ti := textinput.New()
	ti.SetValue(defaultValue)
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 80

	m := textInputModel{
		textInput: ti,
		prompt:    prompt,
	}

	model, err := tea.NewProgram(m, tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return "", err
	}

	final, ok := model.(textInputModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}
	if final.err != nil {
		return "", final.err
	}
	return strings.TrimSpace(final.textInput.Value()), nil
}

// Select shows a filterable list of options
func (p *TerminalPrompter) Select(prompt string, options []string, defaultValue string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("nothing to select")
	}

	question := &survey.Select{
		Message:  prompt,
		Options:  options,
		PageSize: 15,
	}
	for _, option := range options {
		if option == defaultValue {
			question.Default = defaultValue
			break
		}
	}

	var selected string
	if err := survey.AskOne(question, &selected); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrPromptCancelled
		}
		return "", err
	}
	return selected, nil
}

var _ Prompter = (*TerminalPrompter)(nil)
