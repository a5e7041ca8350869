package ui

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user quits the wizard
var ErrCancelled = errors.New("init cancelled")

// Answers are the values collected by the init wizard
type Answers struct {
	RepositoryURL string
	Host          string
	Port          int
}

// KeyMap defines the wizard's keyboard shortcuts
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

// DefaultKeyMap is the wizard's key bindings
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab/↓", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab/↑", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "next / confirm"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

const (
	fieldRepository = iota
	fieldHost
	fieldPort
)

var fieldLabels = []string{"Repository URL", "Host", "Port"}

// Model is the bubbletea model of the init wizard
type Model struct {
	inputs   []textinput.Model
	focus    int
	err      string
	answers  Answers
	done     bool
	quitting bool
}

// NewModel creates a wizard prefilled with defaults
func NewModel(defaults Answers) Model {
	repo := textinput.New()
	repo.Placeholder = "https://github.com/you/your-blog"
	repo.SetValue(defaults.RepositoryURL)
	repo.CharLimit = 256
	repo.Width = 50

	host := textinput.New()
	host.Placeholder = "localhost"
	host.SetValue(defaults.Host)
	host.CharLimit = 253
	host.Width = 30

	port := textinput.New()
	port.Placeholder = "3000"
	if defaults.Port > 0 {
		port.SetValue(strconv.Itoa(defaults.Port))
	}
	port.CharLimit = 5
	port.Width = 10

	m := Model{inputs: []textinput.Model{repo, host, port}}
	m.inputs[0].Focus()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DefaultKeyMap.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, DefaultKeyMap.Next):
			return m, m.setFocus(m.focus + 1)

		case key.Matches(msg, DefaultKeyMap.Prev):
			return m, m.setFocus(m.focus - 1)

		case key.Matches(msg, DefaultKeyMap.Submit):
			if m.focus < len(m.inputs)-1 {
				return m, m.setFocus(m.focus + 1)
			}
			answers, err := m.collect()
			if err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.answers = answers
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves focus to field i, wrapping around
func (m *Model) setFocus(i int) tea.Cmd {
	n := len(m.inputs)
	i = ((i % n) + n) % n

	m.inputs[m.focus].Blur()
	m.focus = i
	m.err = ""
	return m.inputs[i].Focus()
}

func (m Model) collect() (Answers, error) {
	repo := strings.TrimSpace(m.inputs[fieldRepository].Value())
	u, err := url.Parse(repo)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Answers{}, fmt.Errorf("repository URL must be an http(s) URL")
	}

	host := strings.TrimSpace(m.inputs[fieldHost].Value())
	if host == "" {
		return Answers{}, fmt.Errorf("host must not be empty")
	}

	port, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldPort].Value()))
	if err != nil || port < 1 || port > 65535 {
		return Answers{}, fmt.Errorf("port must be a number between 1 and 65535")
	}

	return Answers{RepositoryURL: repo, Host: host, Port: port}, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.done || m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("mdxblog init"))
	b.WriteString("\n")

	for i, input := range m.inputs {
		label := labelStyle
		if i == m.focus {
			label = focusedLabelStyle
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	help := []string{
		DefaultKeyMap.Next.Help().Key + " " + DefaultKeyMap.Next.Help().Desc,
		DefaultKeyMap.Submit.Help().Key + " " + DefaultKeyMap.Submit.Help().Desc,
		DefaultKeyMap.Quit.Help().Key + " " + DefaultKeyMap.Quit.Help().Desc,
	}
	b.WriteString(helpStyle.Render(strings.Join(help, " • ")))

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, b.String()))
}

// Answers returns the collected values once the wizard completed
func (m Model) Answers() (Answers, bool) {
	return m.answers, m.done
}

// RunInitWizard runs the wizard on the terminal
func RunInitWizard(defaults Answers) (Answers, error) {
	if !IsTerminal() {
		return Answers{}, fmt.Errorf("not running in a terminal, use --no-interactive flag")
	}

	final, err := tea.NewProgram(NewModel(defaults)).Run()
	if err != nil {
		return Answers{}, fmt.Errorf("TUI error: %w", err)
	}

	answers, ok := final.(Model).Answers()
	if !ok {
		return Answers{}, ErrCancelled
	}
	return answers, nil
}
