package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func defaults() Answers {
	return Answers{RepositoryURL: "https://github.com/loke-dev/remix-mdx-blog-template", Host: "localhost", Port: 3000}
}

func TestWizard_AcceptDefaults(t *testing.T) {
	m := press(NewModel(defaults()), enter, enter, enter)

	answers, ok := m.Answers()
	require.True(t, ok)
	assert.Equal(t, defaults(), answers)
	assert.Empty(t, m.View())
}

func TestWizard_EditPort(t *testing.T) {
	m := press(NewModel(defaults()), tab, tab)
	assert.Equal(t, fieldPort, m.focus)

	for i := 0; i < 4; i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("8080")}, enter)

	answers, ok := m.Answers()
	require.True(t, ok)
	assert.Equal(t, 8080, answers.Port)
}

func TestWizard_Validation(t *testing.T) {
	m := press(NewModel(Answers{RepositoryURL: "not a url", Host: "localhost", Port: 3000}), enter, enter, enter)

	_, ok := m.Answers()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "repository URL must be an http(s) URL")

	m = press(m, tab)
	assert.NotContains(t, m.View(), "repository URL", "moving focus clears the error")
}

func TestWizard_FocusWraps(t *testing.T) {
	m := press(NewModel(defaults()), tab, tab, tab)
	assert.Equal(t, fieldRepository, m.focus)

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldPort, m.focus)
}

func TestWizard_Cancel(t *testing.T) {
	m := press(NewModel(defaults()), esc)
	_, ok := m.Answers()
	assert.False(t, ok)
	assert.True(t, m.quitting)
}
