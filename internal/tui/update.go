// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/splash/internal/splash"
)

// FrameMsg carries a rendered frame into the program.
type FrameMsg struct {
	Frame splash.Frame
}

// Init implements bubbletea.Model.Init. It marks the window as shown.
func (m *Model) Init() tea.Cmd {
	m.readyOnce.Do(func() { close(m.ready) })
	return nil
}

// Update implements bubbletea.Model.Update.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		m.frame = msg.Frame
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress turns the close keys into a close request. The window stays
// up until the launcher stops it.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		if m.onClose != nil {
			m.onClose()
		}
	}

	return m, nil
}

// View implements bubbletea.Model.View.
func (m *Model) View() string {
	var b strings.Builder

	if m.title != "" {
		b.WriteString(m.styles.Title.Render(m.title))
		b.WriteString("\n\n")
	}

	for _, line := range m.logo {
		b.WriteString(lipgloss.PlaceHorizontal(contentWidth, lipgloss.Center, line,
			lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background))))
		b.WriteString("\n")
	}

	if len(m.logo) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Action.Render(m.frame.Action))
	b.WriteString("\n\n")
	b.WriteString(m.renderBar())
	b.WriteString("\n\n")
	b.WriteString(m.styles.SubAction.Render(m.frame.SubAction))

	box := m.styles.Box.Render(b.String())

	if m.width == 0 || m.height == 0 {
		return box
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderBar draws the bar with either the percentage or the frame text as its label.
func (m *Model) renderBar() string {
	bar := m.bar

	if !m.frame.ShowText {
		bar.ShowPercentage = true
		return bar.ViewAs(m.frame.Percent())
	}

	text := " " + m.frame.Text

	bar.ShowPercentage = false
	bar.Width = max(contentWidth-lipgloss.Width(text), 1)

	return bar.ViewAs(m.frame.Percent()) + m.styles.BarText.Render(text)
}
