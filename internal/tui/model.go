// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"sync"

	bubblesprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/splash/internal/logo"
	"github.com/matt-FFFFFF/splash/internal/progress"
	"github.com/matt-FFFFFF/splash/internal/splash"
	"github.com/matt-FFFFFF/splash/internal/theme"
)

const (
	// contentWidth is the width of the splash in cells.
	contentWidth = 40
	// logoWidth is the width of the logo in cells.
	logoWidth = 20
)

// Styles contains all the styling for the splash.
type Styles struct {
	Title     lipgloss.Style
	Action    lipgloss.Style
	SubAction lipgloss.Style
	BarText   lipgloss.Style
	Box       lipgloss.Style
}

// NewStyles creates the styles for a theme.
func NewStyles(th theme.Theme) *Styles {
	bg := lipgloss.Color(th.Background)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(th.Accent)).
			Background(bg).
			Width(contentWidth).
			Align(lipgloss.Center),
		Action: lipgloss.NewStyle().
			Foreground(lipgloss.Color(th.Foreground)).
			Background(bg).
			Width(contentWidth).
			Align(lipgloss.Center),
		SubAction: lipgloss.NewStyle().
			Foreground(lipgloss.Color(th.SubText)).
			Background(bg).
			Width(contentWidth).
			Align(lipgloss.Center),
		BarText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(th.Foreground)).
			Background(bg),
		Box: lipgloss.NewStyle().
			Background(bg).
			Padding(1, 2), //nolint:mnd
	}
}

// Model is the Bubble Tea model of one splash window.
type Model struct {
	title   string
	logo    []string
	frame   splash.Frame
	bar     bubblesprogress.Model
	width   int
	height  int
	styles  *Styles
	theme   theme.Theme
	onClose func()

	ready     chan struct{}
	readyOnce sync.Once
}

// NewModel creates the model for a window.
func NewModel(spec splash.WindowSpec) *Model {
	th := spec.Theme.WithDefaults()

	bar := bubblesprogress.New(
		bubblesprogress.WithSolidFill(th.Accent),
		bubblesprogress.WithWidth(contentWidth),
	)
	bar.EmptyColor = th.AccentDark
	bar.PercentageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(th.Foreground))

	return &Model{
		title: spec.Title,
		logo:  logo.Cells(spec.Logo, logoWidth, th.Background),
		frame: splash.Frame{
			Action: progress.DefaultAction,
			Max:    progress.BarMax,
		},
		bar:     bar,
		styles:  NewStyles(th),
		theme:   th,
		onClose: spec.OnClose,
		ready:   make(chan struct{}),
	}
}

// Frame returns the frame currently displayed.
func (m *Model) Frame() splash.Frame {
	return m.frame
}
