// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/matt-FFFFFF/splash/internal/color"
	"github.com/matt-FFFFFF/splash/internal/splash"
)

// plainStep is the bar movement, in bar units, that is worth a new line.
const plainStep = 10

var _ splash.Surface = (*PlainSurface)(nil)

// PlainSurface prints the splash as log-like lines.
// A line is written when a label changes or the bar moves by at least 1%.
type PlainSurface struct {
	w       io.Writer
	title   string
	colour  bool
	last    splash.Frame
	written bool
}

// OpenPlain returns a factory for plain surfaces writing to w.
func OpenPlain(w io.Writer, colour bool) splash.SurfaceFactory {
	return func(_ context.Context, spec splash.WindowSpec) (splash.Surface, error) {
		return &PlainSurface{
			w:      w,
			title:  spec.Title,
			colour: colour,
		}, nil
	}
}

func (p *PlainSurface) paint(s string, codes ...color.Code) string {
	if !p.colour {
		return s
	}

	return color.Paint(s, codes...)
}

func (p *PlainSurface) changed(f splash.Frame) bool {
	if !p.written {
		return true
	}

	l := p.last

	if f.Action != l.Action || f.SubAction != l.SubAction || f.ShowText != l.ShowText || f.Text != l.Text {
		return true
	}

	d := f.Value - l.Value

	return d >= plainStep || d <= -plainStep || (f.Value == f.Max && l.Value != l.Max)
}

// Render implements splash.Surface.
func (p *PlainSurface) Render(f splash.Frame) {
	if !p.changed(f) {
		return
	}

	p.last = f
	p.written = true

	label := fmt.Sprintf("%5.1f%%", f.Percent()*100) //nolint:mnd
	if f.ShowText {
		label = f.Text
	}

	parts := []string{p.paint(f.Action, color.FgHiWhite), p.paint(label, color.FgGreen)}
	if f.SubAction != "" {
		parts = append(parts, p.paint(f.SubAction, color.FgWhite))
	}

	fmt.Fprintf(p.w, "%s %s\n", p.paint("["+p.title+"]", color.Bold, color.FgGreen), strings.Join(parts, " | "))
}

// Close implements splash.Surface.
func (p *PlainSurface) Close() error {
	_, err := fmt.Fprintf(p.w, "%s %s\n", p.paint("["+p.title+"]", color.Bold, color.FgGreen), "done")
	return err
}
