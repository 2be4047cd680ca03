// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matt-FFFFFF/splash/internal/splash"
)

// ErrStart is returned when the terminal program exits before showing the window.
var ErrStart = errors.New("failed to start terminal splash")

var _ splash.Surface = (*Surface)(nil)

// Surface is a splash window drawn by a Bubble Tea program.
type Surface struct {
	program *tea.Program
	model   *Model
	done    chan struct{}
	err     error
}

// Open returns a factory that starts one program per window.
// Signals are left to the caller; extra options are applied last.
func Open(opts ...tea.ProgramOption) splash.SurfaceFactory {
	return func(ctx context.Context, spec splash.WindowSpec) (splash.Surface, error) {
		model := NewModel(spec)

		programOpts := append([]tea.ProgramOption{
			tea.WithContext(ctx),
			tea.WithAltScreen(),
			tea.WithoutSignalHandler(),
		}, opts...)

		s := &Surface{
			program: tea.NewProgram(model, programOpts...),
			model:   model,
			done:    make(chan struct{}),
		}

		go func() {
			defer close(s.done)

			_, s.err = s.program.Run()
		}()

		select {
		case <-model.ready:
			return s, nil
		case <-s.done:
			return nil, fmt.Errorf("%w: %w", ErrStart, s.err)
		}
	}
}

// Render implements splash.Surface.
func (s *Surface) Render(frame splash.Frame) {
	select {
	case <-s.done:
		return
	default:
	}

	s.program.Send(FrameMsg{Frame: frame})
}

// Close implements splash.Surface. It quits the program and restores the terminal.
func (s *Surface) Close() error {
	s.program.Quit()
	<-s.done

	if s.err != nil && !errors.Is(s.err, tea.ErrProgramKilled) {
		return s.err
	}

	return nil
}
