// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package splash

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/matt-FFFFFF/splash/internal/ctxlog"
	"github.com/matt-FFFFFF/splash/internal/logo"
	"github.com/matt-FFFFFF/splash/internal/progress"
	"github.com/matt-FFFFFF/splash/internal/theme"
	"github.com/matt-FFFFFF/splash/internal/uiloop"
)

// TickInterval is the period of the render tick.
const TickInterval = 100 * time.Millisecond

// DefaultTitle is the window title used when Options.Title is empty.
const DefaultTitle = "Kraken Launcher"

var (
	// ErrInterrupted is returned by Init when its context ends before the
	// window has been built. The launcher cannot recover from it.
	ErrInterrupted = errors.New("interrupted while waiting for splash window")
	// ErrNoSurface is logged when no SurfaceFactory was configured.
	ErrNoSurface = errors.New("no splash surface configured")
)

var _ progress.Reporter = (*Splash)(nil)

// Options configures a Splash.
type Options struct {
	Title    string
	LogoPath string // path inside the logo filesystem, empty for the bundled logo
	Theme    theme.Theme
	Surface  SurfaceFactory
	// OnClose is called when the user closes the window while it is active.
	OnClose func()
}

// Splash is the progress reporter handle.
// All methods are safe for concurrent use.
type Splash struct {
	ctx     context.Context
	opts    Options
	loop    *uiloop.Loop
	current atomic.Pointer[window] // written only on the UI goroutine
}

// New creates a Splash and starts its UI goroutine. No window is shown until Init.
// ctx carries the logger; call Close to release the goroutine.
func New(ctx context.Context, opts Options) *Splash {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}

	return &Splash{
		ctx:  ctx,
		opts: opts,
		loop: uiloop.New(ctx),
	}
}

// Init shows the window if it is not already shown and waits for it.
// Construction failures are logged and leave the splash without a window;
// they are not returned. The only errors are ErrInterrupted when ctx ends
// first, and uiloop.ErrClosed after Close.
func (s *Splash) Init(ctx context.Context) error {
	err := s.loop.Call(ctx, s.open)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, uiloop.ErrClosed):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
}

// Stop queues the disposal of the window and returns immediately.
// Values staged before the disposal runs may or may not be rendered.
func (s *Splash) Stop() {
	s.loop.Post(s.dispose)
}

// Close disposes any window and stops the UI goroutine, waiting for it.
func (s *Splash) Close() {
	s.Stop()
	s.loop.Close()
}

// Active reports whether a window is currently shown.
func (s *Splash) Active() bool {
	return s.current.Load() != nil
}

// Stage implements progress.Reporter.
func (s *Splash) Stage(overall float64, action *string, subAction string) {
	s.StageText(overall, action, subAction, nil)
}

// StageText implements progress.Reporter. Without a window it does nothing,
// and nothing is kept for a window created later.
func (s *Splash) StageText(overall float64, action *string, subAction string, progressText *string) {
	w := s.current.Load()
	if w == nil {
		return
	}

	w.state.Apply(overall, action, subAction, progressText)
}

// StageRange implements progress.Reporter.
func (s *Splash) StageRange(start, end float64, action *string, subAction string, done, total int64, mib bool) {
	text := progress.FormatRange(done, total, mib)
	s.StageText(progress.Interpolate(start, end, done, total), action, subAction, &text)
}

// open runs on the UI goroutine.
func (s *Splash) open() {
	if s.current.Load() != nil {
		return
	}

	w, err := s.build()
	if err != nil {
		ctxlog.Warn(s.ctx, "unable to start splash screen", "error", err)
		return
	}

	s.current.Store(w)
	ctxlog.Debug(s.ctx, "splash screen started", "title", s.opts.Title)
}

func (s *Splash) build() (*window, error) {
	th := s.opts.Theme.WithDefaults()
	if err := th.Validate(); err != nil {
		return nil, err
	}

	img, err := logo.Load(s.opts.LogoPath)
	if err != nil {
		return nil, err
	}

	if s.opts.Surface == nil {
		return nil, ErrNoSurface
	}

	w := &window{
		state: progress.NewState(),
	}

	if s.opts.OnClose != nil {
		w.onClose.Store(&s.opts.OnClose)
	}

	surface, err := s.opts.Surface(s.ctx, WindowSpec{
		Title:   s.opts.Title,
		Logo:    img,
		Theme:   th,
		OnClose: w.requestClose,
	})
	if err != nil {
		return nil, err
	}

	w.surface = surface
	w.render()
	w.ticker = s.loop.Every(TickInterval, w.render)

	return w, nil
}

// dispose runs on the UI goroutine.
func (s *Splash) dispose() {
	w := s.current.Load()
	if w == nil {
		return
	}

	w.ticker.Stop()
	w.onClose.Store(nil)

	if err := w.surface.Close(); err != nil {
		ctxlog.Warn(s.ctx, "error closing splash screen", "error", err)
	}

	s.current.Store(nil)
	ctxlog.Debug(s.ctx, "splash screen stopped")
}
