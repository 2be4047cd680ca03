// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package splash

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matt-FFFFFF/splash/internal/logo"
	"github.com/matt-FFFFFF/splash/internal/progress"
	"github.com/matt-FFFFFF/splash/internal/theme"
	"github.com/matt-FFFFFF/splash/internal/uiloop"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const waitFor = 2 * time.Second

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeSurface struct {
	mu     sync.Mutex
	spec   WindowSpec
	frames []Frame
	closed bool
}

func (f *fakeSurface) Render(frame Frame) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.frames = append(f.frames, frame)
}

func (f *fakeSurface) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true

	return nil
}

func (f *fakeSurface) last() (Frame, int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.frames) == 0 {
		return Frame{}, 0
	}

	return f.frames[len(f.frames)-1], len(f.frames)
}

func (f *fakeSurface) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.closed
}

type fakeFactory struct {
	mu       sync.Mutex
	surfaces []*fakeSurface
	err      error
}

func (ff *fakeFactory) open(_ context.Context, spec WindowSpec) (Surface, error) {
	ff.mu.Lock()
	defer ff.mu.Unlock()

	if ff.err != nil {
		return nil, ff.err
	}

	s := &fakeSurface{spec: spec}
	ff.surfaces = append(ff.surfaces, s)

	return s, nil
}

func (ff *fakeFactory) count() int {
	ff.mu.Lock()
	defer ff.mu.Unlock()

	return len(ff.surfaces)
}

func (ff *fakeFactory) surface(i int) *fakeSurface {
	ff.mu.Lock()
	defer ff.mu.Unlock()

	return ff.surfaces[i]
}

func newTestSplash(t *testing.T, ff *fakeFactory, opts ...func(*Options)) *Splash {
	t.Helper()

	o := Options{Surface: ff.open}
	for _, opt := range opts {
		opt(&o)
	}

	s := New(context.Background(), o)
	t.Cleanup(s.Close)

	return s
}

// waitFrame waits for a frame rendered after the current one that satisfies match.
func waitFrame(t *testing.T, fs *fakeSurface, match func(Frame) bool) Frame {
	t.Helper()

	_, seen := fs.last()

	var got Frame

	require.Eventually(t, func() bool {
		f, n := fs.last()
		got = f

		return n > seen && match(f)
	}, waitFor, 5*time.Millisecond)

	return got
}

func TestInit_Idempotent(t *testing.T) {
	ff := &fakeFactory{}
	s := newTestSplash(t, ff)

	require.NoError(t, s.Init(context.Background()))
	require.NoError(t, s.Init(context.Background()))

	assert.True(t, s.Active())
	assert.Equal(t, 1, ff.count())

	spec := ff.surface(0).spec
	assert.Equal(t, DefaultTitle, spec.Title)
	assert.NotNil(t, spec.Logo)
	assert.Equal(t, theme.Default(), spec.Theme)
}

func TestInit_InitialFrame(t *testing.T) {
	ff := &fakeFactory{}
	s := newTestSplash(t, ff)

	require.NoError(t, s.Init(context.Background()))

	f, n := ff.surface(0).last()
	require.Equal(t, 1, n, "init renders once before the first tick")
	assert.Equal(t, progress.DefaultAction, f.Action)
	assert.Empty(t, f.SubAction)
	assert.Equal(t, 0, f.Value)
	assert.Equal(t, progress.BarMax, f.Max)
	assert.False(t, f.ShowText)
}

func TestStage_RenderTick(t *testing.T) {
	ff := &fakeFactory{}
	s := newTestSplash(t, ff)
	require.NoError(t, s.Init(context.Background()))

	s.Stage(0.5, progress.String("A"), "B")

	f := waitFrame(t, ff.surface(0), func(f Frame) bool { return f.Value == 500 })
	assert.Equal(t, 1000, f.Max)
	assert.Equal(t, "A", f.Action)
	assert.Equal(t, "B", f.SubAction)
	assert.False(t, f.ShowText)
	assert.InDelta(t, 0.5, f.Percent(), 1e-9)
}

func TestStage_OmittedActionIsPreserved(t *testing.T) {
	ff := &fakeFactory{}
	s := newTestSplash(t, ff)
	require.NoError(t, s.Init(context.Background()))

	fs := ff.surface(0)

	s.Stage(0.2, progress.String("A"), "B")
	waitFrame(t, fs, func(f Frame) bool { return f.Action == "A" })

	s.Stage(0.2, nil, "C")
	f := waitFrame(t, fs, func(f Frame) bool { return f.SubAction == "C" })
	assert.Equal(t, "A", f.Action)

	s.Stage(0.2, progress.String(""), "B")
	f = waitFrame(t, fs, func(f Frame) bool { return f.SubAction == "B" })
	assert.Empty(t, f.Action)
}

func TestStageText_Overlay(t *testing.T) {
	ff := &fakeFactory{}
	s := newTestSplash(t, ff)
	require.NoError(t, s.Init(context.Background()))

	fs := ff.surface(0)

	s.StageText(0.3, nil, "", progress.String("3.2 / 10.1 MiB"))
	f := waitFrame(t, fs, func(f Frame) bool { return f.ShowText })
	assert.Equal(t, "3.2 / 10.1 MiB", f.Text)
	assert.Equal(t, 300, f.Value)

	// absent text always clears the overlay
	s.StageText(0.3, nil, "", nil)
	waitFrame(t, fs, func(f Frame) bool { return !f.ShowText })
}

func TestStageRange(t *testing.T) {
	tests := []struct {
		name  string
		done  int64
		total int64
		mib   bool
		value int
		text  string
	}{
		{
			name:  "count",
			done:  5,
			total: 10,
			value: 500,
			text:  "5 / 10",
		},
		{
			name:  "mib",
			done:  1048576,
			total: 10485760,
			mib:   true,
			value: 100,
			text:  "1.0 / 10.1 MiB",
		},
		{
			name:  "zero total is complete",
			done:  0,
			total: 0,
			value: 1000,
			text:  "0 / 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ff := &fakeFactory{}
			s := newTestSplash(t, ff)
			require.NoError(t, s.Init(context.Background()))

			s.StageRange(0, 1, progress.String("A"), "B", tt.done, tt.total, tt.mib)

			f := waitFrame(t, ff.surface(0), func(f Frame) bool { return f.ShowText })
			assert.Equal(t, tt.value, f.Value)
			assert.Equal(t, tt.text, f.Text)
			assert.Equal(t, "A", f.Action)
		})
	}
}

func TestStage_BeforeInitDoesNotQueue(t *testing.T) {
	ff := &fakeFactory{}
	s := newTestSplash(t, ff)

	assert.NotPanics(t, func() {
		s.Stage(0.9, progress.String("early"), "early")
		s.StageRange(0, 1, nil, "early", 1, 2, true)
	})

	require.NoError(t, s.Init(context.Background()))

	f := waitFrame(t, ff.surface(0), func(Frame) bool { return true })
	assert.Equal(t, progress.DefaultAction, f.Action)
	assert.Empty(t, f.SubAction)
	assert.Equal(t, 0, f.Value)
}

func TestStop_ThenStageIsNoop(t *testing.T) {
	ff := &fakeFactory{}
	s := newTestSplash(t, ff)
	require.NoError(t, s.Init(context.Background()))

	fs := ff.surface(0)

	s.Stop()
	require.Eventually(t, func() bool { return !s.Active() }, waitFor, time.Millisecond)
	assert.True(t, fs.isClosed())

	_, n := fs.last()

	assert.NotPanics(t, func() { s.Stage(0.7, progress.String("late"), "late") })

	time.Sleep(3 * TickInterval)

	_, after := fs.last()
	assert.Equal(t, n, after, "no frames after disposal")

	// stop without a window is a no-op
	s.Stop()
	require.NoError(t, s.loop.Call(context.Background(), func() {}))
}

func TestInit_AfterStopIsFirstUse(t *testing.T) {
	ff := &fakeFactory{}
	s := newTestSplash(t, ff)
	require.NoError(t, s.Init(context.Background()))

	s.Stage(0.8, progress.String("A"), "B")
	waitFrame(t, ff.surface(0), func(f Frame) bool { return f.Value == 800 })

	s.Stop()
	require.NoError(t, s.Init(context.Background()))
	require.Equal(t, 2, ff.count())

	f, _ := ff.surface(1).last()
	assert.Equal(t, progress.DefaultAction, f.Action)
	assert.Equal(t, 0, f.Value)
}

func TestInit_ConstructionFailureIsSwallowed(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, ff *fakeFactory, o *Options)
	}{
		{
			name: "surface error",
			setup: func(_ *testing.T, ff *fakeFactory, _ *Options) {
				ff.err = errors.New("no terminal")
			},
		},
		{
			name: "no surface",
			setup: func(_ *testing.T, _ *fakeFactory, o *Options) {
				o.Surface = nil
			},
		},
		{
			name: "invalid theme",
			setup: func(_ *testing.T, _ *fakeFactory, o *Options) {
				o.Theme.Accent = "green"
			},
		},
		{
			name: "missing logo",
			setup: func(t *testing.T, _ *fakeFactory, _ *Options) {
				stubs := gostub.Stub(&logo.FsFactory, func() afero.Fs { return afero.NewMemMapFs() })
				t.Cleanup(stubs.Reset)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ff := &fakeFactory{}
			s := newTestSplash(t, ff, func(o *Options) { tt.setup(t, ff, o) })

			require.NoError(t, s.Init(context.Background()))
			assert.False(t, s.Active())
			assert.Equal(t, 0, ff.count())

			assert.NotPanics(t, func() {
				s.Stage(0.5, progress.String("A"), "B")
				s.Stop()
			})
		})
	}
}

func TestInit_Interrupted(t *testing.T) {
	ff := &fakeFactory{}
	s := newTestSplash(t, ff)

	release := make(chan struct{})
	s.loop.Post(func() { <-release })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Init(ctx)
	require.ErrorIs(t, err, ErrInterrupted)
	require.ErrorIs(t, err, context.Canceled)

	close(release)
}

func TestInit_AfterClose(t *testing.T) {
	s := New(context.Background(), Options{Surface: (&fakeFactory{}).open})
	s.Close()

	err := s.Init(context.Background())
	require.ErrorIs(t, err, uiloop.ErrClosed)
	assert.NotErrorIs(t, err, ErrInterrupted)
}

func TestClose_DisposesWindow(t *testing.T) {
	ff := &fakeFactory{}
	s := New(context.Background(), Options{Surface: ff.open})
	require.NoError(t, s.Init(context.Background()))

	s.Close()

	assert.False(t, s.Active())
	assert.True(t, ff.surface(0).isClosed())
}

func TestOnClose(t *testing.T) {
	var closed atomic.Int32

	ff := &fakeFactory{}
	s := newTestSplash(t, ff, func(o *Options) {
		o.OnClose = func() { closed.Add(1) }
	})
	require.NoError(t, s.Init(context.Background()))

	requestClose := ff.surface(0).spec.OnClose
	require.NotNil(t, requestClose)

	requestClose()
	assert.Equal(t, int32(1), closed.Load())

	s.Stop()
	require.Eventually(t, func() bool { return !s.Active() }, waitFor, time.Millisecond)

	requestClose()
	assert.Equal(t, int32(1), closed.Load(), "close action is disabled by Stop")
}

func TestStage_ConcurrentWithStop(t *testing.T) {
	ff := &fakeFactory{}
	s := newTestSplash(t, ff)
	require.NoError(t, s.Init(context.Background()))

	var wg sync.WaitGroup

	for k := 0; k < 4; k++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := 0; i < 200; i++ {
				s.StageRange(0, 1, nil, "worker", int64(i), 200, false)
			}
		}()
	}

	s.Stop()
	wg.Wait()

	require.Eventually(t, func() bool { return !s.Active() }, waitFor, time.Millisecond)
}

func TestClose_DuringInitDisposesWindow(t *testing.T) {
	ff := &fakeFactory{}
	entered := make(chan struct{})
	release := make(chan struct{})

	s := New(context.Background(), Options{
		Surface: func(ctx context.Context, spec WindowSpec) (Surface, error) {
			close(entered)
			<-release

			return ff.open(ctx, spec)
		},
	})

	initErr := make(chan error, 1)

	go func() { initErr <- s.Init(context.Background()) }()

	<-entered

	closed := make(chan struct{})

	go func() {
		defer close(closed)
		s.Close()
	}()

	require.Eventually(t, func() bool { return !s.loop.Post(func() {}) }, waitFor, time.Millisecond,
		"loop should be closing")

	close(release)

	select {
	case <-closed:
	case <-time.After(waitFor):
		t.Fatal("Close did not return")
	}

	err := <-initErr
	if err != nil {
		require.ErrorIs(t, err, uiloop.ErrClosed)
	}

	require.Equal(t, 1, ff.count())
	assert.True(t, ff.surface(0).isClosed())
	assert.False(t, s.Active())
}
