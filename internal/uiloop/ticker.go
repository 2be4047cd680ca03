// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package uiloop

import (
	"sync"
	"sync/atomic"
	"time"
)

// Ticker runs a function on the loop goroutine at a fixed interval.
// Ticks coalesce: while one is queued and not yet run, further ticks are skipped.
type Ticker struct {
	loop     *Loop
	fn       func()
	stopCh   chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool
	pending  atomic.Bool
}

// Every starts a ticker that runs fn on the loop every interval.
// On a closed loop the returned ticker is already stopped.
// Once Stop has been called from a loop task, fn does not run again.
func (l *Loop) Every(interval time.Duration, fn func()) *Ticker {
	t := &Ticker{
		loop:   l,
		fn:     fn,
		stopCh: make(chan struct{}),
	}

	l.mu.Lock()
	if l.closing {
		l.mu.Unlock()
		t.stopOnce.Do(t.halt)

		return t
	}

	l.tickers[t] = struct{}{}
	l.wg.Add(1)
	l.mu.Unlock()

	go t.run(interval)

	return t
}

// Stop stops the ticker. It is safe to call more than once and from any goroutine.
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		t.halt()

		t.loop.mu.Lock()
		delete(t.loop.tickers, t)
		t.loop.mu.Unlock()
	})
}

func (t *Ticker) halt() {
	t.stopped.Store(true)
	close(t.stopCh)
}

// Stopped reports whether Stop has been called.
func (t *Ticker) Stopped() bool {
	return t.stopped.Load()
}

func (t *Ticker) run(interval time.Duration) {
	defer t.loop.wg.Done()

	tk := time.NewTicker(interval)
	defer tk.Stop()

	for {
		select {
		case <-t.stopCh:
			return
		case <-tk.C:
			if t.pending.CompareAndSwap(false, true) {
				if !t.loop.Post(t.fire) {
					return
				}
			}
		}
	}
}

func (t *Ticker) fire() {
	t.pending.Store(false)

	if t.stopped.Load() {
		return
	}

	t.fn()
}
