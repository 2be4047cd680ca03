// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package uiloop

import (
	"context"
	"errors"
	"sync"

	"github.com/matt-FFFFFF/splash/internal/ctxlog"
)

// ErrClosed is returned when work is handed to a loop that has been closed.
var ErrClosed = errors.New("ui loop closed")

// Loop runs queued tasks one at a time, in order, on its own goroutine.
// The queue is unbounded so posting never blocks.
type Loop struct {
	ctx     context.Context
	mu      sync.Mutex
	queue   []func()
	closing bool
	tickers map[*Ticker]struct{}
	wake    chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
}

// New starts a loop. ctx carries the logger used to report task panics;
// cancelling it does not stop the loop, Close does.
func New(ctx context.Context) *Loop {
	l := &Loop{
		ctx:     ctx,
		tickers: make(map[*Ticker]struct{}),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	go l.run()

	return l
}

// Post queues task and returns immediately.
// It returns false if the loop is closed and the task was dropped.
func (l *Loop) Post(task func()) bool {
	l.mu.Lock()
	if l.closing {
		l.mu.Unlock()
		return false
	}

	l.queue = append(l.queue, task)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}

	return true
}

// Call queues task and blocks until it has run.
// If ctx is done first, Call returns ctx.Err(); the task stays queued and still runs.
func (l *Loop) Call(ctx context.Context, task func()) error {
	finished := make(chan struct{})

	if !l.Post(func() {
		defer close(finished)
		task()
	}) {
		return ErrClosed
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		select {
		case <-finished:
			return nil
		default:
			return ErrClosed
		}
	}
}

// Close stops all tickers, runs the tasks already queued and waits for the
// loop goroutine to exit. It must not be called from a loop task.
func (l *Loop) Close() {
	l.mu.Lock()
	if l.closing {
		l.mu.Unlock()
		<-l.done

		return
	}

	l.closing = true
	tickers := make([]*Ticker, 0, len(l.tickers))

	for t := range l.tickers {
		tickers = append(tickers, t)
	}
	l.mu.Unlock()

	for _, t := range tickers {
		t.Stop()
	}

	l.wg.Wait()

	select {
	case l.wake <- struct{}{}:
	default:
	}

	<-l.done
}

// Done is closed once the loop goroutine has exited.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) run() {
	defer close(l.done)

	for {
		l.mu.Lock()
		tasks := l.queue
		l.queue = nil
		closing := l.closing
		l.mu.Unlock()

		if len(tasks) == 0 {
			if closing {
				return
			}

			<-l.wake

			continue
		}

		for _, task := range tasks {
			l.runTask(task)
		}
	}
}

func (l *Loop) runTask(task func()) {
	defer func() {
		if r := recover(); r != nil {
			ctxlog.Error(l.ctx, "ui task panicked", "panic", r)
		}
	}()

	task()
}
