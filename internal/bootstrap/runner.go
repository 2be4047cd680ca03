// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/matt-FFFFFF/splash/internal/config"
	"github.com/matt-FFFFFF/splash/internal/ctxlog"
	"github.com/matt-FFFFFF/splash/internal/progress"
)

// Increments is the number of progress updates a count or bytes step makes.
const Increments = 20

// ReadyAction is the action shown once every step has finished.
const ReadyAction = "Launching"

// ErrCancelled is returned when the context ends during a run.
var ErrCancelled = errors.New("bootstrap cancelled")

// Runner runs steps serially against a reporter.
type Runner struct {
	Steps    []config.Step
	Reporter progress.Reporter
}

// New creates a Runner. A nil reporter is replaced by a NullReporter.
func New(steps []config.Step, r progress.Reporter) *Runner {
	if r == nil {
		r = progress.NewNullReporter()
	}

	return &Runner{Steps: steps, Reporter: r}
}

// Run executes every step. When ctx ends the current step stops, the remaining
// steps are marked skipped and the error wraps ErrCancelled.
func (r *Runner) Run(ctx context.Context) (Results, error) {
	windows := Windows(r.Steps)
	results := make(Results, 0, len(r.Steps))

	for i, step := range r.Steps {
		res := &Result{
			Label: step.Name,
			Start: windows[i][0],
			End:   windows[i][1],
		}
		results = append(results, res)

		if err := ctx.Err(); err != nil {
			res.Status = StatusSkipped
			res.Error = err

			continue
		}

		ctxlog.Debug(ctx, "step started", "step", step.Name, "kind", step.Kind)

		began := time.Now()
		err := r.runStep(ctx, step, res.Start, res.End)
		res.Duration = time.Since(began)

		if err != nil {
			res.Status = StatusCancelled
			res.Error = err
			ctxlog.Info(ctx, "step cancelled", "step", step.Name, "after", res.Duration.String())

			continue
		}

		ctxlog.Debug(ctx, "step finished", "step", step.Name, "duration", res.Duration.String())
	}

	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	r.Reporter.Stage(1, progress.String(ReadyAction), "")

	return results, nil
}

func (r *Runner) runStep(ctx context.Context, step config.Step, start, end float64) error {
	action := progress.String(step.Action)

	switch step.Kind {
	case config.KindCount, config.KindBytes:
		mib := step.Kind == config.KindBytes

		r.Reporter.StageRange(start, end, action, step.SubAction, 0, step.Total, mib)

		if step.Total <= 0 {
			return sleep(ctx, step.Wait())
		}

		n := min(int64(Increments), step.Total)
		interval := step.Wait() / time.Duration(n)

		for i := int64(1); i <= n; i++ {
			if err := sleep(ctx, interval); err != nil {
				return err
			}

			r.Reporter.StageRange(start, end, nil, step.SubAction, doneAt(step.Total, i, n), step.Total, mib)
		}

		return nil
	default:
		r.Reporter.Stage(start, action, step.SubAction)

		if err := sleep(ctx, step.Wait()); err != nil {
			return err
		}

		r.Reporter.Stage(end, nil, step.SubAction)

		return nil
	}
}

// Windows splits [0,1] between the steps in proportion to their weights.
// When every weight is zero the split is even.
func Windows(steps []config.Step) [][2]float64 {
	out := make([][2]float64, len(steps))

	var sum float64
	for _, s := range steps {
		sum += max(s.Weight, 0)
	}

	var at float64

	for i, s := range steps {
		w := 1 / float64(len(steps))
		if sum > 0 {
			w = max(s.Weight, 0) / sum
		}

		end := min(at+w, 1)
		if i == len(steps)-1 {
			end = 1
		}

		out[i] = [2]float64{at, end}
		at = end
	}

	return out
}

// doneAt is the item count after increment i of n. It does not overflow for large totals.
func doneAt(total, i, n int64) int64 {
	if i >= n {
		return total
	}

	return int64(float64(total) * float64(i) / float64(n))
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
