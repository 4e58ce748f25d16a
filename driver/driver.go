// Package driver owns the iteration clock. The simulation core has no
// notion of time or rendering; a Runner advances the grid on a wall-clock
// interval and hands an independent snapshot of each completed generation to
// a render callback, so the core stays free of any UI toolkit.
package driver

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lifegrid/lifegrid/model"
)

// Driver controls periodic generation advancement.
type Driver interface {
	Start()
	Stop()
	SetInterval(interval time.Duration)
}

// RenderFunc receives a snapshot of the grid after each advancement. The
// snapshot is pooled and only valid for the duration of the call.
type RenderFunc func(frame *model.Grid)

// Runner drives a grid on a ticker. It is the single caller of
// AdvanceGeneration while running, which satisfies the grid's non-reentrant
// contract; callers must not advance the grid themselves between Start and
// Stop.
type Runner struct {
	grid   *model.Grid
	render RenderFunc
	pool   *model.GridPool

	intervalCh chan time.Duration

	mu       sync.Mutex
	interval time.Duration
	running  bool
	cancel   context.CancelFunc
	eg       *errgroup.Group
}

var _ Driver = (*Runner)(nil)

// NewRunner wires a grid to a render callback with the given starting
// interval. The render callback may be nil for headless advancement.
func NewRunner(grid *model.Grid, render RenderFunc, interval time.Duration) *Runner {
	return &Runner{
		grid:       grid,
		render:     render,
		pool:       model.NewGridPool(),
		interval:   interval,
		intervalCh: make(chan time.Duration, 1),
	}
}

// Start launches the periodic clock. Calling Start on a running Runner is a
// no-op.
func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	eg, ctx := errgroup.WithContext(ctx)
	r.cancel = cancel
	r.eg = eg
	r.running = true

	interval := r.interval
	eg.Go(func() error {
		return r.loop(ctx, interval)
	})
}

// Stop halts the clock and waits for the in-flight tick to finish. Calling
// Stop on a stopped Runner is a no-op. Stop must not be called from inside
// the render callback.
func (r *Runner) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.cancel()
	eg := r.eg
	r.mu.Unlock()

	// The loop never returns an error; Wait is for lifecycle only.
	_ = eg.Wait()
}

// SetInterval changes the time between advances. It takes effect on the next
// tick and also applies to a later Start when the Runner is stopped.
func (r *Runner) SetInterval(interval time.Duration) {
	r.mu.Lock()
	r.interval = interval
	r.mu.Unlock()

	select {
	case r.intervalCh <- interval:
	default:
	}
}

// StepOnce advances the grid a single generation and renders it, for
// on-demand stepping while the clock is stopped.
func (r *Runner) StepOnce() {
	r.step()
}

func (r *Runner) loop(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case next := <-r.intervalCh:
			ticker.Reset(next)
		case <-ticker.C:
			r.step()
		}
	}
}

func (r *Runner) step() {
	r.grid.AdvanceGeneration()
	if r.render == nil {
		return
	}

	frame := r.pool.Get(r.grid.Rows(), r.grid.Columns())
	r.grid.CopyInto(frame)
	r.render(frame)
	model.GridToPool(frame, r.pool)
}
