// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package feed

import (
	"context"
	"sync"
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/errors"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/log"
)

const (
	DefaultTickInterval = time.Second

	minPeriod = 10 * time.Millisecond
)

type DriverState int

const (
	DriverIdle DriverState = iota
	DriverRunning
	DriverStopped
)

func (s DriverState) String() string {
	switch s {
	case DriverIdle:
		return "idle"
	case DriverRunning:
		return "running"
	case DriverStopped:
		return "stopped"
	}
	return "unknown"
}

type TickFunc func(ctx context.Context, now time.Time)

type DriverOption func(d *Driver)

// WithJitter offsets the period by a random amount in [-max, max], drawn once at Start.
func WithJitter(max time.Duration) DriverOption {
	return func(d *Driver) {
		if max < 0 {
			max = -max
		}
		d.jitter = max
	}
}

func WithDriverRand(rng RandSource) DriverOption {
	return func(d *Driver) {
		d.rng = orDefault(rng)
	}
}

// Driver runs a tick function on a fixed period until stopped. Ticks of one driver never overlap.
// A stopped driver cannot be restarted.
type Driver struct {
	name     string
	interval time.Duration
	jitter   time.Duration
	tick     TickFunc
	rng      RandSource

	mu     sync.Mutex
	state  DriverState
	period time.Duration
	cancel context.CancelFunc
	done   chan struct{}
}

func NewDriver(name string, interval time.Duration, tick TickFunc, opts ...DriverOption) *Driver {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	d := &Driver{
		name:     name,
		interval: interval,
		tick:     tick,
		rng:      defaultSource,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) State() DriverState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Period is the effective interval chosen at Start, zero before that.
func (d *Driver) Period() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.period
}

func (d *Driver) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch d.state {
	case DriverRunning:
		return nil
	case DriverStopped:
		return errors.NewError().
			WithCode(errors.InvalidOperation).
			WithMessagef("driver %s already stopped", d.name)
	}

	period := d.interval
	if d.jitter > 0 {
		period += time.Duration((d.rng.Float64()*2 - 1) * float64(d.jitter))
	}
	if period < minPeriod {
		period = minPeriod
	}
	runCtx, cancel := context.WithCancel(ctx)
	d.period = period
	d.cancel = cancel
	d.done = make(chan struct{})
	d.state = DriverRunning
	feedRunningDrivers.Inc()

	go d.loop(runCtx, period, d.done)
	log.Debugf("feed driver %s started with period %s", d.name, period)
	return nil
}

func (d *Driver) loop(ctx context.Context, period time.Duration, done chan struct{}) {
	ticker := time.NewTicker(period)
	defer func() {
		ticker.Stop()
		d.mu.Lock()
		d.state = DriverStopped
		d.mu.Unlock()
		feedRunningDrivers.Dec()
		close(done)
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			d.tick(ctx, now)
			feedTicksTotal.WithLabelValues(d.name).Inc()
		}
	}
}

// Stop cancels the schedule and waits for an in-flight tick. It must not be called from the tick itself.
func (d *Driver) Stop() {
	d.mu.Lock()
	if d.state == DriverIdle {
		d.state = DriverStopped
		d.mu.Unlock()
		return
	}
	cancel, done := d.cancel, d.done
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// Done is closed once the loop has exited. Nil before Start.
func (d *Driver) Done() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.done
}
