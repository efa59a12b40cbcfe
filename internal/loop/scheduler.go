package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// InputSource supplies the events that arrived since the previous frame.
// Poll must not block; events come back in arrival order, each one once.
type InputSource interface {
	Poll() []core.Event
}

// Handler receives the per-frame callbacks in a fixed order: HandleEvent
// for each polled event, Update with the elapsed simulation time, then
// Render. Input observed in an iteration is always fully applied before
// that iteration renders.
type Handler interface {
	HandleEvent(ev core.Event)
	Update(dt time.Duration)
	Render()
}

// Options configures a Scheduler.
type Options struct {
	// TargetFPS defines the frame budget, time.Second / TargetFPS.
	// New rejects values <= 0.
	TargetFPS int
	// CapUpper delays after fast frames so iterations never start sooner
	// than one budget apart.
	CapUpper bool
	// CapLower skips simulation and render on frames that arrive more
	// than one budget late, keeping the loop responsive instead of
	// feeding games an oversized dt.
	CapLower bool
	// Clock defaults to SystemClock when nil.
	Clock Clock
}

// Scheduler runs the frame loop: poll input, advance the simulation by
// real elapsed time, render, and hold the frame rate inside the
// configured caps. Delay is the only blocking point; everything else is
// synchronous on the caller's goroutine.
type Scheduler struct {
	input    InputSource
	handler  Handler
	clock    Clock
	budget   time.Duration
	capUpper bool
	capLower bool

	fps      FPSEstimator
	lastStep time.Time
	quit     bool
	frames   uint64
	skips    uint64
}

// New validates opts and builds a Scheduler. A non-positive TargetFPS is
// a configuration mistake surfaced here, not a runtime condition.
func New(input InputSource, handler Handler, opts Options) (*Scheduler, error) {
	if opts.TargetFPS <= 0 {
		return nil, fmt.Errorf("loop: target fps must be positive, got %d", opts.TargetFPS)
	}
	if input == nil || handler == nil {
		return nil, errors.New("loop: input source and handler are required")
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{
		input:    input,
		handler:  handler,
		clock:    clock,
		budget:   time.Second / time.Duration(opts.TargetFPS),
		capUpper: opts.CapUpper,
		capLower: opts.CapLower,
	}, nil
}

// Frame runs one iteration without sleeping and returns how long the
// caller should wait before the next one. running turns false once a quit
// event from an earlier iteration takes effect; after that no callbacks
// fire. The iteration that receives the quit event still completes, so an
// in-flight animation step and its render are never cut short.
func (s *Scheduler) Frame() (wait time.Duration, running bool) {
	if s.quit {
		return 0, false
	}

	start := s.clock.Now()
	for _, ev := range s.input.Poll() {
		if ev.Kind == core.EventQuit {
			s.quit = true
		}
		s.handler.HandleEvent(ev)
	}

	if s.lastStep.IsZero() {
		s.lastStep = start // first iteration simulates dt = 0
	}
	delta := start.Sub(s.lastStep)

	// Late frame: skip the expensive callbacks and drop the backlog by
	// resyncing lastStep, so one slow frame costs one skip instead of a
	// skip loop. The lost time is simply not simulated.
	if s.capLower && delta > s.budget {
		s.lastStep = start
		s.skips++
		s.fps.Record(s.clock.Now().Sub(start))
		return 0, true
	}

	s.handler.Update(delta)
	s.lastStep = start
	s.handler.Render()
	s.frames++

	elapsed := s.clock.Now().Sub(start)
	s.fps.Record(elapsed)

	if s.capUpper && elapsed < s.budget {
		wait = s.budget - elapsed
	}
	return wait, true
}

// Step runs one iteration and performs the upper-cap delay itself.
// It reports false once the loop has terminated.
func (s *Scheduler) Step() bool {
	wait, running := s.Frame()
	if !running {
		return false
	}
	if wait > 0 {
		s.clock.Delay(wait)
	}
	return true
}

// Run drives Step until a quit event terminates the loop or ctx is done.
// A quit returns nil; cancellation returns the context's error.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if !s.Step() {
			return nil
		}
	}
}

// FPS returns the estimator's current frames-per-second value.
func (s *Scheduler) FPS() int {
	return s.fps.Current()
}

// Frames returns the number of fully simulated and rendered iterations.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Skips returns the number of iterations dropped by the lower cap.
func (s *Scheduler) Skips() uint64 {
	return s.skips
}
