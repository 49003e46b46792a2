package session

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/kanit-labs/fingerfit/internal/pose"
)

// EventWriter appends success events to the history log. Writes are
// best-effort: a failed write is reported, never fatal.
type EventWriter interface {
	Append(at time.Time, set, round int, poseName string) error
}

// Engine is the scheduling loop. It is the single writer of the
// session State: match results arrive over a bounded channel from the
// sampling goroutine, commands over another, and the decision and
// animation ticks are owned here. Nothing in the engine blocks on the
// producer, and no lock guards the state.
type Engine struct {
	cfg  Config
	sink Sink
	log  EventWriter

	// OnLogError receives history write failures. Optional.
	OnLogError func(error)

	state    State
	samples  chan bool
	commands chan Event

	active   atomic.Pointer[pose.Definition]
	snapshot atomic.Pointer[State]

	holdAnim     Animation
	cdAnim       Animation
	countdownEnd time.Time
	successAt    time.Time

	// tick is the decision interval (one logical second); frame is the
	// animation refresh; cycle is one decrement animation. Tests
	// compress these.
	tick  time.Duration
	frame time.Duration
	cycle time.Duration
}

// NewEngine creates an Engine. sink must be non-nil; log may be nil to
// run without history.
func NewEngine(cfg Config, sink Sink, log EventWriter) *Engine {
	cfg = cfg.withDefaults()
	if sink == nil {
		sink = NopSink{}
	}
	e := &Engine{
		cfg:      cfg,
		sink:     sink,
		log:      log,
		state:    NewState(cfg),
		samples:  make(chan bool, 8),
		commands: make(chan Event, 4),
		tick:     time.Second,
		frame:    FrameInterval,
		cycle:    AnimationCycle,
	}
	e.publish()
	return e
}

// Run drives the scheduling loop until ctx is cancelled. All State
// mutation happens on this goroutine.
func (e *Engine) Run(ctx context.Context) error {
	decide := time.NewTicker(e.tick)
	defer decide.Stop()
	frames := time.NewTicker(e.frame)
	defer frames.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case matched := <-e.samples:
			e.dispatch(MatchEvent{Matched: matched})
		case ev := <-e.commands:
			e.dispatch(ev)
		case <-decide.C:
			e.dispatch(TickEvent{})
		case now := <-frames.C:
			e.animate(now)
		}
	}
}

// RunSampler consumes the source, classifies each sample against the
// currently active pose, and hands the result to the scheduling loop.
// When the loop is busy the result is dropped rather than blocking the
// producer. Returns nil when the source is exhausted.
func (e *Engine) RunSampler(ctx context.Context, src Source) error {
	for {
		sample, ok := src.Next(ctx)
		if !ok {
			if err := ctx.Err(); err != nil {
				return err
			}
			return nil
		}
		matched := pose.Classify(e.ActivePose(), sample)
		select {
		case e.samples <- matched:
		default:
		}
	}
}

// Start arms the session (warmup countdown, then the hold timer).
func (e *Engine) Start() { e.commands <- StartEvent{} }

// Stop halts the session, keeping counters.
func (e *Engine) Stop() { e.commands <- StopEvent{} }

// Reset halts the session and restores all counters.
func (e *Engine) Reset() { e.commands <- ResetEvent{} }

// ActivePose returns the pose the sampler should classify against.
// Safe to call from any goroutine.
func (e *Engine) ActivePose() pose.Definition {
	if p := e.active.Load(); p != nil {
		return *p
	}
	return pose.ByIndex(1)
}

// Snapshot returns a copy of the most recently published state. Safe
// to call from any goroutine.
func (e *Engine) Snapshot() State {
	return *e.snapshot.Load()
}

// dispatch applies one event through the pure transition and executes
// the resulting effects.
func (e *Engine) dispatch(ev Event) {
	next, effects := Step(e.cfg, e.state, ev)
	e.state = next
	e.publish()
	now := time.Now()
	for _, eff := range effects {
		e.apply(eff, now)
	}
}

func (e *Engine) apply(eff Effect, now time.Time) {
	switch eff := eff.(type) {
	case EffectStartCountdown:
		d := time.Duration(eff.Seconds) * e.tick
		e.countdownEnd = now.Add(d)
		e.cdAnim.Start(now, 1, 0, eff.Seconds, 0, d)

	case EffectCancelCountdown:
		// Stop and reset cancel every pending timer synchronously so
		// no stale callback can resurrect the session.
		e.countdownEnd = time.Time{}
		e.successAt = time.Time{}
		e.cdAnim.Cancel()
		e.holdAnim.Cancel()
		e.sink.TimerFrame(e.state.TimeRemaining, holdFraction(e.state.TimeRemaining, e.cfg.HoldSeconds))

	case EffectTimerChanged:
		e.holdAnim.Start(now,
			holdFraction(eff.From, e.cfg.HoldSeconds),
			holdFraction(eff.To, e.cfg.HoldSeconds),
			eff.From, eff.To, e.cycle)

	case EffectTimerReset:
		e.holdAnim.Cancel()
		e.sink.TimerFrame(eff.Seconds, holdFraction(eff.Seconds, e.cfg.HoldSeconds))

	case EffectScheduleSuccess:
		// Let the final decrement animation settle before the success
		// transition runs.
		e.successAt = now.Add(e.cycle + e.frame)

	case EffectLogSuccess:
		if e.log != nil {
			if err := e.log.Append(now, eff.Set, eff.Round, eff.PoseName); err != nil && e.OnLogError != nil {
				e.OnLogError(err)
			}
		}
		e.sink.Success(pose.ByIndex(eff.Pose), eff.Round, eff.Set)

	case EffectPoseChanged:
		def := pose.ByIndex(eff.Pose)
		e.active.Store(&def)
		e.sink.PoseChanged(def, eff.Round, eff.Set)
	}
}

// animate services the countdown and hold-timer interpolations and the
// pending success deadline on every frame tick.
func (e *Engine) animate(now time.Time) {
	if !e.countdownEnd.IsZero() {
		if f, ok := e.cdAnim.Frame(now); ok {
			e.sink.CountdownFrame(f.Seconds, f.Fraction)
		}
		if !now.Before(e.countdownEnd) {
			e.countdownEnd = time.Time{}
			e.cdAnim.Cancel()
			e.dispatch(CountdownDoneEvent{})
			e.sink.TimerFrame(e.state.TimeRemaining, holdFraction(e.state.TimeRemaining, e.cfg.HoldSeconds))
		}
	}

	if f, ok := e.holdAnim.Frame(now); ok {
		e.sink.TimerFrame(f.Seconds, f.Fraction)
	}

	if !e.successAt.IsZero() && !now.Before(e.successAt) {
		e.successAt = time.Time{}
		e.dispatch(SuccessEvent{})
	}
}

func (e *Engine) publish() {
	s := e.state
	e.snapshot.Store(&s)

	// First publish seeds the active pose for the sampler.
	if e.active.Load() == nil {
		def := pose.ByIndex(s.Pose)
		e.active.Store(&def)
	}
}
