// Package session implements the exercise session: the hysteresis
// counter and state machine that turn a stream of pose-match signals
// into a timed hold, success events, and round/set progression, plus
// the scheduling engine and timer animation around them.
package session

import "github.com/kanit-labs/fingerfit/internal/pose"

// Phase is the session lifecycle stage. Countdown and Active are
// mutually exclusive by construction.
type Phase int

const (
	// PhaseIdle: not running, no countdown pending.
	PhaseIdle Phase = iota
	// PhaseCountdown: pre-start warmup; purely time-driven, match
	// signals only feed the stability counter.
	PhaseCountdown
	// PhaseActive: the hold timer decrements while the pose is stable.
	PhaseActive
)

// Config carries the session parameters. Zero values are replaced by
// the defaults below.
type Config struct {
	HoldSeconds      int // seconds a pose must be held (time budget per pose)
	CountdownSeconds int // warmup countdown before the first hold
	Stability        int // consecutive matches required before the timer moves
	PosesPerRound    int
	RoundsPerSet     int
}

// DefaultConfig returns the standard exercise parameters.
func DefaultConfig() Config {
	return Config{
		HoldSeconds:      5,
		CountdownSeconds: 2,
		Stability:        5,
		PosesPerRound:    pose.PoseCount,
		RoundsPerSet:     10,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.HoldSeconds <= 0 {
		c.HoldSeconds = d.HoldSeconds
	}
	if c.CountdownSeconds <= 0 {
		c.CountdownSeconds = d.CountdownSeconds
	}
	if c.Stability <= 0 {
		c.Stability = d.Stability
	}
	if c.PosesPerRound <= 0 {
		c.PosesPerRound = d.PosesPerRound
	}
	if c.RoundsPerSet <= 0 {
		c.RoundsPerSet = d.RoundsPerSet
	}
	return c
}

// State is the complete session state. It is owned by the scheduling
// loop; everyone else sees read-only snapshots.
type State struct {
	Phase         Phase
	Pose          int // 1-based, wraps to 1 after the last pose
	Round         int
	Set           int
	TimeRemaining int
	Stability     int

	// pendingSuccess latches the zero-crossing of TimeRemaining so the
	// success transition fires exactly once per cycle, even if the
	// scheduler delivers a stray extra success event.
	pendingSuccess bool
}

// NewState returns the initial state for a session.
func NewState(cfg Config) State {
	cfg = cfg.withDefaults()
	return State{
		Phase:         PhaseIdle,
		Pose:          1,
		TimeRemaining: cfg.HoldSeconds,
	}
}

// Event is an input to the state machine.
type Event interface{ isEvent() }

// MatchEvent carries one classifier result, at sensor rate.
type MatchEvent struct{ Matched bool }

// TickEvent is the 1 Hz decision tick.
type TickEvent struct{}

// CountdownDoneEvent fires when the warmup countdown elapses.
type CountdownDoneEvent struct{}

// SuccessEvent fires after the zero-crossing settle delay.
type SuccessEvent struct{}

// StartEvent arms the session (begins the countdown).
type StartEvent struct{}

// StopEvent halts the session, keeping counters.
type StopEvent struct{}

// ResetEvent halts the session and restores all counters to defaults.
type ResetEvent struct{}

func (MatchEvent) isEvent()         {}
func (TickEvent) isEvent()          {}
func (CountdownDoneEvent) isEvent() {}
func (SuccessEvent) isEvent()       {}
func (StartEvent) isEvent()         {}
func (StopEvent) isEvent()          {}
func (ResetEvent) isEvent()         {}

// Effect is a side effect requested by a transition. The scheduling
// loop executes effects; Step itself stays pure.
type Effect interface{ isEffect() }

// EffectStartCountdown begins the warmup countdown.
type EffectStartCountdown struct{ Seconds int }

// EffectCancelCountdown cancels a pending countdown, if any.
type EffectCancelCountdown struct{}

// EffectTimerChanged animates the hold timer from one value to the next.
type EffectTimerChanged struct{ From, To int }

// EffectTimerReset snaps the timer display to a full hold budget.
type EffectTimerReset struct{ Seconds int }

// EffectScheduleSuccess schedules the success event one animation
// cycle after the zero-crossing, letting the final decrement settle.
type EffectScheduleSuccess struct{}

// EffectLogSuccess appends a history event. Counters are the values at
// success time, before advancing.
type EffectLogSuccess struct {
	Pose     int
	Set      int
	Round    int
	PoseName string
}

// EffectPoseChanged publishes the new active pose and counters.
type EffectPoseChanged struct {
	Pose  int
	Round int
	Set   int
}

func (EffectStartCountdown) isEffect()  {}
func (EffectCancelCountdown) isEffect() {}
func (EffectTimerChanged) isEffect()    {}
func (EffectTimerReset) isEffect()      {}
func (EffectScheduleSuccess) isEffect() {}
func (EffectLogSuccess) isEffect()      {}
func (EffectPoseChanged) isEffect()     {}

// Step applies one event to the state and returns the next state plus
// the effects the scheduler must execute. Pure: no clock, no I/O.
func Step(cfg Config, s State, ev Event) (State, []Effect) {
	cfg = cfg.withDefaults()

	switch ev := ev.(type) {
	case MatchEvent:
		if ev.Matched {
			if s.Stability < cfg.Stability {
				s.Stability++
			}
		} else {
			// Strict reset: one miss cancels all accumulated stability.
			s.Stability = 0
		}
		return s, nil

	case StartEvent:
		if s.Phase != PhaseIdle {
			return s, nil
		}
		s.Phase = PhaseCountdown
		return s, []Effect{EffectStartCountdown{Seconds: cfg.CountdownSeconds}}

	case CountdownDoneEvent:
		if s.Phase != PhaseCountdown {
			return s, nil
		}
		s.Phase = PhaseActive
		return s, nil

	case TickEvent:
		if s.Phase != PhaseActive || s.pendingSuccess {
			return s, nil
		}
		if s.Stability != cfg.Stability || s.TimeRemaining <= 0 {
			return s, nil
		}
		from := s.TimeRemaining
		s.TimeRemaining--
		effects := []Effect{EffectTimerChanged{From: from, To: s.TimeRemaining}}
		if s.TimeRemaining <= 0 {
			s.pendingSuccess = true
			effects = append(effects, EffectScheduleSuccess{})
		}
		return s, effects

	case SuccessEvent:
		// Exactly-once guard: ignore anything but the latched
		// zero-crossing.
		if !s.pendingSuccess || s.TimeRemaining > 0 {
			return s, nil
		}
		s.pendingSuccess = false

		done := pose.ByIndex(s.Pose)
		effects := []Effect{EffectLogSuccess{
			Pose:     s.Pose,
			Set:      s.Set,
			Round:    s.Round,
			PoseName: done.Name,
		}}

		s.Pose++
		if s.Pose > cfg.PosesPerRound {
			s.Pose = 1
			s.Round++
			if s.Round >= cfg.RoundsPerSet {
				s.Round = 0
				s.Set++
			}
		}
		s.TimeRemaining = cfg.HoldSeconds
		s.Stability = 0

		effects = append(effects,
			EffectPoseChanged{Pose: s.Pose, Round: s.Round, Set: s.Set},
			EffectTimerReset{Seconds: cfg.HoldSeconds},
		)
		return s, effects

	case StopEvent:
		s.Phase = PhaseIdle
		s.pendingSuccess = false
		return s, []Effect{EffectCancelCountdown{}}

	case ResetEvent:
		s = NewState(cfg)
		return s, []Effect{
			EffectCancelCountdown{},
			EffectPoseChanged{Pose: s.Pose, Round: s.Round, Set: s.Set},
			EffectTimerReset{Seconds: cfg.HoldSeconds},
		}
	}

	return s, nil
}
