package session

import "testing"

func step(t *testing.T, cfg Config, s State, evs ...Event) (State, []Effect) {
	t.Helper()
	var effects []Effect
	for _, ev := range evs {
		var out []Effect
		s, out = Step(cfg, s, ev)
		effects = append(effects, out...)
	}
	return s, effects
}

// holdOneSecond walks the state through five matches and one tick.
func holdOneSecond(t *testing.T, cfg Config, s State) (State, []Effect) {
	t.Helper()
	for i := 0; i < cfg.Stability; i++ {
		s, _ = Step(cfg, s, MatchEvent{Matched: true})
	}
	return Step(cfg, s, TickEvent{})
}

// completePose drives a state in PhaseActive through one full hold and
// its success event.
func completePose(t *testing.T, cfg Config, s State) State {
	t.Helper()
	for s.TimeRemaining > 0 {
		s, _ = holdOneSecond(t, cfg, s)
	}
	s, _ = Step(cfg, s, SuccessEvent{})
	return s
}

func activeState(cfg Config) State {
	s := NewState(cfg)
	s, _ = Step(cfg, s, StartEvent{})
	s, _ = Step(cfg, s, CountdownDoneEvent{})
	return s
}

func TestStability_RequiresConsecutiveMatches(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(cfg)

	for i := 1; i <= 7; i++ {
		s, _ = Step(cfg, s, MatchEvent{Matched: true})
		want := i
		if want > cfg.Stability {
			want = cfg.Stability
		}
		if s.Stability != want {
			t.Fatalf("after %d matches: stability = %d, want %d", i, s.Stability, want)
		}
	}
}

func TestStability_SingleMissResetsToZero(t *testing.T) {
	cfg := DefaultConfig()
	for _, prior := range []int{1, 3, 5} {
		s := NewState(cfg)
		for i := 0; i < prior; i++ {
			s, _ = Step(cfg, s, MatchEvent{Matched: true})
		}
		s, _ = Step(cfg, s, MatchEvent{Matched: false})
		if s.Stability != 0 {
			t.Errorf("after miss with prior count %d: stability = %d, want 0", prior, s.Stability)
		}
	}
}

func TestTick_OnlyDecrementsWhenStableAndActive(t *testing.T) {
	cfg := DefaultConfig()

	// Idle: tick does nothing even at full stability.
	s := NewState(cfg)
	for i := 0; i < cfg.Stability; i++ {
		s, _ = Step(cfg, s, MatchEvent{Matched: true})
	}
	s, _ = Step(cfg, s, TickEvent{})
	if s.TimeRemaining != cfg.HoldSeconds {
		t.Errorf("idle tick decremented timer to %d", s.TimeRemaining)
	}

	// Countdown ignores the match signal for timing.
	s, _ = Step(cfg, s, StartEvent{})
	s, _ = Step(cfg, s, TickEvent{})
	if s.TimeRemaining != cfg.HoldSeconds {
		t.Errorf("countdown tick decremented timer to %d", s.TimeRemaining)
	}

	// Active but below the stability threshold: no decrement.
	s, _ = Step(cfg, s, CountdownDoneEvent{})
	s, _ = Step(cfg, s, MatchEvent{Matched: false})
	s, _ = Step(cfg, s, TickEvent{})
	if s.TimeRemaining != cfg.HoldSeconds {
		t.Errorf("unstable tick decremented timer to %d", s.TimeRemaining)
	}

	// Active and stable: exactly one decrement per tick.
	for i := 0; i < cfg.Stability; i++ {
		s, _ = Step(cfg, s, MatchEvent{Matched: true})
	}
	s, _ = Step(cfg, s, TickEvent{})
	if s.TimeRemaining != cfg.HoldSeconds-1 {
		t.Errorf("stable tick: timeRemaining = %d, want %d", s.TimeRemaining, cfg.HoldSeconds-1)
	}
}

func TestTimer_NeverGoesBelowZero(t *testing.T) {
	cfg := DefaultConfig()
	s := activeState(cfg)
	for i := 0; i < cfg.HoldSeconds+3; i++ {
		s, _ = holdOneSecond(t, cfg, s)
	}
	if s.TimeRemaining != 0 {
		t.Errorf("timeRemaining = %d, want 0", s.TimeRemaining)
	}
}

func TestZeroCrossing_SchedulesSuccessOnce(t *testing.T) {
	cfg := DefaultConfig()
	s := activeState(cfg)

	var scheduled int
	for i := 0; i < cfg.HoldSeconds+3; i++ {
		var effects []Effect
		s, effects = holdOneSecond(t, cfg, s)
		for _, eff := range effects {
			if _, ok := eff.(EffectScheduleSuccess); ok {
				scheduled++
			}
		}
	}
	if scheduled != 1 {
		t.Errorf("success scheduled %d times, want 1", scheduled)
	}
}

func TestSuccess_FiresExactlyOncePerCycle(t *testing.T) {
	cfg := DefaultConfig()
	s := activeState(cfg)
	for s.TimeRemaining > 0 {
		s, _ = holdOneSecond(t, cfg, s)
	}

	s, effects := Step(cfg, s, SuccessEvent{})
	var logged int
	for _, eff := range effects {
		if _, ok := eff.(EffectLogSuccess); ok {
			logged++
		}
	}
	if logged != 1 {
		t.Fatalf("first success produced %d log effects, want 1", logged)
	}
	if s.Pose != 2 {
		t.Errorf("pose = %d after success, want 2", s.Pose)
	}

	// A stray duplicate success event must be a no-op.
	before := s
	s, effects = Step(cfg, s, SuccessEvent{})
	if len(effects) != 0 || s != before {
		t.Error("duplicate success event was not ignored")
	}
}

func TestSuccess_SpuriousEventWithTimeLeftIgnored(t *testing.T) {
	cfg := DefaultConfig()
	s := activeState(cfg)
	before := s
	s, effects := Step(cfg, s, SuccessEvent{})
	if len(effects) != 0 || s != before {
		t.Error("success event with time remaining was not ignored")
	}
}

func TestSuccess_ResetsTimerAndStability(t *testing.T) {
	cfg := DefaultConfig()
	s := completePose(t, cfg, activeState(cfg))
	if s.TimeRemaining != cfg.HoldSeconds {
		t.Errorf("timeRemaining = %d, want %d", s.TimeRemaining, cfg.HoldSeconds)
	}
	if s.Stability != 0 {
		t.Errorf("stability = %d, want 0", s.Stability)
	}
}

func TestSuccess_LogCarriesPreAdvanceCounters(t *testing.T) {
	cfg := DefaultConfig()
	s := activeState(cfg)
	s.Pose = 5
	s.Round = 9
	s.Set = 0
	for s.TimeRemaining > 0 {
		s, _ = holdOneSecond(t, cfg, s)
	}
	_, effects := Step(cfg, s, SuccessEvent{})

	found := false
	for _, eff := range effects {
		if log, ok := eff.(EffectLogSuccess); ok {
			found = true
			if log.Set != 0 || log.Round != 9 || log.Pose != 5 {
				t.Errorf("log effect = %+v, want pre-advance counters set=0 round=9 pose=5", log)
			}
		}
	}
	if !found {
		t.Fatal("no log effect emitted")
	}
}

func TestAdvance_WrapsPoseRoundAndSet(t *testing.T) {
	cfg := DefaultConfig()

	// Pose 5 -> 1 bumps the round.
	s := activeState(cfg)
	s.Pose = 5
	s.Round = 3
	s = completePose(t, cfg, s)
	if s.Pose != 1 || s.Round != 4 || s.Set != 0 {
		t.Errorf("after pose-5 success: pose=%d round=%d set=%d, want 1/4/0", s.Pose, s.Round, s.Set)
	}

	// Round 9 completing wraps to round 0 and bumps the set.
	s = activeState(cfg)
	s.Pose = 5
	s.Round = 9
	s.Set = 0
	s = completePose(t, cfg, s)
	if s.Pose != 1 || s.Round != 0 || s.Set != 1 {
		t.Errorf("after round-10 success: pose=%d round=%d set=%d, want 1/0/1", s.Pose, s.Round, s.Set)
	}
}

func TestFullRound_LogsAllFivePoses(t *testing.T) {
	cfg := DefaultConfig()
	s := activeState(cfg)

	var names []string
	for i := 0; i < cfg.PosesPerRound; i++ {
		for s.TimeRemaining > 0 {
			s, _ = holdOneSecond(t, cfg, s)
		}
		var effects []Effect
		s, effects = Step(cfg, s, SuccessEvent{})
		for _, eff := range effects {
			if log, ok := eff.(EffectLogSuccess); ok {
				names = append(names, log.PoseName)
			}
		}
	}

	if len(names) != cfg.PosesPerRound {
		t.Fatalf("logged %d poses, want %d", len(names), cfg.PosesPerRound)
	}
	if s.Round != 1 {
		t.Errorf("round = %d after full round, want 1", s.Round)
	}
}

func TestStart_OnlyFromIdle(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(cfg)

	s, effects := Step(cfg, s, StartEvent{})
	if s.Phase != PhaseCountdown {
		t.Fatalf("phase = %v after start, want countdown", s.Phase)
	}
	if len(effects) != 1 {
		t.Fatalf("start produced %d effects, want 1", len(effects))
	}
	if cd, ok := effects[0].(EffectStartCountdown); !ok || cd.Seconds != cfg.CountdownSeconds {
		t.Errorf("start effect = %+v, want countdown of %d s", effects[0], cfg.CountdownSeconds)
	}

	// Start while counting down or active is a no-op.
	before := s
	s, effects = Step(cfg, s, StartEvent{})
	if len(effects) != 0 || s != before {
		t.Error("start during countdown was not ignored")
	}
}

func TestStop_KeepsCountersAndCancelsPendingSuccess(t *testing.T) {
	cfg := DefaultConfig()
	s := activeState(cfg)
	s.Round = 2
	s.Set = 1
	for s.TimeRemaining > 0 {
		s, _ = holdOneSecond(t, cfg, s)
	}

	s, _ = Step(cfg, s, StopEvent{})
	if s.Phase != PhaseIdle {
		t.Errorf("phase = %v after stop, want idle", s.Phase)
	}
	if s.Round != 2 || s.Set != 1 {
		t.Errorf("stop changed counters: round=%d set=%d", s.Round, s.Set)
	}

	// The latched success must not fire after stop.
	before := s
	s, effects := Step(cfg, s, SuccessEvent{})
	if len(effects) != 0 || s != before {
		t.Error("success fired after stop")
	}
}

func TestReset_RestoresDefaults(t *testing.T) {
	cfg := DefaultConfig()
	s := activeState(cfg)
	s.Pose = 4
	s.Round = 7
	s.Set = 2
	s.TimeRemaining = 1
	s.Stability = 3

	s, _ = Step(cfg, s, ResetEvent{})
	want := NewState(cfg)
	if s != want {
		t.Errorf("reset state = %+v, want %+v", s, want)
	}
}
