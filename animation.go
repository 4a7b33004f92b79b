package fader

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Phase is an Animation's position in its lifecycle.
type Phase uint8

const (
	PhaseIdle         Phase = iota // constructed, not started
	PhasePendingDelay              // waiting out the delay; no updates fire
	PhaseActive                    // interpolating
	PhaseComplete                  // reached the end value, complete hook fired
	PhaseStopped                   // cancelled; no further hooks fire
)

func (p Phase) String() string {
	switch p {
	case PhasePendingDelay:
		return "pending-delay"
	case PhaseActive:
		return "active"
	case PhaseComplete:
		return "complete"
	case PhaseStopped:
		return "stopped"
	default:
		return "idle"
	}
}

// AnimationConfig describes one interpolation.
type AnimationConfig struct {
	Start, End Value
	Duration   float64 // seconds; negative is treated as 0
	Delay      float64 // seconds; negative is treated as 0
	Ease       ease.TweenFunc

	OnStart    func()
	OnUpdate   func(v Value, eased, linear float64)
	OnComplete func()

	Diagnostics *Diagnostics
}

// animationIDCounter is a plain counter (no atomic; the engine is single-threaded).
var animationIDCounter uint64

func nextAnimationID() uint64 {
	animationIDCounter++
	return animationIDCounter
}

// Animation interpolates a Value from Start to End after an optional delay,
// driven by Clock ticks. Eased progress comes from a gween.Tween running
// over [0, 1].
type Animation struct {
	id    uint64
	cfg   AnimationConfig
	tween *gween.Tween
	clock *Clock
	diag  *Diagnostics

	phase        Phase
	started      bool
	delayElapsed float64
	elapsed      float64
	current      Value
}

// NewAnimation builds an animation. Call Start to run it.
func NewAnimation(cfg AnimationConfig) *Animation {
	if cfg.Duration < 0 {
		cfg.Duration = 0
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	if cfg.Ease == nil {
		cfg.Ease = ease.Linear
	}
	if cfg.Start.Kind != cfg.End.Kind {
		cfg.Diagnostics.Warnf("animation start %v and end %v differ in shape, using %s", cfg.Start, cfg.End, cfg.End.Kind)
		cfg.Start = cfg.Start.As(cfg.End.Kind)
	}
	a := &Animation{
		id:      nextAnimationID(),
		cfg:     cfg,
		diag:    cfg.Diagnostics,
		current: cfg.Start,
	}
	if cfg.Duration > 0 {
		a.tween = gween.New(0, 1, float32(cfg.Duration), cfg.Ease)
	}
	return a
}

// ID returns the animation's diagnostic identifier. IDs increase
// monotonically within a process.
func (a *Animation) ID() uint64 { return a.id }

// Phase returns the current phase.
func (a *Animation) Phase() Phase { return a.phase }

// Started reports whether the start hook has fired.
func (a *Animation) Started() bool { return a.started }

// Done reports whether the animation completed or was stopped.
func (a *Animation) Done() bool {
	return a.phase == PhaseComplete || a.phase == PhaseStopped
}

// Value returns the most recently computed value.
func (a *Animation) Value() Value { return a.current }

// StartValue returns the value interpolation begins from.
func (a *Animation) StartValue() Value { return a.cfg.Start }

// EndValue returns the value interpolation ends at.
func (a *Animation) EndValue() Value { return a.cfg.End }

// Duration returns the active-phase length in seconds.
func (a *Animation) Duration() float64 { return a.cfg.Duration }

// Delay returns the delay in seconds.
func (a *Animation) Delay() float64 { return a.cfg.Delay }

// SetStart replaces the start value. Used from the start hook to pick up
// changes made to the target while the animation was delayed.
func (a *Animation) SetStart(v Value) {
	if v.Kind != a.cfg.End.Kind {
		v = v.As(a.cfg.End.Kind)
	}
	a.cfg.Start = v
	if !a.started || a.elapsed == 0 {
		a.current = v
	}
}

// Start runs the animation on clock. With zero delay and zero duration the
// start, update (progress 1) and complete hooks fire synchronously and the
// animation never registers with the clock.
func (a *Animation) Start(clock *Clock) {
	if a.phase != PhaseIdle {
		return
	}
	a.diag.Debugf("animation #%d from %v to %v, time %g, delay %g", a.id, a.cfg.Start, a.cfg.End, a.cfg.Duration, a.cfg.Delay)

	if a.cfg.Delay == 0 && a.cfg.Duration == 0 {
		a.phase = PhaseActive
		a.fireStart()
		if a.phase == PhaseStopped {
			return
		}
		a.current = a.cfg.End
		if a.cfg.OnUpdate != nil {
			a.cfg.OnUpdate(a.current, 1, 1)
		}
		if a.phase == PhaseStopped {
			return
		}
		a.finish()
		return
	}

	if a.cfg.Delay > 0 {
		a.phase = PhasePendingDelay
	} else {
		a.phase = PhaseActive
	}
	a.clock = clock
	clock.Register(a)
}

// Tick advances the animation by dt seconds. Implements Tickable.
func (a *Animation) Tick(dt float64) {
	switch a.phase {
	case PhasePendingDelay:
		a.delayElapsed += dt
		if a.delayElapsed >= a.cfg.Delay {
			a.phase = PhaseActive
			a.fireStart()
		}
		return
	case PhaseActive:
	default:
		return
	}

	if !a.started {
		a.fireStart()
		if a.phase != PhaseActive {
			return
		}
	}

	a.elapsed += dt
	linear, eased := 1.0, 1.0
	if a.cfg.Duration > 0 {
		linear = min(a.elapsed/a.cfg.Duration, 1)
		e, _ := a.tween.Set(float32(a.elapsed))
		eased = float64(e)
	}
	if linear >= 1 {
		eased = 1
		a.current = a.cfg.End
	} else {
		a.current = Lerp(a.cfg.Start, a.cfg.End, eased)
	}

	if a.cfg.OnUpdate != nil {
		a.cfg.OnUpdate(a.current, eased, linear)
	}
	if a.phase != PhaseActive {
		return
	}
	if linear >= 1 {
		a.finish()
	}
}

// Stop cancels the animation. No hook fires afterwards. Stopping a finished
// animation is a no-op.
func (a *Animation) Stop() {
	if a.Done() {
		return
	}
	a.diag.Debugf("animation #%d stopped in phase %s", a.id, a.phase)
	a.phase = PhaseStopped
	a.unregister()
}

func (a *Animation) fireStart() {
	a.started = true
	if a.cfg.OnStart != nil {
		a.cfg.OnStart()
	}
}

func (a *Animation) finish() {
	a.unregister()
	a.phase = PhaseComplete
	a.diag.Debugf("animation #%d complete", a.id)
	if a.cfg.OnComplete != nil {
		a.cfg.OnComplete()
	}
}

func (a *Animation) unregister() {
	if a.clock != nil {
		a.clock.Unregister(a)
		a.clock = nil
	}
}
