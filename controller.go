package fader

// DirectionSettings configure how a fader shows (In) or hides (Out).
type DirectionSettings struct {
	Mode      Mode
	Time      float64 // default duration in seconds
	Alpha     float64 // fade target
	Scale     Vec3    // scale target
	Rect      Rect    // slide target; only Left and Right are applied
	Easing    Easing
	Recursive bool     // fade: also write every descendant
	Locality  Locality // scale: local or world space
}

// DefaultInSettings returns the show settings used when none are given:
// a 0.75s QuadraticOut fade to alpha 1.
func DefaultInSettings() DirectionSettings {
	return DirectionSettings{
		Mode:   ModeFade,
		Time:   0.75,
		Alpha:  1,
		Scale:  Vec3One,
		Rect:   RectFull,
		Easing: DefaultEasing,
	}
}

// DefaultOutSettings returns the hide settings used when none are given:
// a 0.75s QuadraticOut fade to alpha 0.
func DefaultOutSettings() DirectionSettings {
	return DirectionSettings{
		Mode:   ModeFade,
		Time:   0.75,
		Alpha:  0,
		Scale:  Vec3{},
		Rect:   RectFull,
		Easing: DefaultEasing,
	}
}

// FaderOptions configure a new Fader.
type FaderOptions struct {
	// Name defaults to the target's name when the target implements Named.
	Name string
	Tags []string

	// DisableWhenHidden deactivates the target after a hide completes and
	// reactivates it when a show starts.
	DisableWhenHidden bool

	// In and Out default to DefaultInSettings and DefaultOutSettings.
	In, Out *DirectionSettings

	// Hidden starts the fader hidden: an instant hide runs at construction.
	Hidden bool

	// Clock drives the fader's animations. Manager.Add fills it in when nil.
	Clock *Clock
	// Easings defaults to DefaultEasings.
	Easings     EasingLibrary
	Diagnostics *Diagnostics
}

// flight is one tracked in-flight animation.
type flight struct {
	anim *Animation
	dir  Direction
	mode Mode
}

// Fader owns the visibility state of one Target: its show/hide settings,
// its in-flight animations and the cancellation policy between them.
type Fader struct {
	target            Target
	name              string
	tags              []string
	disableWhenHidden bool
	in, out           DirectionSettings

	visible  bool
	flights  []flight
	channels [3]channel

	clock   *Clock
	easings EasingLibrary
	diag    *Diagnostics
	sink    EventSink
}

// NewFader creates a fader bound to target.
func NewFader(target Target, opts FaderOptions) *Fader {
	f := &Fader{
		target:            target,
		name:              opts.Name,
		tags:              append([]string(nil), opts.Tags...),
		disableWhenHidden: opts.DisableWhenHidden,
		in:                DefaultInSettings(),
		out:               DefaultOutSettings(),
		visible:           true,
		clock:             opts.Clock,
		easings:           opts.Easings,
		diag:              opts.Diagnostics,
	}
	if f.name == "" {
		f.name = targetName(target)
	}
	if opts.In != nil {
		f.in = *opts.In
	}
	if opts.Out != nil {
		f.out = *opts.Out
	}
	if f.easings == nil {
		f.easings = DefaultEasings()
	}
	f.in.Mode = f.checkMode(f.in.Mode)
	f.out.Mode = f.checkMode(f.out.Mode)
	f.channels = [3]channel{
		ModeFade:  fadeChannel{f},
		ModeScale: scaleChannel{f},
		ModeSlide: slideChannel{f},
	}
	f.diag.Debugf("fader %q created, tags %v, disableWhenHidden %v", f.name, f.tags, f.disableWhenHidden)

	if opts.Hidden {
		f.Hide(Instant(), nil)
	}
	return f
}

// Name returns the fader's registry name.
func (f *Fader) Name() string { return f.name }

// Tags returns the fader's tags. The returned slice MUST NOT be mutated.
func (f *Fader) Tags() []string { return f.tags }

// Target returns the animated target.
func (f *Fader) Target() Target { return f.target }

// Settings returns the show (In) or hide (Out) settings.
func (f *Fader) Settings(dir Direction) DirectionSettings { return *f.settings(dir) }

// Show animates the target to its shown state. done runs on completion,
// before opts.OnComplete.
func (f *Fader) Show(opts Options, done func()) {
	f.diag.Debugf("fader %q show", f.name)
	f.animate(DirectionIn, opts, done)
}

// Hide animates the target to its hidden state. done runs on completion,
// before opts.OnComplete.
func (f *Fader) Hide(opts Options, done func()) {
	f.diag.Debugf("fader %q hide", f.name)
	f.animate(DirectionOut, opts, done)
}

// Toggle hides a fader meant to be visible and shows one that is not. The
// decision uses the visibility intent set at dispatch, not the animation's
// progress.
func (f *Fader) Toggle(opts Options, done func()) {
	f.diag.Debugf("fader %q toggle, visible %v", f.name, f.visible)
	if f.visible {
		f.Hide(opts, done)
	} else {
		f.Show(opts, done)
	}
}

// Stop cancels every in-flight animation.
func (f *Fader) Stop() {
	f.cancelAll()
}

// SetAlpha cancels all animations and writes alpha immediately, recursing
// when the show settings ask for a recursive fade.
func (f *Fader) SetAlpha(alpha float64) {
	f.cancelAll()
	writeAlphaTree(f.target, alpha, f.in.Recursive)
}

// SetScale cancels all animations and writes scale immediately.
func (f *Fader) SetScale(scale Vec3, l Locality) {
	f.cancelAll()
	f.target.WriteScale(scale, l)
}

// SetRect cancels all animations and writes the left and right anchors
// immediately.
func (f *Fader) SetRect(r Rect) {
	f.cancelAll()
	f.channels[ModeSlide].set(DirectionIn, r.Value())
}

// IsVisible reports whether the fader is meant to be shown and its target
// is active.
func (f *Fader) IsVisible() bool {
	return f.visible && f.target.Active()
}

// VisibilityIntent reports the direction of the most recent dispatch.
func (f *Fader) VisibilityIntent() bool {
	return f.visible
}

// IsAnimating reports whether any tracked animation is in flight.
func (f *Fader) IsAnimating() bool {
	return len(f.flights) > 0
}

// Animations returns the in-flight animations in dispatch order.
func (f *Fader) Animations() []*Animation {
	out := make([]*Animation, len(f.flights))
	for i, fl := range f.flights {
		out[i] = fl.anim
	}
	return out
}

// --- internals ---

func (f *Fader) settings(dir Direction) *DirectionSettings {
	if dir == DirectionIn {
		return &f.in
	}
	return &f.out
}

func (f *Fader) checkMode(m Mode) Mode {
	if !m.valid() {
		f.diag.Warnf("fader %q: unknown mode %d, defaulting to fade", f.name, m)
		return ModeFade
	}
	return m
}

func (f *Fader) animate(dir Direction, opts Options, done func()) {
	s := f.settings(dir)

	duration := s.Time
	if opts.Time != nil {
		duration = *opts.Time
	}
	delay := 0.0
	if opts.Delay != nil {
		delay = *opts.Delay
	}
	mode := s.Mode
	if opts.Mode != nil {
		mode = f.checkMode(*opts.Mode)
	}
	if duration < 0 || delay < 0 {
		f.diag.Warnf("fader %q: negative time %g or delay %g clamped to 0", f.name, duration, delay)
		duration, delay = max(duration, 0), max(delay, 0)
	}
	if f.clock == nil && (duration > 0 || delay > 0) {
		f.diag.Warnf("fader %q has no clock, completing instantly", f.name)
		duration, delay = 0, 0
	}
	f.diag.Debugf("fader %q %s: time %g, delay %g, mode %s, cancel %s", f.name, dir, duration, delay, mode, opts.Cancel)

	switch opts.Cancel {
	case CancelAll:
		f.cancelAll()
	case CancelActive:
		f.cancelActive()
	}

	f.visible = dir == DirectionIn

	ch := f.channels[mode]
	var anim *Animation
	anim = NewAnimation(AnimationConfig{
		Start:       f.currentValue(mode, dir),
		End:         ch.configured(dir),
		Duration:    duration,
		Delay:       delay,
		Ease:        s.Easing.Resolve(f.easings, f.diag),
		Diagnostics: f.diag,
		OnStart: func() {
			f.enableTarget(dir)
			f.resetOtherModes(mode, dir)
			anim.SetStart(f.currentValue(mode, dir))
			f.emit(EventStarted, dir, mode, anim)
			f.diag.call("onStart", opts.OnStart)
		},
		OnUpdate: func(v Value, _, _ float64) {
			ch.set(dir, v)
		},
		OnComplete: func() {
			f.removeAnimation(anim)
			f.disableTarget(dir)
			f.emit(EventCompleted, dir, mode, anim)
			f.diag.call("onComplete", done)
			f.diag.call("onComplete", opts.OnComplete)
		},
	})

	// Instant animations complete inside Start and are never tracked.
	if duration > 0 || delay > 0 {
		f.flights = append(f.flights, flight{anim: anim, dir: dir, mode: mode})
	}
	anim.Start(f.clock)
}

// currentValue reads mode's live value, falling back to the opposite
// direction's configured value when the target lacks the property.
func (f *Fader) currentValue(mode Mode, dir Direction) Value {
	ch := f.channels[mode]
	if v, ok := ch.get(dir); ok {
		return v
	}
	return ch.configured(dir.Opposite())
}

// resetOtherModes runs when an animation starts. If the opposite direction
// uses a different mode, that mode snaps to its shown value and the
// starting mode snaps to its own start value, so partial state from an
// earlier animation in another mode does not leak into this one.
func (f *Fader) resetOtherModes(mode Mode, dir Direction) {
	opp := dir.Opposite()
	oppMode := f.settings(opp).Mode
	if mode == oppMode {
		return
	}
	other := f.channels[oppMode]
	other.set(DirectionIn, other.configured(DirectionIn))
	cur := f.channels[mode]
	cur.set(opp, cur.configured(opp))
}

func (f *Fader) enableTarget(dir Direction) {
	if dir == DirectionIn && f.disableWhenHidden && !f.target.Active() {
		f.diag.Debugf("fader %q re-enabling target", f.name)
		f.target.SetActive(true)
	}
}

func (f *Fader) disableTarget(dir Direction) {
	if dir == DirectionOut && f.disableWhenHidden {
		f.diag.Debugf("fader %q disabling target", f.name)
		f.target.SetActive(false)
	}
}

func (f *Fader) removeAnimation(anim *Animation) {
	for i, fl := range f.flights {
		if fl.anim == anim {
			copy(f.flights[i:], f.flights[i+1:])
			f.flights[len(f.flights)-1] = flight{}
			f.flights = f.flights[:len(f.flights)-1]
			return
		}
	}
}

// cancelAll stops every tracked animation, delayed ones included. The list
// is detached first and walked in reverse index order.
func (f *Fader) cancelAll() {
	if len(f.flights) == 0 {
		return
	}
	f.diag.Debugf("fader %q cancelling all %d animations", f.name, len(f.flights))
	flights := f.flights
	f.flights = nil
	for i := len(flights) - 1; i >= 0; i-- {
		flights[i].anim.Stop()
		f.emit(EventCancelled, flights[i].dir, flights[i].mode, flights[i].anim)
	}
}

// cancelActive stops and removes only animations whose start hook fired.
func (f *Fader) cancelActive() {
	cancelled := 0
	for i := len(f.flights) - 1; i >= 0; i-- {
		fl := f.flights[i]
		if !fl.anim.Started() {
			continue
		}
		fl.anim.Stop()
		f.removeAnimation(fl.anim)
		f.emit(EventCancelled, fl.dir, fl.mode, fl.anim)
		cancelled++
	}
	f.diag.Debugf("fader %q cancelled %d active animations", f.name, cancelled)
}

func (f *Fader) emit(t EventType, dir Direction, mode Mode, anim *Animation) {
	if f.sink == nil {
		return
	}
	f.sink.EmitEvent(Event{
		Type:        t,
		Fader:       f.name,
		Target:      targetName(f.target),
		Direction:   dir,
		Mode:        mode,
		AnimationID: anim.ID(),
	})
}
