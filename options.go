package fader

// Options tune a single Show, Hide or Toggle call. Unset fields fall back to
// the fader's per-direction settings; the zero Options therefore means "use
// the defaults and cancel everything in flight".
type Options struct {
	Time   *float64 // seconds; 0 is instant
	Delay  *float64 // seconds before the start hook; default 0
	Mode   *Mode
	Cancel CancelPolicy

	// OnStart fires when the animation leaves its delay.
	OnStart func()
	// OnComplete fires after the per-call completion callback.
	OnComplete func()
}

// OnDone returns Options whose only field is OnComplete. It is the shorthand
// for passing just a completion callback.
func OnDone(fn func()) Options {
	return Options{OnComplete: fn}
}

// Instant returns Options with zero time.
func Instant() Options {
	return Options{}.WithTime(0)
}

// WithTime returns a copy of o with Time set.
func (o Options) WithTime(t float64) Options {
	o.Time = &t
	return o
}

// WithDelay returns a copy of o with Delay set.
func (o Options) WithDelay(d float64) Options {
	o.Delay = &d
	return o
}

// WithMode returns a copy of o with Mode set.
func (o Options) WithMode(m Mode) Options {
	o.Mode = &m
	return o
}

// WithCancel returns a copy of o with Cancel set.
func (o Options) WithCancel(c CancelPolicy) Options {
	o.Cancel = c
	return o
}

// WithOnStart returns a copy of o with OnStart set.
func (o Options) WithOnStart(fn func()) Options {
	o.OnStart = fn
	return o
}

// WithOnComplete returns a copy of o with OnComplete set.
func (o Options) WithOnComplete(fn func()) Options {
	o.OnComplete = fn
	return o
}

// muted returns a shallow copy of o without callbacks, handed to every fader
// after the first in a multi-fader call.
func (o Options) muted() Options {
	o.OnStart = nil
	o.OnComplete = nil
	return o
}
