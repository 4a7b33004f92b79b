package fader

// Tickable receives per-frame delta time from a Clock.
type Tickable interface {
	Tick(dt float64)
}

// Clock is the frame tick source animations register with. It is not safe
// for concurrent use; the engine is driven from a single update loop.
type Clock struct {
	entries    []Tickable
	registered map[Tickable]struct{}
	buf        []Tickable
	diag       *Diagnostics
	elapsed    float64
	frame      uint64
}

// NewClock creates an empty clock reporting through diag (nil for stderr).
func NewClock(diag *Diagnostics) *Clock {
	return &Clock{registered: make(map[Tickable]struct{}), diag: diag}
}

// Register adds t. Registering the same tickable twice is a no-op.
// Tickables added during Tick first run on the next Tick.
func (c *Clock) Register(t Tickable) {
	if _, ok := c.registered[t]; ok {
		return
	}
	c.registered[t] = struct{}{}
	c.entries = append(c.entries, t)
}

// Unregister removes t. Safe to call during Tick, including from t itself.
func (c *Clock) Unregister(t Tickable) {
	if _, ok := c.registered[t]; !ok {
		return
	}
	delete(c.registered, t)
	for i, e := range c.entries {
		if e == t {
			copy(c.entries[i:], c.entries[i+1:])
			c.entries[len(c.entries)-1] = nil
			c.entries = c.entries[:len(c.entries)-1]
			return
		}
	}
}

// Registered reports whether t currently receives ticks.
func (c *Clock) Registered(t Tickable) bool {
	_, ok := c.registered[t]
	return ok
}

// Len returns the number of registered tickables.
func (c *Clock) Len() int {
	return len(c.entries)
}

// Elapsed returns the total time delivered so far.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Frame returns the number of Tick calls so far.
func (c *Clock) Frame() uint64 {
	return c.frame
}

// Tick delivers dt to every registered tickable in registration order.
// Negative dt is clamped to zero.
func (c *Clock) Tick(dt float64) {
	if dt < 0 {
		c.diag.Warnf("negative delta time %g clamped to 0", dt)
		dt = 0
	}
	c.frame++
	c.elapsed += dt

	// Iterate a snapshot: hooks may stop or start animations mid-tick.
	c.buf = append(c.buf[:0], c.entries...)
	for i, t := range c.buf {
		c.buf[i] = nil
		if _, ok := c.registered[t]; !ok {
			continue
		}
		t.Tick(dt)
	}
}

// Reset unregisters everything.
func (c *Clock) Reset() {
	for i := range c.entries {
		c.entries[i] = nil
	}
	c.entries = c.entries[:0]
	clear(c.registered)
}
