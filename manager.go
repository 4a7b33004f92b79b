package fader

import "sort"

// Manager indexes faders by name and by tag and dispatches calls to every
// fader an Identifier resolves to. Construct one per scene and pass it to
// whatever needs it; Close tears it down.
type Manager struct {
	clock   *Clock
	byName  map[string][]*Fader
	byTag   map[string][]*Fader
	names   []string // byName keys in first-registration order
	order   []*Fader
	diag    *Diagnostics
	sink    EventSink
	easings EasingLibrary
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithDiagnostics sets the manager's diagnostics, also handed to faders
// added without their own.
func WithDiagnostics(d *Diagnostics) ManagerOption {
	return func(m *Manager) { m.diag = d }
}

// WithEventSink forwards lifecycle events of every owned fader to sink.
func WithEventSink(sink EventSink) ManagerOption {
	return func(m *Manager) { m.sink = sink }
}

// WithEasings sets the easing library used by Manager.NewFader.
func WithEasings(lib EasingLibrary) ManagerOption {
	return func(m *Manager) { m.easings = lib }
}

// NewManager creates an empty manager whose faders run on clock.
func NewManager(clock *Clock, opts ...ManagerOption) *Manager {
	m := &Manager{
		clock:  clock,
		byName: make(map[string][]*Fader),
		byTag:  make(map[string][]*Fader),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Clock returns the clock new faders are attached to.
func (m *Manager) Clock() *Clock { return m.clock }

// NewFader creates a fader on the manager's clock, diagnostics and easings
// and adds it.
func (m *Manager) NewFader(target Target, opts FaderOptions) *Fader {
	if opts.Clock == nil {
		opts.Clock = m.clock
	}
	if opts.Diagnostics == nil {
		opts.Diagnostics = m.diag
	}
	if opts.Easings == nil {
		opts.Easings = m.easings
	}
	f := NewFader(target, opts)
	m.Add(f)
	return f
}

// Add registers f under its name and each of its tags. Adding a fader that
// is already registered is a no-op.
func (m *Manager) Add(f *Fader) {
	for _, existing := range m.order {
		if existing == f {
			return
		}
	}
	m.diag.Debugf("manager adding fader %q", f.name)
	if f.clock == nil {
		f.clock = m.clock
	}
	if f.diag == nil {
		f.diag = m.diag
	}
	if f.sink == nil {
		f.sink = m.sink
	}
	m.order = append(m.order, f)
	if _, ok := m.byName[f.name]; !ok {
		m.names = append(m.names, f.name)
	}
	m.byName[f.name] = append(m.byName[f.name], f)
	for _, tag := range f.tags {
		m.byTag[tag] = append(m.byTag[tag], f)
	}
}

// Remove unregisters f. Its animations keep running.
func (m *Manager) Remove(f *Fader) {
	m.diag.Debugf("manager removing fader %q", f.name)
	m.order = removeFader(m.order, f)
	if list := removeFader(m.byName[f.name], f); len(list) > 0 {
		m.byName[f.name] = list
	} else if _, ok := m.byName[f.name]; ok {
		delete(m.byName, f.name)
		m.names = removeName(m.names, f.name)
	}
	for _, tag := range f.tags {
		if list := removeFader(m.byTag[tag], f); len(list) > 0 {
			m.byTag[tag] = list
		} else {
			delete(m.byTag, tag)
		}
	}
}

// Len returns the number of registered faders.
func (m *Manager) Len() int { return len(m.order) }

// Faders returns every registered fader in registration order.
func (m *Manager) Faders() []*Fader {
	return append([]*Fader(nil), m.order...)
}

// Names returns the registered fader names, sorted.
func (m *Manager) Names() []string { return sortedKeys(m.byName) }

// Tags returns the tags in use, sorted.
func (m *Manager) Tags() []string { return sortedKeys(m.byTag) }

// SetEventSink sets the sink for faders added from now on and for every
// fader already registered.
func (m *Manager) SetEventSink(sink EventSink) {
	m.sink = sink
	for _, f := range m.order {
		f.sink = sink
	}
}

// Show shows every fader id resolves to. See dispatch for callback rules.
func (m *Manager) Show(id Identifier, opts Options, done func()) {
	m.dispatch("show", (*Fader).Show, id, opts, done)
}

// Hide hides every fader id resolves to.
func (m *Manager) Hide(id Identifier, opts Options, done func()) {
	m.dispatch("hide", (*Fader).Hide, id, opts, done)
}

// Toggle toggles every fader id resolves to, each on its own intent.
func (m *Manager) Toggle(id Identifier, opts Options, done func()) {
	m.dispatch("toggle", (*Fader).Toggle, id, opts, done)
}

// SetAlpha writes alpha immediately on every fader id resolves to.
func (m *Manager) SetAlpha(id Identifier, alpha float64) {
	for _, f := range m.Resolve(id) {
		f.SetAlpha(alpha)
	}
}

// SetScale writes scale immediately on every fader id resolves to.
func (m *Manager) SetScale(id Identifier, scale Vec3, l Locality) {
	for _, f := range m.Resolve(id) {
		f.SetScale(scale, l)
	}
}

// SetRect writes anchors immediately on every fader id resolves to.
func (m *Manager) SetRect(id Identifier, r Rect) {
	for _, f := range m.Resolve(id) {
		f.SetRect(r)
	}
}

// Stop cancels all animations on every fader id resolves to.
func (m *Manager) Stop(id Identifier) {
	faders := m.Resolve(id)
	m.diag.Debugf("manager stopping %d fader(s) for %v", len(faders), id)
	for _, f := range faders {
		f.Stop()
	}
}

// Close stops every fader and empties the indices. The manager can be
// reused afterwards.
func (m *Manager) Close() {
	for _, f := range m.order {
		f.Stop()
		f.sink = nil
	}
	m.order = nil
	m.names = nil
	clear(m.byName)
	clear(m.byTag)
}

// dispatch calls method on every resolved fader. A single fader receives
// opts and done untouched. With several, only the first receives the
// callbacks and the rest get a copy with OnStart and OnComplete removed, so
// a batch call reports completion once, from the first fader.
func (m *Manager) dispatch(what string, method func(*Fader, Options, func()), id Identifier, opts Options, done func()) {
	faders := m.Resolve(id)
	if len(faders) == 0 {
		return
	}
	m.diag.Debugf("manager %s: %v resolved %d fader(s)", what, id, len(faders))
	if len(faders) == 1 {
		method(faders[0], opts, done)
		return
	}
	muted := opts.muted()
	for i, f := range faders {
		if i == 0 {
			method(f, opts, done)
			continue
		}
		method(f, muted, nil)
	}
}

// --- resolution ---

// Resolve returns the faders id addresses.
//
//   - undefined: none, with a warning
//   - All: every fader grouped by name, names in first-registration
//     order, one per target
//   - Many: the union of each element, one per target, first occurrence wins
//   - Ref: every fader bound to the target
//   - Key: faders named s followed by faders tagged s, each once
//   - Name, Tag: faders named or tagged s
func (m *Manager) Resolve(id Identifier) []*Fader {
	switch id.kind {
	case identUndefined:
		m.diag.Warnf("failed to resolve faders: identifier undefined")
		return nil
	case identAll:
		var out []*Fader
		for _, name := range m.names {
			for _, f := range m.byName[name] {
				out = appendUniqueTarget(out, f)
			}
		}
		return out
	case identMany:
		var out []*Fader
		for _, sub := range id.many {
			for _, f := range m.Resolve(sub) {
				out = appendUniqueTarget(out, f)
			}
		}
		return out
	}
	return m.resolveSingle(id)
}

func (m *Manager) resolveSingle(id Identifier) []*Fader {
	switch id.kind {
	case identRef:
		if id.ref == nil {
			return nil
		}
		var out []*Fader
		for _, f := range m.order {
			if f.target.SameAs(id.ref) {
				out = append(out, f)
			}
		}
		return out
	case identName:
		return append([]*Fader(nil), m.byName[id.s]...)
	case identTag:
		return append([]*Fader(nil), m.byTag[id.s]...)
	case identKey:
		out := append([]*Fader(nil), m.byName[id.s]...)
		for _, f := range m.byTag[id.s] {
			if !containsFader(out, f) {
				out = append(out, f)
			}
		}
		return out
	}
	return nil
}

func appendUniqueTarget(list []*Fader, f *Fader) []*Fader {
	for _, existing := range list {
		if existing.target.SameAs(f.target) {
			return list
		}
	}
	return append(list, f)
}

func containsFader(list []*Fader, f *Fader) bool {
	for _, existing := range list {
		if existing == f {
			return true
		}
	}
	return false
}

func removeFader(list []*Fader, f *Fader) []*Fader {
	for i, existing := range list {
		if existing == f {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1]
		}
	}
	return list
}

func removeName(list []string, name string) []string {
	for i, n := range list {
		if n == name {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func sortedKeys(m map[string][]*Fader) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
