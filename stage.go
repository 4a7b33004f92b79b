package fader

import (
	"errors"
	"fmt"
	"os"
)

// ErrUnknownTarget is returned when a fader is requested for a node name
// that does not exist in the stage tree.
var ErrUnknownTarget = errors.New("fader: unknown target")

// Stage is the top-level object that owns the node tree, the clock and the
// fader manager. It replaces any process-wide manager: create one per scene,
// pass it where needed and Close it when the scene ends.
type Stage struct {
	root    *Node
	clock   *Clock
	manager *Manager
	diag    *Diagnostics

	script     *Script
	updateFunc func(dt float64)
}

// NewStage creates a stage with a root node named "root". Options configure
// the manager; diagnostics default to stderr.
func NewStage(opts ...ManagerOption) *Stage {
	clock := NewClock(nil)
	all := append([]ManagerOption{WithDiagnostics(NewDiagnostics(os.Stderr))}, opts...)
	m := NewManager(clock, all...)
	clock.diag = m.diag
	return &Stage{
		root:    NewNode("root"),
		clock:   clock,
		manager: m,
		diag:    m.diag,
	}
}

// Root returns the stage's root node.
func (s *Stage) Root() *Node { return s.root }

// Clock returns the stage's tick source.
func (s *Stage) Clock() *Clock { return s.clock }

// Manager returns the stage's fader manager.
func (s *Stage) Manager() *Manager { return s.manager }

// Diagnostics returns the stage's diagnostics.
func (s *Stage) Diagnostics() *Diagnostics { return s.diag }

// AddFader creates and registers a fader for the node named target.
func (s *Stage) AddFader(target string, opts FaderOptions) (*Fader, error) {
	n := s.root.Find(target)
	if n == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}
	return s.manager.NewFader(n, opts), nil
}

// SetScript attaches a script; its steps run at the start of each Update.
func (s *Stage) SetScript(script *Script) {
	s.script = script
}

// Script returns the attached script, or nil.
func (s *Stage) Script() *Script { return s.script }

// SetUpdateFunc sets a callback run every Update after the script and
// before the clock ticks.
func (s *Stage) SetUpdateFunc(fn func(dt float64)) {
	s.updateFunc = fn
}

// SetEventSink forwards fader lifecycle events to sink.
func (s *Stage) SetEventSink(sink EventSink) {
	s.manager.SetEventSink(sink)
}

// SetDebugMode enables or disables debug mode. When enabled, fader and
// animation traces are logged and disposed-node tree operations panic.
func (s *Stage) SetDebugMode(enabled bool) {
	s.diag.SetDebugMode(enabled)
	globalDebug = enabled
}

// Update advances the stage by dt seconds: script steps, the update
// callback, then one clock tick.
func (s *Stage) Update(dt float64) {
	if s.script != nil {
		s.script.step(s)
	}
	if s.updateFunc != nil {
		s.updateFunc(dt)
	}
	s.clock.Tick(dt)
}

// Close stops every animation, empties the manager and detaches the script.
func (s *Stage) Close() {
	s.manager.Close()
	s.clock.Reset()
	s.script = nil
	s.updateFunc = nil
}
