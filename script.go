package fader

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoSteps is returned when a script has no steps.
var ErrNoSteps = errors.New("no steps")

// scriptStep is a single action in a script.
type scriptStep struct {
	Action  string   `yaml:"action"`
	Target  string   `yaml:"target,omitempty"`
	Targets []string `yaml:"targets,omitempty"`
	Time    *float64 `yaml:"time,omitempty"`
	Delay   *float64 `yaml:"delay,omitempty"`
	Mode    string   `yaml:"mode,omitempty"`
	Cancel  string   `yaml:"cancel,omitempty"`
	Alpha   float64  `yaml:"alpha,omitempty"`
	Frames  int      `yaml:"frames,omitempty"`
}

// scriptFile is the top-level YAML structure for a script.
type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// Script sequences manager calls across frames. Attach it to a Stage with
// SetScript. Every frame it runs steps until it reaches a wait, which holds
// for the given number of frames.
//
//	steps:
//	  - {action: show, target: menu, time: 0.5}
//	  - {action: hide, targets: [arrow_out], cancel: active}
//	  - {action: wait, frames: 30}
//	  - {action: toggle, target: "*"}
//
// Actions: show, hide, toggle, stop, set_alpha, wait. target "*" addresses
// every fader. JSON is accepted as well.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML (or JSON) script.
func LoadScript(data []byte) (*Script, error) {
	var file scriptFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrNoSteps)
	}
	return &Script{steps: file.Steps}, nil
}

// LoadScriptFile reads and parses a script file.
func LoadScriptFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return LoadScript(data)
}

// Done reports whether all steps have been executed.
func (r *Script) Done() bool {
	return r.done
}

// Len returns the number of steps.
func (r *Script) Len() int {
	return len(r.steps)
}

// step advances the script by one frame. Called from Stage.Update.
func (r *Script) step(s *Stage) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	for r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		r.cursor++
		if st.Action == "wait" {
			if st.Frames > 0 {
				r.waitCount = st.Frames - 1 // this frame counts as one
			}
			break
		}
		r.exec(s, st)
	}
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

func (r *Script) exec(s *Stage, st scriptStep) {
	m := s.manager
	id := st.identifier()
	switch st.Action {
	case "show":
		m.Show(id, st.options(s.diag), nil)
	case "hide":
		m.Hide(id, st.options(s.diag), nil)
	case "toggle":
		m.Toggle(id, st.options(s.diag), nil)
	case "stop":
		m.Stop(id)
	case "set_alpha":
		m.SetAlpha(id, st.Alpha)
	default:
		s.diag.Warnf("script: unknown action %q skipped", st.Action)
	}
}

func (st scriptStep) identifier() Identifier {
	if st.Target == "*" {
		return All()
	}
	var ids []Identifier
	if st.Target != "" {
		ids = append(ids, Key(st.Target))
	}
	for _, t := range st.Targets {
		ids = append(ids, Key(t))
	}
	switch len(ids) {
	case 0:
		return Identifier{}
	case 1:
		return ids[0]
	}
	return Many(ids...)
}

func (st scriptStep) options(diag *Diagnostics) Options {
	opts := Options{Time: st.Time, Delay: st.Delay}
	if st.Mode != "" {
		mode, ok := ParseMode(st.Mode)
		if !ok {
			diag.Warnf("script: unknown mode %q, defaulting to fade", st.Mode)
		}
		opts = opts.WithMode(mode)
	}
	cancel, ok := ParseCancelPolicy(st.Cancel)
	if !ok {
		diag.Warnf("script: unknown cancel policy %q, using all", st.Cancel)
	}
	opts.Cancel = cancel
	return opts
}
