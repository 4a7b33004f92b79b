package fader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultAutoHideDelay is the auto-hide delay used when a config sets
// auto_hide without auto_hide_delay.
const DefaultAutoHideDelay = 2.0

// Config seeds a stage: optional nodes to build under the root, then
// faders bound to nodes by name.
//
//	nodes:
//	  - {name: menu, anchors: [-1, 1, -1, 1]}
//	  - {name: arrow_in, parent: menu, alpha: 0}
//	faders:
//	  - target: menu
//	    tags: [ui]
//	    initial_state: hidden
//	    disable_when_hidden: true
//	    in:  {mode: slide, time: 0.4, rect: [-1, 1, -1, 1], easing: Cubic, easing_type: Out}
//	    out: {mode: slide, time: 0.4, rect: [1, 3, -1, 1]}
type Config struct {
	Nodes  []NodeConfig  `yaml:"nodes,omitempty"`
	Faders []FaderConfig `yaml:"faders"`
}

// NodeConfig describes one node. Parent names an earlier node, or the root
// when empty. Anchors, when present, make the node anchored.
type NodeConfig struct {
	Name    string    `yaml:"name"`
	Parent  string    `yaml:"parent,omitempty"`
	Alpha   *float64  `yaml:"alpha,omitempty"`
	Scale   []float64 `yaml:"scale,omitempty"`
	Anchors []float64 `yaml:"anchors,omitempty"`
	Enabled *bool     `yaml:"enabled,omitempty"`
}

// FaderConfig configures one fader.
type FaderConfig struct {
	Target            string          `yaml:"target"`
	Name              string          `yaml:"name,omitempty"`
	Tags              []string        `yaml:"tags,omitempty"`
	InitialState      string          `yaml:"initial_state,omitempty"` // visible (default) or hidden
	AutoShow          bool            `yaml:"auto_show,omitempty"`
	AutoShowDelay     float64         `yaml:"auto_show_delay,omitempty"`
	AutoHide          bool            `yaml:"auto_hide,omitempty"`
	AutoHideDelay     *float64        `yaml:"auto_hide_delay,omitempty"`
	DisableWhenHidden bool            `yaml:"disable_when_hidden,omitempty"`
	In                DirectionConfig `yaml:"in,omitempty"`
	Out               DirectionConfig `yaml:"out,omitempty"`
}

// DirectionConfig overrides fields of DirectionSettings. Unset fields keep
// the defaults.
type DirectionConfig struct {
	Mode       string    `yaml:"mode,omitempty"`
	Time       *float64  `yaml:"time,omitempty"`
	Alpha      *float64  `yaml:"alpha,omitempty"`
	Scale      []float64 `yaml:"scale,omitempty"`
	Rect       []float64 `yaml:"rect,omitempty"`
	Easing     string    `yaml:"easing,omitempty"`
	EasingType string    `yaml:"easing_type,omitempty"`
	Recursive  bool      `yaml:"recursive,omitempty"`
	Locality   string    `yaml:"locality,omitempty"`
}

// LoadConfig parses a YAML config.
func LoadConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse fader config: %w", err)
	}
	for i, nc := range cfg.Nodes {
		if nc.Name == "" {
			return nil, fmt.Errorf("parse fader config: node %d has no name", i)
		}
		if len(nc.Scale) != 0 && len(nc.Scale) != 3 {
			return nil, fmt.Errorf("parse fader config: node %q: scale needs 3 components, got %d", nc.Name, len(nc.Scale))
		}
		if len(nc.Anchors) != 0 && len(nc.Anchors) != 4 {
			return nil, fmt.Errorf("parse fader config: node %q: anchors need 4 components, got %d", nc.Name, len(nc.Anchors))
		}
	}
	for i, fc := range cfg.Faders {
		if fc.Target == "" {
			return nil, fmt.Errorf("parse fader config: fader %d has no target", i)
		}
		switch fc.InitialState {
		case "", "visible", "hidden":
		default:
			return nil, fmt.Errorf("parse fader config: fader %q: unknown initial_state %q", fc.Target, fc.InitialState)
		}
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a config file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fader config: %w", err)
	}
	return LoadConfig(data)
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Apply builds the configured nodes, then creates and registers a fader
// for every entry, applies initial state and starts the auto-show /
// auto-hide chain. It stops at the first entry whose target or parent is
// missing from the stage tree.
func (c *Config) Apply(s *Stage) ([]*Fader, error) {
	if err := c.buildNodes(s); err != nil {
		return nil, err
	}
	out := make([]*Fader, 0, len(c.Faders))
	for _, fc := range c.Faders {
		in := fc.In.Settings(DefaultInSettings(), s.diag)
		outSettings := fc.Out.Settings(DefaultOutSettings(), s.diag)
		f, err := s.AddFader(fc.Target, FaderOptions{
			Name:              fc.Name,
			Tags:              fc.Tags,
			DisableWhenHidden: fc.DisableWhenHidden,
			In:                &in,
			Out:               &outSettings,
			Hidden:            fc.InitialState == "hidden",
		})
		if err != nil {
			return out, err
		}
		fc.startAuto(f)
		out = append(out, f)
	}
	return out, nil
}

func (c *Config) buildNodes(s *Stage) error {
	for _, nc := range c.Nodes {
		parent := s.root
		if nc.Parent != "" {
			if parent = s.root.Find(nc.Parent); parent == nil {
				return fmt.Errorf("node %q: %w: parent %q", nc.Name, ErrUnknownTarget, nc.Parent)
			}
		}
		n := NewNode(nc.Name)
		if nc.Alpha != nil {
			n.Alpha = *nc.Alpha
		}
		if len(nc.Scale) == 3 {
			n.Scale = Vec3{nc.Scale[0], nc.Scale[1], nc.Scale[2]}
		}
		if len(nc.Anchors) == 4 {
			n.SetAnchors(Rect{Left: nc.Anchors[0], Right: nc.Anchors[1], Bottom: nc.Anchors[2], Top: nc.Anchors[3]})
		}
		if nc.Enabled != nil {
			n.SetEnabled(*nc.Enabled)
		}
		parent.AddChild(n)
	}
	return nil
}

func (fc FaderConfig) startAuto(f *Fader) {
	hideDelay := DefaultAutoHideDelay
	if fc.AutoHideDelay != nil {
		hideDelay = *fc.AutoHideDelay
	}
	autoHide := func() {
		f.Hide(Options{}.WithDelay(hideDelay), nil)
	}
	switch {
	case fc.AutoShow:
		opts := Options{}.WithDelay(fc.AutoShowDelay)
		if fc.AutoHide {
			opts.OnComplete = autoHide
		}
		f.Show(opts, nil)
	case fc.AutoHide:
		autoHide()
	}
}

// Settings returns base with the configured fields applied. Invalid values
// are reported through diag and ignored.
func (d DirectionConfig) Settings(base DirectionSettings, diag *Diagnostics) DirectionSettings {
	s := base
	if d.Mode != "" {
		mode, ok := ParseMode(d.Mode)
		if !ok {
			diag.Warnf("config: unknown mode %q, defaulting to fade", d.Mode)
		}
		s.Mode = mode
	}
	if d.Time != nil {
		s.Time = *d.Time
	}
	if d.Alpha != nil {
		s.Alpha = *d.Alpha
	}
	switch len(d.Scale) {
	case 0:
	case 3:
		s.Scale = Vec3{d.Scale[0], d.Scale[1], d.Scale[2]}
	default:
		diag.Warnf("config: scale needs 3 components, got %d", len(d.Scale))
	}
	switch len(d.Rect) {
	case 0:
	case 4:
		s.Rect = Rect{Left: d.Rect[0], Right: d.Rect[1], Bottom: d.Rect[2], Top: d.Rect[3]}
	default:
		diag.Warnf("config: rect needs 4 components, got %d", len(d.Rect))
	}
	if d.Easing != "" {
		s.Easing.Family = d.Easing
	}
	if d.EasingType != "" {
		s.Easing.Variant = d.EasingType
	}
	s.Recursive = d.Recursive
	if d.Locality != "" {
		l, ok := ParseLocality(d.Locality)
		if !ok {
			diag.Warnf("config: unknown locality %q, using Local", d.Locality)
		}
		s.Locality = l
	}
	return s
}
