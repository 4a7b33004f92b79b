package fader

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// Easing families.
const (
	EaseLinear      = "Linear"
	EaseQuadratic   = "Quadratic"
	EaseCubic       = "Cubic"
	EaseQuartic     = "Quartic"
	EaseQuintic     = "Quintic"
	EaseSinusoidal  = "Sinusoidal"
	EaseExponential = "Exponential"
	EaseCircular    = "Circular"
	EaseElastic     = "Elastic"
	EaseBack        = "Back"
	EaseBounce      = "Bounce"
)

// Easing variants. Linear ignores the variant.
const (
	VariantIn    = "In"
	VariantOut   = "Out"
	VariantInOut = "InOut"
)

// Easing names a curve by family and variant, e.g. {Quadratic, Out}.
type Easing struct {
	Family  string
	Variant string
}

// DefaultEasing is the curve used when a direction does not configure one.
var DefaultEasing = Easing{Family: EaseQuadratic, Variant: VariantOut}

// Name returns the lookup key: family followed by variant ("QuadraticOut"),
// or just "Linear".
func (e Easing) Name() string {
	if e.Family == EaseLinear {
		return EaseLinear
	}
	return e.Family + e.Variant
}

func (e Easing) String() string { return e.Name() }

// EasingLibrary supplies easing functions by name.
type EasingLibrary interface {
	Lookup(name string) (ease.TweenFunc, bool)
}

// EasingTable is a map-backed EasingLibrary.
type EasingTable map[string]ease.TweenFunc

// Lookup implements EasingLibrary.
func (t EasingTable) Lookup(name string) (ease.TweenFunc, bool) {
	fn, ok := t[name]
	return fn, ok
}

// Names returns the table's curve names in sorted order.
func (t EasingTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultEasings returns the 31 named curves backed by gween's ease package.
func DefaultEasings() EasingTable {
	return EasingTable{
		"Linear":           ease.Linear,
		"QuadraticIn":      ease.InQuad,
		"QuadraticOut":     ease.OutQuad,
		"QuadraticInOut":   ease.InOutQuad,
		"CubicIn":          ease.InCubic,
		"CubicOut":         ease.OutCubic,
		"CubicInOut":       ease.InOutCubic,
		"QuarticIn":        ease.InQuart,
		"QuarticOut":       ease.OutQuart,
		"QuarticInOut":     ease.InOutQuart,
		"QuinticIn":        ease.InQuint,
		"QuinticOut":       ease.OutQuint,
		"QuinticInOut":     ease.InOutQuint,
		"SinusoidalIn":     ease.InSine,
		"SinusoidalOut":    ease.OutSine,
		"SinusoidalInOut":  ease.InOutSine,
		"ExponentialIn":    ease.InExpo,
		"ExponentialOut":   ease.OutExpo,
		"ExponentialInOut": ease.InOutExpo,
		"CircularIn":       ease.InCirc,
		"CircularOut":      ease.OutCirc,
		"CircularInOut":    ease.InOutCirc,
		"ElasticIn":        ease.InElastic,
		"ElasticOut":       ease.OutElastic,
		"ElasticInOut":     ease.InOutElastic,
		"BackIn":           ease.InBack,
		"BackOut":          ease.OutBack,
		"BackInOut":        ease.InOutBack,
		"BounceIn":         ease.InBounce,
		"BounceOut":        ease.OutBounce,
		"BounceInOut":      ease.InOutBounce,
	}
}

// Resolve looks e up in lib. A nil library or an unknown name falls back to
// linear and is reported through diag.
func (e Easing) Resolve(lib EasingLibrary, diag *Diagnostics) ease.TweenFunc {
	if lib == nil {
		diag.Warnf("easing library unavailable, using linear for %q", e.Name())
		return ease.Linear
	}
	if fn, ok := lib.Lookup(e.Name()); ok && fn != nil {
		return fn
	}
	diag.Warnf("easing function %q not found, falling back to linear", e.Name())
	return ease.Linear
}
