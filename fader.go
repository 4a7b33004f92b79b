package fader

// Vec3 is a 3-component vector used for scale.
type Vec3 struct {
	X, Y, Z float64
}

// Vec3One is the identity scale.
var Vec3One = Vec3{1, 1, 1}

// Value converts v to a 3-component Value.
func (v Vec3) Value() Value {
	return V3(v.X, v.Y, v.Z)
}

// Rect holds screen anchors in the order left, right, bottom, top. As a 4
// component Value it maps to (x=Left, y=Right, z=Bottom, w=Top).
type Rect struct {
	Left, Right, Bottom, Top float64
}

// RectFull covers the whole parent region.
var RectFull = Rect{Left: -1, Right: 1, Bottom: -1, Top: 1}

// Value converts r to a 4-component Value.
func (r Rect) Value() Value {
	return V4(r.Left, r.Right, r.Bottom, r.Top)
}

// Width returns Right - Left.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns Top - Bottom.
func (r Rect) Height() float64 {
	return r.Top - r.Bottom
}

// Locality selects whether a scale is read and written in the target's own
// space or in world space.
type Locality uint8

const (
	LocalityLocal Locality = iota // relative to the parent
	LocalityWorld                 // cumulative through all ancestors
)

// ParseLocality maps "Local"/"World" to a Locality; empty means Local. Anything else
// reports false and yields LocalityLocal.
func ParseLocality(s string) (Locality, bool) {
	switch s {
	case "Local", "local", "":
		return LocalityLocal, true
	case "World", "world":
		return LocalityWorld, true
	}
	return LocalityLocal, false
}

func (l Locality) String() string {
	if l == LocalityWorld {
		return "World"
	}
	return "Local"
}

// Direction is the visibility direction an animation moves a target in.
type Direction uint8

const (
	DirectionIn  Direction = iota // show
	DirectionOut                  // hide
)

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == DirectionIn {
		return DirectionOut
	}
	return DirectionIn
}

func (d Direction) String() string {
	if d == DirectionIn {
		return "in"
	}
	return "out"
}

// CancelPolicy controls how a newly dispatched animation treats the ones
// already in flight on the same fader.
type CancelPolicy uint8

const (
	CancelAll    CancelPolicy = iota // stop everything, including delayed animations
	CancelActive                     // stop only animations whose start hook fired
	CancelNone                       // leave in-flight animations running
)

// ParseCancelPolicy maps "all", "active" and "none" to a CancelPolicy; empty
// means all.
func ParseCancelPolicy(s string) (CancelPolicy, bool) {
	switch s {
	case "all", "":
		return CancelAll, true
	case "active":
		return CancelActive, true
	case "none":
		return CancelNone, true
	}
	return CancelAll, false
}

func (c CancelPolicy) String() string {
	switch c {
	case CancelActive:
		return "active"
	case CancelNone:
		return "none"
	default:
		return "all"
	}
}
