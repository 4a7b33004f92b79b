package fader

import "fmt"

// Kind is the arity of a Value.
type Kind uint8

const (
	KindScalar Kind = iota
	KindVec2
	KindVec3
	KindVec4
)

func (k Kind) String() string {
	switch k {
	case KindVec2:
		return "vec2"
	case KindVec3:
		return "vec3"
	case KindVec4:
		return "vec4"
	default:
		return "float"
	}
}

// Value is an animatable quantity carrying its own arity. Components past
// the arity are zero and ignored.
type Value struct {
	Kind       Kind
	X, Y, Z, W float64
}

// Scalar returns a single-component Value stored in X.
func Scalar(f float64) Value { return Value{Kind: KindScalar, X: f} }

// V2 returns a 2-component Value.
func V2(x, y float64) Value { return Value{Kind: KindVec2, X: x, Y: y} }

// V3 returns a 3-component Value.
func V3(x, y, z float64) Value { return Value{Kind: KindVec3, X: x, Y: y, Z: z} }

// V4 returns a 4-component Value.
func V4(x, y, z, w float64) Value { return Value{Kind: KindVec4, X: x, Y: y, Z: z, W: w} }

// Arity returns the number of meaningful components.
func (v Value) Arity() int {
	return int(v.Kind) + 1
}

// Float returns the scalar component.
func (v Value) Float() float64 { return v.X }

// Vec3 returns the first three components as a Vec3.
func (v Value) Vec3() Vec3 { return Vec3{v.X, v.Y, v.Z} }

// Rect returns the four components as anchors.
func (v Value) Rect() Rect { return Rect{Left: v.X, Right: v.Y, Bottom: v.Z, Top: v.W} }

// As returns v with its kind changed to k, zeroing components past k's arity.
func (v Value) As(k Kind) Value {
	out := Value{Kind: k, X: v.X}
	if k >= KindVec2 {
		out.Y = v.Y
	}
	if k >= KindVec3 {
		out.Z = v.Z
	}
	if k >= KindVec4 {
		out.W = v.W
	}
	return out
}

func (v Value) String() string {
	switch v.Kind {
	case KindVec2:
		return fmt.Sprintf("vec2(%g, %g)", v.X, v.Y)
	case KindVec3:
		return fmt.Sprintf("vec3(%g, %g, %g)", v.X, v.Y, v.Z)
	case KindVec4:
		return fmt.Sprintf("vec4(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
	default:
		return fmt.Sprintf("%g", v.X)
	}
}

// Lerp interpolates every component of a toward b by t. The result has b's
// kind. t == 1 yields b exactly and equal endpoints yield a exactly, so a
// finished animation lands on its end value without rounding error. t
// outside [0, 1] extrapolates, which overshooting curves (Back, Elastic)
// rely on.
func Lerp(a, b Value, t float64) Value {
	if a.Kind != b.Kind {
		a = a.As(b.Kind)
	}
	if t == 1 {
		return b
	}
	if a == b {
		return a
	}
	out := Value{Kind: b.Kind, X: lerp(a.X, b.X, t)}
	if b.Kind >= KindVec2 {
		out.Y = lerp(a.Y, b.Y, t)
	}
	if b.Kind >= KindVec3 {
		out.Z = lerp(a.Z, b.Z, t)
	}
	if b.Kind >= KindVec4 {
		out.W = lerp(a.W, b.W, t)
	}
	return out
}

func lerp(a, b, t float64) float64 {
	if a == b {
		return a
	}
	return a + (b-a)*t
}
