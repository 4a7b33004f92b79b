package fader

// Mode selects which target property a show or hide animates.
type Mode uint8

const (
	ModeFade  Mode = iota // alpha, optionally recursive
	ModeScale             // 3-component scale, local or world
	ModeSlide             // screen anchors; only left/right are written
)

// ParseMode maps "fade", "scale" and "slide" to a Mode. Unknown strings
// report false and yield ModeFade.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "fade", "Fade", "":
		return ModeFade, true
	case "scale", "Scale":
		return ModeScale, true
	case "slide", "Slide":
		return ModeSlide, true
	}
	return ModeFade, false
}

func (m Mode) String() string {
	switch m {
	case ModeFade:
		return "fade"
	case ModeScale:
		return "scale"
	case ModeSlide:
		return "slide"
	}
	return "unknown"
}

func (m Mode) valid() bool {
	return m <= ModeSlide
}

// channel reads and writes one mode's property on a fader's target, using
// the direction's settings for recursion and locality.
type channel interface {
	get(dir Direction) (Value, bool)
	set(dir Direction, v Value)
	configured(dir Direction) Value
}

type fadeChannel struct{ f *Fader }

func (c fadeChannel) get(Direction) (Value, bool) {
	a, ok := c.f.target.ReadAlpha()
	return Scalar(a), ok
}

func (c fadeChannel) set(dir Direction, v Value) {
	writeAlphaTree(c.f.target, v.Float(), c.f.settings(dir).Recursive)
}

func (c fadeChannel) configured(dir Direction) Value {
	return Scalar(c.f.settings(dir).Alpha)
}

type scaleChannel struct{ f *Fader }

func (c scaleChannel) get(dir Direction) (Value, bool) {
	s, ok := c.f.target.ReadScale(c.f.settings(dir).Locality)
	return s.Value(), ok
}

func (c scaleChannel) set(dir Direction, v Value) {
	c.f.target.WriteScale(v.Vec3(), c.f.settings(dir).Locality)
}

func (c scaleChannel) configured(dir Direction) Value {
	return c.f.settings(dir).Scale.Value()
}

// slideChannel exposes all four anchors but writes back only left and right;
// bottom and top keep whatever the target currently holds.
type slideChannel struct{ f *Fader }

func (c slideChannel) get(Direction) (Value, bool) {
	r, ok := c.f.target.ReadAnchors()
	return r.Value(), ok
}

func (c slideChannel) set(_ Direction, v Value) {
	live, ok := c.f.target.ReadAnchors()
	if !ok {
		return
	}
	live.Left = v.X
	live.Right = v.Y
	c.f.target.WriteAnchors(live)
}

func (c slideChannel) configured(dir Direction) Value {
	return c.f.settings(dir).Rect.Value()
}
