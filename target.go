package fader

// Target is the capability a Fader animates. Renderable kinds (meshes, text,
// screen rects) adapt to it; Node is the built-in implementation.
//
// The Read methods report false when the target has no such property, in
// which case a fader falls back to its configured values.
type Target interface {
	ReadAlpha() (float64, bool)
	WriteAlpha(a float64)

	ReadScale(l Locality) (Vec3, bool)
	WriteScale(s Vec3, l Locality)

	// ReadAnchors returns all four anchors; WriteAnchors receives all four,
	// though the slide mode only changes Left and Right.
	ReadAnchors() (Rect, bool)
	WriteAnchors(r Rect)

	Active() bool
	SetActive(active bool)

	// SameAs reports identity, not equality of state.
	SameAs(other Target) bool

	// ChildTargets lists direct children for recursive fades.
	ChildTargets() []Target
}

// Named is implemented by targets that carry a name. A Fader created
// without an explicit name takes its target's name.
type Named interface {
	TargetName() string
}

// writeAlphaTree writes a to t and, when recursive, to every transitive
// descendant of t.
func writeAlphaTree(t Target, a float64, recursive bool) {
	t.WriteAlpha(a)
	if !recursive {
		return
	}
	for _, c := range t.ChildTargets() {
		writeAlphaTree(c, a, true)
	}
}

func targetName(t Target) string {
	if n, ok := t.(Named); ok {
		return n.TargetName()
	}
	return ""
}
