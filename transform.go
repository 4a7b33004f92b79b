package fader

// --- Property setters ---

// SetAlpha sets the node's own alpha.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
}

// SetScale sets the node's local scale.
func (n *Node) SetScale(s Vec3) {
	n.Scale = s
}

// SetAnchors sets all four anchors and marks the node as anchored.
func (n *Node) SetAnchors(r Rect) {
	n.Anchors = r
	n.Anchored = true
}

// --- World values ---

// WorldAlpha returns the node's alpha multiplied by every ancestor's alpha.
func (n *Node) WorldAlpha() float64 {
	a := 1.0
	for p := n; p != nil; p = p.Parent {
		a *= p.Alpha
	}
	return a
}

// WorldScale returns the component-wise product of the node's scale and
// every ancestor's scale.
func (n *Node) WorldScale() Vec3 {
	s := Vec3One
	for p := n; p != nil; p = p.Parent {
		s = mulVec3(s, p.Scale)
	}
	return s
}

// SetWorldScale sets the local scale so that WorldScale returns s. A parent
// scale component of zero cannot be inverted; that component is set to s
// directly.
func (n *Node) SetWorldScale(s Vec3) {
	if n.Parent == nil {
		n.Scale = s
		return
	}
	ps := n.Parent.WorldScale()
	n.Scale = Vec3{
		X: divOrKeep(s.X, ps.X),
		Y: divOrKeep(s.Y, ps.Y),
		Z: divOrKeep(s.Z, ps.Z),
	}
}

// WorldAnchors maps the node's anchors through its anchored ancestors into
// root space. Anchors are in [-1, 1] of the parent's region.
func (n *Node) WorldAnchors() Rect {
	r := n.Anchors
	for p := n.Parent; p != nil; p = p.Parent {
		if !p.Anchored {
			continue
		}
		r = Rect{
			Left:   mapAnchor(r.Left, p.Anchors.Left, p.Anchors.Right),
			Right:  mapAnchor(r.Right, p.Anchors.Left, p.Anchors.Right),
			Bottom: mapAnchor(r.Bottom, p.Anchors.Bottom, p.Anchors.Top),
			Top:    mapAnchor(r.Top, p.Anchors.Bottom, p.Anchors.Top),
		}
	}
	return r
}

func mapAnchor(v, lo, hi float64) float64 {
	return lo + (v+1)/2*(hi-lo)
}

func mulVec3(a, b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

func divOrKeep(v, d float64) float64 {
	if d > -1e-12 && d < 1e-12 {
		return v
	}
	return v / d
}
