package fader

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic; the engine is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the built-in scene-graph Target. Children inherit their parent's
// scale and alpha when world values are computed.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Animated properties
	Alpha   float64
	Scale   Vec3
	Anchors Rect

	// Anchored marks the node as laid out by screen anchors. Nodes without
	// anchors report no rect to the slide mode.
	Anchored bool

	// Metadata
	UserData any

	enabled  bool
	disposed bool
}

// NewNode creates an enabled node with alpha 1, unit scale and full-parent
// anchors.
func NewNode(name string) *Node {
	return &Node{
		ID:      nextNodeID(),
		Name:    name,
		Alpha:   1,
		Scale:   Vec3One,
		Anchors: RectFull,
		enabled: true,
	}
}

// NewAnchoredNode creates a node laid out by the given screen anchors.
func NewAnchoredNode(name string, anchors Rect) *Node {
	n := NewNode(name)
	n.Anchors = anchors
	n.Anchored = true
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("fader: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("fader: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("fader: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Find returns the first node named name in depth-first order, starting
// with n itself, or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk calls fn for n and every descendant in depth-first order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// --- Enable state ---

// Enabled reports the node's own enabled flag.
func (n *Node) Enabled() bool {
	return n.enabled
}

// SetEnabled sets the node's own enabled flag.
func (n *Node) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// EnabledInHierarchy reports whether n and all its ancestors are enabled.
func (n *Node) EnabledInHierarchy() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.enabled {
			return false
		}
	}
	return true
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Target implementation ---

// ReadAlpha implements Target.
func (n *Node) ReadAlpha() (float64, bool) {
	return n.Alpha, !n.disposed
}

// WriteAlpha implements Target.
func (n *Node) WriteAlpha(a float64) {
	if n.disposed {
		return
	}
	n.SetAlpha(a)
}

// ReadScale implements Target.
func (n *Node) ReadScale(l Locality) (Vec3, bool) {
	if n.disposed {
		return Vec3{}, false
	}
	if l == LocalityWorld {
		return n.WorldScale(), true
	}
	return n.Scale, true
}

// WriteScale implements Target.
func (n *Node) WriteScale(s Vec3, l Locality) {
	if n.disposed {
		return
	}
	if l == LocalityWorld {
		n.SetWorldScale(s)
		return
	}
	n.SetScale(s)
}

// ReadAnchors implements Target.
func (n *Node) ReadAnchors() (Rect, bool) {
	if n.disposed || !n.Anchored {
		return Rect{}, false
	}
	return n.Anchors, true
}

// WriteAnchors implements Target. No-op on nodes without anchors.
func (n *Node) WriteAnchors(r Rect) {
	if n.disposed || !n.Anchored {
		return
	}
	n.Anchors = r
}

// Active implements Target.
func (n *Node) Active() bool { return n.enabled }

// SetActive implements Target.
func (n *Node) SetActive(active bool) { n.enabled = active }

// SameAs implements Target.
func (n *Node) SameAs(other Target) bool {
	o, ok := other.(*Node)
	return ok && o == n
}

// ChildTargets implements Target.
func (n *Node) ChildTargets() []Target {
	out := make([]Target, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// TargetName implements Named.
func (n *Node) TargetName() string { return n.Name }

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
