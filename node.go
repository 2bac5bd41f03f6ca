package wayfinder

// FocusContext carries focus change data to callbacks.
type FocusContext struct {
	// Node is the node that gained focus (nil when focus was cleared).
	Node *Node
	// Previous is the node that lost focus (nil when nothing was focused).
	Previous *Node
	EntityID uint32
	UserData any
}

// nodeIDCounter is a plain counter (no atomic: scenes are single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the scene graph element. Containers, focus scopes and input
// controls are all the same flat struct; FocusMode tells them apart.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node
	index    int // position in Parent.children

	// Transform (local)
	X, Y         float64
	ScaleX       float64
	ScaleY       float64
	Rotation     float64
	SkewX, SkewY float64
	PivotX       float64
	PivotY       float64

	// Local bounds, with the origin at (0, 0).
	Width, Height float64

	// Computed by updateWorldTransform.
	worldTransform [6]float64
	transformDirty bool

	// Visibility & focus
	Visible      bool
	Focus        FocusMode
	ScopeEnabled bool

	// Drawing
	Color Color

	// Metadata
	UserData any
	EntityID uint32

	// Per-node callbacks (nil by default)
	OnFocus func(FocusContext)
	OnBlur  func(FocusContext)

	disposed bool
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Color = ColorWhite
	n.Visible = true
	n.transformDirty = true
	n.index = -1
}

// NewContainer creates a node that is searched through but never focused.
func NewContainer(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewInput creates an always-focusable leaf control of the given size.
func NewInput(name string, w, h float64) *Node {
	n := &Node{Name: name, Focus: FocusInput, Width: w, Height: h}
	nodeDefaults(n)
	return n
}

// NewFocusScope creates a container that can itself take focus while
// enabled. An enabled scope stands in for all of its children during
// navigation.
func NewFocusScope(name string, enabled bool) *Node {
	n := &Node{Name: name, Focus: FocusScope, ScopeEnabled: enabled}
	nodeDefaults(n)
	return n
}

// String returns the node name, or "<nil>".
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return n.Name
}

// IsFocusable reports whether the node can take focus directly.
func (n *Node) IsFocusable() bool {
	switch n.Focus {
	case FocusInput:
		return true
	case FocusScope:
		return n.ScopeEnabled
	}
	return false
}

// EffectiveVisible reports whether the node and all of its ancestors are visible.
func (n *Node) EffectiveVisible() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.Visible {
			return false
		}
	}
	return true
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	n.AddChildAt(child, -1)
}

// AddChildAt inserts child at the given index; -1 appends.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("wayfinder: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("wayfinder: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index == -1 {
		index = len(n.children)
	}
	if index < 0 || index > len(n.children) {
		panic("wayfinder: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.reindex(index)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("wayfinder: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
		child.index = -1
		markSubtreeDirty(child)
	}
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// NextSibling returns the child after n in its parent, or nil.
func (n *Node) NextSibling() *Node {
	p := n.Parent
	if p == nil || n.index+1 >= len(p.children) {
		return nil
	}
	return p.children[n.index+1]
}

// SetChildIndex moves child to a new index among its siblings.
func (n *Node) SetChildIndex(child *Node, index int) {
	if child.Parent != n {
		panic("wayfinder: child's parent is not this node")
	}
	if index < 0 || index >= len(n.children) {
		panic("wayfinder: child index out of range")
	}
	old := child.index
	if old == index {
		return
	}
	if old < index {
		copy(n.children[old:], n.children[old+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:old])
	}
	n.children[index] = child
	n.reindex(min(old, index))
}

// FindChild returns the first descendant (depth-first, document order)
// with the given name, or nil.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
		if found := c.FindChild(name); found != nil {
			return found
		}
	}
	return nil
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
	n.index = -1
	n.UserData = nil
	n.OnFocus = nil
	n.OnBlur = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	i := child.index
	if i < 0 || i >= len(n.children) || n.children[i] != child {
		return
	}
	copy(n.children[i:], n.children[i+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.index = -1
	n.reindex(i)
}

// reindex refreshes the cached sibling index of children from position i on.
func (n *Node) reindex(i int) {
	for ; i < len(n.children); i++ {
		n.children[i].index = i
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
