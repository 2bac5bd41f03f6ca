package wayfinder

// sceneGraph adapts a Scene to SceneGraph[*Node]. GlobalRect reads the
// cached world transforms; Focused refreshes them, and the navigator calls
// it once before reading any geometry.
type sceneGraph struct {
	s *Scene
}

var _ SceneGraph[*Node] = sceneGraph{}

// Focused ignores a focused node that was disposed or detached from the
// scene; navigation from it has no meaningful geometry.
func (g sceneGraph) Focused() (*Node, bool) {
	n := g.s.focused
	if n == nil || n.disposed || !isAncestor(g.s.root, n) {
		return nil, false
	}
	g.s.refreshTransforms()
	return n, true
}

func (g sceneGraph) Parent(n *Node) (*Node, bool) {
	return n.Parent, n.Parent != nil
}

func (g sceneGraph) FirstChild(n *Node) (*Node, bool) {
	c := n.FirstChild()
	return c, c != nil
}

func (g sceneGraph) NextSibling(n *Node) (*Node, bool) {
	c := n.NextSibling()
	return c, c != nil
}

func (g sceneGraph) GlobalRect(n *Node) Rect {
	return worldBounds(n.worldTransform, n.Width, n.Height)
}

func (g sceneGraph) IsVisible(n *Node) bool {
	return n.EffectiveVisible()
}

func (g sceneGraph) IsFocusable(n *Node) bool {
	return n.IsFocusable()
}

func (g sceneGraph) SetFocus(n *Node) {
	g.s.SetFocus(n)
}
