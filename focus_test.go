package wayfinder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- arena graph ---

const none = -1

type arenaNode struct {
	parent, first, last, next int
	rect                      Rect
	hidden                    bool
	focusable                 bool
}

// arena is an index-based SceneGraph used to test the navigator without a Scene.
type arena struct {
	nodes    []arenaNode
	focused  int
	setCalls []int
}

func newArena() *arena {
	return &arena{
		nodes:   []arenaNode{{parent: none, first: none, last: none, next: none}},
		focused: none,
	}
}

func (a *arena) add(parent int, r Rect, focusable bool) int {
	id := len(a.nodes)
	a.nodes = append(a.nodes, arenaNode{parent: parent, first: none, last: none, next: none, rect: r, focusable: focusable})
	p := &a.nodes[parent]
	if p.last == none {
		p.first = id
	} else {
		a.nodes[p.last].next = id
	}
	p.last = id
	return id
}

func (a *arena) group(parent int) int { return a.add(parent, Rect{}, false) }

func (a *arena) item(parent int, x, y, w, h float64) int {
	return a.add(parent, Rect{X: x, Y: y, Width: w, Height: h}, true)
}

func opt(i int) (int, bool) { return i, i != none }

func (a *arena) Focused() (int, bool) { return opt(a.focused) }
func (a *arena) Parent(n int) (int, bool) { return opt(a.nodes[n].parent) }
func (a *arena) FirstChild(n int) (int, bool) { return opt(a.nodes[n].first) }
func (a *arena) NextSibling(n int) (int, bool) { return opt(a.nodes[n].next) }
func (a *arena) GlobalRect(n int) Rect { return a.nodes[n].rect }
func (a *arena) IsFocusable(n int) bool { return a.nodes[n].focusable }
func (a *arena) SetFocus(n int) { a.focused = n; a.setCalls = append(a.setCalls, n) }
func (a *arena) IsVisible(n int) bool {
	for ; n != none; n = a.nodes[n].parent {
		if a.nodes[n].hidden {
			return false
		}
	}
	return true
}

func newArenaNavigator(a *arena) *Navigator[int] {
	return NewNavigator[int](a, NavigatorConfig{})
}

// --- scenarios ---

func TestNavigate_ThreeBoxesInARow(t *testing.T) {
	a := newArena()
	left := a.item(0, 0, 0, 8, 8)
	mid := a.item(0, 10, 0, 8, 8)
	right := a.item(0, 20, 0, 8, 8)
	nav := newArenaNavigator(a)

	a.focused = mid
	require.True(t, nav.Move(Horizontal, Forward))
	assert.Equal(t, right, a.focused)

	a.focused = mid
	require.True(t, nav.Move(Horizontal, Backward))
	assert.Equal(t, left, a.focused)

	assert.Equal(t, []int{right, left}, a.setCalls)
}

func TestNavigate_AlignedBeatsUnaligned(t *testing.T) {
	a := newArena()
	f := a.item(0, 0, 0, 10, 10)
	unaligned := a.item(0, 12, 15, 10, 10) // first in document order
	aligned := a.item(0, 12, 0, 10, 10)
	a.focused = f

	require.True(t, newArenaNavigator(a).Navigate(Right))
	assert.Equal(t, aligned, a.focused)
	assert.NotEqual(t, unaligned, a.focused)
}

func TestNavigate_InvisibleNearestIsSkipped(t *testing.T) {
	a := newArena()
	f := a.item(0, 0, 0, 10, 10)
	hidden := a.item(0, 12, 0, 10, 10)
	a.nodes[hidden].hidden = true
	visible := a.item(0, 40, 0, 10, 10)
	a.focused = f

	require.True(t, newArenaNavigator(a).Navigate(Right))
	assert.Equal(t, visible, a.focused)
}

func TestNavigate_InvisibleOnlyCandidateIsNoOp(t *testing.T) {
	a := newArena()
	f := a.item(0, 0, 0, 10, 10)
	hidden := a.item(0, 12, 0, 10, 10)
	a.nodes[hidden].hidden = true
	a.focused = f

	assert.False(t, newArenaNavigator(a).Navigate(Right))
	assert.Equal(t, f, a.focused)
	assert.Empty(t, a.setCalls)
}

func TestNavigate_HiddenGroupHidesDescendants(t *testing.T) {
	a := newArena()
	f := a.item(0, 0, 0, 10, 10)
	g := a.group(0)
	a.nodes[g].hidden = true
	a.item(g, 12, 0, 10, 10)
	far := a.item(0, 80, 0, 10, 10)
	a.focused = f

	require.True(t, newArenaNavigator(a).Navigate(Right))
	assert.Equal(t, far, a.focused)
}

func TestNavigate_NearestWinsRegardlessOfAlignment(t *testing.T) {
	a := newArena()
	f := a.item(0, 0, 0, 10, 10)
	// aligned, primary 6
	a.item(0, 16, 0, 10, 10)
	// unaligned, primary 5
	near := a.item(0, 15, 500, 10, 10)
	a.focused = f

	require.True(t, newArenaNavigator(a).Navigate(Right))
	assert.Equal(t, near, a.focused)
}

func TestNavigate_NearTieGoesToAlignment(t *testing.T) {
	a := newArena()
	f := a.item(0, 0, 0, 10, 10)
	// primary 2, unaligned
	a.item(0, 12, 30, 10, 10)
	// primary 2.0005, overlaps vertically
	aligned := a.item(0, 12.0005, 5, 10, 10)
	a.focused = f

	require.True(t, newArenaNavigator(a).Navigate(Right))
	assert.Equal(t, aligned, a.focused)
}

func TestNavigate_FullTieKeepsDocumentOrder(t *testing.T) {
	a := newArena()
	f := a.item(0, 0, 10, 10, 10)
	first := a.item(0, 12, 0, 10, 10)
	a.item(0, 12, 20, 10, 10) // mirror image: same primary and orthogonal distance
	a.focused = f

	require.True(t, newArenaNavigator(a).Navigate(Right))
	assert.Equal(t, first, a.focused)
}

func TestNavigate_FlushNeighborWithinTolerance(t *testing.T) {
	a := newArena()
	f := a.item(0, 0, 0, 10, 10)
	flush := a.item(0, 9.9995, 0, 10, 10) // overlaps by less than epsilon
	a.focused = f

	require.True(t, newArenaNavigator(a).Navigate(Right))
	assert.Equal(t, flush, a.focused)
}

func TestNavigate_Vertical(t *testing.T) {
	a := newArena()
	top := a.item(0, 0, 0, 10, 10)
	mid := a.item(0, 0, 20, 10, 10)
	bottom := a.item(0, 0, 40, 10, 10)
	nav := newArenaNavigator(a)

	a.focused = mid
	require.True(t, nav.Navigate(Up))
	assert.Equal(t, top, a.focused)

	a.focused = mid
	require.True(t, nav.Navigate(Down))
	assert.Equal(t, bottom, a.focused)

	a.focused = mid
	assert.False(t, nav.Navigate(Left))
	assert.False(t, nav.Navigate(Right))
}

// --- scope expansion ---

func TestNavigate_EscalatesToWiderScope(t *testing.T) {
	a := newArena()
	left := a.group(0)
	f := a.item(left, 0, 0, 10, 10)
	a.item(left, 0, 20, 10, 10) // below, not to the right
	right := a.group(0)
	target := a.item(right, 50, 0, 10, 10)
	a.focused = f

	require.True(t, newArenaNavigator(a).Navigate(Right))
	assert.Equal(t, target, a.focused)
}

func TestNavigate_NarrowScopePreemptsNearerWideCandidate(t *testing.T) {
	a := newArena()
	inner := a.group(0)
	f := a.item(inner, 0, 0, 10, 10)
	sibling := a.item(inner, 40, 0, 10, 10)
	a.item(0, 15, 0, 10, 10) // nearer, but only reachable from the root scope
	a.focused = f

	require.True(t, newArenaNavigator(a).Navigate(Right))
	assert.Equal(t, sibling, a.focused)
}

func TestNavigate_SkipsBranchItCameFrom(t *testing.T) {
	a := newArena()
	g := a.group(0)
	a.item(g, 0, 0, 10, 10)
	last := a.item(g, 20, 0, 10, 10)
	a.focused = last

	assert.False(t, newArenaNavigator(a).Navigate(Right))
	assert.Empty(t, a.setCalls)
}

func TestNavigate_EnabledScopeHidesChildren(t *testing.T) {
	a := newArena()
	f := a.item(0, 0, 0, 10, 10)
	scope := a.add(0, Rect{X: 20, Y: 0, Width: 40, Height: 10}, true)
	a.item(scope, 20, 0, 10, 10)
	a.focused = f

	require.True(t, newArenaNavigator(a).Navigate(Right))
	assert.Equal(t, scope, a.focused)
}

func TestNavigate_DisabledScopeIsSearchedThrough(t *testing.T) {
	a := newArena()
	f := a.item(0, 0, 0, 10, 10)
	scope := a.add(0, Rect{X: 20, Y: 0, Width: 40, Height: 10}, false)
	child := a.item(scope, 30, 0, 10, 10)
	a.focused = f

	require.True(t, newArenaNavigator(a).Navigate(Right))
	assert.Equal(t, child, a.focused)
}

// --- no-op cases ---

func TestNavigate_NothingFocused(t *testing.T) {
	a := newArena()
	a.item(0, 0, 0, 10, 10)

	assert.False(t, newArenaNavigator(a).Navigate(Right))
	assert.Empty(t, a.setCalls)
}

func TestNavigate_RootFocused(t *testing.T) {
	a := newArena()
	a.item(0, 20, 0, 10, 10)
	a.focused = 0

	assert.False(t, newArenaNavigator(a).Navigate(Right))
	assert.Empty(t, a.setCalls)
}

// --- read-only phases ---

func TestFindAndCandidatesAreRepeatable(t *testing.T) {
	a := newArena()
	g := a.group(0)
	f := a.item(g, 0, 0, 10, 10)
	a.item(g, 0, 20, 10, 10)
	a.item(0, 30, 0, 10, 10)
	a.item(0, 30, 30, 10, 10)
	a.focused = f
	nav := newArenaNavigator(a)

	first, ok1 := nav.Find(Horizontal, Forward)
	second, ok2 := nav.Find(Horizontal, Forward)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
	assert.Equal(t, f, a.focused, "Find must not move focus")
	assert.Empty(t, a.setCalls)

	c1 := nav.Candidates(0, g, true)
	c2 := nav.Candidates(0, g, true)
	assert.Equal(t, c1, c2)
	assert.Len(t, c1, 2)
}

func TestCandidates_DocumentOrder(t *testing.T) {
	a := newArena()
	g1 := a.group(0)
	n1 := a.item(g1, 0, 0, 1, 1)
	g2 := a.group(g1)
	n2 := a.item(g2, 1, 0, 1, 1)
	n3 := a.item(g1, 2, 0, 1, 1)
	n4 := a.item(0, 3, 0, 1, 1)
	nav := newArenaNavigator(a)

	var got []int
	for _, c := range nav.Candidates(0, none, false) {
		got = append(got, c.Node)
	}
	assert.Equal(t, []int{n1, n2, n3, n4}, got)

	got = got[:0]
	for _, c := range nav.Candidates(0, g2, true) {
		got = append(got, c.Node)
	}
	assert.Equal(t, []int{n1, n3, n4}, got)
}

func TestCandidates_DeepTree(t *testing.T) {
	a := newArena()
	parent := 0
	for i := 0; i < 10000; i++ {
		parent = a.group(parent)
	}
	leaf := a.item(parent, 5, 5, 1, 1)

	cands := newArenaNavigator(a).Candidates(0, none, false)
	require.Len(t, cands, 1)
	assert.Equal(t, leaf, cands[0].Node)
}

func TestNavigatorEpsilon(t *testing.T) {
	a := newArena()
	assert.Equal(t, DefaultEpsilon, NewNavigator[int](a, NavigatorConfig{}).Epsilon())
	assert.Equal(t, 0.5, NewNavigator[int](a, NavigatorConfig{Epsilon: 0.5}).Epsilon())
}

func TestNavigate_CustomEpsilon(t *testing.T) {
	a := newArena()
	f := a.item(0, 0, 0, 10, 10)
	overlap := a.item(0, 9, 0, 10, 10) // overlaps by 1
	a.focused = f

	assert.False(t, NewNavigator[int](a, NavigatorConfig{}).Navigate(Right))
	require.True(t, NewNavigator[int](a, NavigatorConfig{Epsilon: 1.5}).Navigate(Right))
	assert.Equal(t, overlap, a.focused)
}
