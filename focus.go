package wayfinder

import (
	"github.com/charmbracelet/log"
)

// DefaultEpsilon absorbs sub-pixel layout jitter in edge comparisons.
const DefaultEpsilon = 0.001

// SceneGraph is the view of a scene that directional navigation needs.
// Node handles are opaque; the graph keeps ownership of the nodes.
//
// Implementations must not change layout, visibility or structure while a
// navigation call is running. SetFocus must not synchronously start another
// navigation.
type SceneGraph[N comparable] interface {
	// Focused returns the currently focused node, if any.
	Focused() (N, bool)
	Parent(n N) (N, bool)
	FirstChild(n N) (N, bool)
	NextSibling(n N) (N, bool)
	// GlobalRect returns the node's bounds in window space.
	GlobalRect(n N) Rect
	// IsVisible reports effective visibility (the node and all ancestors).
	IsVisible(n N) bool
	IsFocusable(n N) bool
	SetFocus(n N)
}

// NavigationRequest is a single directional move, fixed for the whole walk.
type NavigationRequest struct {
	Axis      Axis
	Direction Direction
	Origin    Rect
}

// Candidate is a focusable node found while enumerating a scope.
type Candidate[N comparable] struct {
	Node N
	Rect Rect
}

// NavigatorConfig holds optional navigator settings. Zero values use defaults.
type NavigatorConfig struct {
	// Epsilon is the edge comparison tolerance. 0 means DefaultEpsilon.
	Epsilon float64
	// Logger receives debug output for each scope expansion. nil disables it.
	Logger *log.Logger
}

// Navigator moves focus between nodes of a SceneGraph.
type Navigator[N comparable] struct {
	graph  SceneGraph[N]
	eps    float64
	logger *log.Logger

	// reused across calls
	stack []N
	cands []Candidate[N]
}

// NewNavigator creates a navigator over graph.
func NewNavigator[N comparable](graph SceneGraph[N], cfg NavigatorConfig) *Navigator[N] {
	eps := cfg.Epsilon
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	return &Navigator[N]{graph: graph, eps: eps, logger: cfg.Logger}
}

// Epsilon returns the tolerance used for edge comparisons.
func (nv *Navigator[N]) Epsilon() float64 {
	return nv.eps
}

// Navigate moves focus one step in the given screen direction. It reports
// whether a target was found and focused.
func (nv *Navigator[N]) Navigate(dir CompassDirection) bool {
	return nv.Move(dir.Axis(), dir.Direction())
}

// Move moves focus one step along axis in dir. SetFocus is called exactly
// once when a target is found and never otherwise.
func (nv *Navigator[N]) Move(axis Axis, dir Direction) bool {
	target, ok := nv.Find(axis, dir)
	if !ok {
		return false
	}
	nv.graph.SetFocus(target)
	return true
}

// Find runs the search without changing focus.
//
// The search starts in the focused node's parent, skipping the branch it came
// from, and climbs one ancestor at a time until some scope yields a node on
// the requested side of the focused node's rectangle.
func (nv *Navigator[N]) Find(axis Axis, dir Direction) (N, bool) {
	var zero N
	focused, ok := nv.graph.Focused()
	if !ok {
		return zero, false
	}
	req := NavigationRequest{
		Axis:      axis,
		Direction: dir,
		Origin:    nv.graph.GlobalRect(focused).Canon(),
	}

	branch := focused
	for depth := 0; ; depth++ {
		scope, ok := nv.graph.Parent(branch)
		if !ok {
			nv.debug("no target", "axis", axis, "dir", dir, "levels", depth)
			return zero, false
		}
		nv.cands = nv.appendCandidates(nv.cands[:0], scope, branch, true)
		if best, ok := Select(nv.cands, req, nv.eps); ok {
			nv.debug("target found", "axis", axis, "dir", dir, "level", depth,
				"candidates", len(nv.cands), "winner", best.Node)
			return best.Node, true
		}
		nv.debug("expanding scope", "axis", axis, "dir", dir, "level", depth,
			"candidates", len(nv.cands))
		branch = scope
	}
}

// Candidates returns every visible, focusable node under root in document
// order. A focusable node hides its own descendants. If hasExcluded is set,
// the excluded node and its subtree are skipped.
func (nv *Navigator[N]) Candidates(root, excluded N, hasExcluded bool) []Candidate[N] {
	return nv.appendCandidates(nil, root, excluded, hasExcluded)
}

func (nv *Navigator[N]) debug(msg string, kv ...any) {
	if nv.logger != nil {
		nv.logger.Debug(msg, kv...)
	}
}
