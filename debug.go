package wayfinder

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// newLogger returns the default scene logger: stderr, info level.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "wayfinder",
		Level:  log.InfoLevel,
	})
}

// debugLogger receives tree warnings from node operations, which have no
// Scene to ask for a logger.
var debugLogger = newLogger()

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("wayfinder debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogger.Warn("tree too deep", "node", n.Name, "depth", depth, "threshold", debugMaxTreeDepth)
	}
}

const debugMaxChildCount = 1000

// debugCheckChildCount warns if a node has more than debugMaxChildCount children.
func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		debugLogger.Warn("too many children", "node", n.Name, "children", len(n.children),
			"threshold", debugMaxChildCount)
	}
}

// DumpTree returns an indented outline of the subtree rooted at n, marking
// focusable nodes and the focused node.
func (s *Scene) DumpTree(n *Node) string {
	if n == nil {
		n = s.root
	}
	var b strings.Builder
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(n.Name)
		switch {
		case n == s.focused:
			b.WriteString(" [focused]")
		case n.IsFocusable():
			b.WriteString(" [focusable]")
		}
		if !n.Visible {
			b.WriteString(" (hidden)")
		}
		b.WriteByte('\n')
		for _, c := range n.children {
			walk(c, depth+1)
		}
	}
	walk(n, 0)
	return b.String()
}
