package wayfinder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const delta = 1e-9

func assertMatrix(t *testing.T, want, got [6]float64) {
	t.Helper()
	for i := range got {
		assert.InDelta(t, want[i], got[i], delta, "element %d (full: %v vs %v)", i, got, want)
	}
}

func assertRect(t *testing.T, want, got Rect) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "X")
	assert.InDelta(t, want.Y, got.Y, delta, "Y")
	assert.InDelta(t, want.Width, got.Width, delta, "Width")
	assert.InDelta(t, want.Height, got.Height, delta, "Height")
}

// --- computeLocalTransform ---

func TestLocalTransform(t *testing.T) {
	tests := []struct {
		name  string
		setup func(n *Node)
		want  [6]float64
	}{
		{"identity", func(n *Node) {}, [6]float64{1, 0, 0, 1, 0, 0}},
		{"translation", func(n *Node) { n.X, n.Y = 10, 20 }, [6]float64{1, 0, 0, 1, 10, 20}},
		{"scale", func(n *Node) { n.ScaleX, n.ScaleY = 2, 3 }, [6]float64{2, 0, 0, 3, 0, 0}},
		// cos(90)=0, sin(90)=1
		{"rotation 90", func(n *Node) { n.Rotation = math.Pi / 2 }, [6]float64{0, 1, -1, 0, 0, 0}},
		// T(100,200) * T(-16,-16)
		{"pivot", func(n *Node) { n.X, n.Y, n.PivotX, n.PivotY = 100, 200, 16, 16 }, [6]float64{1, 0, 0, 1, 84, 184}},
		{"skew", func(n *Node) { n.SkewX = math.Pi / 4 }, [6]float64{1, 0, 1, 1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewContainer("test")
			tt.setup(n)
			assertMatrix(t, tt.want, computeLocalTransform(n))
		})
	}
}

// --- matrix helpers ---

func TestInvertAffineRoundTrip(t *testing.T) {
	m := [6]float64{2, 0.5, -0.3, 1.5, 10, -4}
	assertMatrix(t, identityTransform, multiplyAffine(m, invertAffine(m)))
}

func TestInvertAffineSingular(t *testing.T) {
	assertMatrix(t, identityTransform, invertAffine([6]float64{0, 0, 0, 0, 5, 5}))
}

// --- world transforms ---

func TestUpdateWorldTransformNested(t *testing.T) {
	root := NewContainer("root")
	parent := NewContainer("parent")
	parent.SetPosition(100, 50)
	parent.SetScale(2, 2)
	child := NewContainer("child")
	child.SetPosition(10, 5)
	root.AddChild(parent)
	parent.AddChild(child)

	updateWorldTransform(root, identityTransform, false)
	assertMatrix(t, [6]float64{2, 0, 0, 2, 120, 60}, child.worldTransform)
	assertMatrix(t, child.worldTransform, composeWorldTransform(child))
}

func TestUpdateWorldTransformSkipsClean(t *testing.T) {
	root := NewContainer("root")
	child := NewContainer("child")
	root.AddChild(child)
	updateWorldTransform(root, identityTransform, false)

	// Direct field writes without MarkDirty are not picked up.
	child.X = 99
	updateWorldTransform(root, identityTransform, false)
	assert.Equal(t, 0.0, child.worldTransform[4])

	child.MarkDirty()
	updateWorldTransform(root, identityTransform, false)
	assert.Equal(t, 99.0, child.worldTransform[4])
}

// --- bounds ---

func TestGlobalBounds(t *testing.T) {
	root := NewContainer("root")
	panel := NewContainer("panel")
	panel.SetPosition(200, 100)
	root.AddChild(panel)

	item := NewInput("item", 40, 20)
	item.SetPosition(10, 10)
	panel.AddChild(item)
	assertRect(t, Rect{X: 210, Y: 110, Width: 40, Height: 20}, item.GlobalBounds())

	panel.SetScale(2, 0.5)
	assertRect(t, Rect{X: 220, Y: 105, Width: 80, Height: 10}, item.GlobalBounds())
}

func TestGlobalBoundsRotated(t *testing.T) {
	n := NewInput("n", 40, 20)
	n.SetPosition(100, 100)
	n.SetRotation(math.Pi / 2)
	// (w,0) -> (0,w), (0,h) -> (-h,0)
	assertRect(t, Rect{X: 80, Y: 100, Width: 20, Height: 40}, n.GlobalBounds())
}

func TestLocalWorldRoundTrip(t *testing.T) {
	root := NewContainer("root")
	n := NewContainer("n")
	n.SetPosition(30, 40)
	n.SetRotation(0.7)
	n.SetScale(1.5, 0.5)
	root.AddChild(n)

	wx, wy := n.LocalToWorld(3, 4)
	lx, ly := n.WorldToLocal(wx, wy)
	assert.InDelta(t, 3, lx, 1e-9)
	assert.InDelta(t, 4, ly, 1e-9)
}
