package wayfinder

// Layout arranges a node's children. Layouts run once when called; they are
// not re-applied automatically when children change.
type Layout uint8

const (
	LayoutNone   Layout = iota // children keep their own positions
	LayoutRow                  // left to right
	LayoutColumn               // top to bottom
	LayoutGrid                 // rows of Columns cells
)

// LayoutSpec describes how Arrange positions children.
type LayoutSpec struct {
	Kind    Layout
	Spacing float64
	Padding float64
	// Columns is the number of cells per row for LayoutGrid (minimum 1).
	Columns int
}

// Arrange positions n's children according to spec and grows n to enclose
// them. Children with Visible=false still take up space.
func Arrange(n *Node, spec LayoutSpec) {
	switch spec.Kind {
	case LayoutRow:
		arrangeLine(n, spec, Horizontal)
	case LayoutColumn:
		arrangeLine(n, spec, Vertical)
	case LayoutGrid:
		arrangeGrid(n, spec)
	default:
		fitChildren(n, spec.Padding)
	}
}

func arrangeLine(n *Node, spec LayoutSpec, axis Axis) {
	pos := spec.Padding
	for _, c := range n.children {
		if axis == Horizontal {
			c.SetPosition(pos, spec.Padding)
			pos += c.Width*c.ScaleX + spec.Spacing
		} else {
			c.SetPosition(spec.Padding, pos)
			pos += c.Height*c.ScaleY + spec.Spacing
		}
	}
	fitChildren(n, spec.Padding)
}

func arrangeGrid(n *Node, spec LayoutSpec) {
	cols := max(spec.Columns, 1)
	var cellW, cellH float64
	for _, c := range n.children {
		cellW = max(cellW, c.Width*c.ScaleX)
		cellH = max(cellH, c.Height*c.ScaleY)
	}
	for i, c := range n.children {
		col, row := i%cols, i/cols
		c.SetPosition(
			spec.Padding+float64(col)*(cellW+spec.Spacing),
			spec.Padding+float64(row)*(cellH+spec.Spacing),
		)
	}
	fitChildren(n, spec.Padding)
}

// fitChildren grows n's bounds to cover every child's local box plus padding.
func fitChildren(n *Node, padding float64) {
	for _, c := range n.children {
		b := worldBounds(computeLocalTransform(c), c.Width, c.Height)
		n.Width = max(n.Width, b.Right()+padding)
		n.Height = max(n.Height, b.Bottom()+padding)
	}
}
