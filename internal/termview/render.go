package termview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/wayfinder"
)

var (
	boxStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	focusStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
)

// Border runes: top-left, top-right, bottom-left, bottom-right, horizontal, vertical.
var (
	lightBorder = [6]rune{'┌', '┐', '└', '┘', '─', '│'}
	heavyBorder = [6]rune{'┏', '┓', '┗', '┛', '━', '┃'}
)

const (
	minBoxWidth  = 3
	minBoxHeight = 2
)

type cell struct {
	r       rune
	focused bool
}

// box is a focusable node mapped to terminal cells.
type box struct {
	name    string
	focused bool
	bounds  wayfinder.Rect
}

// collectBoxes returns the visible nodes under root that navigation can
// reach, in document order.
func collectBoxes(root *wayfinder.Node, focused *wayfinder.Node) []box {
	var out []box
	var walk func(n *wayfinder.Node)
	walk = func(n *wayfinder.Node) {
		for _, c := range n.Children() {
			if !c.Visible {
				continue
			}
			// A focusable node stands in for its subtree.
			if c.IsFocusable() {
				out = append(out, box{name: c.Name, focused: c == focused, bounds: c.GlobalBounds()})
				continue
			}
			walk(c)
		}
	}
	walk(root)
	return out
}

// Render draws the focusable nodes of s into a width x height character
// grid. Scene coordinates are scaled independently on each axis to fill
// the grid. The focused node gets a heavy border.
func Render(s *wayfinder.Scene, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	grid := make([][]cell, height)
	for y := range grid {
		grid[y] = make([]cell, width)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' '}
		}
	}

	boxes := collectBoxes(s.Root(), s.Focused())
	var extentX, extentY float64
	for _, b := range boxes {
		extentX = math.Max(extentX, b.bounds.Right())
		extentY = math.Max(extentY, b.bounds.Bottom())
	}
	if extentX > 0 && extentY > 0 {
		sx := float64(width) / extentX
		sy := float64(height) / extentY
		// Focused box last so its border wins where boxes touch.
		for _, b := range boxes {
			if !b.focused {
				drawBox(grid, b, sx, sy)
			}
		}
		for _, b := range boxes {
			if b.focused {
				drawBox(grid, b, sx, sy)
			}
		}
	}

	var sb strings.Builder
	for y, row := range grid {
		if y > 0 {
			sb.WriteByte('\n')
		}
		writeRow(&sb, row)
	}
	return sb.String()
}

func drawBox(grid [][]cell, b box, sx, sy float64) {
	h, w := len(grid), len(grid[0])
	x0 := int(math.Floor(b.bounds.Left() * sx))
	y0 := int(math.Floor(b.bounds.Top() * sy))
	x1 := max(int(math.Ceil(b.bounds.Right()*sx))-1, x0+minBoxWidth-1)
	y1 := max(int(math.Ceil(b.bounds.Bottom()*sy))-1, y0+minBoxHeight-1)
	x1, y1 = min(x1, w-1), min(y1, h-1)
	if x0 < 0 || y0 < 0 || x0 >= x1 || y0 >= y1 {
		return
	}

	border := lightBorder
	if b.focused {
		border = heavyBorder
	}
	set := func(x, y int, r rune) { grid[y][x] = cell{r: r, focused: b.focused} }
	for x := x0 + 1; x < x1; x++ {
		set(x, y0, border[4])
		set(x, y1, border[4])
	}
	for y := y0 + 1; y < y1; y++ {
		set(x0, y, border[5])
		set(x1, y, border[5])
	}
	set(x0, y0, border[0])
	set(x1, y0, border[1])
	set(x0, y1, border[2])
	set(x1, y1, border[3])

	// Label inside the box when there is room, otherwise on the top edge.
	ly := y0
	if y1-y0 >= 2 {
		ly = y0 + 1
	}
	for i, r := range []rune(b.name) {
		x := x0 + 1 + i
		if x >= x1 {
			break
		}
		set(x, ly, r)
	}
}

// writeRow renders one grid row, styling runs of cells together.
func writeRow(sb *strings.Builder, row []cell) {
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i].focused == row[start].focused {
			continue
		}
		var run strings.Builder
		for _, c := range row[start:i] {
			run.WriteRune(c.r)
		}
		style := boxStyle
		if row[start].focused {
			style = focusStyle
		}
		sb.WriteString(style.Render(run.String()))
		start = i
	}
}
