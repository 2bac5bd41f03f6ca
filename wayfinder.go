package wayfinder

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default node color.
var ColorWhite = Color{1, 1, 1, 1}

// DefaultFocusColor is the fill used by Scene.Draw for the focused node.
var DefaultFocusColor = Color{1, 0.85, 0.2, 1}

// Vec2 is a 2D vector used for positions and sizes.
type Vec2 struct {
	X, Y float64
}

// along returns the component of v on axis.
func (v Vec2) along(axis Axis) float64 {
	if axis == Horizontal {
		return v.X
	}
	return v.Y
}

// whitePixel is a 1x1 white image scaled and tinted to draw solid boxes.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Left returns the minimum X edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the maximum X edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the minimum Y edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the maximum Y edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Canon returns r with negative sizes folded into the origin so that
// Width and Height are never negative.
func (r Rect) Canon() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// span returns the rectangle's extent along axis as (min, max).
func (r Rect) span(axis Axis) (float64, float64) {
	if axis == Horizontal {
		return r.Left(), r.Right()
	}
	return r.Top(), r.Bottom()
}

// boundsOf returns the axis-aligned box around a set of points.
func boundsOf(pts []Vec2) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Axis is the axis along which a focus move is requested.
type Axis uint8

const (
	Horizontal Axis = iota // x axis (left/right)
	Vertical               // y axis (up/down)
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// other returns the perpendicular axis.
func (a Axis) other() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Direction is the sign of a focus move along its axis.
type Direction uint8

const (
	Forward  Direction = iota // increasing coordinate (right/down)
	Backward                  // decreasing coordinate (left/up)
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// CompassDirection is a screen direction bound to a navigation command.
type CompassDirection uint8

const (
	Up CompassDirection = iota
	Down
	Left
	Right
)

var compassNames = [...]string{"up", "down", "left", "right"}

func (c CompassDirection) String() string {
	if int(c) < len(compassNames) {
		return compassNames[c]
	}
	return "unknown"
}

// Axis returns the axis the compass direction moves along.
func (c CompassDirection) Axis() Axis {
	if c == Up || c == Down {
		return Vertical
	}
	return Horizontal
}

// Direction returns the sign of the move along Axis.
func (c CompassDirection) Direction() Direction {
	if c == Up || c == Left {
		return Backward
	}
	return Forward
}

// ParseCompassDirection maps "up", "down", "left" or "right" to a
// CompassDirection.
func ParseCompassDirection(s string) (CompassDirection, bool) {
	for i, name := range compassNames {
		if s == name {
			return CompassDirection(i), true
		}
	}
	return 0, false
}

// FocusMode tags what kind of focus participant a node is.
type FocusMode uint8

const (
	FocusNone  FocusMode = iota // never focusable; searched through
	FocusInput                  // text-input-like leaf control, always focusable
	FocusScope                  // container focusable only while ScopeEnabled
)

// EventType identifies a kind of focus event.
type EventType uint8

const (
	EventFocus EventType = iota // a node gained focus
	EventBlur                   // a node lost focus
)
