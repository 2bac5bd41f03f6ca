package wayfinder

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Draw fills the screen with ClearColor and draws every visible node that
// has a size as a solid box in painter order. The focused node uses
// FocusColor.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.toRGBA())
	s.refreshTransforms()
	s.drawNode(screen, s.root)
}

func (s *Scene) drawNode(screen *ebiten.Image, n *Node) {
	if !n.Visible {
		return
	}
	if n.Width > 0 && n.Height > 0 {
		c := n.Color
		if n == s.focused {
			c = s.FocusColor
		}
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(n.Width, n.Height)
		op.GeoM.Concat(geoMFromAffine(n.worldTransform))
		a := float32(c.A)
		op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
		screen.DrawImage(whitePixel, &op)
	}
	for _, child := range n.children {
		s.drawNode(screen, child)
	}
}

// geoMFromAffine converts a [a, b, c, d, tx, ty] matrix to an ebiten.GeoM.
func geoMFromAffine(t [6]float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, t[0])
	m.SetElement(1, 0, t[1])
	m.SetElement(0, 1, t[2])
	m.SetElement(1, 1, t[3])
	m.SetElement(0, 2, t[4])
	m.SetElement(1, 2, t[5])
	return m
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
