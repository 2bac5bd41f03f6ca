package wayfinder

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestGameUpdate(t *testing.T) {
	s, n := threeInRow(t)
	s.SetFocus(n[0])
	g := &game{scene: s, width: 320, height: 240}

	assert.NoError(t, g.Update())

	s.InjectMove(Right)
	calls := 0
	s.SetUpdateFunc(func() error {
		calls++
		if s.Focused() == n[1] {
			return ebiten.Termination
		}
		return nil
	})
	err := g.Update()
	assert.True(t, errors.Is(err, ebiten.Termination))
	assert.Equal(t, 1, calls)

	w, h := g.Layout(1000, 1000)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}
