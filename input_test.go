package wayfinder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompassDirection(t *testing.T) {
	tests := []struct {
		dir  CompassDirection
		name string
		axis Axis
		way  Direction
	}{
		{Up, "up", Vertical, Backward},
		{Down, "down", Vertical, Forward},
		{Left, "left", Horizontal, Backward},
		{Right, "right", Horizontal, Forward},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.dir.String())
			assert.Equal(t, tt.axis, tt.dir.Axis())
			assert.Equal(t, tt.way, tt.dir.Direction())

			got, ok := ParseCompassDirection(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.dir, got)
		})
	}
	_, ok := ParseCompassDirection("sideways")
	assert.False(t, ok)
}

func TestProcessInputWithoutKeys(t *testing.T) {
	s, n := threeInRow(t)
	s.SetFocus(n[1])
	// No ebiten loop is running, so no key reads as pressed.
	s.processInput()
	assert.Same(t, n[1], s.Focused())
}
