package wayfinder

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBindings maps each compass direction to the keys that trigger it.
type KeyBindings map[CompassDirection][]ebiten.Key

// DefaultKeyBindings binds the arrow keys.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Up:    {ebiten.KeyArrowUp},
		Down:  {ebiten.KeyArrowDown},
		Left:  {ebiten.KeyArrowLeft},
		Right: {ebiten.KeyArrowRight},
	}
}

// Lookup returns the direction bound to key.
func (kb KeyBindings) Lookup(key ebiten.Key) (CompassDirection, bool) {
	for _, dir := range compassOrder {
		for _, k := range kb[dir] {
			if k == key {
				return dir, true
			}
		}
	}
	return 0, false
}

// compassOrder fixes the polling order so that simultaneous presses resolve
// the same way every frame.
var compassOrder = [...]CompassDirection{Up, Down, Left, Right}

// KeyBindings returns the scene's active key bindings.
func (s *Scene) KeyBindings() KeyBindings {
	return s.keys
}

// processInput is called from Scene.Update. A pending injected move takes
// the place of keyboard input for the frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if dir, ok := s.pressedDirection(); ok {
		s.MoveFocus(dir)
	}
}

// pressedDirection returns the first direction whose key went down this frame.
func (s *Scene) pressedDirection() (CompassDirection, bool) {
	for _, dir := range compassOrder {
		for _, k := range s.keys[dir] {
			if inpututil.IsKeyJustPressed(k) {
				return dir, true
			}
		}
	}
	return 0, false
}
