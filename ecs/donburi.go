package ecs

import (
	"github.com/phanxgames/wayfinder"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// FocusEventType is the Donburi event type for wayfinder focus events.
var FocusEventType = events.NewEventType[wayfinder.FocusEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Focus events are published to FocusEventType and delivered when the
// world's events are processed.
func NewDonburiStore(world donburi.World) wayfinder.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event wayfinder.FocusEvent) {
	FocusEventType.Publish(s.world, event)
}
