// Package ecs provides ECS adapters for wayfinder's focus events.
//
// The primary adapter is [NewDonburiStore], which publishes focus and blur
// events into a [Donburi] world. Subscribe to [FocusEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
