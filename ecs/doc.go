// Package ecs provides ECS adapters for fader's lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges fader events
// (started, completed, cancelled) into a [Donburi] world as typed events.
// Subscribe to [FadeEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	stage.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
