// Package ecs provides ECS adapters for fader.
package ecs

import (
	"github.com/phanxgames/fader"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// FadeEventType is the Donburi event type for fader lifecycle events.
// Subscribe to this in your ECS systems to react to show/hide transitions.
var FadeEventType = events.NewEventType[fader.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Fader events are published to FadeEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) fader.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event fader.Event) {
	FadeEventType.Publish(s.world, event)
}
