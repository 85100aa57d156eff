// Package ecs provides ECS adapters for flywheel.
package ecs

import (
	"github.com/phanxgames/flywheel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SelectionEventType carries every completed flywheel selection into a
// Donburi world. Each event names the item the wheel came to rest on.
var SelectionEventType = events.NewEventType[flywheel.SelectionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink returns a SelectionSink that queues selections on world.
// They are delivered to SelectionEventType subscribers on the next
// ProcessEvents (or events.ProcessAllEvents), inside the ECS update rather
// than in the middle of the widget tick.
func NewDonburiSink(world donburi.World) flywheel.SelectionSink {
	return &donburiSink{world: world}
}

// Connect routes fw's selections into world and returns the sink it
// installed.
func Connect(world donburi.World, fw *flywheel.Flywheel) flywheel.SelectionSink {
	sink := NewDonburiSink(world)
	fw.SetSelectionSink(sink)
	return sink
}

func (s *donburiSink) EmitSelection(event flywheel.SelectionEvent) {
	SelectionEventType.Publish(s.world, event)
}
