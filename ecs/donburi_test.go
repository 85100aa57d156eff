package ecs

import (
	"testing"

	"github.com/phanxgames/flywheel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitSelection(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []flywheel.SelectionEvent
	SelectionEventType.Subscribe(world, func(w donburi.World, e flywheel.SelectionEvent) {
		received = append(received, e)
	})

	sink.EmitSelection(flywheel.SelectionEvent{Index: 2, Text: "Item 2"})
	sink.EmitSelection(flywheel.SelectionEvent{Index: 4, Text: "Item 4"})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	SelectionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Index != 2 || received[0].Text != "Item 2" {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Index != 4 || received[1].Text != "Item 4" {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_ImplementsSelectionSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink flywheel.SelectionSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_WidgetNotifies(t *testing.T) {
	world := donburi.NewWorld()
	fw := flywheel.New(flywheel.DefaultConfig())
	for _, s := range []string{"a", "b", "c", "d"} {
		fw.AddItem(s)
	}
	fw.SetSelectionSink(NewDonburiSink(world))

	var got []int
	SelectionEventType.Subscribe(world, func(w donburi.World, e flywheel.SelectionEvent) {
		got = append(got, e.Index)
	})

	// Before the first layout a selection is applied immediately.
	if !fw.SetSelectedIndex(3) {
		t.Fatal("SetSelectedIndex(3) = false")
	}
	events.ProcessAllEvents(world)

	if len(got) != 1 || got[0] != 3 {
		t.Errorf("got %v, want [3]", got)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	SelectionEventType.Subscribe(world, func(w donburi.World, e flywheel.SelectionEvent) {
		count1++
	})
	SelectionEventType.Subscribe(world, func(w donburi.World, e flywheel.SelectionEvent) {
		count2++
	})

	sink.EmitSelection(flywheel.SelectionEvent{Index: 0})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestConnect(t *testing.T) {
	world := donburi.NewWorld()
	cfg := flywheel.DefaultConfig()
	cfg.DisablePlaceholders = true
	fw := flywheel.New(cfg)
	fw.AddItem("first")
	fw.AddItem("second")
	if Connect(world, fw) == nil {
		t.Fatal("Connect returned nil")
	}

	var got []string
	SelectionEventType.Subscribe(world, func(w donburi.World, e flywheel.SelectionEvent) {
		got = append(got, e.Text)
	})
	fw.SetSelectedByText("second")
	events.ProcessAllEvents(world)

	if len(got) != 1 || got[0] != "second" {
		t.Errorf("got %v, want [second]", got)
	}
}
