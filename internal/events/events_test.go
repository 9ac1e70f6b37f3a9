package events

import (
	"testing"
	"time"

	"cessao-fidc/internal/model"
)

func TestEventBus_PublishSubscribe(t *testing.T) {
	bus := NewEventBus(10)
	defer bus.Close()

	ch := bus.Subscribe(EventNotification)
	bus.PublishNotification(model.Notification{ID: "n1", Title: "Erro"})

	select {
	case received := <-ch:
		ev, ok := received.(*NotificationEvent)
		if !ok {
			t.Fatalf("Expected NotificationEvent, got %T", received)
		}
		if ev.Notification.ID != "n1" {
			t.Errorf("Notification.ID = %q, want %q", ev.Notification.ID, "n1")
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Timeout waiting for event")
	}
}

func TestEventBus_DifferentEventTypes(t *testing.T) {
	bus := NewEventBus(10)
	defer bus.Close()

	tabCh := bus.Subscribe(EventTabChanged)
	notifCh := bus.Subscribe(EventNotification)

	bus.PublishTabChanged("envio-dados", "downloads")

	select {
	case <-tabCh:
	case <-time.After(100 * time.Millisecond):
		t.Error("Tab subscriber didn't receive event")
	}
	select {
	case <-notifCh:
		t.Error("Notification subscriber received wrong event type")
	default:
	}
}

func TestEventBus_SubscribeAll(t *testing.T) {
	bus := NewEventBus(10)
	defer bus.Close()

	allCh := bus.SubscribeAll()
	bus.PublishSelectionChanged("cnab", 2)
	bus.PublishTabChanged("a", "b")

	for i := 0; i < 2; i++ {
		select {
		case <-allCh:
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("received %d events, want 2", i)
		}
	}
}

func TestEventBus_DropsWhenFull(t *testing.T) {
	bus := NewEventBus(1)
	defer bus.Close()

	_ = bus.Subscribe(EventSelectionChanged)
	bus.PublishSelectionChanged("cnab", 1)
	bus.PublishSelectionChanged("cnab", 2)
	bus.PublishSelectionChanged("cnab", 3)

	if got := bus.DroppedEvents(); got != 2 {
		t.Errorf("DroppedEvents() = %d, want 2", got)
	}
}

func TestEventBus_UnsubscribeClosesChannel(t *testing.T) {
	bus := NewEventBus(10)
	defer bus.Close()

	ch := bus.Subscribe(EventNotification)
	bus.Unsubscribe(ch)

	if _, ok := <-ch; ok {
		t.Error("channel should be closed after Unsubscribe")
	}
	// publishing after unsubscribe must not panic
	bus.PublishNotification(model.Notification{ID: "late"})
}

func TestEventBus_Close(t *testing.T) {
	bus := NewEventBus(10)
	ch := bus.Subscribe(EventNotification)
	bus.Close()
	bus.Close()

	if _, ok := <-ch; ok {
		t.Error("channel should be closed after Close")
	}
	if _, ok := <-bus.Subscribe(EventTabChanged); ok {
		t.Error("Subscribe on closed bus should return a closed channel")
	}
	bus.PublishTabChanged("a", "b")
}
