// Package events is the per-session event bus. Panels publish state changes and
// notifications here; the SSE stream and the logger subscribe.
package events

import (
	"sync"
	"sync/atomic"
	"time"

	"cessao-fidc/internal/model"
)

// EventType defines the types of events that can be emitted
type EventType string

const (
	EventNotification     EventType = "notification"
	EventSelectionChanged EventType = "selection_changed"
	EventTabChanged       EventType = "tab_changed"
)

const defaultBufferSize = 64

// Event is the base interface for all events
type Event interface {
	Type() EventType
	Timestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	EventType EventType
	Time      time.Time
}

func (e BaseEvent) Type() EventType      { return e.EventType }
func (e BaseEvent) Timestamp() time.Time { return e.Time }

// NotificationEvent carries a toast to live subscribers.
type NotificationEvent struct {
	BaseEvent
	Notification model.Notification
}

// SelectionChangedEvent is published after a file-selection widget changes.
type SelectionChangedEvent struct {
	BaseEvent
	Widget string
	Count  int
}

// TabChangedEvent is published when the visible panel changes.
type TabChangedEvent struct {
	BaseEvent
	From string
	To   string
}

// EventBus manages event subscriptions and publishing
type EventBus struct {
	subscribers   map[EventType][]chan Event
	all           []chan Event
	mu            sync.RWMutex
	bufferSize    int
	closed        bool
	droppedEvents atomic.Int64
}

// NewEventBus creates a new event bus with specified buffer size
func NewEventBus(bufferSize int) *EventBus {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &EventBus{
		subscribers: make(map[EventType][]chan Event),
		all:         make([]chan Event, 0),
		bufferSize:  bufferSize,
	}
}

// Subscribe creates a subscription to a specific event type.
// On a closed bus the returned channel is already closed.
func (eb *EventBus) Subscribe(eventType EventType) <-chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}

	ch := make(chan Event, eb.bufferSize)
	eb.subscribers[eventType] = append(eb.subscribers[eventType], ch)
	return ch
}

// SubscribeAll creates a subscription to all events
func (eb *EventBus) SubscribeAll() <-chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}

	ch := make(chan Event, eb.bufferSize)
	eb.all = append(eb.all, ch)
	return ch
}

// Publish sends an event to all subscribers without blocking.
// Events for a full subscriber are dropped and counted.
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return
	}

	for _, ch := range eb.subscribers[event.Type()] {
		select {
		case ch <- event:
		default:
			eb.droppedEvents.Add(1)
		}
	}
	for _, ch := range eb.all {
		select {
		case ch <- event:
		default:
			eb.droppedEvents.Add(1)
		}
	}
}

// PublishNotification is a convenience method for publishing toasts
func (eb *EventBus) PublishNotification(n model.Notification) {
	eb.Publish(&NotificationEvent{
		BaseEvent:    BaseEvent{EventType: EventNotification, Time: time.Now()},
		Notification: n,
	})
}

// PublishSelectionChanged is a convenience method for widget changes
func (eb *EventBus) PublishSelectionChanged(widget string, count int) {
	eb.Publish(&SelectionChangedEvent{
		BaseEvent: BaseEvent{EventType: EventSelectionChanged, Time: time.Now()},
		Widget:    widget,
		Count:     count,
	})
}

// PublishTabChanged is a convenience method for tab switches
func (eb *EventBus) PublishTabChanged(from, to string) {
	eb.Publish(&TabChangedEvent{
		BaseEvent: BaseEvent{EventType: EventTabChanged, Time: time.Now()},
		From:      from,
		To:        to,
	})
}

// Unsubscribe removes and closes a subscription channel.
func (eb *EventBus) Unsubscribe(ch <-chan Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return
	}

	for eventType, subscribers := range eb.subscribers {
		for i, subCh := range subscribers {
			if subCh == ch {
				subscribers[i] = subscribers[len(subscribers)-1]
				eb.subscribers[eventType] = subscribers[:len(subscribers)-1]
				close(subCh)
				return
			}
		}
	}
	for i, subCh := range eb.all {
		if subCh == ch {
			eb.all[i] = eb.all[len(eb.all)-1]
			eb.all = eb.all[:len(eb.all)-1]
			close(subCh)
			return
		}
	}
}

// Close shuts down the event bus and closes all channels
func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return
	}
	eb.closed = true

	for _, channels := range eb.subscribers {
		for _, ch := range channels {
			close(ch)
		}
	}
	for _, ch := range eb.all {
		close(ch)
	}
}

// DroppedEvents returns the number of events dropped due to full buffers
func (eb *EventBus) DroppedEvents() int64 {
	return eb.droppedEvents.Load()
}
