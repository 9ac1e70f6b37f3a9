// Package notify queues the toasts a session shows to its operator.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"cessao-fidc/internal/events"
	"cessao-fidc/internal/model"
)

// DefaultCapacity bounds how many undelivered toasts a session keeps.
const DefaultCapacity = 50

// Center collects notifications until the page drains them, and forwards each one
// to the session event bus for live subscribers.
type Center struct {
	bus      *events.EventBus
	capacity int
	now      func() time.Time

	pending []model.Notification
	mu      sync.Mutex
}

// NewCenter creates a notification center. bus may be nil.
func NewCenter(bus *events.EventBus, capacity int) *Center {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Center{
		bus:      bus,
		capacity: capacity,
		now:      time.Now,
		pending:  make([]model.Notification, 0),
	}
}

// Success queues a default-variant toast.
func (c *Center) Success(title, description string) model.Notification {
	return c.push(title, description, model.VariantDefault)
}

// Failure queues a destructive toast.
func (c *Center) Failure(title, description string) model.Notification {
	return c.push(title, description, model.VariantDestructive)
}

func (c *Center) push(title, description string, variant model.Variant) model.Notification {
	n := model.Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Variant:     variant,
		CreatedAt:   c.now(),
	}

	c.mu.Lock()
	if len(c.pending) >= c.capacity {
		// oldest toast goes first
		c.pending = append(c.pending[:0], c.pending[1:]...)
	}
	c.pending = append(c.pending, n)
	c.mu.Unlock()

	if c.bus != nil {
		c.bus.PublishNotification(n)
	}
	return n
}

// Drain returns the queued notifications in order and empties the queue.
func (c *Center) Drain() []model.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.pending
	c.pending = make([]model.Notification, 0)
	return out
}

// Pending returns the number of undelivered notifications.
func (c *Center) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}
