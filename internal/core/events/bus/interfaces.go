package bus

import "time"

// EventBus is a synchronous in-process pub/sub bus.
//
// Handlers subscribe by Event.Type() and run in the publisher's goroutine, in
// subscription order. Handler errors are joined and returned from Publish.
// Metrics are collected only while at least one observer is registered.
type EventBus interface {
	Publish(event Event) error
	PublishBatch(events ...Event) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	Unsubscribe(Subscription) error

	AddObserver(obs Observer)
	RemoveObserver(obs Observer)
	Metrics() Metrics
}

// Event is an immutable message routed by Type.
type Event interface {
	Type() string
	Source() string
	Timestamp() time.Time
	Data() any
}

type EventHandler func(event Event) error

// Subscription is a registered handler. Cancel is idempotent.
type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	Cancel() error
}

// Observer is told about each delivery. It should return quickly.
type Observer interface {
	OnDelivered(eventType string, handlers int, err error, took time.Duration)
}

type Metrics struct {
	Published         uint64
	DeliveredHandlers uint64
	Errors            uint64
	Subscribers       uint64
}
