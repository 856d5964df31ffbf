package ddd

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is something that happened in the domain that other parts care about.
type DomainEvent interface {
	EventID() uuid.UUID
	EventName() string
	OccurredOn() time.Time
}

// BaseEvent carries the metadata every event has. Embed it in concrete events.
type BaseEvent struct {
	id         uuid.UUID
	name       string
	occurredOn time.Time
}

func NewBaseEvent(name string, at time.Time) BaseEvent {
	return BaseEvent{id: uuid.New(), name: name, occurredOn: at.UTC()}
}

func (e BaseEvent) EventID() uuid.UUID    { return e.id }
func (e BaseEvent) EventName() string     { return e.name }
func (e BaseEvent) OccurredOn() time.Time { return e.occurredOn }
