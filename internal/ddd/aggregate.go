package ddd

// AggregateRoot is the consistency boundary; it buffers events until they are pulled.
type AggregateRoot[ID comparable] struct {
	Entity[ID]
	events []DomainEvent
}

func NewAggregateRoot[ID comparable](id ID) AggregateRoot[ID] {
	return AggregateRoot[ID]{Entity: NewEntity(id)}
}

func (a *AggregateRoot[ID]) Record(e DomainEvent) { a.events = append(a.events, e) }

func (a *AggregateRoot[ID]) PendingEvents() int { return len(a.events) }

// PullEvents returns the recorded events in order and clears the buffer.
func (a *AggregateRoot[ID]) PullEvents() []DomainEvent {
	out := a.events
	a.events = nil
	return out
}
