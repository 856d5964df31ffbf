package ddd

// Entity is identified by ID, not by its attributes.
type Entity[ID comparable] struct {
	id ID
}

func NewEntity[ID comparable](id ID) Entity[ID] { return Entity[ID]{id: id} }

func (e Entity[ID]) ID() ID { return e.id }

// SameIdentity reports whether two entities refer to the same domain object.
func (e Entity[ID]) SameIdentity(other Entity[ID]) bool { return e.id == other.id }
