package core

import "fmt"

// EventType names a logical change in the store. The dotted form lets
// subscribers match families of events with glob patterns ("record.*").
type EventType string

const (
	EventCreated   EventType = "record.created"
	EventUpdated   EventType = "record.updated"
	EventRemoved   EventType = "record.removed"
	EventFavorited EventType = "record.favorited"
	EventCopied    EventType = "record.copied"
)

// Event describes a single logical mutation. Record carries the record
// after the change, except for EventRemoved where it is the prior value.
// Patch is set only for EventUpdated, Favorite only for EventFavorited,
// UsageCount only for EventCopied.
type Event struct {
	Type       EventType
	ID         string
	Record     Record
	Patch      *Patch
	Favorite   bool
	UsageCount int
	Timestamp  int64 // Unix milliseconds
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.ID)
}
