package inventory

// EventKind selects a notification channel.
type EventKind int

const (
	// EventItemsAdded is emitted for each portion placed into a slot.
	EventItemsAdded EventKind = iota
	// EventItemsRemoved is emitted when a slot is drained by a remove.
	EventItemsRemoved
	// EventItemsDropped is emitted for overflow that found no slot, and for
	// removed items leaving the inventory.
	EventItemsDropped
)

// String returns a human-readable representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventItemsAdded:
		return "ItemsAdded"
	case EventItemsRemoved:
		return "ItemsRemoved"
	case EventItemsDropped:
		return "ItemsDropped"
	default:
		return "Unknown"
	}
}

// Event is a single inventory notification. Position is nil for drops.
type Event struct {
	Kind     EventKind `json:"kind"`
	Item     ItemType  `json:"item"`
	Amount   int       `json:"amount"`
	Position *Position `json:"position,omitempty"`
}

// Handler receives events synchronously.
type Handler func(Event)

// Subscription identifies a registered handler.
type Subscription struct {
	kind EventKind
	id   uint64
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Notifier fans events out to handlers registered per kind. Handlers run
// in registration order on the publishing goroutine. It is not safe for
// concurrent use.
type Notifier struct {
	nextID   uint64
	handlers map[EventKind][]subscriber
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{handlers: make(map[EventKind][]subscriber)}
}

// Subscribe registers h for events of the given kind.
func (n *Notifier) Subscribe(kind EventKind, h Handler) Subscription {
	if n.handlers == nil {
		n.handlers = make(map[EventKind][]subscriber)
	}
	n.nextID++
	n.handlers[kind] = append(n.handlers[kind], subscriber{id: n.nextID, handler: h})
	return Subscription{kind: kind, id: n.nextID}
}

// Unsubscribe removes a handler. It reports whether the subscription was found.
func (n *Notifier) Unsubscribe(sub Subscription) bool {
	subs := n.handlers[sub.kind]
	for i, s := range subs {
		if s.id != sub.id {
			continue
		}
		// Build a fresh slice so a Publish iterating the old one is unaffected.
		next := make([]subscriber, 0, len(subs)-1)
		next = append(next, subs[:i]...)
		next = append(next, subs[i+1:]...)
		n.handlers[sub.kind] = next
		return true
	}
	return false
}

// Publish delivers e to every handler subscribed to its kind.
func (n *Notifier) Publish(e Event) {
	for _, s := range n.handlers[e.Kind] {
		if s.handler != nil {
			s.handler(e)
		}
	}
}

// Len returns the number of handlers registered for kind.
func (n *Notifier) Len(kind EventKind) int {
	return len(n.handlers[kind])
}
