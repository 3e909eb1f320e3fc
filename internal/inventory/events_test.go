package inventory

import "testing"

func TestNotifierOrderAndKinds(t *testing.T) {
	n := NewNotifier()
	var order []string
	n.Subscribe(EventItemsAdded, func(Event) { order = append(order, "a1") })
	n.Subscribe(EventItemsAdded, func(Event) { order = append(order, "a2") })
	n.Subscribe(EventItemsDropped, func(Event) { order = append(order, "d") })

	n.Publish(Event{Kind: EventItemsAdded, Item: Apple, Amount: 1})
	if len(order) != 2 || order[0] != "a1" || order[1] != "a2" {
		t.Fatalf("unexpected delivery order %v", order)
	}
	n.Publish(Event{Kind: EventItemsRemoved})
	if len(order) != 2 {
		t.Fatalf("removed event reached other handlers: %v", order)
	}
}

func TestNotifierUnsubscribeDuringPublish(t *testing.T) {
	n := NewNotifier()
	calls := 0
	var second Subscription
	n.Subscribe(EventItemsRemoved, func(Event) {
		calls++
		n.Unsubscribe(second)
	})
	second = n.Subscribe(EventItemsRemoved, func(Event) { calls++ })

	n.Publish(Event{Kind: EventItemsRemoved})
	if calls != 2 {
		t.Fatalf("in-flight publish should reach both handlers, got %d", calls)
	}
	n.Publish(Event{Kind: EventItemsRemoved})
	if calls != 3 {
		t.Fatalf("expected unsubscribed handler to be skipped, got %d calls", calls)
	}
	if n.Len(EventItemsRemoved) != 1 {
		t.Fatalf("expected 1 handler left, got %d", n.Len(EventItemsRemoved))
	}
}

func TestZeroNotifierSubscribe(t *testing.T) {
	var n Notifier
	got := 0
	n.Subscribe(EventItemsAdded, func(e Event) { got = e.Amount })
	n.Publish(Event{Kind: EventItemsAdded, Amount: 4})
	if got != 4 {
		t.Fatalf("expected amount 4, got %d", got)
	}
}

func TestEventKindString(t *testing.T) {
	if EventItemsDropped.String() != "ItemsDropped" || EventKind(9).String() != "Unknown" {
		t.Fatalf("unexpected kind strings")
	}
}
