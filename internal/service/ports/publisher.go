package ports

import "github.com/MominRazaSzabist/FlexBNB-sub000/internal/events"

// EventPublisher fans booking notifications out to same-process listeners.
// Delivery is fire-and-forget; no acknowledgement, no ordering guarantee.
type EventPublisher interface {
	Publish(e events.Event)
}
