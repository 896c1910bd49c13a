// Package events is the in-process notification channel between the booking
// flow and whoever renders its side effects (dashboard feed, host notifier).
// Payloads are informational: subscribers re-fetch their own data instead of
// trusting the event as state.
package events

import "time"

type Kind string

const (
	KindReservationCreated   Kind = "reservation.created"
	KindConversationsUpdated Kind = "conversations.updated"
	KindNotification         Kind = "notification"
)

type Event interface {
	Kind() Kind
}

// ReservationCreated is published after the marketplace accepts a booking.
type ReservationCreated struct {
	ReservationID string    `json:"reservationId"`
	PropertyID    string    `json:"propertyId"`
	Total         float64   `json:"total"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func (ReservationCreated) Kind() Kind { return KindReservationCreated }

// ConversationsUpdated signals that a watched inbox changed.
type ConversationsUpdated struct {
	Conversations   int       `json:"conversations"`
	Unread          int       `json:"unread"`
	LatestMessageID string    `json:"latestMessageId"`
	OccurredAt      time.Time `json:"occurredAt"`
}

func (ConversationsUpdated) Kind() Kind { return KindConversationsUpdated }

// Notification is a generic user-facing toast.
type Notification struct {
	Level   string `json:"level"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (Notification) Kind() Kind { return KindNotification }
