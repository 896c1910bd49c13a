package ws

import (
	"encoding/json"
	"time"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/events"
)

// Message is the envelope every frame pushed to a browser uses. Type carries
// the event kind verbatim so the frontend can switch on it.
type Message struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

func NewMessage(e events.Event) Message {
	return Message{
		Type:      string(e.Kind()),
		Timestamp: time.Now().UTC(),
		Payload:   e,
	}
}

func (m Message) JSON() ([]byte, error) {
	return json.Marshal(m)
}
