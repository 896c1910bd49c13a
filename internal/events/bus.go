package events

import (
	"sync"

	"github.com/wb-go/wbf/logger"
)

const subscriberBuffer = 16

// Bus is a fire-and-forget fan-out: publishing never blocks, and a
// subscriber that stops draining loses events rather than stalling the
// publisher. There is no ordering guarantee between subscribers.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int]*subscription
	nextID int
	log    logger.Logger
}

type subscription struct {
	kinds map[Kind]struct{} // empty means all kinds
	ch    chan Event
}

func NewBus(log logger.Logger) *Bus {
	return &Bus{
		subs: make(map[int]*subscription),
		log:  log,
	}
}

// Subscribe returns a channel of events of the given kinds (all kinds when
// none are named) and a cancel func. Cancel closes the channel.
func (b *Bus) Subscribe(kinds ...Kind) (<-chan Event, func()) {
	sub := &subscription{
		kinds: make(map[Kind]struct{}, len(kinds)),
		ch:    make(chan Event, subscriberBuffer),
	}
	for _, k := range kinds {
		sub.kinds[k] = struct{}{}
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = sub
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if s, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(s.ch)
		}
		b.mu.Unlock()
	}

	return sub.ch, cancel
}

// Publish delivers e to every matching subscriber without blocking.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		if len(sub.kinds) > 0 {
			if _, ok := sub.kinds[e.Kind()]; !ok {
				continue
			}
		}
		select {
		case sub.ch <- e:
		default:
			b.log.Warn("event dropped for slow subscriber",
				logger.String("kind", string(e.Kind())),
			)
		}
	}
}
