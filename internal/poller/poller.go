// Package poller owns every upstream polling loop in the gateway. Instead
// of each dashboard view running its own timer, views register a watch and
// one scheduler polls the marketplace, publishing a change event only when
// the watched digest actually moved.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/domain"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/events"
)

type digestFetcher interface {
	ConversationDigest(ctx context.Context, token string) (*domain.ConversationDigest, error)
}

type publisher interface {
	Publish(e events.Event)
}

type watch struct {
	refs int
	last domain.ConversationDigest
	seen bool
}

type Poller struct {
	api      digestFetcher
	bus      publisher
	interval time.Duration
	logger   logger.Logger

	mu      sync.Mutex
	watches map[string]*watch // keyed by bearer token
}

func New(api digestFetcher, bus publisher, interval time.Duration, logger logger.Logger) *Poller {
	return &Poller{
		api:      api,
		bus:      bus,
		interval: interval,
		logger:   logger,
		watches:  make(map[string]*watch),
	}
}

// Watch registers interest in a user's inbox. The same token is polled once
// no matter how many watchers hold it; the returned cancel drops this
// watcher's reference.
func (p *Poller) Watch(token string) func() {
	p.mu.Lock()
	w, ok := p.watches[token]
	if !ok {
		w = &watch{}
		p.watches[token] = w
	}
	w.refs++
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			if w, ok := p.watches[token]; ok {
				w.refs--
				if w.refs <= 0 {
					delete(p.watches, token)
				}
			}
			p.mu.Unlock()
		})
	}
}

// Start runs the polling loop until ctx is cancelled.
func (p *Poller) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("poller started",
		logger.Duration("interval", p.interval),
	)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("poller stopped")
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	p.mu.Lock()
	tokens := make([]string, 0, len(p.watches))
	for token := range p.watches {
		tokens = append(tokens, token)
	}
	p.mu.Unlock()

	for _, token := range tokens {
		digest, err := p.api.ConversationDigest(ctx, token)
		if err != nil {
			p.logger.Debug("digest fetch failed",
				logger.String("error", err.Error()),
			)
			continue
		}
		p.record(token, *digest)
	}
}

// record publishes a change event when the digest moved since last tick.
// The first observation only seeds the baseline.
func (p *Poller) record(token string, digest domain.ConversationDigest) {
	p.mu.Lock()
	w, ok := p.watches[token]
	if !ok {
		// watcher left between snapshot and fetch
		p.mu.Unlock()
		return
	}
	changed := w.seen && w.last != digest
	w.last = digest
	w.seen = true
	p.mu.Unlock()

	if !changed {
		return
	}

	p.bus.Publish(events.ConversationsUpdated{
		Conversations:   digest.Conversations,
		Unread:          digest.Unread,
		LatestMessageID: digest.LatestMessageID,
		OccurredAt:      time.Now().UTC(),
	})
}
