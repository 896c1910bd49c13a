package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/domain"
)

// Store keeps checkout sessions in memory only. Drafts are discarded on
// delete or expiry; nothing ever reaches a durable store.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*domain.CheckoutSession
	ttl      time.Duration
	log      logger.Logger
}

func NewStore(ttl time.Duration, log logger.Logger) *Store {
	return &Store{
		sessions: make(map[string]*domain.CheckoutSession),
		ttl:      ttl,
		log:      log,
	}
}

// TTL is the lifetime stamped onto new sessions.
func (s *Store) TTL() time.Duration { return s.ttl }

func (s *Store) Put(sess *domain.CheckoutSession) {
	s.mu.Lock()
	s.sessions[sess.ID] = snapshot(sess)
	s.mu.Unlock()
}

// Get returns a copy of the live session with the given id. An expired
// session is removed and reported as expired, not merely missing. Callers
// never see the stored session itself; mutations go through Update.
func (s *Store) Get(id string) (*domain.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getLocked(id)
	if err != nil {
		return nil, err
	}
	return snapshot(sess), nil
}

// Update applies fn to the session under the store's lock and returns a
// copy of the result. fn runs on a working copy: when it errors, the
// stored session is untouched and the error is returned as-is, so partial
// mutations never leak into the store.
func (s *Store) Update(id string, fn func(*domain.CheckoutSession) error) (*domain.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.getLocked(id)
	if err != nil {
		return nil, err
	}

	work := snapshot(stored)
	if err := fn(work); err != nil {
		return nil, err
	}
	s.sessions[id] = work
	return snapshot(work), nil
}

// Consume runs fn on the session under the store's lock and, when fn
// succeeds, removes the session in the same critical section. No other
// caller can observe or consume the session in between.
func (s *Store) Consume(id string, fn func(*domain.CheckoutSession) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.getLocked(id)
	if err != nil {
		return err
	}
	if err := fn(snapshot(stored)); err != nil {
		return err
	}
	delete(s.sessions, id)
	return nil
}

// getLocked resolves id to the stored session. Callers hold s.mu.
func (s *Store) getLocked(id string) (*domain.CheckoutSession, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if time.Now().After(sess.ExpiresAt) {
		delete(s.sessions, id)
		return nil, domain.ErrSessionExpired
	}
	return sess, nil
}

// snapshot deep-copies a session so callers on either side of the lock
// never share the Card and Billing pointees.
func snapshot(sess *domain.CheckoutSession) *domain.CheckoutSession {
	cp := *sess
	if sess.Card != nil {
		card := *sess.Card
		cp.Card = &card
	}
	if sess.Billing != nil {
		billing := *sess.Billing
		cp.Billing = &billing
	}
	return &cp
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// StartSweeper drops expired sessions on an interval until ctx is done.
func (s *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.Info("checkout sweeper started",
		logger.Duration("interval", interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("checkout sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Store) sweep() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, id)
			s.log.Debug("expired checkout session swept",
				logger.String("session_id", id),
			)
		}
	}
}
