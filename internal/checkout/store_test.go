package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/domain"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestStore_PutGet(t *testing.T) {
	store := NewStore(time.Minute, newTestLogger(t))

	sess := &domain.CheckoutSession{
		ID:        "s1",
		Step:      domain.StepPayment,
		ExpiresAt: time.Now().Add(time.Minute),
	}
	store.Put(sess)

	got, err := store.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestStore_GetReturnsDetachedCopy(t *testing.T) {
	store := NewStore(time.Minute, newTestLogger(t))

	store.Put(&domain.CheckoutSession{
		ID:        "s1",
		Step:      domain.StepPayment,
		Card:      &domain.CardDetails{Number: "4242424242424242"},
		ExpiresAt: time.Now().Add(time.Minute),
	})

	got, err := store.Get("s1")
	require.NoError(t, err)

	// mutating the returned session must not touch the stored one
	got.Step = domain.StepReview
	got.Card.Number = "scribbled"

	again, err := store.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepPayment, again.Step)
	assert.Equal(t, "4242424242424242", again.Card.Number)
}

func TestStore_Update(t *testing.T) {
	store := NewStore(time.Minute, newTestLogger(t))

	store.Put(&domain.CheckoutSession{
		ID:        "s1",
		Step:      domain.StepPayment,
		ExpiresAt: time.Now().Add(time.Minute),
	})

	got, err := store.Update("s1", func(sess *domain.CheckoutSession) error {
		sess.Step = domain.StepBilling
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StepBilling, got.Step)

	again, err := store.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepBilling, again.Step)
}

func TestStore_Update_ErrorLeavesSessionUntouched(t *testing.T) {
	store := NewStore(time.Minute, newTestLogger(t))

	store.Put(&domain.CheckoutSession{
		ID:        "s1",
		Step:      domain.StepPayment,
		ExpiresAt: time.Now().Add(time.Minute),
	})

	_, err := store.Update("s1", func(sess *domain.CheckoutSession) error {
		sess.Step = domain.StepReview
		return domain.ErrValidation
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := store.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepPayment, got.Step)
}

func TestStore_Update_Missing(t *testing.T) {
	store := NewStore(time.Minute, newTestLogger(t))

	_, err := store.Update("nope", func(sess *domain.CheckoutSession) error { return nil })
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_Consume(t *testing.T) {
	store := NewStore(time.Minute, newTestLogger(t))

	store.Put(&domain.CheckoutSession{
		ID:        "s1",
		Step:      domain.StepReview,
		ExpiresAt: time.Now().Add(time.Minute),
	})

	var seen domain.CheckoutStep
	err := store.Consume("s1", func(sess *domain.CheckoutSession) error {
		seen = sess.Step
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StepReview, seen)

	_, err = store.Get("s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_Consume_ErrorKeepsSession(t *testing.T) {
	store := NewStore(time.Minute, newTestLogger(t))

	store.Put(&domain.CheckoutSession{
		ID:        "s1",
		Step:      domain.StepPayment,
		ExpiresAt: time.Now().Add(time.Minute),
	})

	err := store.Consume("s1", func(sess *domain.CheckoutSession) error {
		return domain.ErrWrongStep
	})
	assert.ErrorIs(t, err, domain.ErrWrongStep)

	_, err = store.Get("s1")
	require.NoError(t, err)
}

func TestStore_GetMissing(t *testing.T) {
	store := NewStore(time.Minute, newTestLogger(t))

	_, err := store.Get("nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_GetExpired(t *testing.T) {
	store := NewStore(time.Minute, newTestLogger(t))

	store.Put(&domain.CheckoutSession{
		ID:        "s1",
		ExpiresAt: time.Now().Add(-time.Second),
	})

	_, err := store.Get("s1")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	// the expired draft is gone entirely
	_, err = store.Get("s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(time.Minute, newTestLogger(t))

	store.Put(&domain.CheckoutSession{ID: "s1", ExpiresAt: time.Now().Add(time.Minute)})
	store.Delete("s1")

	_, err := store.Get("s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_SweeperRemovesExpired(t *testing.T) {
	store := NewStore(time.Minute, newTestLogger(t))

	store.Put(&domain.CheckoutSession{ID: "old", ExpiresAt: time.Now().Add(-time.Second)})
	store.Put(&domain.CheckoutSession{ID: "live", ExpiresAt: time.Now().Add(time.Hour)})

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()
	store.StartSweeper(ctx, 20*time.Millisecond)

	store.mu.RLock()
	_, oldKept := store.sessions["old"]
	_, liveKept := store.sessions["live"]
	store.mu.RUnlock()

	assert.False(t, oldKept)
	assert.True(t, liveKept)
}
