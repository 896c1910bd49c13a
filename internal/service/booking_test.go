package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/checkout"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/domain"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/events"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func nightlyStay() domain.StaySelection {
	return domain.StaySelection{
		CheckIn:  date("2024-03-01"),
		CheckOut: date("2024-03-04"),
	}
}

func newBookingFixture(t *testing.T) (*mocks.MockMarketplaceAPI, *mocks.MockTokenSource, *mocks.MockEventPublisher, *checkout.Store, *BookingService) {
	t.Helper()
	api := mocks.NewMockMarketplaceAPI(t)
	tokens := mocks.NewMockTokenSource(t)
	bus := mocks.NewMockEventPublisher(t)
	store := checkout.NewStore(time.Minute, newTestLogger(t))

	svc := NewBookingService(api, tokens, bus, store, newTestLogger(t))
	return api, tokens, bus, store, svc
}

func TestBookingService_Submit_Success(t *testing.T) {
	api, tokens, bus, store, svc := newBookingFixture(t)

	store.Put(&domain.CheckoutSession{ID: "s1", ExpiresAt: time.Now().Add(time.Minute)})

	prop := &domain.Property{ID: "p1", NightlyRate: 150}
	reservation := &domain.Reservation{ID: "abc123", PropertyID: "p1"}

	tokens.EXPECT().Token(mock.Anything).Return("tok-1", nil)
	api.EXPECT().GetProperty(mock.Anything, "p1").Return(prop, nil)
	api.EXPECT().CreateReservation(mock.Anything, "tok-1", mock.Anything).Return(reservation, nil)
	bus.EXPECT().Publish(mock.Anything).Run(func(e events.Event) {
		created, ok := e.(events.ReservationCreated)
		require.True(t, ok)
		assert.Equal(t, "abc123", created.ReservationID)
		assert.Equal(t, 450.0, created.Total)
	}).Return()

	got, err := svc.Submit(context.Background(), SubmitInput{
		PropertyID: "p1",
		Stay:       nightlyStay(),
		Guests:     1,
		SessionID:  "s1",
	})

	require.NoError(t, err)
	assert.Equal(t, "abc123", got.ID)

	// the paid draft is discarded
	_, err = store.Get("s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestBookingService_Submit_NoToken(t *testing.T) {
	_, tokens, _, _, svc := newBookingFixture(t)

	tokens.EXPECT().Token(mock.Anything).Return("", domain.ErrNotSignedIn)

	_, err := svc.Submit(context.Background(), SubmitInput{
		PropertyID: "p1",
		Stay:       nightlyStay(),
	})

	// no upstream call was made: the api mock has no expectations
	assert.ErrorIs(t, err, domain.ErrNotSignedIn)
}

func TestBookingService_Submit_NoDatesSelected(t *testing.T) {
	_, tokens, _, _, svc := newBookingFixture(t)

	tokens.EXPECT().Token(mock.Anything).Return("tok", nil)

	_, err := svc.Submit(context.Background(), SubmitInput{PropertyID: "p1"})

	assert.ErrorIs(t, err, domain.ErrNoDatesSelected)
}

func TestBookingService_Submit_NightlyDateOrder(t *testing.T) {
	_, tokens, _, _, svc := newBookingFixture(t)

	tokens.EXPECT().Token(mock.Anything).Return("tok", nil)

	stay := domain.StaySelection{CheckIn: date("2024-03-04"), CheckOut: date("2024-03-01")}
	_, err := svc.Submit(context.Background(), SubmitInput{PropertyID: "p1", Stay: stay})

	assert.ErrorIs(t, err, domain.ErrDateOrder)
}

func TestBookingService_Submit_HourlyTimeOrder(t *testing.T) {
	_, tokens, _, _, svc := newBookingFixture(t)

	tokens.EXPECT().Token(mock.Anything).Return("tok", nil)

	stay := domain.StaySelection{
		CheckIn:   date("2024-03-01"),
		CheckOut:  date("2024-03-01"),
		Hourly:    true,
		StartTime: "11:00",
		EndTime:   "09:00",
	}
	_, err := svc.Submit(context.Background(), SubmitInput{PropertyID: "p1", Stay: stay})

	assert.ErrorIs(t, err, domain.ErrTimeOrder)
}

func TestBookingService_Submit_ZeroLengthRangeBlocked(t *testing.T) {
	api, tokens, _, _, svc := newBookingFixture(t)

	tokens.EXPECT().Token(mock.Anything).Return("tok", nil)
	api.EXPECT().GetProperty(mock.Anything, "p1").Return(&domain.Property{ID: "p1", NightlyRate: 150}, nil)

	stay := domain.StaySelection{CheckIn: date("2024-03-01"), CheckOut: date("2024-03-01")}
	_, err := svc.Submit(context.Background(), SubmitInput{PropertyID: "p1", Stay: stay})

	assert.ErrorIs(t, err, domain.ErrZeroTotal)
}

func TestBookingService_Submit_OutsideAvailableHours(t *testing.T) {
	api, tokens, _, _, svc := newBookingFixture(t)

	tokens.EXPECT().Token(mock.Anything).Return("tok", nil)
	api.EXPECT().GetProperty(mock.Anything, "p1").Return(&domain.Property{
		ID:             "p1",
		HourlyRate:     20,
		AvailableHours: &domain.AvailableHours{From: "08:00", To: "20:00"},
	}, nil)

	stay := domain.StaySelection{
		CheckIn:   date("2024-03-01"),
		CheckOut:  date("2024-03-01"),
		Hourly:    true,
		StartTime: "06:00",
		EndTime:   "09:00",
	}
	_, err := svc.Submit(context.Background(), SubmitInput{PropertyID: "p1", Stay: stay})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Submit_UpstreamRejection(t *testing.T) {
	api, tokens, _, _, svc := newBookingFixture(t)

	tokens.EXPECT().Token(mock.Anything).Return("tok", nil)
	api.EXPECT().GetProperty(mock.Anything, "p1").Return(&domain.Property{ID: "p1", NightlyRate: 150}, nil)
	api.EXPECT().CreateReservation(mock.Anything, "tok", mock.Anything).
		Return(nil, &domain.RejectedError{Message: "Dates unavailable"})

	_, err := svc.Submit(context.Background(), SubmitInput{PropertyID: "p1", Stay: nightlyStay()})

	var rej *domain.RejectedError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, "Dates unavailable", rej.Message)
}

func TestBookingService_Submit_AuthExpiredPassthrough(t *testing.T) {
	api, tokens, _, _, svc := newBookingFixture(t)

	tokens.EXPECT().Token(mock.Anything).Return("stale", nil)
	api.EXPECT().GetProperty(mock.Anything, "p1").Return(&domain.Property{ID: "p1", NightlyRate: 150}, nil)
	api.EXPECT().CreateReservation(mock.Anything, "stale", mock.Anything).
		Return(nil, domain.ErrAuthExpired)

	_, err := svc.Submit(context.Background(), SubmitInput{PropertyID: "p1", Stay: nightlyStay()})

	assert.ErrorIs(t, err, domain.ErrAuthExpired)
}
