package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/checkout"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/domain"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/events"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/pricing"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/service/ports"
)

type SubmitInput struct {
	PropertyID string
	Stay       domain.StaySelection
	Guests     int
	SessionID  string // checkout draft to discard once the booking lands
}

type BookingService struct {
	api    ports.MarketplaceAPI
	tokens ports.TokenSource
	bus    ports.EventPublisher
	drafts *checkout.Store
	logger logger.Logger
}

func NewBookingService(
	api ports.MarketplaceAPI,
	tokens ports.TokenSource,
	bus ports.EventPublisher,
	drafts *checkout.Store,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		api:    api,
		tokens: tokens,
		bus:    bus,
		drafts: drafts,
		logger: logger,
	}
}

// Submit runs the confirmed booking: preconditions first (no upstream call
// when any fails), then exactly one reservation request. A failure leaves
// everything untouched so the user can retry; success discards the checkout
// draft and broadcasts the new reservation.
func (s *BookingService) Submit(ctx context.Context, in SubmitInput) (*domain.Reservation, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, domain.ErrNotSignedIn
	}

	if err := validateStay(in.Stay); err != nil {
		return nil, err
	}

	prop, err := s.api.GetProperty(ctx, in.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("fetch property: %w", err)
	}

	if in.Stay.Hourly && !pricing.WithinHours(prop, in.Stay.StartTime, in.Stay.EndTime) {
		return nil, fmt.Errorf("%w: outside the property's available hours", domain.ErrValidation)
	}

	total := pricing.Quote(in.Stay, prop)
	if total <= 0 {
		return nil, domain.ErrZeroTotal
	}

	reservation, err := s.api.CreateReservation(ctx, token, domain.ReservationInput{
		PropertyID: in.PropertyID,
		Stay:       in.Stay,
		Guests:     in.Guests,
	})
	if err != nil {
		return nil, err
	}

	if in.SessionID != "" {
		s.drafts.Delete(in.SessionID)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", reservation.ID),
		logger.String("property_id", in.PropertyID),
	)

	s.bus.Publish(events.ReservationCreated{
		ReservationID: reservation.ID,
		PropertyID:    in.PropertyID,
		Total:         total,
		OccurredAt:    time.Now().UTC(),
	})

	return reservation, nil
}

func validateStay(stay domain.StaySelection) error {
	if !stay.DatesSelected() {
		return domain.ErrNoDatesSelected
	}

	if stay.Hourly {
		start, end, ok := pricing.HourlySpan(stay)
		if !ok {
			return fmt.Errorf("%w: times must be in HH:MM format", domain.ErrValidation)
		}
		if !end.After(start) {
			return domain.ErrTimeOrder
		}
		return nil
	}

	if stay.CheckOut.Before(stay.CheckIn) {
		return domain.ErrDateOrder
	}
	return nil
}
