package dto

import (
	"time"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/domain"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/service"
)

type QuoteResponse struct {
	PropertyID string                `json:"propertyId"`
	Nights     int                   `json:"nights"`
	Breakdown  domain.PriceBreakdown `json:"breakdown"`
}

type CheckoutResponse struct {
	ID         string                `json:"id"`
	PropertyID string                `json:"propertyId"`
	Step       string                `json:"step"`
	Method     string                `json:"method,omitempty"`
	MaskedCard string                `json:"maskedCard,omitempty"`
	Breakdown  domain.PriceBreakdown `json:"breakdown"`
	ExpiresAt  string                `json:"expiresAt"`
}

type ConfirmationResponse struct {
	SessionID  string                `json:"sessionId"`
	Method     string                `json:"method"`
	MaskedCard string                `json:"maskedCard"`
	CardExpiry string                `json:"cardExpiry"`
	Breakdown  domain.PriceBreakdown `json:"breakdown"`
}

type ReservationResponse struct {
	ID          string  `json:"id"`
	PropertyID  string  `json:"propertyId"`
	CheckIn     string  `json:"checkIn"`
	CheckOut    string  `json:"checkOut"`
	Hourly      bool    `json:"useHourlyBooking"`
	StartTime   string  `json:"startTime,omitempty"`
	EndTime     string  `json:"endTime,omitempty"`
	GuestsCount int     `json:"guestsCount"`
	Total       float64 `json:"total"`
}

// ErrorResponse is the uniform error body. Fields is present only for
// validation failures and addresses each problem by its JSON field name.
type ErrorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func ToQuoteResponse(q *service.QuoteResult) QuoteResponse {
	return QuoteResponse{
		PropertyID: q.PropertyID,
		Nights:     q.Nights,
		Breakdown:  q.Breakdown,
	}
}

func ToCheckoutResponse(s *domain.CheckoutSession) CheckoutResponse {
	return CheckoutResponse{
		ID:         s.ID,
		PropertyID: s.PropertyID,
		Step:       string(s.Step),
		Method:     string(s.Method),
		MaskedCard: s.MaskedCard(),
		Breakdown:  s.Breakdown,
		ExpiresAt:  s.ExpiresAt.Format(time.RFC3339),
	}
}

func ToConfirmationResponse(c *domain.PaymentConfirmation) ConfirmationResponse {
	return ConfirmationResponse{
		SessionID:  c.SessionID,
		Method:     string(c.Method),
		MaskedCard: c.MaskedCard,
		CardExpiry: c.CardExpiry,
		Breakdown:  c.Breakdown,
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:          r.ID,
		PropertyID:  r.PropertyID,
		CheckIn:     r.CheckIn.Format(dateLayout),
		CheckOut:    r.CheckOut.Format(dateLayout),
		Hourly:      r.Hourly,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		GuestsCount: r.Guests,
		Total:       r.Total,
	}
}
