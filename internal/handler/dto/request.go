package dto

import (
	"fmt"
	"time"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/domain"
)

const dateLayout = "2006-01-02"

// StayRequest carries the guest's date/time choice on the wire. Dates use
// YYYY-MM-DD; empty strings mean "not selected yet" and map to zero times
// so the service can reject the selection itself.
type StayRequest struct {
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Hourly    bool   `json:"useHourlyBooking"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (r StayRequest) ToSelection() (domain.StaySelection, error) {
	sel := domain.StaySelection{
		Hourly:    r.Hourly,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}

	var err error
	if sel.CheckIn, err = parseDate(r.CheckIn); err != nil {
		return domain.StaySelection{}, fmt.Errorf("invalid checkIn date, expected YYYY-MM-DD")
	}
	if sel.CheckOut, err = parseDate(r.CheckOut); err != nil {
		return domain.StaySelection{}, fmt.Errorf("invalid checkOut date, expected YYYY-MM-DD")
	}

	return sel, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

type QuoteRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
	StayRequest
}

type StartCheckoutRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
	StayRequest
}

type SubmitReservationRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
	StayRequest
	GuestsCount int    `json:"guestsCount"`
	SessionID   string `json:"sessionId"`
}
