package domain

import "time"

// StaySelection is the guest's date/time choice. A zero-valued or same-day
// nightly selection means "nothing selected yet" and never prices above zero.
type StaySelection struct {
	CheckIn   time.Time `json:"checkIn"`
	CheckOut  time.Time `json:"checkOut"`
	Hourly    bool      `json:"useHourlyBooking"`
	StartTime string    `json:"startTime"` // "HH:MM", hourly mode only
	EndTime   string    `json:"endTime"`
}

// DatesSelected reports whether the guest has actually picked both dates.
// This is deliberately distinct from "the quote is zero": a selection must
// exist before price is even considered.
func (s StaySelection) DatesSelected() bool {
	return !s.CheckIn.IsZero() && !s.CheckOut.IsZero()
}

type ReservationInput struct {
	PropertyID string
	Stay       StaySelection
	Guests     int
}

// Reservation is the backend's record of a created booking. Only the ID is
// guaranteed; the rest is echoed detail used for the confirmation payload.
type Reservation struct {
	ID         string
	PropertyID string
	CheckIn    time.Time
	CheckOut   time.Time
	Hourly     bool
	StartTime  string
	EndTime    string
	Guests     int
	Total      float64
}
