// Package pricing turns a stay selection plus property rates into a total.
// The functions are pure and never error: a selection that cannot be priced
// quotes zero, and callers decide whether zero blocks booking.
package pricing

import (
	"math"
	"time"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/domain"
)

const (
	ServiceFeeRate = 0.029
	TaxRate        = 0.08
)

// Nights counts billable nights between two dates: ceil of the elapsed days,
// floored at one night once the range is non-degenerate. Equal or unset
// dates count zero nights, which is "no selection" rather than a free stay.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	d := checkOut.Sub(checkIn)
	if d <= 0 {
		return 0
	}
	nights := int(math.Ceil(d.Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}

// Quote prices a selection against a property's rates.
//
// Nightly mode: nights × nightly rate. Hourly mode: the date + "HH:MM"
// pairs are combined into timestamps, elapsed hours (fractional minutes
// included) are multiplied by the hourly rate and rounded to the nearest
// whole unit. An hourly range that does not end strictly after it starts
// quotes zero, as does an hourly selection on a property that does not
// allow hourly booking.
func Quote(sel domain.StaySelection, p *domain.Property) float64 {
	if !sel.DatesSelected() {
		return 0
	}

	if sel.Hourly {
		if !p.HourlyBooking {
			return 0
		}
		start, end, ok := HourlySpan(sel)
		if !ok || !end.After(start) {
			return 0
		}
		hours := end.Sub(start).Minutes() / 60
		return math.Round(p.HourlyRate * hours)
	}

	return float64(Nights(sel.CheckIn, sel.CheckOut)) * p.NightlyRate
}

// Breakdown expands a quoted subtotal into the figures the review step
// shows: subtotal, flat 2.9% service fee, flat 8% tax, and their sum.
func Breakdown(subtotal float64) domain.PriceBreakdown {
	fee := roundCents(subtotal * ServiceFeeRate)
	tax := roundCents(subtotal * TaxRate)
	return domain.PriceBreakdown{
		Subtotal:   roundCents(subtotal),
		ServiceFee: fee,
		Tax:        tax,
		Total:      roundCents(subtotal + fee + tax),
	}
}

// WithinHours reports whether an "HH:MM" pair sits inside the property's
// hourly-availability window. Properties without a window accept any time.
func WithinHours(p *domain.Property, startTime, endTime string) bool {
	if p.AvailableHours == nil {
		return true
	}
	return startTime >= p.AvailableHours.From && endTime <= p.AvailableHours.To
}

// HourlySpan combines the selection's dates and "HH:MM" strings into the
// booked timestamps. ok is false when either clock string is malformed.
func HourlySpan(sel domain.StaySelection) (start, end time.Time, ok bool) {
	start, ok = combine(sel.CheckIn, sel.StartTime)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok = combine(sel.CheckOut, sel.EndTime)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func combine(date time.Time, clock string) (time.Time, bool) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, date.Location()), true
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
