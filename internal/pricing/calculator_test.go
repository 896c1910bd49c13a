package pricing

import (
	"testing"
	"time"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"three nights", "2024-03-01", "2024-03-04", 3},
		{"one night", "2024-03-01", "2024-03-02", 1},
		{"same day is no selection", "2024-03-01", "2024-03-01", 0},
		{"reversed range", "2024-03-04", "2024-03-01", 0},
		{"month boundary", "2024-02-28", "2024-03-02", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(date(tt.checkIn), date(tt.checkOut)))
		})
	}
}

func TestNights_UnsetDates(t *testing.T) {
	assert.Equal(t, 0, Nights(time.Time{}, date("2024-03-04")))
	assert.Equal(t, 0, Nights(date("2024-03-01"), time.Time{}))
}

func TestQuote_Nightly(t *testing.T) {
	prop := &domain.Property{ID: "p1", NightlyRate: 150}

	sel := domain.StaySelection{CheckIn: date("2024-03-01"), CheckOut: date("2024-03-04")}
	assert.Equal(t, 450.0, Quote(sel, prop))
}

func TestQuote_Nightly_ZeroLengthRange(t *testing.T) {
	prop := &domain.Property{ID: "p1", NightlyRate: 150}

	sel := domain.StaySelection{CheckIn: date("2024-03-01"), CheckOut: date("2024-03-01")}
	assert.Equal(t, 0.0, Quote(sel, prop))
}

func TestQuote_NoSelection(t *testing.T) {
	prop := &domain.Property{ID: "p1", NightlyRate: 150, HourlyRate: 20}

	assert.Equal(t, 0.0, Quote(domain.StaySelection{}, prop))
	assert.Equal(t, 0.0, Quote(domain.StaySelection{Hourly: true}, prop))
}

func TestQuote_Hourly(t *testing.T) {
	prop := &domain.Property{ID: "p1", HourlyRate: 20, HourlyBooking: true}

	tests := []struct {
		name       string
		start, end string
		want       float64
	}{
		{"fractional minutes", "09:00", "11:30", 50}, // round(20 * 2.5)
		{"whole hours", "09:00", "12:00", 60},
		{"rounds to nearest unit", "09:00", "09:20", 7}, // round(20 * 0.333..)
		{"end equals start", "09:00", "09:00", 0},
		{"end before start", "11:00", "09:00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := domain.StaySelection{
				CheckIn:   date("2024-03-01"),
				CheckOut:  date("2024-03-01"),
				Hourly:    true,
				StartTime: tt.start,
				EndTime:   tt.end,
			}
			assert.Equal(t, tt.want, Quote(sel, prop))
		})
	}
}

func TestQuote_Hourly_AcrossDates(t *testing.T) {
	prop := &domain.Property{ID: "p1", HourlyRate: 10, HourlyBooking: true}

	sel := domain.StaySelection{
		CheckIn:   date("2024-03-01"),
		CheckOut:  date("2024-03-02"),
		Hourly:    true,
		StartTime: "22:00",
		EndTime:   "02:00",
	}
	assert.Equal(t, 40.0, Quote(sel, prop))
}

func TestQuote_Hourly_DisabledOnProperty(t *testing.T) {
	prop := &domain.Property{ID: "p1", HourlyRate: 20, NightlyRate: 150}

	sel := domain.StaySelection{
		CheckIn:   date("2024-03-01"),
		CheckOut:  date("2024-03-01"),
		Hourly:    true,
		StartTime: "09:00",
		EndTime:   "12:00",
	}
	assert.Equal(t, 0.0, Quote(sel, prop))
}

func TestQuote_Hourly_MalformedClock(t *testing.T) {
	prop := &domain.Property{ID: "p1", HourlyRate: 20, HourlyBooking: true}

	sel := domain.StaySelection{
		CheckIn:   date("2024-03-01"),
		CheckOut:  date("2024-03-01"),
		Hourly:    true,
		StartTime: "9am",
		EndTime:   "11:00",
	}
	assert.Equal(t, 0.0, Quote(sel, prop))
}

func TestBreakdown(t *testing.T) {
	b := Breakdown(450)

	assert.Equal(t, 450.0, b.Subtotal)
	assert.Equal(t, 13.05, b.ServiceFee) // 2.9%
	assert.Equal(t, 36.0, b.Tax)         // 8%
	assert.Equal(t, 499.05, b.Total)
}

func TestBreakdown_RoundsToCents(t *testing.T) {
	b := Breakdown(99.99)

	assert.Equal(t, 2.9, b.ServiceFee)
	assert.Equal(t, 8.0, b.Tax)
	assert.Equal(t, 110.89, b.Total)
}

func TestWithinHours(t *testing.T) {
	open := &domain.Property{}
	assert.True(t, WithinHours(open, "00:00", "23:59"))

	windowed := &domain.Property{
		AvailableHours: &domain.AvailableHours{From: "08:00", To: "20:00"},
	}
	assert.True(t, WithinHours(windowed, "09:00", "11:30"))
	assert.False(t, WithinHours(windowed, "07:00", "11:30"))
	assert.False(t, WithinHours(windowed, "09:00", "21:00"))
}
