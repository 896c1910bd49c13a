package domain

// AvailableHours is the daily window a property accepts hourly bookings in,
// as wall-clock "HH:MM" strings.
type AvailableHours struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Property is the marketplace listing as the backend exposes it. Read-only
// from this service's perspective; fetched per quote, never cached.
type Property struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	NightlyRate    float64         `json:"nightlyPrice"`
	HourlyRate     float64         `json:"hourlyPrice"`
	HourlyBooking  bool            `json:"hourlyBookingEnabled"`
	AvailableHours *AvailableHours `json:"availableHours,omitempty"`
	Currency       string          `json:"currency"`
}
