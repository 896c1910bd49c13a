// Package upstream is the HTTP client for the external marketplace backend.
// It owns the wire formats and maps HTTP statuses onto the domain's error
// taxonomy so nothing above it ever inspects a status code.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/domain"
)

const dateLayout = "2006-01-02"

type Client struct {
	http     *http.Client
	baseURL  string
	strategy retry.Strategy
	log      logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:    10,
				MaxConnsPerHost: 10,
				IdleConnTimeout: 90 * time.Second,
			},
		},
		baseURL: baseURL,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		log: log,
	}
}

type createReservationRequest struct {
	PropertyID       string `json:"propertyId"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	GuestsCount      int    `json:"guestsCount"`
	UseHourlyBooking bool   `json:"useHourlyBooking"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
}

type reservationResponse struct {
	ID               string  `json:"id"`
	PropertyID       string  `json:"propertyId"`
	StartDate        string  `json:"startDate"`
	EndDate          string  `json:"endDate"`
	GuestsCount      int     `json:"guestsCount"`
	UseHourlyBooking bool    `json:"useHourlyBooking"`
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
	TotalPrice       float64 `json:"totalPrice"`
}

// rejectionBody is the loose error shape the backend uses; whichever of the
// fields is set carries the user-facing text.
type rejectionBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func (b rejectionBody) text() string {
	switch {
	case b.Error != "":
		return b.Error
	case b.Message != "":
		return b.Message
	case b.Detail != "":
		return b.Detail
	}
	return ""
}

// CreateReservation submits a booking on behalf of the signed-in guest.
// The call is made exactly once: a failed submission is the user's to retry.
func (c *Client) CreateReservation(ctx context.Context, token string, in domain.ReservationInput) (*domain.Reservation, error) {
	if token == "" {
		return nil, domain.ErrNotSignedIn
	}

	guests := in.Guests
	if guests <= 0 {
		guests = 1
	}

	body, err := json.Marshal(createReservationRequest{
		PropertyID:       in.PropertyID,
		StartDate:        in.Stay.CheckIn.Format(dateLayout),
		EndDate:          in.Stay.CheckOut.Format(dateLayout),
		GuestsCount:      guests,
		UseHourlyBooking: in.Stay.Hourly,
		StartTime:        in.Stay.StartTime,
		EndTime:          in.Stay.EndTime,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal reservation request: %w", err)
	}

	url := c.baseURL + "/api/booking/reservations/create/"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.mapFailure(resp)
	}

	var out reservationResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: malformed response", domain.ErrUpstream)
	}
	if out.ID == "" {
		return nil, fmt.Errorf("%w: response missing reservation id", domain.ErrUpstream)
	}

	res := &domain.Reservation{
		ID:         out.ID,
		PropertyID: out.PropertyID,
		Hourly:     out.UseHourlyBooking,
		StartTime:  out.StartTime,
		EndTime:    out.EndTime,
		Guests:     out.GuestsCount,
		Total:      out.TotalPrice,
	}
	if t, err := time.Parse(dateLayout, out.StartDate); err == nil {
		res.CheckIn = t
	}
	if t, err := time.Parse(dateLayout, out.EndDate); err == nil {
		res.CheckOut = t
	}

	c.log.Info("reservation created upstream",
		logger.String("reservation_id", res.ID),
		logger.String("property_id", in.PropertyID),
	)

	return res, nil
}

// GetProperty fetches a listing's rate card. Reads are retried; the
// property is treated as immutable for the duration of a booking flow.
func (c *Client) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	url := fmt.Sprintf("%s/api/properties/%s/", c.baseURL, id)

	var prop domain.Property
	err := retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w: %v", domain.ErrUnreachable, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return c.mapFailure(resp)
		}
		if err := json.NewDecoder(resp.Body).Decode(&prop); err != nil {
			return fmt.Errorf("%w: malformed property", domain.ErrUpstream)
		}
		return nil
	}, c.strategy)
	if err != nil {
		return nil, err
	}

	return &prop, nil
}

// ConversationDigest fetches the caller's inbox summary for change
// detection by the poller.
func (c *Client) ConversationDigest(ctx context.Context, token string) (*domain.ConversationDigest, error) {
	if token == "" {
		return nil, domain.ErrNotSignedIn
	}

	url := c.baseURL + "/api/messaging/conversations/digest/"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.mapFailure(resp)
	}

	var digest domain.ConversationDigest
	if err := json.NewDecoder(resp.Body).Decode(&digest); err != nil {
		return nil, fmt.Errorf("%w: malformed digest", domain.ErrUpstream)
	}

	return &digest, nil
}

// mapFailure translates a non-2xx response into the domain taxonomy.
// 400 bodies carry the backend's text through verbatim.
func (c *Client) mapFailure(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrAuthExpired
	case http.StatusForbidden:
		return domain.ErrPermission
	case http.StatusBadRequest:
		var body rejectionBody
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			if msg := body.text(); msg != "" {
				return &domain.RejectedError{Message: msg}
			}
		}
		return &domain.RejectedError{Message: "the marketplace rejected the request"}
	default:
		return fmt.Errorf("%w (status %d)", domain.ErrUpstream, resp.StatusCode)
	}
}
