package ports

import (
	"context"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/domain"
)

// MarketplaceAPI is the external backend the gateway books against.
type MarketplaceAPI interface {
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
	CreateReservation(ctx context.Context, token string, in domain.ReservationInput) (*domain.Reservation, error)
	ConversationDigest(ctx context.Context, token string) (*domain.ConversationDigest, error)
}
