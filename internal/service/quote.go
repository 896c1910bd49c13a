package service

import (
	"context"
	"fmt"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/domain"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/pricing"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/service/ports"
)

// QuoteService prices a selection against a property's live rates. A quote
// never fails on an unpriceable selection; it reports zero and lets the
// caller decide what that means.
type QuoteService struct {
	api ports.MarketplaceAPI
}

func NewQuoteService(api ports.MarketplaceAPI) *QuoteService {
	return &QuoteService{api: api}
}

type QuoteResult struct {
	PropertyID string
	Nights     int
	Breakdown  domain.PriceBreakdown
}

func (s *QuoteService) Quote(ctx context.Context, propertyID string, stay domain.StaySelection) (*QuoteResult, error) {
	prop, err := s.api.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("fetch property: %w", err)
	}

	return &QuoteResult{
		PropertyID: propertyID,
		Nights:     pricing.Nights(stay.CheckIn, stay.CheckOut),
		Breakdown:  pricing.Breakdown(pricing.Quote(stay, prop)),
	}, nil
}
