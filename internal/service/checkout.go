package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/checkout"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/domain"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/pricing"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/service/ports"
)

// CheckoutService drives the payment capture state machine:
// payment → billing → review, strictly linear, back one step at a time.
// Drafts live only in the in-memory store and die with payment, cancel,
// or expiry.
type CheckoutService struct {
	api       ports.MarketplaceAPI
	store     *checkout.Store
	validator *checkout.Validator
	payDelay  time.Duration // simulated processor latency on Pay
	logger    logger.Logger
}

func NewCheckoutService(
	api ports.MarketplaceAPI,
	store *checkout.Store,
	payDelay time.Duration,
	logger logger.Logger,
) *CheckoutService {
	return &CheckoutService{
		api:       api,
		store:     store,
		validator: checkout.NewValidator(),
		payDelay:  payDelay,
		logger:    logger,
	}
}

type StartCheckoutInput struct {
	PropertyID string
	Stay       domain.StaySelection
}

// Start opens a draft for a priced selection. The breakdown shown at the
// review step is fixed here, from the property's current rates.
func (s *CheckoutService) Start(ctx context.Context, in StartCheckoutInput) (*domain.CheckoutSession, error) {
	if err := validateStay(in.Stay); err != nil {
		return nil, err
	}

	prop, err := s.api.GetProperty(ctx, in.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("fetch property: %w", err)
	}

	subtotal := pricing.Quote(in.Stay, prop)
	if subtotal <= 0 {
		return nil, domain.ErrZeroTotal
	}

	now := time.Now().UTC()
	sess := &domain.CheckoutSession{
		ID:         uuid.New().String(),
		PropertyID: in.PropertyID,
		Stay:       in.Stay,
		Step:       domain.StepPayment,
		Breakdown:  pricing.Breakdown(subtotal),
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.store.TTL()),
	}
	s.store.Put(sess)

	s.logger.Info("checkout started",
		logger.String("session_id", sess.ID),
		logger.String("property_id", in.PropertyID),
	)

	return sess, nil
}

// SubmitPayment validates the payment step and advances to billing. Field
// errors keep the session at the payment step. The transition runs inside
// the store's lock, so concurrent submissions against one session cannot
// interleave.
func (s *CheckoutService) SubmitPayment(ctx context.Context, id string, in checkout.PaymentInput) (*domain.CheckoutSession, []domain.FieldError, error) {
	var fieldErrs []domain.FieldError
	sess, err := s.store.Update(id, func(sess *domain.CheckoutSession) error {
		if sess.Step != domain.StepPayment {
			return domain.ErrWrongStep
		}
		if fieldErrs = s.validator.Payment(in); len(fieldErrs) > 0 {
			return domain.ErrValidation
		}

		sess.Method = domain.PaymentMethod(in.Method)
		if in.Card != nil {
			sess.Card = &domain.CardDetails{
				HolderName: in.Card.HolderName,
				Number:     in.Card.Number,
				Expiry:     in.Card.Expiry,
				CVV:        in.Card.CVV,
			}
		}
		sess.Step = domain.StepBilling
		return nil
	})
	if err != nil {
		if len(fieldErrs) > 0 {
			return nil, fieldErrs, nil
		}
		return nil, nil, err
	}
	return sess, nil, nil
}

// SubmitBilling validates the billing step and advances to review.
func (s *CheckoutService) SubmitBilling(ctx context.Context, id string, in checkout.BillingInput) (*domain.CheckoutSession, []domain.FieldError, error) {
	var fieldErrs []domain.FieldError
	sess, err := s.store.Update(id, func(sess *domain.CheckoutSession) error {
		if sess.Step != domain.StepBilling {
			return domain.ErrWrongStep
		}
		if fieldErrs = s.validator.Billing(in); len(fieldErrs) > 0 {
			return domain.ErrValidation
		}

		sess.Billing = &domain.BillingDetails{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Email:     in.Email,
			Phone:     in.Phone,
			Address:   in.Address,
			City:      in.City,
			Zip:       in.Zip,
		}
		sess.Step = domain.StepReview
		return nil
	})
	if err != nil {
		if len(fieldErrs) > 0 {
			return nil, fieldErrs, nil
		}
		return nil, nil, err
	}
	return sess, nil, nil
}

// Back moves one step towards payment. Backing out of the first step is
// not a transition; cancel the session instead.
func (s *CheckoutService) Back(ctx context.Context, id string) (*domain.CheckoutSession, error) {
	return s.store.Update(id, func(sess *domain.CheckoutSession) error {
		switch sess.Step {
		case domain.StepBilling:
			sess.Step = domain.StepPayment
		case domain.StepReview:
			sess.Step = domain.StepBilling
		default:
			return domain.ErrWrongStep
		}
		return nil
	})
}

// Pay confirms from the review step after the simulated processor delay
// and consumes the draft: a session pays out at most once, and a second
// attempt is reported as not found.
func (s *CheckoutService) Pay(ctx context.Context, id string) (*domain.PaymentConfirmation, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if sess.Step != domain.StepReview {
		return nil, domain.ErrWrongStep
	}

	select {
	case <-time.After(s.payDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	// the step is re-checked inside the lock: the session may have moved
	// or been cancelled while the processor delay elapsed
	var conf *domain.PaymentConfirmation
	err = s.store.Consume(id, func(sess *domain.CheckoutSession) error {
		if sess.Step != domain.StepReview {
			return domain.ErrWrongStep
		}
		conf = &domain.PaymentConfirmation{
			SessionID:  sess.ID,
			Method:     sess.Method,
			MaskedCard: sess.MaskedCard(),
			Breakdown:  sess.Breakdown,
		}
		if sess.Card != nil {
			conf.CardExpiry = sess.Card.Expiry
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment confirmed",
		logger.String("session_id", conf.SessionID),
		logger.String("method", string(conf.Method)),
	)

	return conf, nil
}

// Cancel discards the draft and everything entered into it.
func (s *CheckoutService) Cancel(ctx context.Context, id string) {
	s.store.Delete(id)
}
