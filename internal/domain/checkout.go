package domain

import (
	"strings"
	"time"
)

type CheckoutStep string

const (
	StepPayment CheckoutStep = "payment"
	StepBilling CheckoutStep = "billing"
	StepReview  CheckoutStep = "review"
)

type PaymentMethod string

const (
	MethodCard     PaymentMethod = "card"
	MethodPayPal   PaymentMethod = "paypal"
	MethodApplePay PaymentMethod = "applepay"
	MethodBank     PaymentMethod = "bank"
)

type CardDetails struct {
	HolderName string
	Number     string
	Expiry     string // MM/YY
	CVV        string
}

type BillingDetails struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	Zip       string
}

type PriceBreakdown struct {
	Subtotal   float64 `json:"subtotal"`
	ServiceFee float64 `json:"serviceFee"`
	Tax        float64 `json:"tax"`
	Total      float64 `json:"total"`
}

// CheckoutSession is the guest's unsaved payment draft. It lives only in
// memory and is discarded on cancel, expiry, or successful submission.
type CheckoutSession struct {
	ID         string
	PropertyID string
	Stay       StaySelection
	Step       CheckoutStep
	Method     PaymentMethod
	Card       *CardDetails
	Billing    *BillingDetails
	Breakdown  PriceBreakdown
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// MaskedCard renders the stored card number with all but the last four
// digits hidden. Empty when no card has been captured.
func (s *CheckoutSession) MaskedCard() string {
	if s.Card == nil || len(s.Card.Number) < 4 {
		return ""
	}
	last4 := s.Card.Number[len(s.Card.Number)-4:]
	return strings.Repeat("**** ", 3) + last4
}

// PaymentConfirmation is what leaves the checkout on "Pay": never the raw
// card, only the masked number and expiry.
type PaymentConfirmation struct {
	SessionID  string
	Method     PaymentMethod
	MaskedCard string
	CardExpiry string
	Breakdown  PriceBreakdown
}

// FieldError is a single structured validation failure, addressed by the
// request field's JSON name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
