package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCard() *CardInput {
	return &CardInput{
		HolderName: "Jane Doe",
		Number:     "4242424242424242",
		Expiry:     "12/27",
		CVV:        "123",
	}
}

func TestValidator_Payment_ValidCard(t *testing.T) {
	v := NewValidator()

	errs := v.Payment(PaymentInput{Method: "card", Card: validCard()})
	assert.Empty(t, errs)
}

func TestValidator_Payment_NonCardMethodsSkipCardChecks(t *testing.T) {
	v := NewValidator()

	for _, method := range []string{"paypal", "applepay", "bank"} {
		errs := v.Payment(PaymentInput{Method: method})
		assert.Empty(t, errs, "method %s", method)
	}
}

func TestValidator_Payment_NonCardMethodIgnoresCardBlob(t *testing.T) {
	v := NewValidator()

	junk := &CardInput{Number: "not a card", Expiry: "never", CVV: "x"}
	errs := v.Payment(PaymentInput{Method: "paypal", Card: junk})
	assert.Empty(t, errs)
}

func TestValidator_Payment_CardNumber(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		number string
		ok     bool
	}{
		{"sixteen digits", "4242424242424242", true},
		{"fifteen digits", "424242424242424", false},
		{"seventeen digits", "42424242424242424", false},
		{"letters", "4242abcd42424242", false},
		{"spaces", "4242 4242 4242 4242", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := validCard()
			card.Number = tt.number
			errs := v.Payment(PaymentInput{Method: "card", Card: card})
			if tt.ok {
				assert.Empty(t, errs)
			} else {
				require.NotEmpty(t, errs)
				assert.Equal(t, "number", errs[0].Field)
			}
		})
	}
}

func TestValidator_Payment_Expiry(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		expiry string
		ok     bool
	}{
		{"12/27", true},
		{"01/30", true},
		{"13/27", false},
		{"00/27", false},
		{"1/27", false},
		{"12/2027", false},
		{"12-27", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.expiry, func(t *testing.T) {
			card := validCard()
			card.Expiry = tt.expiry
			errs := v.Payment(PaymentInput{Method: "card", Card: card})
			assert.Equal(t, tt.ok, len(errs) == 0)
		})
	}
}

func TestValidator_Payment_CVV(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		cvv string
		ok  bool
	}{
		{"123", true},
		{"1234", true},
		{"12", false},
		{"12345", false},
		{"12a", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.cvv, func(t *testing.T) {
			card := validCard()
			card.CVV = tt.cvv
			errs := v.Payment(PaymentInput{Method: "card", Card: card})
			assert.Equal(t, tt.ok, len(errs) == 0)
		})
	}
}

func TestValidator_Payment_MissingCard(t *testing.T) {
	v := NewValidator()

	errs := v.Payment(PaymentInput{Method: "card"})
	require.Len(t, errs, 1)
	assert.Equal(t, "card", errs[0].Field)
}

func TestValidator_Payment_MissingHolderName(t *testing.T) {
	v := NewValidator()

	card := validCard()
	card.HolderName = ""
	errs := v.Payment(PaymentInput{Method: "card", Card: card})
	require.Len(t, errs, 1)
	assert.Equal(t, "holderName", errs[0].Field)
	assert.Equal(t, "is required", errs[0].Message)
}

func TestValidator_Payment_UnknownMethod(t *testing.T) {
	v := NewValidator()

	errs := v.Payment(PaymentInput{Method: "crypto"})
	require.NotEmpty(t, errs)
	assert.Equal(t, "method", errs[0].Field)
}

func validBilling() BillingInput {
	return BillingInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Address:   "1 Main St",
		City:      "Nouakchott",
		Zip:       "10001",
	}
}

func TestValidator_Billing_Valid(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.Billing(validBilling()))
}

func TestValidator_Billing_PhoneOptional(t *testing.T) {
	v := NewValidator()

	in := validBilling()
	in.Phone = ""
	assert.Empty(t, v.Billing(in))
}

func TestValidator_Billing_RequiredFields(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		field  string
		mutate func(*BillingInput)
	}{
		{"firstName", func(b *BillingInput) { b.FirstName = "" }},
		{"lastName", func(b *BillingInput) { b.LastName = "" }},
		{"email", func(b *BillingInput) { b.Email = "" }},
		{"address", func(b *BillingInput) { b.Address = "" }},
		{"city", func(b *BillingInput) { b.City = "" }},
		{"zip", func(b *BillingInput) { b.Zip = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			in := validBilling()
			tt.mutate(&in)
			errs := v.Billing(in)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
		})
	}
}

func TestValidator_Billing_BadEmail(t *testing.T) {
	v := NewValidator()

	in := validBilling()
	in.Email = "not-an-email"
	errs := v.Billing(in)
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "must be a valid email address", errs[0].Message)
}
