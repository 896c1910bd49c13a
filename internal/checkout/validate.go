// Package checkout holds the guest's payment draft: structured validation of
// the capture steps and the in-memory store the drafts live in until they
// are paid, cancelled, or expire.
package checkout

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/domain"
)

// PaymentInput is the first capture step. Card details are required and
// validated only for the card method; the other methods are accepted as-is.
type PaymentInput struct {
	Method string     `json:"method" validate:"required,oneof=card paypal applepay bank"`
	Card   *CardInput `json:"card" validate:"-"`
}

type CardInput struct {
	HolderName string `json:"holderName" validate:"required"`
	Number     string `json:"number" validate:"required,cardnumber"`
	Expiry     string `json:"expiry" validate:"required,cardexpiry"`
	CVV        string `json:"cvv" validate:"required,cardcvv"`
}

// BillingInput is the second capture step. Phone is optional.
type BillingInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	Zip       string `json:"zip" validate:"required"`
}

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	cardExpiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cardCVVRe    = regexp.MustCompile(`^\d{3,4}$`)
)

// Validator wraps go-playground/validator with the card-specific rules and
// turns failures into field-addressed errors instead of user-facing alerts.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("cardnumber", func(fl validator.FieldLevel) bool {
		return cardNumberRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("cardexpiry", func(fl validator.FieldLevel) bool {
		return cardExpiryRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("cardcvv", func(fl validator.FieldLevel) bool {
		return cardCVVRe.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Payment validates the payment step. A nil result means the input may
// advance to billing.
func (v *Validator) Payment(in PaymentInput) []domain.FieldError {
	fieldErrs := v.check(in)

	if domain.PaymentMethod(in.Method) == domain.MethodCard {
		if in.Card == nil {
			fieldErrs = append(fieldErrs, domain.FieldError{
				Field: "card", Message: "card details are required",
			})
		} else {
			fieldErrs = append(fieldErrs, v.check(*in.Card)...)
		}
	}

	return fieldErrs
}

// Billing validates the billing step.
func (v *Validator) Billing(in BillingInput) []domain.FieldError {
	return v.check(in)
}

func (v *Validator) check(s any) []domain.FieldError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []domain.FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, domain.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "is not a supported payment method"
	case "cardnumber":
		return "must be exactly 16 digits"
	case "cardexpiry":
		return "must be in MM/YY format"
	case "cardcvv":
		return "must be 3 or 4 digits"
	default:
		return "is invalid"
	}
}
