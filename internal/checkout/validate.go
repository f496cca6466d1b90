package checkout

import (
	"regexp"
	"strings"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/domain"
	"github.com/SadiqNaizam/MLO-a774-fa95/pkg/errors"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	cardPattern   = regexp.MustCompile(`^\d{16}$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvcPattern    = regexp.MustCompile(`^\d{3,4}$`)
)

// ValidateShipping checks the shipping form schema. Every failing required
// field gets its own message; apartment and phone are optional. Returns
// nil when all rules pass.
func ValidateShipping(form domain.ShippingForm) *errors.ErrValidation {
	fields := make(map[string]string)

	if !emailPattern.MatchString(strings.TrimSpace(form.Email)) {
		fields["email"] = "Invalid email address."
	}
	if len(strings.TrimSpace(form.FullName)) < 2 {
		fields["fullName"] = "Full name must be at least 2 characters."
	}
	if len(strings.TrimSpace(form.Address)) < 5 {
		fields["address"] = "Address is too short."
	}
	if len(strings.TrimSpace(form.City)) < 2 {
		fields["city"] = "City is too short."
	}
	if len(strings.TrimSpace(form.Country)) < 2 {
		fields["country"] = "Country is required."
	}
	if len(strings.TrimSpace(form.PostalCode)) < 3 {
		fields["postalCode"] = "Postal code is too short."
	}

	if len(fields) > 0 {
		return &errors.ErrValidation{Message: "shipping information is invalid", Fields: fields}
	}
	return nil
}

// ValidatePayment checks the payment form schema. Returns nil when all
// rules pass.
func ValidatePayment(form domain.PaymentForm) *errors.ErrValidation {
	fields := make(map[string]string)

	if !cardPattern.MatchString(strings.TrimSpace(form.CardNumber)) {
		fields["cardNumber"] = "Invalid card number (must be 16 digits)."
	}
	if len(strings.TrimSpace(form.CardName)) < 2 {
		fields["cardName"] = "Name on card is required."
	}
	if !expiryPattern.MatchString(strings.TrimSpace(form.ExpiryDate)) {
		fields["expiryDate"] = "Invalid expiry date (MM/YY)."
	}
	if !cvcPattern.MatchString(strings.TrimSpace(form.CVC)) {
		fields["cvc"] = "Invalid CVC (3 or 4 digits)."
	}

	if len(fields) > 0 {
		return &errors.ErrValidation{Message: "payment details are invalid", Fields: fields}
	}
	return nil
}
