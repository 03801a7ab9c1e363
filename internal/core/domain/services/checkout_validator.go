package services

import (
	"regexp"
	"unicode/utf16"

	"checkout/internal/core/domain/model/checkout"
)

const (
	cardNumberLength = 16
	cvvLength        = 3

	// whitespace as understood by browsers, not only ASCII.
	whitespace = `\s\v\p{Z}\x{FEFF}`
)

//nolint:gochecknoglobals // compiled once
var (
	emailRegex  = regexp.MustCompile(`^[^` + whitespace + `@]+@[^` + whitespace + `@]+\.[^` + whitespace + `]+$`)
	expiryRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
)

// ValidationRule pairs a predicate over one field value with the failure
// reported when the predicate does not hold.
type ValidationRule struct {
	Field   checkout.Field
	IsValid func(value string) bool
	Failure *checkout.ValidationFailure
}

// CheckoutValidator evaluates the checkout rules. It is stateless; the zero
// value is ready to use.
//
// Example:
//
//	errorMap := services.CheckoutValidator{}.Validate(form.Fields())
//	if !errorMap.IsEmpty() {
//	    // show errorMap[checkout.FieldEmail] next to the email input
//	}
type CheckoutValidator struct{}

// NewCheckoutValidator creates a CheckoutValidator.
func NewCheckoutValidator() CheckoutValidator {
	return CheckoutValidator{}
}

// Rules returns the rule of every field in form order.
//
// Card number and CVV rules count UTF-16 code units, as a browser input
// does, and do not require digits: "ABCDEFGHIJKLMNOP" is a valid card
// number and so are eight emoji.
func (CheckoutValidator) Rules() []ValidationRule {
	return []ValidationRule{
		{Field: checkout.FieldName, IsValid: isPresent, Failure: checkout.ErrMissingName},
		{Field: checkout.FieldEmail, IsValid: isEmail, Failure: checkout.ErrInvalidEmail},
		{Field: checkout.FieldAddress, IsValid: isPresent, Failure: checkout.ErrMissingAddress},
		{Field: checkout.FieldCardNumber, IsValid: hasLength(cardNumberLength), Failure: checkout.ErrInvalidCardNumber},
		{Field: checkout.FieldExpiryDate, IsValid: isExpiryDate, Failure: checkout.ErrInvalidExpiryDate},
		{Field: checkout.FieldCvv, IsValid: hasLength(cvvLength), Failure: checkout.ErrInvalidCvv},
	}
}

// Validate runs every rule against fields, without stopping at the first
// failure, and returns the failed fields only. An empty map means the form
// may be submitted.
func (v CheckoutValidator) Validate(fields checkout.FormFields) checkout.ErrorMap {
	failures := make([]*checkout.ValidationFailure, 0, len(checkout.Fields()))
	for _, rule := range v.Rules() {
		if !rule.IsValid(fields.Get(rule.Field)) {
			failures = append(failures, rule.Failure)
		}
	}
	return checkout.NewErrorMap(failures...)
}

// isPresent only rejects the empty string; a value of spaces is present.
func isPresent(value string) bool {
	return value != ""
}

func isEmail(value string) bool {
	return isPresent(value) && emailRegex.MatchString(value)
}

func isExpiryDate(value string) bool {
	return isPresent(value) && expiryRegex.MatchString(value)
}

func hasLength(n int) func(string) bool {
	return func(value string) bool {
		return isPresent(value) && len(utf16.Encode([]rune(value))) == n
	}
}
