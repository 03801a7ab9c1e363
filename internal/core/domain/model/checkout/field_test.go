package checkout_test

import (
	"testing"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields(t *testing.T) {
	t.Run("should list the six fields in form order", func(t *testing.T) {
		assert.Equal(t, []checkout.Field{
			checkout.FieldName,
			checkout.FieldEmail,
			checkout.FieldAddress,
			checkout.FieldCardNumber,
			checkout.FieldExpiryDate,
			checkout.FieldCvv,
		}, checkout.Fields())
	})

	t.Run("should use the form input names as keys", func(t *testing.T) {
		keys := make([]string, 0, 6)
		for _, f := range checkout.Fields() {
			keys = append(keys, f.String())
		}
		assert.Equal(t, []string{"name", "email", "address", "cardNumber", "expiryDate", "cvv"}, keys)
	})
}

func TestParseField(t *testing.T) {
	t.Run("should parse every known key", func(t *testing.T) {
		for _, f := range checkout.Fields() {
			parsed, err := checkout.ParseField(string(f))

			require.NoError(t, err)
			assert.Equal(t, f, parsed)
		}
	})

	t.Run("should reject unknown keys", func(t *testing.T) {
		for _, key := range []string{"", "zip", "Name", "card_number"} {
			_, err := checkout.ParseField(key)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, key)
			assert.Contains(t, err.Error(), "is not a checkout field")
		}
	})
}

func TestField_PresentationHints(t *testing.T) {
	testCases := []struct {
		field     checkout.Field
		label     string
		inputType checkout.InputType
		maxLength int
	}{
		{checkout.FieldName, "Name", checkout.InputText, 0},
		{checkout.FieldEmail, "Email", checkout.InputEmail, 0},
		{checkout.FieldAddress, "Address", checkout.InputTextArea, 0},
		{checkout.FieldCardNumber, "Card Number", checkout.InputText, 16},
		{checkout.FieldExpiryDate, "Expiry Date (MM/YY)", checkout.InputText, 0},
		{checkout.FieldCvv, "CVV", checkout.InputPassword, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.field.String(), func(t *testing.T) {
			assert.Equal(t, tc.label, tc.field.Label())
			assert.Equal(t, tc.inputType, tc.field.InputType())
			assert.Equal(t, tc.maxLength, tc.field.MaxLength())
		})
	}
}

func TestFormFields_GetAndWith(t *testing.T) {
	var fields checkout.FormFields
	for _, f := range checkout.Fields() {
		assert.Empty(t, fields.Get(f))
	}

	updated := fields.With(checkout.FieldCvv, "123")

	assert.Equal(t, "123", updated.Get(checkout.FieldCvv))
	assert.Empty(t, fields.Cvv, "With must not modify the receiver")
	assert.Equal(t, updated, updated.With(checkout.Field("zip"), "x"))
}

func TestNewErrorMap(t *testing.T) {
	m := checkout.NewErrorMap(checkout.ErrMissingName, nil, checkout.ErrInvalidCvv)

	assert.Equal(t, checkout.ErrorMap{
		checkout.FieldName: "Name is required.",
		checkout.FieldCvv:  "Valid 3-digit CVV is required.",
	}, m)
	assert.Equal(t, []checkout.Field{checkout.FieldName, checkout.FieldCvv}, m.Fields())
	assert.Equal(t, map[string]string{
		"name": "Name is required.",
		"cvv":  "Valid 3-digit CVV is required.",
	}, m.Strings())
}

func TestErrorMap_Validate(t *testing.T) {
	t.Run("should accept known fields with messages", func(t *testing.T) {
		require.NoError(t, checkout.NewErrorMap(checkout.ErrInvalidEmail).Validate())
		require.NoError(t, checkout.ErrorMap(nil).Validate())
	})

	t.Run("should reject unknown fields", func(t *testing.T) {
		err := checkout.ErrorMap{"zip": "Zip is required."}.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty messages", func(t *testing.T) {
		err := checkout.ErrorMap{checkout.FieldName: ""}.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestValidationFailure_Messages(t *testing.T) {
	testCases := []struct {
		failure *checkout.ValidationFailure
		field   checkout.Field
		message string
	}{
		{checkout.ErrMissingName, checkout.FieldName, "Name is required."},
		{checkout.ErrInvalidEmail, checkout.FieldEmail, "Valid email is required."},
		{checkout.ErrMissingAddress, checkout.FieldAddress, "Address is required."},
		{checkout.ErrInvalidCardNumber, checkout.FieldCardNumber, "Valid 16-digit card number is required."},
		{checkout.ErrInvalidExpiryDate, checkout.FieldExpiryDate, "Valid expiry date (MM/YY) is required."},
		{checkout.ErrInvalidCvv, checkout.FieldCvv, "Valid 3-digit CVV is required."},
	}

	for _, tc := range testCases {
		t.Run(tc.field.String(), func(t *testing.T) {
			assert.Equal(t, tc.field, tc.failure.Field())
			assert.Equal(t, tc.message, tc.failure.Message())
			assert.EqualError(t, tc.failure, tc.message)
		})
	}
}
