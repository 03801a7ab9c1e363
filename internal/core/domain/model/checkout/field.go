package checkout

import (
	"fmt"

	"checkout/internal/pkg/errs"
)

// Field identifies one of the six checkout form inputs. Its value is the key
// used by presentation layers and the HTTP API.
type Field string

const (
	FieldName       Field = "name"
	FieldEmail      Field = "email"
	FieldAddress    Field = "address"
	FieldCardNumber Field = "cardNumber"
	FieldExpiryDate Field = "expiryDate"
	FieldCvv        Field = "cvv"
)

// InputType is the kind of control a presentation layer should render for a field.
type InputType string

const (
	InputText     InputType = "text"
	InputEmail    InputType = "email"
	InputTextArea InputType = "textarea"
	InputPassword InputType = "password"
)

type fieldSpec struct {
	label     string
	inputType InputType
	maxLength int
}

//nolint:gochecknoglobals // closed set of fields
var fieldSpecs = map[Field]fieldSpec{
	FieldName:       {label: "Name", inputType: InputText},
	FieldEmail:      {label: "Email", inputType: InputEmail},
	FieldAddress:    {label: "Address", inputType: InputTextArea},
	FieldCardNumber: {label: "Card Number", inputType: InputText, maxLength: 16},
	FieldExpiryDate: {label: "Expiry Date (MM/YY)", inputType: InputText},
	FieldCvv:        {label: "CVV", inputType: InputPassword, maxLength: 3},
}

// Fields returns every field in form order.
func Fields() []Field {
	return []Field{
		FieldName,
		FieldEmail,
		FieldAddress,
		FieldCardNumber,
		FieldExpiryDate,
		FieldCvv,
	}
}

// ParseField converts an external key into a Field.
// Keys are case sensitive, matching the names rendered by the form.
func ParseField(key string) (Field, error) {
	f := Field(key)
	if err := f.Validate(); err != nil {
		return "", err
	}
	return f, nil
}

// Validate returns a ValueIsInvalidError for keys outside the six known fields.
func (f Field) Validate() error {
	if _, ok := fieldSpecs[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("field", fmt.Errorf("%q is not a checkout field", string(f)))
	}
	return nil
}

func (f Field) String() string {
	return string(f)
}

// Label is the human readable caption shown next to the input.
func (f Field) Label() string {
	return fieldSpecs[f].label
}

// InputType is the control the field is rendered with.
func (f Field) InputType() InputType {
	return fieldSpecs[f].inputType
}

// MaxLength is a rendering hint only; zero means no hint.
// SetField never truncates or rejects longer values.
func (f Field) MaxLength() int {
	return fieldSpecs[f].maxLength
}
