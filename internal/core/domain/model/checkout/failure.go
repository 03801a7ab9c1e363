package checkout

// ValidationFailure is one of the six ways a checkout field can be invalid.
// Its Error text is the message shown to the buyer.
type ValidationFailure struct {
	field   Field
	message string
}

//nolint:gochecknoglobals // fixed failure taxonomy
var (
	ErrMissingName       = &ValidationFailure{field: FieldName, message: "Name is required."}
	ErrInvalidEmail      = &ValidationFailure{field: FieldEmail, message: "Valid email is required."}
	ErrMissingAddress    = &ValidationFailure{field: FieldAddress, message: "Address is required."}
	ErrInvalidCardNumber = &ValidationFailure{field: FieldCardNumber, message: "Valid 16-digit card number is required."}
	ErrInvalidExpiryDate = &ValidationFailure{field: FieldExpiryDate, message: "Valid expiry date (MM/YY) is required."}
	ErrInvalidCvv        = &ValidationFailure{field: FieldCvv, message: "Valid 3-digit CVV is required."}
)

func (f *ValidationFailure) Error() string {
	return f.message
}

// Field is the field the failure is reported against.
func (f *ValidationFailure) Field() Field {
	return f.field
}

// Message is the buyer facing text.
func (f *ValidationFailure) Message() string {
	return f.message
}

// NewErrorMap collects failures into an ErrorMap. A later failure for the
// same field replaces an earlier one.
func NewErrorMap(failures ...*ValidationFailure) ErrorMap {
	out := make(ErrorMap, len(failures))
	for _, failure := range failures {
		if failure == nil {
			continue
		}
		out[failure.field] = failure.message
	}
	return out
}
