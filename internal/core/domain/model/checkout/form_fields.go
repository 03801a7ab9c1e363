package checkout

// FormFields is a snapshot of the six field values. Being a struct of plain
// strings it can never miss a key or hold a nil value.
type FormFields struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	Cvv        string `json:"cvv"`
}

// Get returns the value held for f, or "" for unknown fields.
func (ff FormFields) Get(f Field) string {
	switch f {
	case FieldName:
		return ff.Name
	case FieldEmail:
		return ff.Email
	case FieldAddress:
		return ff.Address
	case FieldCardNumber:
		return ff.CardNumber
	case FieldExpiryDate:
		return ff.ExpiryDate
	case FieldCvv:
		return ff.Cvv
	}
	return ""
}

// With returns a copy of ff where f holds value. Unknown fields leave the copy unchanged.
func (ff FormFields) With(f Field, value string) FormFields {
	switch f {
	case FieldName:
		ff.Name = value
	case FieldEmail:
		ff.Email = value
	case FieldAddress:
		ff.Address = value
	case FieldCardNumber:
		ff.CardNumber = value
	case FieldExpiryDate:
		ff.ExpiryDate = value
	case FieldCvv:
		ff.Cvv = value
	}
	return ff
}
