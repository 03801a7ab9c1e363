package checkout

// FieldView is what a presentation layer needs to render one input.
type FieldView struct {
	Field     Field
	Label     string
	InputType InputType
	MaxLength int
	Value     string
	Error     string
	HasError  bool
}

// View returns one FieldView per field in form order.
func (f *Form) View() []FieldView {
	out := make([]FieldView, 0, len(Fields()))
	for _, field := range Fields() {
		msg, hasError := f.errors[field]
		out = append(out, FieldView{
			Field:     field,
			Label:     field.Label(),
			InputType: field.InputType(),
			MaxLength: field.MaxLength(),
			Value:     f.fields.Get(field),
			Error:     msg,
			HasError:  hasError,
		})
	}
	return out
}
