package checkout

import (
	"errors"
	"fmt"

	"checkout/internal/pkg/errs"
)

// ErrorMap maps a field to the message describing why it is invalid.
// A missing key means the field has no known error; keys are never present
// with an empty message.
type ErrorMap map[Field]string

// IsEmpty reports whether no field has an error.
func (m ErrorMap) IsEmpty() bool {
	return len(m) == 0
}

// Fields returns the fields with an error, in form order.
func (m ErrorMap) Fields() []Field {
	out := make([]Field, 0, len(m))
	for _, f := range Fields() {
		if _, ok := m[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Clone returns an independent copy. The copy of a nil map is an empty map.
func (m ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(m))
	for f, msg := range m {
		out[f] = msg
	}
	return out
}

// Validate checks that every key is a known field and every message is non-empty.
func (m ErrorMap) Validate() error {
	var err error
	for f, msg := range m {
		if fieldErr := f.Validate(); fieldErr != nil {
			err = errors.Join(err, fieldErr)
			continue
		}
		if msg == "" {
			err = errors.Join(err, errs.NewValueIsRequiredErrorWithCause(
				"error message",
				fmt.Errorf("field %s has an empty message", f),
			))
		}
	}
	return err
}

// Strings converts the map for encoders that need plain string keys.
func (m ErrorMap) Strings() map[string]string {
	out := make(map[string]string, len(m))
	for f, msg := range m {
		out[string(f)] = msg
	}
	return out
}
