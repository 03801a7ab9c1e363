// Package checkout provides the domain model of the checkout form: the six
// buyer and payment fields, the per-field error annotations and the
// submission state machine.
//
// The package includes:
//   - Field: the closed set of form field keys with their presentation hints
//   - FormFields: a snapshot holding a string for every field
//   - ErrorMap: field to message mapping for the currently invalid fields
//   - Form: the Field Store aggregate owned by one checkout session
//   - Status: the submission state machine Idle -> Validating -> Rejected | Accepted
//
// Key business rules:
//   - Every field always holds a string; a new form holds six empty strings
//   - Editing a field clears only that field's error and never re-validates
//   - Errors are replaced wholesale after each validation pass
//   - A form whose submission was accepted cannot be submitted again
//
// Validation rules live in the services package; this package only stores
// their outcome.
package checkout
