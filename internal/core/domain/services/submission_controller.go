package services

import (
	"errors"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/ports"
	"checkout/internal/pkg/errs"
)

// FormValidator turns a snapshot of the fields into the errors found in it.
type FormValidator interface {
	Validate(fields checkout.FormFields) checkout.ErrorMap
}

// SubmissionController decides one submission of a checkout form.
//
// Business rules:
//   - every rule is evaluated against the current snapshot
//   - any failure replaces the form's errors and ends the submission as
//     Rejected; collaborators are not called
//   - no failure confirms the order and navigates to checkout.HomePath, each
//     exactly once; the form's values and errors are left untouched
//
// Example:
//
//	controller, _ := services.NewSubmissionController(
//	    services.NewCheckoutValidator(),
//	    ports.ConfirmerFunc(func() { fmt.Println(checkout.OrderPlacedMessage) }),
//	    ports.NavigatorFunc(router.Go),
//	)
//	errorMap, err := controller.Submit(form)
type SubmissionController struct {
	validator FormValidator
	confirmer ports.Confirmer
	navigator ports.Navigator
}

// NewSubmissionController requires all three collaborators.
func NewSubmissionController(
	validator FormValidator,
	confirmer ports.Confirmer,
	navigator ports.Navigator,
) (*SubmissionController, error) {
	var err error
	if validator == nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("validator"))
	}
	if confirmer == nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("confirmer"))
	}
	if navigator == nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("navigator"))
	}
	if err != nil {
		return nil, err
	}

	return &SubmissionController{
		validator: validator,
		confirmer: confirmer,
		navigator: navigator,
	}, nil
}

// Submit validates form and acts on the outcome. The returned map is empty
// when the order was accepted.
//
// Validation failures are not errors: they come back in the map and are
// stored on the form. An error is returned only when the form cannot be
// submitted at all, such as a form that was already accepted.
func (c *SubmissionController) Submit(form *checkout.Form) (checkout.ErrorMap, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if err := form.BeginValidation(); err != nil {
		return nil, err
	}

	errorMap := c.validator.Validate(form.Fields())
	if !errorMap.IsEmpty() {
		if err := form.Reject(errorMap); err != nil {
			return nil, err
		}
		return errorMap, nil
	}

	if err := form.Accept(); err != nil {
		return nil, err
	}
	c.confirmer.ConfirmOrderPlaced()
	c.navigator.Navigate(checkout.HomePath)

	return errorMap, nil
}
