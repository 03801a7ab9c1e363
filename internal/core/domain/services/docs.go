// Package services provides the domain services of the checkout form.
//
// The package includes:
//   - CheckoutValidator: the pure rule set turning a FormFields snapshot into an ErrorMap
//   - SubmissionController: the validate-then-act step that either annotates
//     the form with errors or confirms the order and navigates home
//
// Both are synchronous and never block: the controller's collaborators are
// fire-and-forget calls whose outcome is not inspected.
package services
