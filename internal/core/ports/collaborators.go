// Package ports defines the contracts between the checkout core and the
// outside world: the collaborators notified after a submission, the session
// store and the submission attempt store.
package ports

// Confirmer tells the buyer that the order was placed. Calls are
// fire-and-forget: implementations must not block and report nothing back.
type Confirmer interface {
	ConfirmOrderPlaced()
}

// Navigator moves the buyer to another route of the application. Calls are
// fire-and-forget.
type Navigator interface {
	Navigate(path string)
}

// ConfirmerFunc adapts a plain function to Confirmer.
type ConfirmerFunc func()

func (f ConfirmerFunc) ConfirmOrderPlaced() {
	f()
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) {
	f(path)
}
