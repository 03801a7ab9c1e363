// Package guard holds ConstructorGuard, a marker embedded in commands and
// queries so that zero values built with a struct literal are rejected.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was produced by a constructor.
//
// Example:
//
//	var ErrSetFieldCommandIsNotConstructed = errors.New("SetFieldCommand must be created via NewSetFieldCommand")
//
//	type SetFieldCommand struct {
//	    field checkout.Field
//	    guard guard.ConstructorGuard
//	}
//
//	func (c SetFieldCommand) Validate() error {
//	    return c.guard.Validate(ErrSetFieldCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
