// Package guard provides ConstructorGuard, a marker embedded in commands and value
// objects so that zero values created by struct literals can be told apart from
// values built by their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value was built by its constructor.
//
// Example:
//
//	var ErrRequestClaimCommandIsNotConstructed = errors.New("RequestClaimCommand must be created via NewRequestClaimCommand")
//
//	type RequestClaimCommand struct {
//	    listingID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c RequestClaimCommand) Validate() error {
//	    return c.guard.Validate(ErrRequestClaimCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
