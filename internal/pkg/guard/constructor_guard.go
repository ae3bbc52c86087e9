// Package guard provides a defensive pattern that ensures value objects
// are only created through their designated constructor functions.
//
// Commands and value objects in this codebase embed a ConstructorGuard
// so that a zero-value struct obtained by direct initialization fails
// validation instead of silently carrying empty fields into a handler.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero
// values. Embed it in a struct and set it with NewConstructorGuard in
// the constructor; a zero-value struct carries a zero-value guard that
// fails Validate.
//
// Example:
//
//	type PlaceOrderCommand struct {
//	    studentID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewPlaceOrderCommand(studentID kernel.UUID) (PlaceOrderCommand, error) {
//	    if err := studentID.Validate(); err != nil {
//	        return PlaceOrderCommand{}, err
//	    }
//	    return PlaceOrderCommand{
//	        studentID: studentID,
//	        guard:     guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c PlaceOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a
// zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
