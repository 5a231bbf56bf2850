// Package guard provides a defensive construction pattern for commands, queries,
// and value objects. Embedding a ConstructorGuard in a struct makes it possible to
// detect whether the struct was created through its designated constructor or left
// as a zero value, which keeps domain invariants from being bypassed.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil
// error for a zero-value guard. Validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether the owning object was built through its
// constructor. The zero value is invalid; constructors embed NewConstructorGuard().
//
// Example:
//
//	type SubmitOrderCommand struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSubmitOrderCommand() SubmitOrderCommand {
//	    return SubmitOrderCommand{guard: guard.NewConstructorGuard()}
//	}
//
//	func (c SubmitOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed owner. For a zero-value guard it
// returns notConstructedErr, or ErrDefaultConstructorGuard when nil is passed.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}

	return notConstructedErr
}
