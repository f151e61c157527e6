// Package guard provides a small helper for enforcing constructor usage on
// value objects and entities. Embedding a ConstructorGuard in a struct makes
// the zero value detectably invalid: only instances produced by a constructor
// that calls NewConstructorGuard pass validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not created through its constructor and no custom error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as properly constructed.
// The zero value is invalid; obtain a valid guard via NewConstructorGuard.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard marking its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil if the owner was created through its constructor.
// Otherwise it returns notConstructedErr, or ErrDefaultConstructorGuard when
// notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr != nil {
		return notConstructedErr
	}
	return ErrDefaultConstructorGuard
}
