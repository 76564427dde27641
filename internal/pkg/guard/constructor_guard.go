// Package guard provides a small helper to enforce that domain objects and
// commands are created through their constructor functions rather than as
// zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no custom error is provided
// and the guarded object was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it as a private
// field and set it with NewConstructorGuard inside the constructor; the zero value
// fails validation.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil if the guard was created via NewConstructorGuard.
// Otherwise it returns notConstructedErr, or ErrDefaultConstructorGuard when nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr != nil {
		return notConstructedErr
	}
	return ErrDefaultConstructorGuard
}
