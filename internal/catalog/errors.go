package catalog

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a mutation targets an id the store does not
// hold. Remove never raises it; Replace does.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product not found: id=%d", e.ID)
}

// DuplicateIDError is returned when Insert collides with an existing id.
type DuplicateIDError struct {
	ID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate product id=%d", e.ID)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsDuplicateID reports whether err wraps a DuplicateIDError.
func IsDuplicateID(err error) bool {
	var dup *DuplicateIDError
	return errors.As(err, &dup)
}
