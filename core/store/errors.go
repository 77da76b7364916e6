package store

import (
	"errors"
	"fmt"

	"github.com/Mirriamnjeri/rentals/core/validate"
)

// NotFoundError is returned by lookups, updates, and deletes on an absent
// identifier.
type NotFoundError struct {
	Collection string
	ID         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: no record with id %q", e.Collection, e.ID)
}

// IsNotFound reports whether err is a missing-record outcome.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a rejected-input outcome. Validation
// failures never mutate the store.
func IsValidation(err error) bool {
	var ve *validate.ValidationError
	return errors.As(err, &ve)
}
