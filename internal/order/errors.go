package order

import "errors"

// Validation errors are client faults: the handler maps them to 400 and the
// submission can be retried. Anything else coming out of Submit is a server
// fault.
var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrEmptyCart       = errors.New("cart cannot be empty")
	ErrInvalidCartItem = errors.New("invalid cart item structure")
)

// IsValidationError reports whether err is one of the client-fault
// validation errors above.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrEmptyCart) ||
		errors.Is(err, ErrInvalidCartItem)
}
