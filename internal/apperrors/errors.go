package apperrors

import (
	"errors"
	"fmt"
)

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnsupportedCurrency indicates a currency code that is not present in the rate table.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ErrDataAccess indicates that the document store could not be reached, timed out or failed a query.
var ErrDataAccess = errors.New("data access error")

// ErrUnauthenticated indicates a request without a valid session.
var ErrUnauthenticated = errors.New("unauthenticated")

// UnsupportedCurrency wraps ErrUnsupportedCurrency with the offending code.
func UnsupportedCurrency(code string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
}

// DataAccess wraps err so that it matches ErrDataAccess while keeping the cause in the chain.
func DataAccess(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrDataAccess) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrDataAccess, op, err)
}
