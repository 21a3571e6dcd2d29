// Package errors defines the error kinds shared across the service and
// handler layers. Sentinel values cover the not-found and validation
// cases; seat conflicts and cash shortfalls carry context of their own and
// are typed errors so callers can report which seat or how much was short.
package errors

import (
	"errors"
	"fmt"
)

var ErrMovieNotFound = errors.New("movie not found")
var ErrStudioNotFound = errors.New("studio not found")
var ErrScheduleNotFound = errors.New("schedule not found")
var ErrMemberNotFound = errors.New("member not found")
var ErrCartItemNotFound = errors.New("cart item not found")
var ErrOrderNotFound = errors.New("order not found")

// ErrEmptyCart is returned when a checkout is attempted with no cart items.
var ErrEmptyCart = errors.New("cart is empty")

// ErrAlreadyInCart signals that the member already holds this exact seat in
// their cart. Callers report it as a status, not a failure.
var ErrAlreadyInCart = errors.New("seat already in cart")

// ErrInvalidInput covers malformed seat coordinates and unsupported
// payment methods. Wrap it with detail: fmt.Errorf("%w: ...", ErrInvalidInput).
var ErrInvalidInput = errors.New("invalid input")

// SeatConflictError reports that a specific seat of a screening is already
// sold. It is raised by the advisory pre-check at cart-add and checkout
// validation, and authoritatively by the seat ledger when the unique
// constraint rejects a commit.
type SeatConflictError struct {
	ScheduleID int64
	Row        string
	Col        int
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seat %s%d is already sold for schedule %d", e.Row, e.Col, e.ScheduleID)
}

// Seat returns the display label of the conflicting seat, e.g. "A1".
func (e *SeatConflictError) Seat() string {
	return fmt.Sprintf("%s%d", e.Row, e.Col)
}

// InsufficientCashError reports a cash payment below the final price.
type InsufficientCashError struct {
	Required int64
	Given    int64
}

func (e *InsufficientCashError) Error() string {
	return fmt.Sprintf("insufficient cash: need %d, got %d", e.Required, e.Given)
}

// Shortfall returns how much cash is missing.
func (e *InsufficientCashError) Shortfall() int64 {
	return e.Required - e.Given
}

// AsSeatConflict unwraps err into a SeatConflictError if it is one.
func AsSeatConflict(err error) (*SeatConflictError, bool) {
	var conflict *SeatConflictError
	ok := errors.As(err, &conflict)
	return conflict, ok
}

// AsInsufficientCash unwraps err into an InsufficientCashError if it is one.
func AsInsufficientCash(err error) (*InsufficientCashError, bool) {
	var short *InsufficientCashError
	ok := errors.As(err, &short)
	return short, ok
}
