package domain

import "errors"

var (
	ErrNotSignedIn = errors.New("sign in to book")
	ErrAuthExpired = errors.New("session expired, sign in again")
	ErrPermission  = errors.New("you do not have permission to book this property")
)

var (
	ErrNoDatesSelected = errors.New("select check-in and check-out dates")
	ErrDateOrder       = errors.New("check-out date must not be before check-in date")
	ErrTimeOrder       = errors.New("end time must be after start time")
	ErrZeroTotal       = errors.New("selection has no bookable price")
)

var (
	ErrSessionNotFound = errors.New("checkout session not found")
	ErrSessionExpired  = errors.New("checkout session expired")
	ErrWrongStep       = errors.New("action not allowed at this step")
)

var (
	ErrUpstream    = errors.New("the marketplace could not process the request, try again")
	ErrUnreachable = errors.New("cannot reach the marketplace, check your connection")
)

var ErrValidation = errors.New("validation error")

// RejectedError carries the marketplace's own rejection text (HTTP 400)
// verbatim, e.g. "Dates unavailable".
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string { return e.Message }
