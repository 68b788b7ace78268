package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation conflicts with the current state of a resource.
var ErrConflict = errors.New("conflict with current resource state")

// ErrForbidden indicates that the caller lacks permission for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// Booking and ledger specific errors. These are request-level and
// caller-recoverable; handlers map them to HTTP status codes.
var (
	// ErrRoomBlocked indicates the requested date range overlaps a maintenance block.
	ErrRoomBlocked = errors.New("room is blocked for the requested dates")

	// ErrRoomOccupied indicates the requested date range overlaps an active stay.
	ErrRoomOccupied = errors.New("room is occupied for the requested dates")

	// ErrFolioClosed indicates a mutation was attempted on a closed folio.
	ErrFolioClosed = errors.New("folio is closed")

	// ErrLineNotFound indicates the folio line targeted for reversal does not exist.
	ErrLineNotFound = errors.New("folio line not found")

	// ErrAlreadyReversed indicates the folio line has already been reversed once.
	ErrAlreadyReversed = errors.New("folio line already reversed")

	// ErrInvalidAmount indicates a non-positive monetary input.
	ErrInvalidAmount = errors.New("amount must be a positive integer of minor units")

	// ErrNoRateConfigured indicates no nightly rate could be resolved for a stay.
	ErrNoRateConfigured = errors.New("no nightly rate configured for room type")

	// ErrInvalidDateRange indicates endDate <= startDate or an unparseable day key.
	ErrInvalidDateRange = errors.New("invalid date range")
)

// InvalidTransitionError reports an illegal reservation lifecycle change.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid reservation transition from %s to %s", e.From, e.To)
}

// NewInvalidTransition builds an InvalidTransitionError for the given pair.
func NewInvalidTransition(from, to string) error {
	return &InvalidTransitionError{From: from, To: to}
}

// IsInvalidTransition reports whether err is an InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var ite *InvalidTransitionError
	return errors.As(err, &ite)
}

// AppError wraps lower-level failures (typically storage) with an HTTP-ish
// code and a message safe to log.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
