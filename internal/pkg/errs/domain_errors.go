package errs

import "errors"

// Sentinel errors shared between the usecase layer and the transport layer.
// The handler maps these onto HTTP statuses; the financial summary calculator
// never raises any of them (it degrades to a zeroed summary instead).
var (
	// Lookup errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrVoucherNotFound = errors.New("voucher not found")
	ErrStaffNotFound   = errors.New("staff not found")

	// Input errors
	ErrValidation  = errors.New("validation error")
	ErrInvalidDate = errors.New("checkout date outside the valid window")

	// Lifecycle errors
	ErrInvalidState        = errors.New("transition not allowed from current status")
	ErrPaymentRequired     = errors.New("outstanding balance, no discount applicable")
	ErrCancellationDenied  = errors.New("cancellation not allowed")
	ErrConcurrencyConflict = errors.New("stale booking version")

	// Voucher errors
	ErrVoucherExpired     = errors.New("voucher has expired")
	ErrVoucherAlreadyUsed = errors.New("voucher already used")
	ErrVoucherNotActive   = errors.New("voucher is not active")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
