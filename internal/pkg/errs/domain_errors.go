package errs

// Error classes surfaced by the reservation & settlement engine.
// Usecases mark concrete failures with one of these so callers can switch on errors.Is.
var (
	// Business errors: recoverable at the caller boundary, never partially applied.
	ErrValidation          = New("validation error")
	ErrNotFound            = New("not found")
	ErrUnavailable         = New("unavailable")
	ErrConflict            = New("slot already booked")
	ErrInsufficientBalance = New("insufficient balance")
	ErrAlreadyCancelled    = New("reservation already cancelled")
	ErrOrderNotFound       = New("order not found")
	ErrInvalidTransition   = New("invalid status transition")

	// ErrIntegrity is fatal and non-retryable: the datastore rejected the transaction
	// for reasons outside the business rules.
	ErrIntegrity = New("integrity error")
)
