package errclass

import "fmt"

// UARError is a stable, machine-readable error class.
type UARError struct {
	Code    string
	Message string
}

func (e *UARError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *UARError) Is(target error) bool {
	t, ok := target.(*UARError)
	return ok && e.Code == t.Code
}

// WithMessage returns a new UARError with the same Code but a specific message.
func (e *UARError) WithMessage(msg string) *UARError {
	return &UARError{Code: e.Code, Message: msg}
}

// WithMessagef returns a new UARError with a formatted message.
func (e *UARError) WithMessagef(format string, args ...any) *UARError {
	return &UARError{Code: e.Code, Message: fmt.Sprintf(format, args...)}
}

// All stable error classes.
var (
	ErrAddressFieldMissing = &UARError{Code: "E_ADDRESS_FIELD_MISSING"}
	ErrActivityMalformed   = &UARError{Code: "E_ACTIVITY_MALFORMED"}
	ErrTimestampInvalid    = &UARError{Code: "E_TIMESTAMP_INVALID"}
	ErrRoleUnknown         = &UARError{Code: "E_ROLE_UNKNOWN"}
	ErrRosterCorrupt       = &UARError{Code: "E_ROSTER_CORRUPT"}
)
