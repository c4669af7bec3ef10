package schedule

import "fmt"

// Error is a coded scheduling error. The code is stable and machine-readable;
// handlers map it to an HTTP status, callers may branch on it.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Input and policy error codes.
const (
	CodeInvalidDate    = "INVALID_DATE"
	CodeInvalidTime    = "INVALID_TIME"
	CodeInvalidName    = "INVALID_NAME"
	CodeInvalidPhone   = "INVALID_PHONE"
	CodeInvalidReason  = "INVALID_REASON"
	CodeInvalidStatus  = "INVALID_STATUS"
	CodeDateOutOfRange = "DATE_OUT_OF_RANGE"
	CodeInvalidSlot    = "INVALID_SLOT"
	CodeSlotTaken      = "SLOT_TAKEN"
	CodeNotFound       = "NOT_FOUND"
)

var (
	ErrInvalidDate    = &Error{Code: CodeInvalidDate, Message: "date must be a valid YYYY-MM-DD value"}
	ErrInvalidTime    = &Error{Code: CodeInvalidTime, Message: "start time must be a valid HH:MM value"}
	ErrInvalidName    = &Error{Code: CodeInvalidName, Message: "patient name must be at least 2 characters"}
	ErrInvalidPhone   = &Error{Code: CodeInvalidPhone, Message: "phone must be 7-15 digits, spaces or hyphens, with an optional leading +"}
	ErrInvalidReason  = &Error{Code: CodeInvalidReason, Message: "reason is too long"}
	ErrInvalidStatus  = &Error{Code: CodeInvalidStatus, Message: "unknown appointment status"}
	ErrDateOutOfRange = &Error{Code: CodeDateOutOfRange, Message: "date is outside the booking window"}
	ErrInvalidSlot    = &Error{Code: CodeInvalidSlot, Message: "requested time does not match an offered slot"}
	ErrSlotTaken      = &Error{Code: CodeSlotTaken, Message: "slot is already booked"}
	ErrNotFound       = &Error{Code: CodeNotFound, Message: "appointment not found"}
)

// CodeOf extracts the scheduling error code, or "" for plain errors.
func CodeOf(err error) string {
	if se, ok := err.(*Error); ok {
		return se.Code
	}
	return ""
}
