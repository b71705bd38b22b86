package engine

import "fmt"

// Code is a machine-readable reason a mutation was declined.
type Code string

const (
	CodeInsufficientFunds      Code = "INSUFFICIENT_FUNDS"
	CodeNotEligible            Code = "NOT_ELIGIBLE"
	CodeAlreadyOwned           Code = "ALREADY_OWNED"
	CodeNotOwned               Code = "NOT_OWNED"
	CodeAlreadyEnrolled        Code = "ALREADY_ENROLLED"
	CodeIncarcerated           Code = "INCARCERATED"
	CodeNotIncarcerated        Code = "NOT_INCARCERATED"
	CodeNotMarried             Code = "NOT_MARRIED"
	CodeAlreadyMarried         Code = "ALREADY_MARRIED"
	CodeUnknownContent         Code = "UNKNOWN_CONTENT"
	CodeMaxLevel               Code = "MAX_LEVEL"
	CodeInsufficientExperience Code = "INSUFFICIENT_EXPERIENCE"
	CodeChoiceUnavailable      Code = "CHOICE_UNAVAILABLE"
	CodeNoPendingEvent         Code = "NO_PENDING_EVENT"
)

// Error is the engine's declined-precondition error.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	ErrInsufficientFunds      = &Error{Code: CodeInsufficientFunds, Message: "not enough money"}
	ErrNotEligible            = &Error{Code: CodeNotEligible, Message: "not eligible"}
	ErrAlreadyOwned           = &Error{Code: CodeAlreadyOwned, Message: "already owned"}
	ErrNotOwned               = &Error{Code: CodeNotOwned, Message: "not owned"}
	ErrAlreadyEnrolled        = &Error{Code: CodeAlreadyEnrolled, Message: "already enrolled"}
	ErrIncarcerated           = &Error{Code: CodeIncarcerated, Message: "currently incarcerated"}
	ErrNotIncarcerated        = &Error{Code: CodeNotIncarcerated, Message: "not incarcerated"}
	ErrNotMarried             = &Error{Code: CodeNotMarried, Message: "not married"}
	ErrAlreadyMarried         = &Error{Code: CodeAlreadyMarried, Message: "already married"}
	ErrUnknownContent         = &Error{Code: CodeUnknownContent, Message: "unknown content id"}
	ErrMaxLevel               = &Error{Code: CodeMaxLevel, Message: "already at maximum level"}
	ErrInsufficientExperience = &Error{Code: CodeInsufficientExperience, Message: "not enough experience"}
	ErrChoiceUnavailable      = &Error{Code: CodeChoiceUnavailable, Message: "choice requirements not met"}
	ErrNoPendingEvent         = &Error{Code: CodeNoPendingEvent, Message: "no pending event"}
)

// declined builds a coded error with context for logs and notifications.
func declined(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}
