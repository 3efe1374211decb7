package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig = "CONFIG" // registry file missing, unreadable or invalid
	ErrEnv    = "ENV"    // environment lookup failed
	ErrGuide  = "GUIDE"  // guide or worker URL could not be produced
	ErrSSH    = "SSH"    // local ssh_config problems
)

// Error is a structured error with a code, what failed, and how to fix it.
// It renders as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrConfig code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrConfig,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// NewUnknownEnvironment reports a reference that matches no environment in
// the registry. known lists the IDs that do exist.
func NewUnknownEnvironment(ref string, known []string) *Error {
	suggestion := "Run 'lyra env list' to see configured environments."
	if len(known) > 0 {
		suggestion = fmt.Sprintf("Known environments: %s", strings.Join(known, ", "))
	}
	return &Error{
		Code:       ErrEnv,
		Message:    fmt.Sprintf("No environment named '%s'", ref),
		Suggestion: suggestion,
	}
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var lyraErr *Error
	if errors.As(err, &lyraErr) {
		return lyraErr.Code == code
	}
	return false
}

// ExitError carries a process exit code without an error message, for
// commands whose result is already on screen.
type ExitError struct {
	Code int
}

// NewExitError creates an ExitError with the given code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// GetExitCode extracts the code from an ExitError anywhere in err's chain.
func GetExitCode(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
