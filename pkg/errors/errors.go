package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Archive errors
	ErrArchiveRead    ErrorCode = "ARCHIVE_READ"
	ErrArchiveWrite   ErrorCode = "ARCHIVE_WRITE"
	ErrDuplicateEntry ErrorCode = "DUPLICATE_ENTRY"

	// Transform errors
	ErrDecoding         ErrorCode = "DECODING"
	ErrCollision        ErrorCode = "COLLISION"
	ErrPatternResolve   ErrorCode = "PATTERN_RESOLVE"
	ErrTransformUnknown ErrorCode = "TRANSFORM_UNKNOWN"

	// Deploy errors
	ErrDeployFailed ErrorCode = "DEPLOY_FAILED"
)

// Detail keys shared by transform errors
const (
	DetailEntry     = "entry"
	DetailRule      = "rule"
	DetailTarget    = "target"
	DetailSources   = "sources"
	DetailTransform = "transform"
)

// PkgshiftError represents a structured error with code and details
type PkgshiftError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PkgshiftError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PkgshiftError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PkgshiftError) Is(target error) bool {
	var targetErr *PkgshiftError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PkgshiftError with the given code and message
func New(code ErrorCode, message string) *PkgshiftError {
	return &PkgshiftError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PkgshiftError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PkgshiftError {
	return &PkgshiftError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PkgshiftError
func Wrap(err error, code ErrorCode, message string) *PkgshiftError {
	if err == nil {
		return nil
	}
	return &PkgshiftError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PkgshiftError {
	if err == nil {
		return nil
	}
	return &PkgshiftError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PkgshiftError) WithDetail(key string, value interface{}) *PkgshiftError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PkgshiftError) WithDetails(details map[string]interface{}) *PkgshiftError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// Decoding reports an entry whose bytes could not be read as text while
// applying rule.
func Decoding(err error, entry, rule string) *PkgshiftError {
	e := &PkgshiftError{
		Code:    ErrDecoding,
		Message: fmt.Sprintf("entry %q is not valid UTF-8 text (rule %q)", entry, rule),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
	return e.WithDetail(DetailEntry, entry).WithDetail(DetailRule, rule)
}

// Collision reports two source entries that were renamed onto the same
// destination name.
func Collision(first, second, target string) *PkgshiftError {
	return Newf(ErrCollision, "entries %q and %q both rename to %q", first, second, target).
		WithDetail(DetailSources, []string{first, second}).
		WithDetail(DetailTarget, target)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pkgErr *PkgshiftError
	if errors.As(err, &pkgErr) {
		return pkgErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PkgshiftError
func GetErrorCode(err error) ErrorCode {
	var pkgErr *PkgshiftError
	if errors.As(err, &pkgErr) {
		return pkgErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PkgshiftError
func GetErrorDetails(err error) map[string]interface{} {
	var pkgErr *PkgshiftError
	if errors.As(err, &pkgErr) {
		return pkgErr.Details
	}
	return nil
}
