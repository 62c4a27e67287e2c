package types

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes every failure the pipeline can report.
type ErrorCode string

const (
	// Eager validation of request fields.
	ErrCodeValidation           ErrorCode = "VALIDATION"
	ErrCodeMissingPageSelection ErrorCode = "MISSING_PAGE_SELECTION"
	ErrCodeMissingInput         ErrorCode = "MISSING_INPUT"
	ErrCodeMissingOutput        ErrorCode = "MISSING_OUTPUT"

	// Selection grammar.
	ErrCodeInvalidRange      ErrorCode = "INVALID_RANGE"
	ErrCodeInvalidPageNumber ErrorCode = "INVALID_PAGE_NUMBER"

	// Document access.
	ErrCodeFileNotFound        ErrorCode = "FILE_NOT_FOUND"
	ErrCodeOutputDirUnwritable ErrorCode = "OUTPUT_DIR_UNWRITABLE"
	ErrCodeEmptyDocument       ErrorCode = "EMPTY_DOCUMENT"
	ErrCodeDecryptionFailed    ErrorCode = "DECRYPTION_FAILED"

	// Catch-alls at the operation boundary.
	ErrCodeSplitFailed ErrorCode = "SPLIT_FAILED"
	ErrCodeMergeFailed ErrorCode = "MERGE_FAILED"
)

// Error is the structured error returned by every pipeline operation.
// Message is the one-line text shown to the user; Cause carries the
// underlying diagnostic and is meant for the log, never the dialog.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches two Errors by code, so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// NewError creates an Error with the given code and user-facing message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Errorf creates an Error with a formatted user-facing message.
func Errorf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapError attaches an underlying cause to a coded Error.
func WrapError(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Sentinels for use with errors.Is.
var (
	ErrValidation           = &Error{Code: ErrCodeValidation}
	ErrMissingPageSelection = &Error{Code: ErrCodeMissingPageSelection}
	ErrMissingInput         = &Error{Code: ErrCodeMissingInput}
	ErrMissingOutput        = &Error{Code: ErrCodeMissingOutput}
	ErrInvalidRange         = &Error{Code: ErrCodeInvalidRange}
	ErrInvalidPageNumber    = &Error{Code: ErrCodeInvalidPageNumber}
	ErrFileNotFound         = &Error{Code: ErrCodeFileNotFound}
	ErrOutputDirUnwritable  = &Error{Code: ErrCodeOutputDirUnwritable}
	ErrEmptyDocument        = &Error{Code: ErrCodeEmptyDocument}
	ErrDecryptionFailed     = &Error{Code: ErrCodeDecryptionFailed}
	ErrSplitFailed          = &Error{Code: ErrCodeSplitFailed}
	ErrMergeFailed          = &Error{Code: ErrCodeMergeFailed}
)

// UserMessage returns the one-line text fit for a dialog or terminal.
// For non-pipeline errors it falls back to err.Error().
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
