// Package errors provides the error vocabulary of the comparison core.
// It defines the kinds an entry classification or tree traversal can fail
// with, typed errors carrying the offending path, and helper functions for
// consistent error creation, wrapping, and inspection.
package errors

import (
	"errors"
	"fmt"
	"os"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds. The first five categorize classification failures and end
// up inside KindInvalid entries; BrokenLink and SymlinkLoop are resolution
// failures; RootUnreadable is the only kind that aborts a tree flatten.
const (
	Unknown ErrorKind = iota
	NotFound
	PermissionDenied
	UnsupportedObjectType
	IoError
	BrokenLink
	SymlinkLoop
	RootUnreadable
	InvalidConfig
)

var kindNames = map[ErrorKind]string{
	Unknown:               "unknown",
	NotFound:              "not-found",
	PermissionDenied:      "permission-denied",
	UnsupportedObjectType: "unsupported-object",
	IoError:               "io-error",
	BrokenLink:            "broken-link",
	SymlinkLoop:           "symlink-loop",
	RootUnreadable:        "root-unreadable",
	InvalidConfig:         "invalid-config",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// AppError is the base error type for all application errors
type AppError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *AppError) Kind() ErrorKind {
	return e.kind
}

// EntryError represents a failure tied to one filesystem path: a stat that
// could not complete, a link chain that could not be followed, a directory
// that could not be listed.
type EntryError struct {
	AppError
	path string
}

// NewEntryError creates a new entry error
func NewEntryError(msg string, path string, kind ErrorKind, err error) *EntryError {
	return &EntryError{
		AppError: AppError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the entry error message
func (e *EntryError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.AppError.Error()
}

// Path returns the filesystem path associated with the error
func (e *EntryError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	AppError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		AppError: AppError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.AppError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &AppError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &AppError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &AppError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &AppError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// CategorizeOsError maps a raw error from the os package onto the
// classification error taxonomy.
func CategorizeOsError(err error) ErrorKind {
	switch {
	case err == nil:
		return Unknown
	case os.IsNotExist(err):
		return NotFound
	case os.IsPermission(err):
		return PermissionDenied
	default:
		return IoError
	}
}

// KindOf returns the ErrorKind of the first AppError-based error in err's
// chain, or Unknown if there is none.
func KindOf(err error) ErrorKind {
	var entryErr *EntryError
	if errors.As(err, &entryErr) {
		return entryErr.Kind()
	}
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind()
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}
	return Unknown
}

// IsNotFound checks if the error is a not-found entry error
func IsNotFound(err error) bool {
	return entryKindIs(err, NotFound)
}

// IsPermissionDenied checks if the error is a permission-denied entry error
func IsPermissionDenied(err error) bool {
	return entryKindIs(err, PermissionDenied)
}

// IsUnsupportedObjectType checks if the error marks a filesystem object
// that is neither directory, regular file nor symlink
func IsUnsupportedObjectType(err error) bool {
	return entryKindIs(err, UnsupportedObjectType)
}

// IsBrokenLink checks if the error marks a symlink chain with a missing or
// unreadable target
func IsBrokenLink(err error) bool {
	return entryKindIs(err, BrokenLink)
}

// IsSymlinkLoop checks if the error marks a symlink chain that exceeded the
// hop bound
func IsSymlinkLoop(err error) bool {
	return entryKindIs(err, SymlinkLoop)
}

// IsRootUnreadable checks if the error aborts a whole tree traversal
func IsRootUnreadable(err error) bool {
	return entryKindIs(err, RootUnreadable)
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

func entryKindIs(err error, kind ErrorKind) bool {
	var entryErr *EntryError
	if errors.As(err, &entryErr) {
		return entryErr.Kind() == kind
	}
	return false
}
