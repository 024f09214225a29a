// SPDX-License-Identifier: MPL-2.0

package diag

import (
	"errors"
	"fmt"
)

const (
	// SeverityWarning indicates a recoverable condition worth surfacing.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a failed operation.
	SeverityError Severity = "error"
)

const (
	// CodeSearchDirInvalid records a search directory that failed the
	// readability or canonicalization check.
	CodeSearchDirInvalid Code = "search_dir_invalid"
	// CodeModuleNotFound records a module the resolver could not locate.
	CodeModuleNotFound Code = "module_not_found"
	// CodeModuleLoadFailed records a module that was located but failed
	// to parse or compile.
	CodeModuleLoadFailed Code = "module_load_failed"
	// CodeModuleCleanupFailed records a per-module cleanup hook that
	// faulted during context teardown.
	CodeModuleCleanupFailed Code = "module_cleanup_failed"
)

var (
	// ErrInvalidSeverity is returned when a Severity value is not recognized.
	ErrInvalidSeverity = errors.New("invalid diagnostic severity")
	// ErrInvalidCode is returned when a Code value is not recognized.
	ErrInvalidCode = errors.New("invalid diagnostic code")
)

type (
	// Severity represents a diagnostic level.
	Severity string

	// Code is a machine-readable diagnostic identifier.
	Code string

	// Diagnostic is one structured error/warning record. Records are
	// returned to callers rather than written to stderr so the rendering
	// policy stays with the caller.
	Diagnostic struct {
		// Severity is the diagnostic level (warning or error).
		Severity Severity
		// Code is a machine-readable identifier (e.g., "search_dir_invalid").
		Code Code
		// Message is the human-readable description.
		Message string
		// Path is the file path associated with this diagnostic (optional).
		Path string
		// Cause is the underlying error (optional, for programmatic inspection).
		Cause error
	}
)

// IsValid reports whether the severity is a recognized value.
func (s Severity) IsValid() (bool, []error) {
	switch s {
	case SeverityWarning, SeverityError:
		return true, nil
	default:
		return false, []error{fmt.Errorf("%w: %q", ErrInvalidSeverity, string(s))}
	}
}

// IsValid reports whether the code is a recognized value.
func (c Code) IsValid() (bool, []error) {
	switch c {
	case CodeSearchDirInvalid, CodeModuleNotFound, CodeModuleLoadFailed, CodeModuleCleanupFailed:
		return true, nil
	default:
		return false, []error{fmt.Errorf("%w: %q", ErrInvalidCode, string(c))}
	}
}

// String returns the code as a plain string.
func (c Code) String() string {
	return string(c)
}

// New creates a diagnostic with the given severity, code, and message.
func New(severity Severity, code Code, message string) Diagnostic {
	return Diagnostic{Severity: severity, Code: code, Message: message}
}

// NewWithPath creates a diagnostic associated with a file path.
func NewWithPath(severity Severity, code Code, message, path string) Diagnostic {
	return Diagnostic{Severity: severity, Code: code, Message: message, Path: path}
}

// NewWithCause creates a diagnostic carrying an underlying error.
func NewWithCause(severity Severity, code Code, message, path string, cause error) Diagnostic {
	return Diagnostic{Severity: severity, Code: code, Message: message, Path: path, Cause: cause}
}
