package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest    = 4000
	CodeInvalidPresetName = 4001
	CodeInvalidFormat     = 4002
	CodeDuplicatePreset   = 4009
	CodePresetNotFound    = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidPresetName is returned when a preset name is empty, too long
	// or holds characters outside [A-Za-z0-9_-]
	ErrInvalidPresetName = errors.New("invalid preset name")

	// ErrInvalidFormat is returned when a format string contains no
	// recognized token
	ErrInvalidFormat = errors.New("format contains no recognized tokens")

	// ErrDuplicatePreset is returned when a preset with the same name
	// already exists
	ErrDuplicatePreset = errors.New("preset with this name already exists")

	// ErrPresetNotFound is returned when the requested preset doesn't exist
	ErrPresetNotFound = errors.New("preset not found")

	// ErrDatabaseConnection is returned when there's a problem connecting
	// to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidPresetName):
		return CodeInvalidPresetName
	case errors.Is(err, ErrInvalidFormat):
		return CodeInvalidFormat
	case errors.Is(err, ErrDuplicatePreset):
		return CodeDuplicatePreset
	case errors.Is(err, ErrPresetNotFound):
		return CodePresetNotFound
	default:
		return CodeInternalServer
	}
}

// PresetError represents an error related to preset operations
type PresetError struct {
	Name   string
	Format string
	Err    error
}

// Error implements the error interface for PresetError
func (e *PresetError) Error() string {
	return fmt.Sprintf("preset operation failed for %q (format: %q): %v",
		e.Name, e.Format, e.Err)
}

// Unwrap returns the underlying error
func (e *PresetError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PresetError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "preset_error",
		"preset":     e.Name,
		"format":     e.Format,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewPresetError creates a detailed preset error
func NewPresetError(name, format string, err error) error {
	return &PresetError{
		Name:   name,
		Format: format,
		Err:    err,
	}
}

// IsNotFoundError checks if the error is a "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrPresetNotFound)
}

// IsDuplicatePresetError checks if the error is a duplicate preset error
func IsDuplicatePresetError(err error) bool {
	return errors.Is(err, ErrDuplicatePreset)
}
