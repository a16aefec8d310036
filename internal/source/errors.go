package source

import (
	"errors"
	"fmt"
)

var (
	// ErrUploadFailed is returned when an upload could not be registered.
	ErrUploadFailed = errors.New("upload failed")
	// ErrConnectionTest is returned when a connection test does not pass.
	ErrConnectionTest = errors.New("connection test failed")
	// ErrInvalidConnection is returned for form input that cannot describe a connection.
	ErrInvalidConnection = errors.New("invalid connection settings")
)

// UploadError wraps upload failures for a named file.
type UploadError struct {
	Name       string
	Underlying error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %q: %v", e.Name, e.Underlying)
}

func (e *UploadError) Unwrap() []error {
	return []error{ErrUploadFailed, e.Underlying}
}

// ConnectionError wraps connection test failures for a named connection.
type ConnectionError struct {
	Name       string
	Kind       ConnectionKind
	Underlying error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s connection %q: %v", e.Kind, e.Name, e.Underlying)
}

func (e *ConnectionError) Unwrap() []error {
	return []error{ErrConnectionTest, e.Underlying}
}

// WrapUploadError creates an UploadError from an underlying error.
func WrapUploadError(name string, err error) error {
	return &UploadError{Name: name, Underlying: err}
}

// WrapConnectionError creates a ConnectionError from an underlying error.
func WrapConnectionError(cfg ConnectionConfig, err error) error {
	return &ConnectionError{Name: cfg.Name, Kind: cfg.Kind, Underlying: err}
}
