package vkinit

import (
	"errors"
	"fmt"
)

// ErrNoLayersAvailable is returned when diagnostics are enabled but the driver
// reports no instance layers at all.
var ErrNoLayersAvailable = errors.New("vkinit: no instance layers available")

// DriverLoadError reports that the loader library or its entry symbols could
// not be resolved.
type DriverLoadError struct {
	Err error
}

func (e *DriverLoadError) Error() string {
	return fmt.Sprintf("vkinit: unable to load vulkan driver: %v", e.Err)
}

func (e *DriverLoadError) Unwrap() error { return e.Err }

// LayerNotFoundError names a required layer the driver does not provide.
type LayerNotFoundError struct {
	Name string
}

func (e *LayerNotFoundError) Error() string {
	return fmt.Sprintf("vkinit: validation layer '%s' not found", e.Name)
}

// InstanceCreationError carries the result code the driver returned when it
// rejected an instance creation request.
type InstanceCreationError struct {
	Result Result
}

func (e *InstanceCreationError) Error() string {
	return fmt.Sprintf("vkinit: instance creation failed: %s", e.Result)
}

func (e *InstanceCreationError) Unwrap() error { return e.Result }

// StringConversionError reports a name that cannot be represented as a
// NUL-terminated native string.
type StringConversionError struct {
	Value  string
	Offset int
}

func (e *StringConversionError) Error() string {
	return fmt.Sprintf("vkinit: string %q has an interior NUL byte at offset %d", e.Value, e.Offset)
}
