// Package errors provides standardized error handling for vshell.
// It defines the error kinds the browser swallows at its boundaries and
// helpers for creating and inspecting them.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// Common error constants for frequently occurring errors
var (
	ErrNoDevice        = NewDeviceError("no matching device", "", DeviceUnavailable, nil)
	ErrUnsupportedFile = NewLaunchError("unsupported file type", "", nil, UnsupportedFileType, nil)
	ErrInvalidConfig   = NewConfigError("invalid configuration", "", InvalidConfig, nil)
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Device error kinds
	DeviceUnavailable
	DeviceWriteFailed
	// Launch error kinds
	UnsupportedFileType
	LaunchFailed
	// Browse error kinds
	PathEscape
	EmptyDirectory
	ListingFailed
	// Config error kinds
	InvalidConfig
)

var kindNames = map[ErrorKind]string{
	Unknown:             "unknown",
	DeviceUnavailable:   "device_unavailable",
	DeviceWriteFailed:   "device_write_failed",
	UnsupportedFileType: "unsupported_file_type",
	LaunchFailed:        "launch_failed",
	PathEscape:          "path_escape",
	EmptyDirectory:      "empty_directory",
	ListingFailed:       "listing_failed",
	InvalidConfig:       "invalid_config",
}

// String returns the snake_case name used in log fields.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[Unknown]
}

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// DeviceError represents errors related to the power relay device
type DeviceError struct {
	ApplicationError
	path string
}

// NewDeviceError creates a new device error
func NewDeviceError(msg string, path string, kind ErrorKind, err error) *DeviceError {
	return &DeviceError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the device error message
func (e *DeviceError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the device path associated with the error
func (e *DeviceError) Path() string {
	return e.path
}

// LaunchError represents errors raised while opening a file with an external command
type LaunchError struct {
	ApplicationError
	path    string
	command []string
}

// NewLaunchError creates a new launch error
func NewLaunchError(msg string, path string, command []string, kind ErrorKind, err error) *LaunchError {
	return &LaunchError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path:    path,
		command: command,
	}
}

// Error returns the launch error message
func (e *LaunchError) Error() string {
	var parts []string
	parts = append(parts, e.msg)
	if len(e.command) > 0 {
		parts = append(parts, strings.Join(e.command, " "))
	}
	if e.path != "" {
		parts = append(parts, e.path)
	}
	if e.err != nil {
		parts = append(parts, e.err.Error())
	}
	return strings.Join(parts, ": ")
}

// Path returns the file path associated with the error
func (e *LaunchError) Path() string {
	return e.path
}

// Command returns the argv that failed, if any
func (e *LaunchError) Command() []string {
	return e.command
}

// FileError represents errors related to browsing the filesystem
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
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
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
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
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the kind of the first application error in err's chain.
func KindOf(err error) ErrorKind {
	type kinded interface{ Kind() ErrorKind }
	for err != nil {
		if k, ok := err.(kinded); ok {
			return k.Kind()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsDeviceUnavailable checks if the error means no writable device was found
func IsDeviceUnavailable(err error) bool {
	var devErr *DeviceError
	if errors.As(err, &devErr) {
		return devErr.Kind() == DeviceUnavailable
	}
	return false
}

// IsUnsupportedFileType checks if the error is an unsupported file type error
func IsUnsupportedFileType(err error) bool {
	var launchErr *LaunchError
	if errors.As(err, &launchErr) {
		return launchErr.Kind() == UnsupportedFileType
	}
	return false
}

// IsLaunchFailure checks if the error is a failed process spawn or a nonzero exit
func IsLaunchFailure(err error) bool {
	var launchErr *LaunchError
	if errors.As(err, &launchErr) {
		return launchErr.Kind() == LaunchFailed
	}
	return false
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}
