// Package domain defines error types for the generator.
package domain

import (
	"errors"
	"fmt"
)

// InvalidLengthError is returned when a requested key length is not positive
type InvalidLengthError struct {
	Length int
}

// Error implements the error interface for InvalidLengthError
func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid length: %d (must be a positive number of bytes)", e.Length)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidLengthError) Is(target error) bool {
	_, ok := target.(*InvalidLengthError)
	return ok
}

// UnknownPresetError is returned when a preset name is not in the preset table
type UnknownPresetError struct {
	Name string
}

// Error implements the error interface for UnknownPresetError
func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown preset: %s", e.Name)
}

// Is allows proper error type checking with errors.Is()
func (e *UnknownPresetError) Is(target error) bool {
	_, ok := target.(*UnknownPresetError)
	return ok
}

// UnsupportedUUIDVersionError is returned for UUID versions other than v1, v3, v4, v5
type UnsupportedUUIDVersionError struct {
	Version string
}

// Error implements the error interface for UnsupportedUUIDVersionError
func (e *UnsupportedUUIDVersionError) Error() string {
	return fmt.Sprintf("unsupported uuid version: %s (supported: v1, v3, v4, v5)", e.Version)
}

// Is allows proper error type checking with errors.Is()
func (e *UnsupportedUUIDVersionError) Is(target error) bool {
	_, ok := target.(*UnsupportedUUIDVersionError)
	return ok
}

// MissingNamespaceOrNameError is returned when v3/v5 generation lacks an input
type MissingNamespaceOrNameError struct {
	Version string
}

// Error implements the error interface for MissingNamespaceOrNameError
func (e *MissingNamespaceOrNameError) Error() string {
	return fmt.Sprintf("namespace and name are required for uuid %s", e.Version)
}

// Is allows proper error type checking with errors.Is()
func (e *MissingNamespaceOrNameError) Is(target error) bool {
	_, ok := target.(*MissingNamespaceOrNameError)
	return ok
}

// InvalidNamespaceError is returned when the namespace is not valid UUID text
type InvalidNamespaceError struct {
	Text string
	Err  error
}

// Error implements the error interface for InvalidNamespaceError
func (e *InvalidNamespaceError) Error() string {
	return fmt.Sprintf("invalid namespace %q: %v", e.Text, e.Err)
}

// Unwrap exposes the underlying parse error
func (e *InvalidNamespaceError) Unwrap() error {
	return e.Err
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidNamespaceError) Is(target error) bool {
	_, ok := target.(*InvalidNamespaceError)
	return ok
}

// RandomSourceError is returned when the OS random source fails. Fatal, never retried.
type RandomSourceError struct {
	Err error
}

// Error implements the error interface for RandomSourceError
func (e *RandomSourceError) Error() string {
	return fmt.Sprintf("system random source unavailable: %v", e.Err)
}

// Unwrap exposes the underlying OS error
func (e *RandomSourceError) Unwrap() error {
	return e.Err
}

// Is allows proper error type checking with errors.Is()
func (e *RandomSourceError) Is(target error) bool {
	_, ok := target.(*RandomSourceError)
	return ok
}

// Helper functions for creating errors with context

// NewInvalidLengthError creates a new InvalidLengthError
func NewInvalidLengthError(length int) error {
	return &InvalidLengthError{Length: length}
}

// NewUnknownPresetError creates a new UnknownPresetError
func NewUnknownPresetError(name string) error {
	return &UnknownPresetError{Name: name}
}

// NewUnsupportedUUIDVersionError creates a new UnsupportedUUIDVersionError
func NewUnsupportedUUIDVersionError(version string) error {
	return &UnsupportedUUIDVersionError{Version: version}
}

// NewMissingNamespaceOrNameError creates a new MissingNamespaceOrNameError
func NewMissingNamespaceOrNameError(version string) error {
	return &MissingNamespaceOrNameError{Version: version}
}

// NewInvalidNamespaceError creates a new InvalidNamespaceError
func NewInvalidNamespaceError(text string, err error) error {
	return &InvalidNamespaceError{Text: text, Err: err}
}

// NewRandomSourceError creates a new RandomSourceError
func NewRandomSourceError(err error) error {
	return &RandomSourceError{Err: err}
}

// Type assertion helpers for use with errors.As()

// IsInvalidLengthError checks if an error is an InvalidLengthError
func IsInvalidLengthError(err error) bool {
	var ile *InvalidLengthError
	return errors.As(err, &ile)
}

// IsUnknownPresetError checks if an error is an UnknownPresetError
func IsUnknownPresetError(err error) bool {
	var upe *UnknownPresetError
	return errors.As(err, &upe)
}

// IsUnsupportedUUIDVersionError checks if an error is an UnsupportedUUIDVersionError
func IsUnsupportedUUIDVersionError(err error) bool {
	var uve *UnsupportedUUIDVersionError
	return errors.As(err, &uve)
}

// IsMissingNamespaceOrNameError checks if an error is a MissingNamespaceOrNameError
func IsMissingNamespaceOrNameError(err error) bool {
	var mne *MissingNamespaceOrNameError
	return errors.As(err, &mne)
}

// IsInvalidNamespaceError checks if an error is an InvalidNamespaceError
func IsInvalidNamespaceError(err error) bool {
	var ine *InvalidNamespaceError
	return errors.As(err, &ine)
}

// IsRandomSourceError checks if an error is a RandomSourceError
func IsRandomSourceError(err error) bool {
	var rse *RandomSourceError
	return errors.As(err, &rse)
}
