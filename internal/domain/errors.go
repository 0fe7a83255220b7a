package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every typed error below unwraps to one of them, and the
// HTTP and MCP layers map on the kind alone.
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation failed")
	ErrConfiguration = errors.New("store not configured")
	ErrStore         = errors.New("store failed")
	ErrUnavailable   = errors.New("unavailable")
)

// NotFoundError is a point lookup, such as an ISSN, that matched nothing.
type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}

	return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ValidationError rejects a caller argument. Field uses the wire name.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue keeps the rejected value for logs; it is not
// part of Error.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation failed")

	if e.Field != "" {
		b.WriteString(" for ")
		b.WriteString(e.Field)
	}

	b.WriteString(": ")
	b.WriteString(e.Message)

	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ConfigurationError is a store used before its path or URL was set.
type ConfigurationError struct {
	Store  string
	Reason string
}

func NewConfigurationError(store, reason string) error {
	return &ConfigurationError{Store: store, Reason: reason}
}

func (e *ConfigurationError) Error() string {
	msg := e.Store + " store not configured"
	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// StoreError is a failed store operation. errors.Is matches both ErrStore
// and anything Cause matches, so an UnavailableError cause stays visible.
type StoreError struct {
	Store     string
	Operation string
	Cause     error
}

func NewStoreError(store, operation string, cause error) error {
	return &StoreError{Store: store, Operation: operation, Cause: cause}
}

func (e *StoreError) Error() string {
	msg := fmt.Sprintf("%s store: %s failed", e.Store, e.Operation)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

func (e *StoreError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrStore}
	}

	return []error{ErrStore, e.Cause}
}

// UnavailableError is a remote endpoint that is down, overloaded or behind
// an open circuit. Service is its name or address.
type UnavailableError struct {
	Service string
	Reason  string
}

func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

func (e *UnavailableError) Error() string {
	msg := fmt.Sprintf("service %q unavailable", e.Service)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}

func (e *UnavailableError) Unwrap() error { return ErrUnavailable }

func IsNotFound(err error) bool      { return errors.Is(err, ErrNotFound) }
func IsValidation(err error) bool    { return errors.Is(err, ErrValidation) }
func IsConfiguration(err error) bool { return errors.Is(err, ErrConfiguration) }
func IsStore(err error) bool         { return errors.Is(err, ErrStore) }
func IsUnavailable(err error) bool   { return errors.Is(err, ErrUnavailable) }
