// Package faults defines the error taxonomy shared by the stores, the
// domain service, and the HTTP features.
//
// Every failure an operation can report falls into one of five kinds:
// validation, not-found, conflict, authorization, and authentication.
// Each kind has a sentinel so callers can branch with errors.Is, and a
// typed constructor so the failing field / entity / action is carried
// in the message.
package faults

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is matching.
var (
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrAuthorization  = errors.New("not permitted")
	ErrAuthentication = errors.New("not authenticated")
)

// ValidationError reports a missing or invalid field on an operation's
// input. Field names the offending field as it appears on the wire.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Validation builds a ValidationError for the given field.
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports that a referenced id does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NotFound builds a NotFoundError for the given entity and id.
func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError reports a state transition that violates the record's
// current state, such as assigning an already-assigned request.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

func (e *ConflictError) Unwrap() error { return ErrConflict }

// Conflict builds a ConflictError with the given reason.
func Conflict(reason string) error {
	return &ConflictError{Reason: reason}
}

// AuthorizationError reports that the actor's role does not permit the
// attempted action.
type AuthorizationError struct {
	Role   string
	Action string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("role %q may not %s", e.Role, e.Action)
}

func (e *AuthorizationError) Unwrap() error { return ErrAuthorization }

// Authorization builds an AuthorizationError for the role and action.
func Authorization(role, action string) error {
	return &AuthorizationError{Role: role, Action: action}
}

// AuthenticationError reports a missing session or bad credentials.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string { return e.Reason }

func (e *AuthenticationError) Unwrap() error { return ErrAuthentication }

// Authentication builds an AuthenticationError with the given reason.
func Authentication(reason string) error {
	return &AuthenticationError{Reason: reason}
}
