package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError represents an intent that is well-formed but not allowed in the
// current tournament state
type ConflictError struct {
	Kind    string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Entity Not Found Errors
var (
	ErrTeamNotFound   = &NotFoundError{Entity: "team"}
	ErrPlayerNotFound = &NotFoundError{Entity: "player"}
	ErrMatchNotFound  = &NotFoundError{Entity: "match"}
	ErrStateNotFound  = &NotFoundError{Entity: "tournament state"}
)

// Bracket Errors
var (
	ErrInvalidRosterSize        = &ConflictError{Kind: "InvalidRosterSize", Message: "bracket generation requires exactly 7 teams"}
	ErrTournamentAlreadyStarted = &ConflictError{Kind: "TournamentAlreadyStarted", Message: "tournament has already started"}
	ErrTiedScore                = &ConflictError{Kind: "TiedScore", Message: "scores are tied; resolve the tie and resubmit distinct scores"}
	ErrIncompleteScore          = &ConflictError{Kind: "IncompleteScore", Message: "both scores must be entered before confirming"}
	ErrMatchFrozen              = &ConflictError{Kind: "MatchFrozen", Message: "match result is already confirmed"}
	ErrMatchNotReady            = &ConflictError{Kind: "MatchNotReady", Message: "match does not have two teams yet"}
	ErrSlotNotAssigned          = &ConflictError{Kind: "SlotNotAssigned", Message: "no team is assigned to this slot"}
)

// Import Errors
var (
	ErrMalformedImport = &ValidationError{Field: "document", Message: "import document is not valid tournament JSON"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewMalformedImportError wraps the cause of a rejected import document
func NewMalformedImportError(cause string) error {
	return fmt.Errorf("%w: %s", ErrMalformedImport, cause)
}

// NewInvalidRosterSizeError reports the roster size that was rejected
func NewInvalidRosterSizeError(size int) error {
	return fmt.Errorf("%w: got %d", ErrInvalidRosterSize, size)
}
