package usecase

import (
	"errors"
	"fmt"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeConflict   = "CONFLICT"
	CodeStore      = "STORE_UNAVAILABLE"
)

// DomainError: culpa do caller. Nunca é retentado automaticamente.
type DomainError struct {
	Code    string
	Field   string // set for VALIDATION_ERROR, empty otherwise
	Message string
}

func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

func NewValidationError(field, message string) *DomainError {
	return &DomainError{Code: CodeValidation, Field: field, Message: message}
}

func NewNotFound(message string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: message}
}

func NewConflict(message string) *DomainError {
	return &DomainError{Code: CodeConflict, Message: message}
}

// TechnicalError: falha de colaborador (store, broker). Safe to retry
// pelo caller; nunca engolida.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

// Retryable marca a falha como transitória para consumidores assíncronos.
func (e *TechnicalError) Retryable() bool { return true }

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

// storeError translates a repository failure into the exposed taxonomy.
// Sentinels keep their meaning; anything else is a transient store fault.
func storeError(err error, context string) error {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return NewNotFound(context + " not found")
	case errors.Is(err, entity.ErrCampaignNameTaken):
		return NewConflict("a campaign with this name already exists")
	case errors.Is(err, entity.ErrEmailAlreadyExists):
		return NewConflict("email already in use")
	}
	return &TechnicalError{
		Code:    CodeStore,
		Message: fmt.Sprintf("store failure on %s: %v", context, err),
	}
}
