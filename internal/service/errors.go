package service

import (
	"go-catalog-ws/internal/repository"
	"go-catalog-ws/pkg/validator"
)

// ErrProductNotFound is returned by Get, Update and Delete for unknown ids.
var ErrProductNotFound = repository.ErrProductNotFound

// ValidationError carries per-field messages for a rejected payload.
type ValidationError struct {
	Fields validator.FieldErrors
}

func (e *ValidationError) Error() string {
	return e.Fields.Error()
}
