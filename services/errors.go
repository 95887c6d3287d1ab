package services

import "errors"

// Error kinds. Every operational error the services return wraps exactly one
// of these, so handlers can map them to a status with errors.Is.
var (
	ErrNotFound   = errors.New("no encontrado")
	ErrConflict   = errors.New("conflicto")
	ErrValidation = errors.New("validación")
)
