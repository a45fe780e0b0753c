package services

import (
	"errors"

	"github.com/sbilibin2017/parts-store/internal/validation"
)

// Error variables
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrPartNotFound       = errors.New("part not found")
	ErrInsufficientStock  = errors.New("insufficient stock")
	// ErrValidation matches every *validation.Error.
	ErrValidation = validation.ErrInvalid
)
