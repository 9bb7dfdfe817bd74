package core

import (
	"errors"
	"fmt"
)

// Account and lookup errors
var (
	ErrInvalidInput     = errors.New("invalid input")          // 400 Bad Request
	ErrDuplicateAccount = errors.New("account already exists") // 409 Conflict
	ErrNotFound         = errors.New("not found")              // 404 Not Found
	ErrInvalidFilter    = errors.New("invalid filter")         // programmer error, 500
)

// Validation errors (client input)
var (
	ErrEmailRequired    = fmt.Errorf("%w: email is required", ErrInvalidInput)
	ErrPasswordRequired = fmt.Errorf("%w: password is required", ErrInvalidInput)
)

// Config errors (server-side configuration)
var (
	ErrStoreRequired  = errors.New("account store is required")   // 500
	ErrHasherRequired = errors.New("password hasher is required") // 500
)
