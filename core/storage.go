package core

import (
	"context"
	"fmt"
)

// Account fields accepted in FindOne filters and Update mutations.
const (
	FieldID             = "id"
	FieldEmail          = "email"
	FieldHashedPassword = "hashed_password"
	FieldSessionID      = "session_id"
	FieldResetToken     = "reset_token"
)

var validFields = map[string]struct{}{
	FieldID:             {},
	FieldEmail:          {},
	FieldHashedPassword: {},
	FieldSessionID:      {},
	FieldResetToken:     {},
}

// ValidateFilter rejects empty filters and keys outside the enumerated
// account field set. Store implementations call it before touching storage.
func ValidateFilter(fields map[string]any) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: empty filter", ErrInvalidFilter)
	}
	for key := range fields {
		if _, ok := validFields[key]; !ok {
			return fmt.Errorf("%w: unknown field %q", ErrInvalidFilter, key)
		}
	}
	return nil
}

// AccountStore is the persistence port for account records. It is the single
// shared mutable resource; implementations must apply each Update atomically
// so concurrent requests against the same account serialize rather than
// interleave partial field writes.
type AccountStore interface {
	// Create persists a new account. Fails with ErrInvalidInput when either
	// argument is empty and ErrDuplicateAccount when the email is taken.
	Create(ctx context.Context, email, hashedPassword string) (*Account, error)

	// FindOne resolves the single account matching the filter. A nil filter
	// value matches a cleared (NULL) field. Fails with ErrInvalidFilter for
	// a bad filter and ErrNotFound unless exactly one row matches; an
	// ambiguous match is an error, not "first match".
	FindOne(ctx context.Context, filter map[string]any) (*Account, error)

	// Update applies all field mutations atomically. A nil value clears a
	// nullable field. Fails with ErrInvalidFilter for unknown keys and
	// ErrNotFound when id does not resolve.
	Update(ctx context.Context, id string, fields map[string]any) error
}
