// Package memory provides a mutex-guarded in-memory AccountStore, suitable
// for tests and single-process deployments.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jmallari/gatehouse/core"
)

type Store struct {
	mu       sync.RWMutex
	accounts map[string]*core.Account // keyed by account id
}

var _ core.AccountStore = (*Store)(nil)

func New() *Store {
	return &Store{
		accounts: make(map[string]*core.Account),
	}
}

func (s *Store) Create(ctx context.Context, email, hashedPassword string) (*core.Account, error) {
	if email == "" {
		return nil, core.ErrEmailRequired
	}
	if hashedPassword == "" {
		return nil, core.ErrPasswordRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acct := range s.accounts {
		if acct.Email == email {
			return nil, core.ErrDuplicateAccount
		}
	}

	now := time.Now()
	acct := &core.Account{
		ID:             uuid.NewString(),
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.accounts[acct.ID] = acct

	return clone(acct), nil
}

func (s *Store) FindOne(ctx context.Context, filter map[string]any) (*core.Account, error) {
	if err := core.ValidateFilter(filter); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *core.Account
	for _, acct := range s.accounts {
		if !matches(acct, filter) {
			continue
		}
		if found != nil {
			// Ambiguous match. Lookup requires exact single-row resolution.
			return nil, core.ErrNotFound
		}
		found = acct
	}
	if found == nil {
		return nil, core.ErrNotFound
	}

	return clone(found), nil
}

func (s *Store) Update(ctx context.Context, id string, fields map[string]any) error {
	if err := core.ValidateFilter(fields); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[id]
	if !ok {
		return core.ErrNotFound
	}

	// Validate every mutation before applying any, so a bad field leaves
	// the record untouched.
	for _, value := range fields {
		if _, err := stringOrNil(value); err != nil {
			return err
		}
	}
	for key, value := range fields {
		v, _ := stringOrNil(value)
		switch key {
		case core.FieldID:
			if v != nil {
				delete(s.accounts, acct.ID)
				acct.ID = *v
				s.accounts[acct.ID] = acct
			}
		case core.FieldEmail:
			if v != nil {
				acct.Email = *v
			}
		case core.FieldHashedPassword:
			if v != nil {
				acct.HashedPassword = *v
			}
		case core.FieldSessionID:
			acct.SessionID = v
		case core.FieldResetToken:
			acct.ResetToken = v
		}
	}
	acct.UpdatedAt = time.Now()

	return nil
}

// matches reports whether the account satisfies every filter field. A nil
// filter value matches a cleared field.
func matches(acct *core.Account, filter map[string]any) bool {
	for key, value := range filter {
		want, err := stringOrNil(value)
		if err != nil {
			return false
		}
		switch key {
		case core.FieldID:
			if want == nil || acct.ID != *want {
				return false
			}
		case core.FieldEmail:
			if want == nil || acct.Email != *want {
				return false
			}
		case core.FieldHashedPassword:
			if want == nil || acct.HashedPassword != *want {
				return false
			}
		case core.FieldSessionID:
			if !matchNullable(acct.SessionID, want) {
				return false
			}
		case core.FieldResetToken:
			if !matchNullable(acct.ResetToken, want) {
				return false
			}
		}
	}
	return true
}

func matchNullable(have *string, want *string) bool {
	if want == nil {
		return have == nil
	}
	return have != nil && *have == *want
}

// stringOrNil coerces a filter value to *string. Filter values are strings
// or nil; anything else is an invalid filter.
func stringOrNil(value any) (*string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return &v, nil
	case *string:
		return v, nil
	default:
		return nil, core.ErrInvalidFilter
	}
}

func clone(acct *core.Account) *core.Account {
	copied := *acct
	if acct.SessionID != nil {
		v := *acct.SessionID
		copied.SessionID = &v
	}
	if acct.ResetToken != nil {
		v := *acct.ResetToken
		copied.ResetToken = &v
	}
	return &copied
}
