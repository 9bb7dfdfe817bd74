package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmallari/gatehouse/crypto"
)

// SessionAuthority owns the account, session, and reset-token lifecycle.
// Sessions and reset tokens live as fields on the account row: issuing a new
// value overwrites the previous one, so at most one of each is ever valid.
// "Last writer wins" is the accepted policy for concurrent logins or reset
// requests on the same account; each write is still atomic at the store.
type SessionAuthority struct {
	store  AccountStore
	hasher crypto.PasswordHandler

	// dummyHash is verified when an email does not resolve, so CheckLogin
	// costs the same whether or not the account exists.
	dummyHash string
}

func NewSessionAuthority(store AccountStore, hasher crypto.PasswordHandler) (*SessionAuthority, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if hasher == nil {
		return nil, ErrHasherRequired
	}

	dummyHash, err := hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}

	return &SessionAuthority{
		store:     store,
		hasher:    hasher,
		dummyHash: dummyHash,
	}, nil
}

// Register creates an account for a new email. The plaintext password is
// hashed before it reaches the store; a taken email propagates
// ErrDuplicateAccount.
func (a *SessionAuthority) Register(ctx context.Context, email, password string) (*Account, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	hashed, err := a.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return a.store.Create(ctx, email, hashed)
}

// CheckLogin reports whether the email/password pair is valid. It never
// returns an error and performs a hash verification even for unknown emails,
// keeping the failure shape and timing uniform across both miss modes.
func (a *SessionAuthority) CheckLogin(ctx context.Context, email, password string) bool {
	targetHash := a.dummyHash
	exists := false

	if email != "" {
		if acct, err := a.store.FindOne(ctx, map[string]any{FieldEmail: email}); err == nil {
			targetHash = acct.HashedPassword
			exists = true
		}
	}

	ok := a.hasher.Verify(targetHash, password)
	return exists && ok
}

// CreateSession issues a fresh opaque session id for the account,
// unconditionally overwriting (and thereby invalidating) any prior session.
// Fails with ErrNotFound when the account id does not resolve.
func (a *SessionAuthority) CreateSession(ctx context.Context, accountID string) (string, error) {
	sessionID, err := crypto.GenerateToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}

	if err := a.store.Update(ctx, accountID, map[string]any{FieldSessionID: sessionID}); err != nil {
		return "", err
	}

	return sessionID, nil
}

// ResolveAccount returns the account owning the session id, or nil. An empty
// id and an unmatched id produce the same nil result so callers deciding on
// authorization learn nothing about why resolution failed.
func (a *SessionAuthority) ResolveAccount(ctx context.Context, sessionID string) *Account {
	if sessionID == "" {
		return nil
	}
	acct, err := a.store.FindOne(ctx, map[string]any{FieldSessionID: sessionID})
	if err != nil {
		return nil
	}
	return acct
}

// DestroySession clears the account's session id regardless of its prior
// value. Destroying an account with no live session is not an error.
func (a *SessionAuthority) DestroySession(ctx context.Context, accountID string) error {
	if accountID == "" {
		return ErrNotFound
	}
	return a.store.Update(ctx, accountID, map[string]any{FieldSessionID: nil})
}

// IssueResetToken generates a single-use password-reset token for the email,
// overwriting any previously issued token. Fails with ErrNotFound when the
// email does not resolve.
func (a *SessionAuthority) IssueResetToken(ctx context.Context, email string) (string, error) {
	acct, err := a.store.FindOne(ctx, map[string]any{FieldEmail: email})
	if err != nil {
		return "", err
	}

	token := uuid.NewString()
	if err := a.store.Update(ctx, acct.ID, map[string]any{FieldResetToken: token}); err != nil {
		return "", err
	}

	return token, nil
}

// RedeemResetToken consumes a reset token: in one atomic update the password
// hash is replaced and the token cleared, so a captured token cannot be
// replayed. Empty or unmatched tokens fail with ErrNotFound.
func (a *SessionAuthority) RedeemResetToken(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return ErrNotFound
	}
	if newPassword == "" {
		return ErrPasswordRequired
	}

	acct, err := a.store.FindOne(ctx, map[string]any{FieldResetToken: token})
	if err != nil {
		return err
	}

	hashed, err := a.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.store.Update(ctx, acct.ID, map[string]any{
		FieldHashedPassword: hashed,
		FieldResetToken:     nil,
	})
}
