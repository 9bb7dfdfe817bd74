package core

import (
	"context"
	"fmt"

	"github.com/jmallari/gatehouse/crypto"
)

// Strategy resolves the authenticated principal for a request, or nil when
// the request carries no valid credentials. A nil principal is the HTTP
// layer's signal to reject; the core never produces a status code itself.
//
// New strategies (bearer tokens, API keys) implement this same two-method
// contract; no shared base state is required.
type Strategy interface {
	ResolvePrincipal(ctx context.Context, req *Request) *Account

	// Source describes where the strategy reads credentials from.
	// Diagnostics only.
	Source() string
}

// Ensure all strategies implement Strategy
var (
	_ Strategy = (*BasicStrategy)(nil)
	_ Strategy = (*SessionStrategy)(nil)
	_ Strategy = (*AnonymousStrategy)(nil)
)

// BasicStrategy authenticates via the HTTP Basic Authorization header,
// checking the decoded credentials against stored password hashes.
type BasicStrategy struct {
	store  AccountStore
	hasher crypto.PasswordHandler
}

func NewBasicStrategy(store AccountStore, hasher crypto.PasswordHandler) *BasicStrategy {
	return &BasicStrategy{store: store, hasher: hasher}
}

func (s *BasicStrategy) Source() string {
	return "Authorization header (Basic)"
}

// ResolvePrincipal walks the full Basic chain: header shape, base64 decode,
// credential split, account lookup, password verification. Every failure
// along the way resolves to nil.
func (s *BasicStrategy) ResolvePrincipal(ctx context.Context, req *Request) *Account {
	token := ExtractBasicToken(req.Header("Authorization"))
	decoded := DecodeToken(token)
	email, password := SplitCredentials(decoded)
	if email == "" {
		return nil
	}

	acct, err := s.store.FindOne(ctx, map[string]any{FieldEmail: email})
	if err != nil {
		return nil
	}
	if !s.hasher.Verify(acct.HashedPassword, password) {
		return nil
	}
	return acct
}

// SessionStrategy authenticates via an opaque session id carried in a cookie.
type SessionStrategy struct {
	authority  *SessionAuthority
	cookieName string
}

func NewSessionStrategy(authority *SessionAuthority, cookieName string) *SessionStrategy {
	return &SessionStrategy{authority: authority, cookieName: cookieName}
}

func (s *SessionStrategy) Source() string {
	return fmt.Sprintf("session cookie %q", s.cookieName)
}

func (s *SessionStrategy) ResolvePrincipal(ctx context.Context, req *Request) *Account {
	token := ExtractSessionToken(req.Cookies, s.cookieName)
	return s.authority.ResolveAccount(ctx, token)
}

// AnonymousStrategy is the documented default for a strategy that does not
// resolve principals: it always returns nil, never undefined behavior.
type AnonymousStrategy struct{}

func (AnonymousStrategy) Source() string { return "none" }

func (AnonymousStrategy) ResolvePrincipal(context.Context, *Request) *Account { return nil }
