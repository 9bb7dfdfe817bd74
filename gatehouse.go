// Package gatehouse provides pluggable request authentication for HTTP
// services: a path-exclusion access gate, Basic and session-cookie
// credential strategies, and the account/session/reset-token lifecycle
// behind them. The HTTP server, router, and storage engine stay outside;
// they reach the core through the AccountStore and Strategy contracts.
package gatehouse

import (
	"github.com/jmallari/gatehouse/core"
	"github.com/jmallari/gatehouse/crypto"
)

// interfaces
type (
	AccountStore = core.AccountStore
	Strategy     = core.Strategy

	PasswordHandler = crypto.PasswordHandler
)

// structs
type (
	Account = core.Account
	Request = core.Request
)

const defaultCookieName = "session_id"

// Constructors & helpers (convenience re-exports)
var (
	NewBcrypt           = crypto.NewBcrypt
	NewArgon2           = crypto.NewArgon2
	NewSessionAuthority = core.NewSessionAuthority
	NewBasicStrategy    = core.NewBasicStrategy
	NewSessionStrategy  = core.NewSessionStrategy
	RequiresAuth        = core.RequiresAuth
)

var (
	ErrInvalidInput     = core.ErrInvalidInput
	ErrDuplicateAccount = core.ErrDuplicateAccount
	ErrNotFound         = core.ErrNotFound
	ErrInvalidFilter    = core.ErrInvalidFilter
)

var (
	ErrEmailRequired    = core.ErrEmailRequired
	ErrPasswordRequired = core.ErrPasswordRequired
)

var (
	ErrStoreRequired  = core.ErrStoreRequired
	ErrHasherRequired = core.ErrHasherRequired
)

type Config struct {
	Store core.AccountStore

	// Optional config
	PasswordHasher crypto.PasswordHandler // default bcrypt
	CookieName     string                 // default "session_id"
	ExcludedPaths  []string               // default none: every path requires auth
}

type Gatehouse struct {
	Store      core.AccountStore
	Authority  *core.SessionAuthority
	Basic      *core.BasicStrategy
	Session    *core.SessionStrategy
	CookieName string

	excludedPaths []string
}

func New(config Config) (*Gatehouse, error) {
	if config.Store == nil {
		return nil, ErrStoreRequired
	}

	// Set Defaults

	hasher := config.PasswordHasher
	if hasher == nil {
		hasher = crypto.NewBcrypt()
	}

	cookieName := config.CookieName
	if cookieName == "" {
		cookieName = defaultCookieName
	}

	authority, err := core.NewSessionAuthority(config.Store, hasher)
	if err != nil {
		return nil, err
	}

	return &Gatehouse{
		Store:         config.Store,
		Authority:     authority,
		Basic:         core.NewBasicStrategy(config.Store, hasher),
		Session:       core.NewSessionStrategy(authority, cookieName),
		CookieName:    cookieName,
		excludedPaths: config.ExcludedPaths,
	}, nil
}

// RequiresAuth applies the configured exclusion rules to a request path.
func (g *Gatehouse) RequiresAuth(path string) bool {
	return core.RequiresAuth(path, g.excludedPaths)
}
