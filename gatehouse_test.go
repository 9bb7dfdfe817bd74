package gatehouse_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmallari/gatehouse"
	"github.com/jmallari/gatehouse/adapters/memory"
)

func TestNewShouldRequireStore(t *testing.T) {
	_, err := gatehouse.New(gatehouse.Config{})
	if !errors.Is(err, gatehouse.ErrStoreRequired) {
		t.Errorf("expected ErrStoreRequired, got %v", err)
	}
}

func TestNewShouldApplyDefaults(t *testing.T) {
	g, err := gatehouse.New(gatehouse.Config{Store: memory.New()})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if g.CookieName != "session_id" {
		t.Errorf("expected default cookie session_id, got %q", g.CookieName)
	}
	if g.Authority == nil || g.Basic == nil || g.Session == nil {
		t.Error("expected authority and strategies to be wired")
	}

	// No exclusions configured: every path requires auth.
	if !g.RequiresAuth("/") {
		t.Error("expected / to require auth by default")
	}
}

func TestNewShouldHonorConfig(t *testing.T) {
	g, err := gatehouse.New(gatehouse.Config{
		Store:          memory.New(),
		PasswordHasher: gatehouse.NewArgon2(),
		CookieName:     "sid",
		ExcludedPaths:  []string{"/api/v1/status/"},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if g.CookieName != "sid" {
		t.Errorf("expected cookie sid, got %q", g.CookieName)
	}
	if g.RequiresAuth("/api/v1/status") {
		t.Error("expected excluded path to skip auth")
	}
	if !g.RequiresAuth("/api/v1/users") {
		t.Error("expected unlisted path to require auth")
	}
}

func TestGatehouseEndToEndSessionFlow(t *testing.T) {
	g, err := gatehouse.New(gatehouse.Config{Store: memory.New()})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()

	acct, err := g.Authority.Register(ctx, "bob@example.com", "secret")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if !g.Authority.CheckLogin(ctx, "bob@example.com", "secret") {
		t.Fatal("CheckLogin rejected valid credentials")
	}

	sessionID, err := g.Authority.CreateSession(ctx, acct.ID)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	got := g.Session.ResolvePrincipal(ctx, &gatehouse.Request{
		Path:    "/profile",
		Cookies: map[string]string{g.CookieName: sessionID},
	})
	if got == nil || got.Email != "bob@example.com" {
		t.Fatal("session strategy did not resolve the logged-in account")
	}

	if err := g.Authority.DestroySession(ctx, acct.ID); err != nil {
		t.Fatalf("DestroySession failed: %v", err)
	}
	if g.Session.ResolvePrincipal(ctx, &gatehouse.Request{
		Path:    "/profile",
		Cookies: map[string]string{g.CookieName: sessionID},
	}) != nil {
		t.Error("destroyed session must not resolve")
	}
}
