// Package fiber exposes the gatehouse account and session lifecycle over
// HTTP using Fiber v3. The core never sees Fiber types; this adapter builds
// the core's Request carrier and maps nil principals and sentinel errors to
// status codes.
package fiber

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/jmallari/gatehouse"
)

type Adapter struct {
	app    *fiber.App
	logger *slog.Logger
}

func New(app *fiber.App, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{app: app, logger: logger}
}

func (a *Adapter) RegisterRoutes(g *gatehouse.Gatehouse) error {
	a.app.Get("/", handleWelcome)

	// Account lifecycle
	a.app.Post("/users", a.handleRegister(g))

	// Session lifecycle
	a.app.Post("/sessions", a.handleLogin(g))
	a.app.Delete("/sessions", a.handleLogout(g))

	// Protected routes
	a.app.Get("/profile", RequireAuth(g, g.Session), handleProfile)

	// Password reset
	a.app.Post("/reset_password", a.handleIssueReset(g))
	a.app.Put("/reset_password", a.handleRedeemReset(g))

	return nil
}
