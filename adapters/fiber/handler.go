package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/jmallari/gatehouse"
)

func handleWelcome(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Bienvenue"})
}

// handleRegister returns the POST /users handler.
func (a *Adapter) handleRegister(g *gatehouse.Gatehouse) fiber.Handler {
	return func(c fiber.Ctx) error {
		email := c.FormValue("email")
		password := c.FormValue("password")

		acct, err := g.Authority.Register(c.Context(), email, password)
		if err != nil {
			if errors.Is(err, gatehouse.ErrDuplicateAccount) {
				return c.Status(http.StatusBadRequest).JSON(fiber.Map{
					"message": "email already registered",
				})
			}
			return handleAuthError(c, err)
		}

		a.logger.Info("account registered", "email", acct.Email)

		return c.JSON(fiber.Map{"email": acct.Email, "message": "user created"})
	}
}

// handleLogin returns the POST /sessions handler. A successful login sets
// the session cookie.
func (a *Adapter) handleLogin(g *gatehouse.Gatehouse) fiber.Handler {
	return func(c fiber.Ctx) error {
		email := c.FormValue("email")
		password := c.FormValue("password")

		if !g.Authority.CheckLogin(c.Context(), email, password) {
			return c.SendStatus(http.StatusUnauthorized)
		}

		acct, err := g.Store.FindOne(c.Context(), map[string]any{"email": email})
		if err != nil {
			return handleAuthError(c, err)
		}

		sessionID, err := g.Authority.CreateSession(c.Context(), acct.ID)
		if err != nil {
			return handleAuthError(c, err)
		}

		c.Cookie(&fiber.Cookie{
			Name:     g.CookieName,
			Value:    sessionID,
			Path:     "/",
			HTTPOnly: true,
		})

		a.logger.Info("session created", "email", acct.Email)

		return c.JSON(fiber.Map{"email": acct.Email, "message": "logged in"})
	}
}

// handleLogout returns the DELETE /sessions handler. An unresolved session
// is forbidden; a resolved one is destroyed and the client sent home.
func (a *Adapter) handleLogout(g *gatehouse.Gatehouse) fiber.Handler {
	return func(c fiber.Ctx) error {
		acct := g.Session.ResolvePrincipal(c.Context(), requestFromCtx(c, g))
		if acct == nil {
			return c.SendStatus(http.StatusForbidden)
		}

		if err := g.Authority.DestroySession(c.Context(), acct.ID); err != nil {
			return handleAuthError(c, err)
		}
		c.ClearCookie(g.CookieName)

		a.logger.Info("session destroyed", "email", acct.Email)

		return c.Redirect().To("/")
	}
}

// handleProfile reads the principal stored by RequireAuth.
func handleProfile(c fiber.Ctx) error {
	acct, ok := c.Locals("account").(*gatehouse.Account)
	if !ok {
		return c.SendStatus(http.StatusForbidden)
	}
	return c.JSON(fiber.Map{"email": acct.Email})
}

// handleIssueReset returns the POST /reset_password handler.
func (a *Adapter) handleIssueReset(g *gatehouse.Gatehouse) fiber.Handler {
	return func(c fiber.Ctx) error {
		email := c.FormValue("email")

		token, err := g.Authority.IssueResetToken(c.Context(), email)
		if err != nil {
			if errors.Is(err, gatehouse.ErrNotFound) {
				return c.SendStatus(http.StatusForbidden)
			}
			return handleAuthError(c, err)
		}

		a.logger.Info("reset token issued", "email", email)

		return c.JSON(fiber.Map{"email": email, "reset_token": token})
	}
}

// handleRedeemReset returns the PUT /reset_password handler.
func (a *Adapter) handleRedeemReset(g *gatehouse.Gatehouse) fiber.Handler {
	return func(c fiber.Ctx) error {
		email := c.FormValue("email")
		token := c.FormValue("reset_token")
		newPassword := c.FormValue("new_password")

		if err := g.Authority.RedeemResetToken(c.Context(), token, newPassword); err != nil {
			if errors.Is(err, gatehouse.ErrNotFound) || errors.Is(err, gatehouse.ErrInvalidInput) {
				return c.SendStatus(http.StatusForbidden)
			}
			return handleAuthError(c, err)
		}

		a.logger.Info("password updated", "email", email)

		return c.JSON(fiber.Map{"email": email, "message": "Password updated"})
	}
}

// handleAuthError maps gatehouse errors to appropriate HTTP responses
func handleAuthError(c fiber.Ctx, err error) error {
	status := mapErrorToStatus(err)
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// mapErrorToStatus maps gatehouse error types to HTTP status codes
func mapErrorToStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, gatehouse.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, gatehouse.ErrDuplicateAccount):
		return http.StatusConflict

	case errors.Is(err, gatehouse.ErrInvalidInput):
		return http.StatusBadRequest

	case errors.Is(err, gatehouse.ErrInvalidFilter):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}
