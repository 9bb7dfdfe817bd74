package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/jmallari/gatehouse"
)

// RequireAuth builds a Fiber middleware that runs the access gate first and,
// only when the path needs authentication, asks the strategy for a
// principal. A nil principal rejects the request; a resolved account is
// stored in the context for downstream handlers.
func RequireAuth(g *gatehouse.Gatehouse, strategy gatehouse.Strategy) fiber.Handler {
	return func(c fiber.Ctx) error {
		if !g.RequiresAuth(c.Path()) {
			return c.Next()
		}

		acct := strategy.ResolvePrincipal(c.Context(), requestFromCtx(c, g))
		if acct == nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		c.Locals("account", acct)

		return c.Next()
	}
}

// requestFromCtx copies the request metadata the core reads into its
// framework-free carrier.
func requestFromCtx(c fiber.Ctx, g *gatehouse.Gatehouse) *gatehouse.Request {
	return &gatehouse.Request{
		Path: c.Path(),
		Headers: map[string]string{
			"Authorization": c.Get(fiber.HeaderAuthorization),
		},
		Cookies: map[string]string{
			g.CookieName: c.Cookies(g.CookieName),
		},
	}
}
