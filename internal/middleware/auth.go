package middleware

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/inkwell/internal/config"
	"github.com/example/inkwell/internal/models"
	"github.com/example/inkwell/internal/utils"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

const claimsContextKey = "sessionClaims"

// SessionLoader parses the session cookie (or a Bearer header for API
// clients) on every request and stores the claims in the request context.
// Missing or invalid tokens leave the request anonymous; revoked tokens are
// treated as absent.
func SessionLoader(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookieName)
		if token == "" {
			if header := c.Get("Authorization"); header != "" {
				parts := strings.SplitN(header, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
					token = parts[1]
				}
			}
		}
		if token == "" {
			return c.Next()
		}

		claims, err := utils.ParseSessionToken(cfg.JWTSecret, token)
		if err != nil {
			return c.Next()
		}

		var revoked int64
		if err := db.Model(&models.RevokedSession{}).
			Where("token_id = ?", claims.ID).
			Count(&revoked).Error; err != nil {
			return err
		}
		if revoked > 0 {
			return c.Next()
		}

		c.Locals(claimsContextKey, claims)
		return c.Next()
	}
}

// RequireAuth rejects anonymous requests. The response carries the sign-in
// location with the original path preserved in callbackUrl so browser
// clients can redirect.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := CurrentClaims(c); !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success":  false,
				"error":    "authentication required",
				"redirect": "/auth/signin?callbackUrl=" + url.QueryEscape(c.OriginalURL()),
			})
		}
		return c.Next()
	}
}

// RequireAdmin rejects sessions whose role is not admin. Must run after
// RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := CurrentClaims(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}
		if claims.Role != models.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "admin access required")
		}
		return c.Next()
	}
}

// RedirectIfAuthenticated sends already signed-in callers away from the auth
// pages.
func RedirectIfAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := CurrentClaims(c); ok {
			return c.Redirect("/", fiber.StatusFound)
		}
		return c.Next()
	}
}

// CurrentClaims extracts the authenticated session claims from context.
func CurrentClaims(c *fiber.Ctx) (*utils.SessionClaims, bool) {
	value := c.Locals(claimsContextKey)
	if value == nil {
		return nil, false
	}

	claims, ok := value.(*utils.SessionClaims)
	return claims, ok
}
