package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Context keys set by the auth middlewares.
const (
	ContextInvestorID = "investor_id"
	ContextAdminID    = "admin_id"
)

// TokenVerifier checks an access token and returns its subject.
type TokenVerifier interface {
	VerifyAccessToken(token string) (string, error)
}

// SubjectChecker confirms the token subject still maps to a live account.
// The investor and admin stacks plug in their own lookup.
type SubjectChecker func(c echo.Context, subject string) error

func bearerToken(c echo.Context) (string, bool) {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return "", false
	}
	tok := strings.TrimSpace(strings.TrimPrefix(h, prefix))
	return tok, tok != ""
}

func requireAuth(verifier TokenVerifier, contextKey string, check SubjectChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, ok := bearerToken(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			subject, err := verifier.VerifyAccessToken(tok)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			if check != nil {
				if err := check(c, subject); err != nil {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "account not found"})
				}
			}
			c.Set(contextKey, subject)
			return next(c)
		}
	}
}

// InvestorAuth gates investor routes; the subject lands in the context under
// ContextInvestorID.
func InvestorAuth(verifier TokenVerifier, check SubjectChecker) echo.MiddlewareFunc {
	return requireAuth(verifier, ContextInvestorID, check)
}

// AdminAuth gates back-office routes under ContextAdminID.
func AdminAuth(verifier TokenVerifier, check SubjectChecker) echo.MiddlewareFunc {
	return requireAuth(verifier, ContextAdminID, check)
}
