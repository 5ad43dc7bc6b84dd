package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/staff-directory/internal/handler"
	"github.com/jwalitptl/staff-directory/pkg/auth"
	apperrors "github.com/jwalitptl/staff-directory/pkg/errors"
)

// ActingEmployee reads an optional "Authorization: Bearer" acting-employee token.
// Requests without the header pass through untouched; a malformed or expired
// token is answered with 401.
func ActingEmployee(tokens *auth.TokenService, resp handler.Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			resp.Fail(c, apperrors.Unauthorized(nil), "")
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			resp.Fail(c, apperrors.Unauthorized(err), "")
			return
		}

		c.Set(handler.ContextActingEmployeeID, claims.EmployeeID)
		c.Next()
	}
}
