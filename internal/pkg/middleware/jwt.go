package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/spendly/internal/pkg/jwt"
	"github.com/piresc/spendly/internal/pkg/logger"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/internal/utils"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

// JWTAuthMiddleware rejects requests without a bearer token with 401 and
// requests whose token fails verification with 403
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Access token required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
				return utils.UnauthorizedResponse(c, "Access token required")
			}

			claims, err := jwtpkg.ValidateToken(strings.TrimSpace(parts[1]), config.Secret)
			if err != nil {
				logger.Debug("Rejected bearer token",
					logger.String("path", c.Path()),
					logger.ErrorField(err))
				return utils.ForbiddenResponse(c, "Invalid or expired token")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextEmail, claims.Email)

			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user id set by JWTAuthMiddleware
func UserIDFromContext(c echo.Context) (int64, bool) {
	id, ok := c.Get(ContextUserID).(int64)
	return id, ok && id > 0
}
