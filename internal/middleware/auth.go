package middleware

import (
	"net/http"
	"strings"

	"github.com/cwru-wtf/homebase/internal/model"
	"github.com/cwru-wtf/homebase/pkg/jwtutil"
	"github.com/cwru-wtf/homebase/pkg/logger"
	"github.com/cwru-wtf/homebase/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthMiddleware validates the JWT token from the Authorization header and
// stores the reviewer identity in the request context.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Missing Authorization header")
			prometheus.RecordAuthError("missing_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			prometheus.RecordAuthError("invalid_auth_format")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
		}

		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Warn("Invalid JWT token", zap.Error(err))
			prometheus.RecordAuthError("invalid_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("email", claims.Email)
		c.Set("name", claims.Name)
		c.Set("role", claims.Role)

		return next(c)
	}
}

// RequireAdmin admits only identities whose role may review submissions.
// It must run after AuthMiddleware.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		role, ok := c.Get("role").(model.Role)
		if !ok || !role.CanReview() {
			log.Warn("Insufficient role for admin route",
				zap.String("path", c.Path()),
				zap.String("role", string(role)))
			prometheus.RecordAuthError("insufficient_role")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
		}

		return next(c)
	}
}
