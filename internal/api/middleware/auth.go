package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/saintreact/inventory-api/internal/api/metrics"
	"github.com/saintreact/inventory-api/internal/core/domain"
	"github.com/saintreact/inventory-api/internal/core/ports"
)

// Auth validates the bearer token and injects its subject into the context.
// The header must be exactly "Bearer <token>"; the scheme is case-insensitive.
// Expired and invalid tokens both yield 401, with distinguishing messages.
func Auth(codec ports.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token não fornecido")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "cabeçalho de autorização inválido")
			}

			subject, err := codec.DecodeAndValidate(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokenValidationsTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token expirado")
				}
				metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token inválido")
			}

			metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
			c.Set("subject", subject)
			return next(c)
		}
	}
}
