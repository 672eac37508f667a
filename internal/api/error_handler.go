package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/saintreact/inventory-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, 415 content type, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. User-facing messages stay
	// in Portuguese to match the wire contract of the frontend.
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, "todos os campos são obrigatórios"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "email já cadastrado"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "credenciais inválidas"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "usuário não encontrado"
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, "token expirado"
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, "token inválido"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "produto não encontrado"
	case errors.Is(err, domain.ErrDuplicateProduct):
		return http.StatusConflict, "produto já cadastrado"
	case errors.Is(err, domain.ErrMissingSecret):
		// Configuration failure: the service cannot sign tokens at all.
		log.Error().Err(err).Msg("signing secret unavailable")
		return http.StatusServiceUnavailable, "serviço indisponível"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "erro interno do servidor"
}
