package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saintreact/inventory-api/internal/api/metrics"
	"github.com/saintreact/inventory-api/internal/core/domain"
	"github.com/saintreact/inventory-api/internal/core/ports"
)

// AuthHandler handles account registration, login, and profile resolution.
// JSON field names follow the frontend's Portuguese wire contract.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	FirstName string `json:"nome"      validate:"required"`
	LastName  string `json:"sobrenome" validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Phone     string `json:"numero"    validate:"required"`
	Password  string `json:"senha"     validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type profileData struct {
	FirstName string `json:"nome"`
	LastName  string `json:"sobrenome"`
	Email     string `json:"email"`
	Phone     string `json:"numero"`
}

type profileResponse struct {
	Profile profileData `json:"perfil"`
}

// Register creates a new account. No token is issued; the caller logs in
// separately.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      415   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /new_user [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		// Echo distinguishes unsupported content type (415) from a bad body (400).
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "usuário adicionado com sucesso"})
}

// Login verifies credentials and returns a signed bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Message: "login bem-sucedido", Token: token})
}

// Profile returns the account behind the validated bearer token. The Auth
// middleware has already decoded the token and stored its subject.
//
// @Summary      Resolve the authenticated profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /perfil [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	subject, _ := c.Get("subject").(string)
	if subject == "" {
		return domain.ErrTokenInvalid
	}

	user, err := h.authService.Profile(c.Request().Context(), subject)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{Profile: profileData{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
	}})
}
