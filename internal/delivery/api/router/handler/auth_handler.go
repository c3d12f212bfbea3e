package handler

import (
	"log/slog"
	"net/http"

	"cellcontrol/internal/delivery/api/response"
	"cellcontrol/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC   usecase.AuthUsecase
	AccessUC usecase.AccessUsecase
	Logger   *slog.Logger
}

// AuthHandler serves login, the current account and the public store lookup.
type AuthHandler struct {
	authUC   usecase.AuthUsecase
	accessUC usecase.AccessUsecase
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:   params.AuthUC,
		accessUC: params.AccessUC,
		logger:   params.Logger,
	}
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string          `json:"token"`
	TokenType string          `json:"tokenType"`
	User      *UserResponse   `json:"user"`
	Tenant    *TenantResponse `json:"tenant"`
}

type MeResponse struct {
	User   *UserResponse   `json:"user"`
	Tenant *TenantResponse `json:"tenant"`
}

type StoreInfoResponse struct {
	Exists  bool    `json:"exists"`
	Name    string  `json:"name"`
	Slug    string  `json:"slug"`
	LogoURL *string `json:"logoUrl"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &LoginResponse{
		Token:     out.Token,
		TokenType: "Bearer",
		User:      newUserResponse(out.User),
		Tenant:    newTenantResponse(out.Tenant),
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	session, err := sessionContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.Me(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &MeResponse{
		User:   newUserResponse(out.User),
		Tenant: newTenantResponse(out.Tenant),
	})
}

// VerifyStore handles the anonymous GET /tenants/:slug/verify
func (h *AuthHandler) VerifyStore(c echo.Context) error {
	info, err := h.accessUC.VerifyStore(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &StoreInfoResponse{
		Exists:  info.Exists,
		Name:    info.Name,
		Slug:    info.Slug,
		LogoURL: info.LogoURL,
	})
}
