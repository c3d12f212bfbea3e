package handler

import (
	"log/slog"
	"net/http"

	"cellcontrol/internal/delivery/api/response"
	"cellcontrol/internal/domain/entity"
	"cellcontrol/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the super admin console.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// CreateTenantRequest provisions a store. Slug defaults to the name.
type CreateTenantRequest struct {
	Name    string  `json:"name" validate:"required,max=120"`
	Slug    string  `json:"slug" validate:"omitempty,max=60"`
	LogoURL *string `json:"logoUrl" validate:"omitempty,url"`
}

// UpdateTenantRequest changes only the fields present in the body. The slug is immutable.
type UpdateTenantRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=120"`
	Active  *bool   `json:"active"`
	LogoURL *string `json:"logoUrl" validate:"omitempty,url"`
}

// CreateUserRequest provisions an operator account
type CreateUserRequest struct {
	Email    string     `json:"email" validate:"required,email"`
	Name     string     `json:"name" validate:"required,max=120"`
	Password string     `json:"password" validate:"required"`
	Role     string     `json:"role" validate:"required,oneof=super_admin tenant_admin"`
	TenantID *uuid.UUID `json:"tenantId"`
}

// UpdateUserRequest changes only the fields present in the body
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=120"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password"`
	Active   *bool   `json:"active"`
}

type AdminDashboardResponse struct {
	TotalTenants    int64                      `json:"totalTenants"`
	ActiveTenants   int64                      `json:"activeTenants"`
	TotalUsers      int64                      `json:"totalUsers"`
	TotalSales      int64                      `json:"totalSales"`
	TotalSalesValue Money                      `json:"totalSalesValue"`
	Tenants         []*TenantWithStatsResponse `json:"tenants"`
}

// Dashboard handles GET /admin/dashboard
func (h *AdminHandler) Dashboard(c echo.Context) error {
	dashboard, err := h.adminUC.Dashboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &AdminDashboardResponse{
		TotalTenants:    dashboard.TotalTenants,
		ActiveTenants:   dashboard.ActiveTenants,
		TotalUsers:      dashboard.TotalUsers,
		TotalSales:      dashboard.TotalSales,
		TotalSalesValue: Money(dashboard.TotalSalesValue),
		Tenants:         mapSlice(dashboard.Tenants, newTenantWithStatsResponse),
	})
}

// ListTenants handles GET /admin/tenants
func (h *AdminHandler) ListTenants(c echo.Context) error {
	tenants, err := h.adminUC.ListTenants(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(tenants, newTenantWithStatsResponse))
}

// GetTenant handles GET /admin/tenants/:id
func (h *AdminHandler) GetTenant(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tenant, err := h.adminUC.GetTenant(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTenantWithStatsResponse(tenant))
}

// CreateTenant handles POST /admin/tenants
func (h *AdminHandler) CreateTenant(c echo.Context) error {
	var req CreateTenantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	tenant, err := h.adminUC.CreateTenant(c.Request().Context(), &usecase.CreateTenantInput{
		Name:    req.Name,
		Slug:    req.Slug,
		LogoURL: req.LogoURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newTenantResponse(tenant))
}

// UpdateTenant handles PUT /admin/tenants/:id
func (h *AdminHandler) UpdateTenant(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateTenantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	tenant, err := h.adminUC.UpdateTenant(c.Request().Context(), id, &usecase.UpdateTenantInput{
		Name:    req.Name,
		Active:  req.Active,
		LogoURL: req.LogoURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTenantResponse(tenant))
}

// TenantQRCode handles GET /admin/tenants/:id/qrcode and returns a PNG
func (h *AdminHandler) TenantQRCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	code, err := h.adminUC.TenantQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("X-Store-Login-Url", code.LoginURL)
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=3600")

	return response.Blob(c, "image/png", code.PNG)
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(users, newUserWithTenantResponse))
}

// CreateUser handles POST /admin/users
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.adminUC.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     entity.Role(req.Role),
		TenantID: req.TenantID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserWithTenantResponse(user))
}

// UpdateUser handles PUT /admin/users/:id
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.adminUC.UpdateUser(c.Request().Context(), id, &usecase.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Active:   req.Active,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserWithTenantResponse(user))
}

// DeleteUser handles DELETE /admin/users/:id
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	session, err := sessionContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.DeleteUser(c.Request().Context(), session, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
