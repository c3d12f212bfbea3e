package handler

import (
	"log/slog"
	"net/http"

	"cellcontrol/internal/delivery/api/response"
	"cellcontrol/internal/domain/repository"
	"cellcontrol/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler serves a store's customers.
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// CreateCustomerRequest is the body for registering a customer. CPF and
// WhatsApp may be sent masked.
type CreateCustomerRequest struct {
	Name     string  `json:"name" validate:"required,max=120"`
	CPF      string  `json:"cpf" validate:"required"`
	WhatsApp string  `json:"whatsapp" validate:"required"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address" validate:"omitempty,max=255"`
}

// UpdateCustomerRequest changes only the fields present in the body
type UpdateCustomerRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=120"`
	CPF      *string `json:"cpf"`
	WhatsApp *string `json:"whatsapp"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address" validate:"omitempty,max=255"`
}

// ListCustomers handles GET /tenants/:slug/customers?q=
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	page, err := pageQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	customers, err := h.customerUC.List(c.Request().Context(), tenant.ID, repository.CustomerFilter{
		Query: c.QueryParam("q"),
		Page:  page,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(customers, newCustomerResponse))
}

// GetCustomer handles GET /tenants/:slug/customers/:id
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.Get(c.Request().Context(), tenant.ID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponse(customer))
}

// CreateCustomer handles POST /tenants/:slug/customers
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateCustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.Create(c.Request().Context(), tenant.ID, &usecase.CreateCustomerInput{
		Name:     req.Name,
		CPF:      req.CPF,
		WhatsApp: req.WhatsApp,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCustomerResponse(customer))
}

// UpdateCustomer handles PUT /tenants/:slug/customers/:id
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateCustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.Update(c.Request().Context(), tenant.ID, id, &usecase.UpdateCustomerInput{
		Name:     req.Name,
		CPF:      req.CPF,
		WhatsApp: req.WhatsApp,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponse(customer))
}

// DeleteCustomer handles DELETE /tenants/:slug/customers/:id
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.customerUC.Delete(c.Request().Context(), tenant.ID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
