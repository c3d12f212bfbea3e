package handler

import (
	"log/slog"
	"net/http"

	"cellcontrol/internal/delivery/api/response"
	"cellcontrol/internal/domain/entity"
	"cellcontrol/internal/domain/repository"
	"cellcontrol/internal/domain/validation"
	"cellcontrol/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SaleHandlerParams holds dependencies for SaleHandler, injected by Fx.
type SaleHandlerParams struct {
	fx.In

	SaleUC usecase.SaleUsecase
	Logger *slog.Logger
}

// SaleHandler serves the point of sale.
type SaleHandler struct {
	saleUC usecase.SaleUsecase
	logger *slog.Logger
}

// NewSaleHandler is the constructor for SaleHandler
func NewSaleHandler(params SaleHandlerParams) *SaleHandler {
	return &SaleHandler{
		saleUC: params.SaleUC,
		logger: params.Logger,
	}
}

// CreateSaleRequest sells the listed products, in order, to one customer
type CreateSaleRequest struct {
	CustomerID    uuid.UUID   `json:"customerId" validate:"required"`
	ProductIDs    []uuid.UUID `json:"productIds"`
	PaymentMethod string      `json:"paymentMethod" validate:"required,oneof=cash pix credit_card debit_card transfer"`
	Note          *string     `json:"note" validate:"omitempty,max=500"`
}

// UpdateSaleRequest edits the payment method or the note
type UpdateSaleRequest struct {
	PaymentMethod *string `json:"paymentMethod" validate:"omitempty,oneof=cash pix credit_card debit_card transfer"`
	Note          *string `json:"note" validate:"omitempty,max=500"`
}

// ListSales handles GET /tenants/:slug/sales?month=YYYY-MM
func (h *SaleHandler) ListSales(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	page, err := pageQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	period, err := validation.ParseMonth(c.QueryParam("month"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sales, err := h.saleUC.List(c.Request().Context(), tenant.ID, repository.SaleFilter{Period: period, Page: page})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(sales, newSaleResponse))
}

// GetSale handles GET /tenants/:slug/sales/:id
func (h *SaleHandler) GetSale(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sale, err := h.saleUC.Get(c.Request().Context(), tenant.ID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSaleResponse(sale))
}

// CreateSale handles POST /tenants/:slug/sales
func (h *SaleHandler) CreateSale(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateSaleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	sale, err := h.saleUC.Create(c.Request().Context(), tenant, &usecase.CreateSaleInput{
		CustomerID:    req.CustomerID,
		ProductIDs:    req.ProductIDs,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Note:          req.Note,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newSaleResponse(sale))
}

// UpdateSale handles PUT /tenants/:slug/sales/:id
func (h *SaleHandler) UpdateSale(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateSaleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateSaleInput{Note: req.Note}
	if req.PaymentMethod != nil {
		method := entity.PaymentMethod(*req.PaymentMethod)
		input.PaymentMethod = &method
	}

	sale, err := h.saleUC.Update(c.Request().Context(), tenant.ID, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSaleResponse(sale))
}

// DeleteSale handles DELETE /tenants/:slug/sales/:id and returns its products to stock
func (h *SaleHandler) DeleteSale(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.saleUC.Delete(c.Request().Context(), tenant, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
