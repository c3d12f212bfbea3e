package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"cellcontrol/internal/delivery/api/response"
	domainerrors "cellcontrol/internal/domain/errors"
	"cellcontrol/internal/domain/repository"
	"cellcontrol/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves a store's stock items.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest is the body for adding a stock item
type CreateProductRequest struct {
	ModelID        uuid.UUID  `json:"modelId" validate:"required"`
	Color          string     `json:"color" validate:"required,max=60"`
	Storage        string     `json:"storage" validate:"required,max=30"`
	BatteryPercent *int       `json:"batteryPercent" validate:"omitempty,gte=0,lte=100"`
	IMEI           *string    `json:"imei" validate:"omitempty,max=20"`
	Price          PriceInput `json:"price" validate:"required"`
}

// UpdateProductRequest changes only the fields present in the body
type UpdateProductRequest struct {
	ModelID        *uuid.UUID  `json:"modelId"`
	Color          *string     `json:"color" validate:"omitempty,max=60"`
	Storage        *string     `json:"storage" validate:"omitempty,max=30"`
	BatteryPercent *int        `json:"batteryPercent" validate:"omitempty,gte=0,lte=100"`
	ClearBattery   bool        `json:"clearBattery"`
	IMEI           *string     `json:"imei" validate:"omitempty,max=20"`
	Price          *PriceInput `json:"price"`
}

// ListProducts handles GET /tenants/:slug/products?modelId=&sold=
func (h *ProductHandler) ListProducts(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filter, err := productFilter(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.productUC.List(c.Request().Context(), tenant.ID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(products, newProductResponse))
}

func productFilter(c echo.Context) (repository.ProductFilter, error) {
	var filter repository.ProductFilter

	page, err := pageQuery(c)
	if err != nil {
		return filter, err
	}
	filter.Page = page

	if raw := c.QueryParam("modelId"); raw != "" {
		modelID, err := uuid.Parse(raw)
		if err != nil {
			return filter, domainerrors.ErrValidationFailed.WithMessage("modelId must be a valid id")
		}
		filter.ModelID = &modelID
	}

	if raw := c.QueryParam("sold"); raw != "" {
		sold, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, domainerrors.ErrValidationFailed.WithMessage("sold must be true or false")
		}
		filter.Sold = &sold
	}

	return filter, nil
}

// GetProduct handles GET /tenants/:slug/products/:id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Get(c.Request().Context(), tenant.ID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product))
}

// CreateProduct handles POST /tenants/:slug/products
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Create(c.Request().Context(), tenant.ID, &usecase.CreateProductInput{
		ModelID:        req.ModelID,
		Color:          req.Color,
		Storage:        req.Storage,
		BatteryPercent: req.BatteryPercent,
		IMEI:           req.IMEI,
		Price:          string(req.Price),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newProductResponse(product))
}

// UpdateProduct handles PUT /tenants/:slug/products/:id
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Update(c.Request().Context(), tenant.ID, id, &usecase.UpdateProductInput{
		ModelID:        req.ModelID,
		Color:          req.Color,
		Storage:        req.Storage,
		BatteryPercent: req.BatteryPercent,
		ClearBattery:   req.ClearBattery,
		IMEI:           req.IMEI,
		Price:          req.Price.ptr(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product))
}

// DeleteProduct handles DELETE /tenants/:slug/products/:id
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.productUC.Delete(c.Request().Context(), tenant.ID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
