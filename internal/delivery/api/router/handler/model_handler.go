package handler

import (
	"log/slog"
	"net/http"

	"cellcontrol/internal/delivery/api/response"
	"cellcontrol/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ModelHandlerParams holds dependencies for ModelHandler, injected by Fx.
type ModelHandlerParams struct {
	fx.In

	ModelUC usecase.ModelUsecase
	Logger  *slog.Logger
}

// ModelHandler serves a store's device models.
type ModelHandler struct {
	modelUC usecase.ModelUsecase
	logger  *slog.Logger
}

// NewModelHandler is the constructor for ModelHandler
func NewModelHandler(params ModelHandlerParams) *ModelHandler {
	return &ModelHandler{
		modelUC: params.ModelUC,
		logger:  params.Logger,
	}
}

// ModelRequest is the body for creating or renaming a model
type ModelRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

// ListModels handles GET /tenants/:slug/models
func (h *ModelHandler) ListModels(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	page, err := pageQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	models, err := h.modelUC.List(c.Request().Context(), tenant.ID, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(models, newModelStockResponse))
}

// GetModel handles GET /tenants/:slug/models/:id
func (h *ModelHandler) GetModel(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	model, err := h.modelUC.Get(c.Request().Context(), tenant.ID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newModelStockResponse(model))
}

// CreateModel handles POST /tenants/:slug/models
func (h *ModelHandler) CreateModel(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ModelRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	model, err := h.modelUC.Create(c.Request().Context(), tenant.ID, &usecase.ModelInput{Name: req.Name})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newModelResponse(model))
}

// UpdateModel handles PUT /tenants/:slug/models/:id
func (h *ModelHandler) UpdateModel(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ModelRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	model, err := h.modelUC.Update(c.Request().Context(), tenant.ID, id, &usecase.ModelInput{Name: req.Name})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newModelResponse(model))
}

// DeleteModel handles DELETE /tenants/:slug/models/:id
func (h *ModelHandler) DeleteModel(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.modelUC.Delete(c.Request().Context(), tenant.ID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
