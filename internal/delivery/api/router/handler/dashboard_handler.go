package handler

import (
	"log/slog"
	"net/http"

	"cellcontrol/internal/delivery/api/response"
	"cellcontrol/internal/domain/validation"
	"cellcontrol/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// DashboardHandler serves the store summary.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
	}
}

// DashboardResponse keeps the field names the storefront already consumes.
type DashboardResponse struct {
	TotalModels      int64               `json:"total_modelos"`
	TotalProducts    int64               `json:"total_produtos"`
	TotalCustomers   int64               `json:"total_clientes"`
	TotalSales       int64               `json:"total_vendas"`
	SalesValue       Money               `json:"valor_total_vendas"`
	ModelsInStock    []*ModelResponse    `json:"modelos_com_estoque"`
	ModelsOutOfStock []*ModelResponse    `json:"modelos_sem_estoque"`
	TopModels        []*TopModelResponse `json:"top_modelos"`
}

type TopModelResponse struct {
	ModelID  uuid.UUID `json:"modelId"`
	Name     string    `json:"name"`
	Quantity int64     `json:"quantity"`
	Value    Money     `json:"value"`
}

// GetDashboard handles GET /tenants/:slug/dashboard?month=YYYY-MM
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	tenant, err := storeContext(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	period, err := validation.ParseMonth(c.QueryParam("month"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	dashboard, err := h.dashboardUC.StoreDashboard(c.Request().Context(), tenant.ID, period)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &DashboardResponse{
		TotalModels:      dashboard.TotalModels,
		TotalProducts:    dashboard.TotalProducts,
		TotalCustomers:   dashboard.TotalCustomers,
		TotalSales:       dashboard.TotalSales,
		SalesValue:       Money(dashboard.SalesValue),
		ModelsInStock:    mapSlice(dashboard.InStock, newModelStockResponse),
		ModelsOutOfStock: mapSlice(dashboard.OutOfStock, newModelResponse),
		TopModels: mapSlice(dashboard.TopModels, func(m *usecase.TopModel) *TopModelResponse {
			return &TopModelResponse{ModelID: m.ModelID, Name: m.Name, Quantity: m.Quantity, Value: Money(m.Value)}
		}),
	})
}

