package impl

import (
	"context"
	"log/slog"
	"sort"

	deliverycontext "cellcontrol/internal/delivery/context"
	"cellcontrol/internal/domain/entity"
	"cellcontrol/internal/domain/repository"
	"cellcontrol/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type dashboardService struct {
	modelRepo    repository.DeviceModelRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
	logger       *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	ModelRepo    repository.DeviceModelRepository
	ProductRepo  repository.ProductRepository
	CustomerRepo repository.CustomerRepository
	SaleRepo     repository.SaleRepository
	Logger       *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		modelRepo:    params.ModelRepo,
		productRepo:  params.ProductRepo,
		customerRepo: params.CustomerRepo,
		saleRepo:     params.SaleRepo,
		logger:       params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StoreDashboard counts catalog figures over all time and sales inside period.
func (srv *dashboardService) StoreDashboard(ctx context.Context, tenantID uuid.UUID, period *entity.Period) (*usecase.StoreDashboard, error) {
	models, err := srv.modelRepo.List(ctx, tenantID, repository.Page{})
	if err != nil {
		return nil, mapRepositoryError(err, "failed to list models")
	}
	totalProducts, err := srv.productRepo.CountAvailable(ctx, tenantID)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to count products")
	}
	totalCustomers, err := srv.customerRepo.Count(ctx, tenantID)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to count customers")
	}
	totals, err := srv.saleRepo.Totals(ctx, tenantID, period)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to sum sales")
	}
	sales, err := srv.saleRepo.List(ctx, tenantID, repository.SaleFilter{Period: period})
	if err != nil {
		return nil, mapRepositoryError(err, "failed to list sales")
	}

	dashboard := &usecase.StoreDashboard{
		TotalModels:    int64(len(models)),
		TotalProducts:  totalProducts,
		TotalCustomers: totalCustomers,
		TotalSales:     totals.Count,
		SalesValue:     totals.Value,
		InStock:        make([]*entity.DeviceModelStock, 0),
		OutOfStock:     make([]*entity.DeviceModel, 0),
		TopModels:      rankTopModels(sales, usecase.TopModelsLimit),
	}
	for _, m := range models {
		if m.AvailableCount > 0 {
			dashboard.InStock = append(dashboard.InStock, m)
		} else {
			dashboard.OutOfStock = append(dashboard.OutOfStock, &m.DeviceModel)
		}
	}

	srv.log(ctx).Debug("Dashboard computed", slog.Any("tenant_id", tenantID), slog.Int("sales", len(sales)))

	return dashboard, nil
}

// rankTopModels counts sold items per model: quantity desc, then model id asc.
func rankTopModels(sales []*entity.Sale, limit int) []*usecase.TopModel {
	byModel := make(map[uuid.UUID]*usecase.TopModel)
	for _, sale := range sales {
		for _, item := range sale.Items {
			top, ok := byModel[item.ModelID]
			if !ok {
				top = &usecase.TopModel{ModelID: item.ModelID, Name: item.ModelName, Value: decimal.Zero}
				byModel[item.ModelID] = top
			}
			top.Quantity++
			top.Value = top.Value.Add(item.Price)
		}
	}

	ranked := make([]*usecase.TopModel, 0, len(byModel))
	for _, top := range byModel {
		ranked = append(ranked, top)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}

		return ranked[i].ModelID.String() < ranked[j].ModelID.String()
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
