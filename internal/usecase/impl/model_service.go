package impl

import (
	"context"
	"log/slog"

	deliverycontext "cellcontrol/internal/delivery/context"
	"cellcontrol/internal/domain/entity"
	"cellcontrol/internal/domain/repository"
	"cellcontrol/internal/domain/validation"
	"cellcontrol/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type modelService struct {
	modelRepo   repository.DeviceModelRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ModelServiceParams holds dependencies for ModelService, injected by Fx.
type ModelServiceParams struct {
	fx.In

	ModelRepo   repository.DeviceModelRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewModelService is the constructor for modelService.
func NewModelService(params ModelServiceParams) usecase.ModelUsecase {
	return &modelService{
		modelRepo:   params.ModelRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *modelService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *modelService) List(ctx context.Context, tenantID uuid.UUID, page repository.Page) ([]*entity.DeviceModelStock, error) {
	models, err := srv.modelRepo.List(ctx, tenantID, page.Normalize())
	if err != nil {
		return nil, mapRepositoryError(err, "failed to list models")
	}

	return models, nil
}

func (srv *modelService) Get(ctx context.Context, tenantID, id uuid.UUID) (*entity.DeviceModelStock, error) {
	m, err := srv.modelRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find model")
	}

	unsold := false
	products, err := srv.productRepo.List(ctx, tenantID, repository.ProductFilter{ModelID: &id, Sold: &unsold})
	if err != nil {
		return nil, mapRepositoryError(err, "failed to count model stock")
	}

	return &entity.DeviceModelStock{DeviceModel: *m, AvailableCount: int64(len(products))}, nil
}

func (srv *modelService) Create(ctx context.Context, tenantID uuid.UUID, input *usecase.ModelInput) (*entity.DeviceModel, error) {
	name, err := validation.RequireText("name", input.Name)
	if err != nil {
		return nil, err
	}

	m := &entity.DeviceModel{Name: name}
	if err := srv.modelRepo.Create(ctx, tenantID, m); err != nil {
		return nil, mapRepositoryError(err, "failed to create model")
	}
	srv.log(ctx).Info("Model created", slog.Any("tenant_id", tenantID), slog.Any("model_id", m.ID))

	return m, nil
}

func (srv *modelService) Update(ctx context.Context, tenantID, id uuid.UUID, input *usecase.ModelInput) (*entity.DeviceModel, error) {
	name, err := validation.RequireText("name", input.Name)
	if err != nil {
		return nil, err
	}

	m, err := srv.modelRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find model")
	}

	m.Name = name
	if err := srv.modelRepo.Update(ctx, tenantID, m); err != nil {
		return nil, mapRepositoryError(err, "failed to update model")
	}

	return m, nil
}

// Delete refuses models that still have products, sold or not.
func (srv *modelService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if err := srv.modelRepo.Delete(ctx, tenantID, id); err != nil {
		return mapRepositoryError(err, "failed to delete model")
	}
	srv.log(ctx).Info("Model deleted", slog.Any("tenant_id", tenantID), slog.Any("model_id", id))

	return nil
}
