package impl

import (
	"context"
	"log/slog"

	deliverycontext "cellcontrol/internal/delivery/context"
	"cellcontrol/internal/domain/entity"
	domainerrors "cellcontrol/internal/domain/errors"
	"cellcontrol/internal/domain/repository"
	"cellcontrol/internal/domain/validation"
	"cellcontrol/internal/errors"
	"cellcontrol/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) List(ctx context.Context, tenantID uuid.UUID, filter repository.ProductFilter) ([]*entity.Product, error) {
	filter.Page = filter.Page.Normalize()

	products, err := srv.productRepo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) Get(ctx context.Context, tenantID, id uuid.UUID) (*entity.Product, error) {
	p, err := srv.productRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find product")
	}

	return p, nil
}

func (srv *productService) Create(ctx context.Context, tenantID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	p, err := newProduct(input)
	if err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, tenantID, p); err != nil {
		if errors.Is(err, repository.ErrModelNotFound) {
			return nil, invalidReference("model")
		}

		return nil, mapRepositoryError(err, "failed to create product")
	}
	srv.log(ctx).Info("Product created", slog.Any("tenant_id", tenantID), slog.Any("product_id", p.ID))

	return p, nil
}

// newProduct validates a create request into an unsold product.
func newProduct(input *usecase.CreateProductInput) (*entity.Product, error) {
	color, err := validation.RequireText("color", input.Color)
	if err != nil {
		return nil, err
	}
	storage, err := validation.RequireText("storage", input.Storage)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateBattery(input.BatteryPercent); err != nil {
		return nil, err
	}
	price, err := validation.ParsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	return &entity.Product{
		ModelID:        input.ModelID,
		Color:          color,
		Storage:        storage,
		BatteryPercent: input.BatteryPercent,
		IMEI:           validation.OptionalText(input.IMEI),
		Price:          price,
	}, nil
}

// Update applies the set fields. The sold flag is never touched here.
func (srv *productService) Update(ctx context.Context, tenantID, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	p, err := srv.productRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find product")
	}

	if err := applyProductUpdate(p, input); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Update(ctx, tenantID, p); err != nil {
		if errors.Is(err, repository.ErrModelNotFound) {
			return nil, invalidReference("model")
		}

		return nil, mapRepositoryError(err, "failed to update product")
	}

	return p, nil
}

func applyProductUpdate(p *entity.Product, input *usecase.UpdateProductInput) error {
	if input.ModelID != nil {
		p.ModelID = *input.ModelID
	}
	if input.Color != nil {
		color, err := validation.RequireText("color", *input.Color)
		if err != nil {
			return err
		}
		p.Color = color
	}
	if input.Storage != nil {
		storage, err := validation.RequireText("storage", *input.Storage)
		if err != nil {
			return err
		}
		p.Storage = storage
	}
	if input.ClearBattery {
		if input.BatteryPercent != nil {
			return domainerrors.ErrValidationFailed.WithMessage("batteryPercent and clearBattery are mutually exclusive")
		}
		p.BatteryPercent = nil
	}
	if input.BatteryPercent != nil {
		if err := validation.ValidateBattery(input.BatteryPercent); err != nil {
			return err
		}
		p.BatteryPercent = input.BatteryPercent
	}
	if input.IMEI != nil {
		p.IMEI = validation.OptionalText(input.IMEI)
	}
	if input.Price != nil {
		price, err := validation.ParsePrice(*input.Price)
		if err != nil {
			return err
		}
		p.Price = price
	}

	return nil
}

func (srv *productService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, tenantID, id); err != nil {
		return mapRepositoryError(err, "failed to delete product")
	}
	srv.log(ctx).Info("Product deleted", slog.Any("tenant_id", tenantID), slog.Any("product_id", id))

	return nil
}
