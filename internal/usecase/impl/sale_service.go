package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "cellcontrol/internal/delivery/context"
	"cellcontrol/internal/domain/constants"
	"cellcontrol/internal/domain/entity"
	domainerrors "cellcontrol/internal/domain/errors"
	"cellcontrol/internal/domain/lifecycle"
	"cellcontrol/internal/domain/repository"
	"cellcontrol/internal/domain/service"
	"cellcontrol/internal/domain/validation"
	"cellcontrol/internal/errors"
	"cellcontrol/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// saleService orchestrates the sale transaction: every product is flipped
// to sold together with the sale insert, or nothing is.
type saleService struct {
	txManager repository.TransactionManager
	saleRepo  repository.SaleRepository
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	now       func() time.Time
	logger    *slog.Logger
}

// SaleServiceParams holds dependencies for SaleService, injected by Fx.
type SaleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	SaleRepo  repository.SaleRepository
	Publisher service.EventPublisher
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewSaleService is the constructor for saleService.
func NewSaleService(params SaleServiceParams) usecase.SaleUsecase {
	return &saleService{
		txManager: params.TxManager,
		saleRepo:  params.SaleRepo,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *saleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *saleService) List(ctx context.Context, tenantID uuid.UUID, filter repository.SaleFilter) ([]*entity.Sale, error) {
	filter.Page = filter.Page.Normalize()

	sales, err := srv.saleRepo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to list sales")
	}

	return sales, nil
}

func (srv *saleService) Get(ctx context.Context, tenantID, id uuid.UUID) (*entity.Sale, error) {
	sale, err := srv.saleRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find sale")
	}

	return sale, nil
}

// Create loads the selected products in order, snapshots them into the sale
// and marks each one sold with a conditional update. A product sold by a
// concurrent request makes the whole transaction roll back.
func (srv *saleService) Create(ctx context.Context, tenant *entity.Tenant, input *usecase.CreateSaleInput) (*entity.Sale, error) {
	var sale *entity.Sale

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customer, err := repoFactory.NewCustomerRepository().FindByID(ctx, tenant.ID, input.CustomerID)
		if err != nil {
			return mapRepositoryError(err, "failed to find sale customer")
		}

		if err := validateSaleInput(input); err != nil {
			return err
		}

		productRepo := repoFactory.NewProductRepository()
		items := make([]entity.SaleItem, 0, len(input.ProductIDs))
		for _, productID := range input.ProductIDs {
			product, err := productRepo.FindByID(ctx, tenant.ID, productID)
			if err != nil {
				return mapRepositoryError(err, "failed to load sale product")
			}
			if !product.Available() {
				return domainerrors.ErrProductUnavailable.WithDetails(productID.String())
			}
			items = append(items, entity.NewSaleItem(product, product.ModelName))
		}

		sale = &entity.Sale{
			TenantID:      tenant.ID,
			CustomerID:    customer.ID,
			CustomerName:  customer.Name,
			Items:         items,
			PaymentMethod: input.PaymentMethod,
			TotalValue:    entity.SumItems(items),
			Note:          validation.OptionalText(input.Note),
			SoldAt:        srv.now().UTC(),
		}
		if err := repoFactory.NewSaleRepository().Create(ctx, tenant.ID, sale); err != nil {
			return mapRepositoryError(err, "failed to create sale")
		}

		for _, productID := range input.ProductIDs {
			if err := productRepo.MarkSold(ctx, tenant.ID, productID, sale.ID); err != nil {
				if errors.Is(err, repository.ErrProductUnavailable) {
					return domainerrors.ErrProductUnavailable.WithDetails(productID.String())
				}

				return errors.Wrap(err, "failed to mark product as sold")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Info("Sale rejected", slog.Any("tenant_id", tenant.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Sale created",
		slog.Any("tenant_id", tenant.ID),
		slog.Any("sale_id", sale.ID),
		slog.Int("items", len(sale.Items)),
		slog.String("total", sale.TotalValue.StringFixed(2)),
	)
	srv.metrics.SaleCreated(tenant.Slug, sale.TotalValue, len(sale.Items))
	srv.publish(ctx, constants.EventSaleCreated, sale)

	return sale, nil
}

func validateSaleInput(input *usecase.CreateSaleInput) error {
	if len(input.ProductIDs) == 0 {
		return domainerrors.ErrValidationFailed.WithMessage("add at least one product")
	}

	seen := make(map[uuid.UUID]struct{}, len(input.ProductIDs))
	for _, id := range input.ProductIDs {
		if _, dup := seen[id]; dup {
			return domainerrors.ErrValidationFailed.WithMessage("a product can only be added once").WithDetails(id.String())
		}
		seen[id] = struct{}{}
	}

	if !input.PaymentMethod.IsValid() {
		return domainerrors.ErrValidationFailed.WithMessage("invalid payment method")
	}

	return nil
}

// Update edits payment method and note only. Items and total are immutable.
func (srv *saleService) Update(ctx context.Context, tenantID, id uuid.UUID, input *usecase.UpdateSaleInput) (*entity.Sale, error) {
	if input.PaymentMethod == nil && input.Note == nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("nothing to update")
	}
	if input.PaymentMethod != nil && !input.PaymentMethod.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithMessage("invalid payment method")
	}

	sale, err := srv.saleRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find sale")
	}

	if input.PaymentMethod != nil {
		sale.PaymentMethod = *input.PaymentMethod
	}
	if input.Note != nil {
		sale.Note = validation.OptionalText(input.Note)
	}

	if err := srv.saleRepo.UpdateDetails(ctx, tenantID, sale); err != nil {
		return nil, mapRepositoryError(err, "failed to update sale")
	}

	return sale, nil
}

// Delete returns every product still linked to the sale to stock and removes the sale.
func (srv *saleService) Delete(ctx context.Context, tenant *entity.Tenant, id uuid.UUID) error {
	var sale *entity.Sale

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		saleRepo := repoFactory.NewSaleRepository()

		var err error
		sale, err = saleRepo.FindByID(ctx, tenant.ID, id)
		if err != nil {
			return mapRepositoryError(err, "failed to find sale")
		}

		restored, err := repoFactory.NewProductRepository().Restore(ctx, tenant.ID, sale.ID, sale.ProductIDs())
		if err != nil {
			return errors.Wrap(err, "failed to restore sale products")
		}
		if restored != int64(len(sale.Items)) {
			srv.log(ctx).Warn("Some sold products no longer exist",
				slog.Any("sale_id", sale.ID),
				slog.Int64("restored", restored),
				slog.Int("items", len(sale.Items)),
			)
		}

		if err := saleRepo.Delete(ctx, tenant.ID, sale.ID); err != nil {
			return mapRepositoryError(err, "failed to delete sale")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Sale deleted", slog.Any("tenant_id", tenant.ID), slog.Any("sale_id", id))
	srv.metrics.SaleDeleted(tenant.Slug)
	srv.publish(ctx, constants.EventSaleDeleted, sale)

	return nil
}

// publish is best effort: the sale is already committed.
func (srv *saleService) publish(ctx context.Context, eventType string, sale *entity.Sale) {
	productIDs := make([]string, 0, len(sale.Items))
	for _, id := range sale.ProductIDs() {
		productIDs = append(productIDs, id.String())
	}

	event := &service.SaleEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          eventType,
		TenantID:      sale.TenantID.String(),
		SaleID:        sale.ID.String(),
		CustomerID:    sale.CustomerID.String(),
		ProductIDs:    productIDs,
		PaymentMethod: sale.PaymentMethod.String(),
		TotalValue:    sale.TotalValue.StringFixed(2),
		OccurredAt:    srv.now().UTC(),
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := srv.publisher.PublishSaleEvent(publishCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish sale event",
			slog.String("type", eventType),
			slog.Any("sale_id", sale.ID),
			slog.Any("error", err),
		)
	}
}
