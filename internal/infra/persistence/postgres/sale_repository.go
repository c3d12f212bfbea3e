package postgres

import (
	"context"
	"time"

	"cellcontrol/internal/domain/entity"
	domainerrors "cellcontrol/internal/domain/errors"
	"cellcontrol/internal/domain/repository"
	"cellcontrol/internal/errors"
	"cellcontrol/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// saleRepository implements the repository.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{db: db}
}

// List returns the tenant's sales newest first.
func (repo *saleRepository) List(ctx context.Context, tenantID uuid.UUID, filter repository.SaleFilter) ([]*entity.Sale, error) {
	var saleModels []*model.SaleModel

	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Scopes(scopedTo("sales", tenantID), withinPeriod(filter.Period), paginate(filter.Page)).
		Order("sold_at DESC").
		Order("id DESC").
		Find(&saleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	sales := make([]*entity.Sale, 0, len(saleModels))
	for _, saleM := range saleModels {
		sales = append(sales, toSaleDomain(saleM))
	}

	return sales, nil
}

// FindByID retrieves a sale of the tenant with the customer name.
func (repo *saleRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Sale, error) {
	var saleM model.SaleModel

	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Scopes(scopedTo("sales", tenantID)).
		Where("id = ?", id).
		First(&saleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by id")
	}

	return toSaleDomain(&saleM), nil
}

// Create persists a sale row with its item snapshot.
func (repo *saleRepository) Create(ctx context.Context, tenantID uuid.UUID, sale *entity.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = newID()
	}
	if sale.SoldAt.IsZero() {
		sale.SoldAt = time.Now().UTC()
	}
	sale.TenantID = tenantID
	saleM := fromSaleDomain(sale)

	if err := repo.db.WithContext(ctx).Omit("Customer").Create(saleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale")
	}

	sale.UpdatedAt = saleM.UpdatedAt

	return nil
}

// UpdateDetails changes payment method and note. Items and total never change.
func (repo *saleRepository) UpdateDetails(ctx context.Context, tenantID uuid.UUID, sale *entity.Sale) error {
	sale.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Scopes(scopedTo("sales", tenantID)).
		Where("id = ?", sale.ID).
		Updates(map[string]any{
			"payment_method": sale.PaymentMethod.String(),
			"note":           sale.Note,
			"updated_at":     sale.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update sale")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSaleNotFound
	}

	return nil
}

// Delete removes a sale row.
func (repo *saleRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Scopes(scopedTo("sales", tenantID)).
		Where("id = ?", id).
		Delete(&model.SaleModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete sale")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSaleNotFound
	}

	return nil
}

// Totals counts and sums the tenant's sales inside period.
func (repo *saleRepository) Totals(ctx context.Context, tenantID uuid.UUID, period *entity.Period) (repository.SaleTotals, error) {
	var row struct {
		SaleCount int64
		SaleValue decimal.NullDecimal
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Select("COUNT(*) AS sale_count, SUM(total_value) AS sale_value").
		Scopes(scopedTo("sales", tenantID), withinPeriod(period)).
		Scan(&row).Error; err != nil {
		return repository.SaleTotals{}, errors.Wrap(err, "failed to sum sales")
	}

	totals := repository.SaleTotals{Count: row.SaleCount, Value: decimal.Zero}
	if row.SaleValue.Valid {
		totals.Value = row.SaleValue.Decimal
	}

	return totals, nil
}

// withinPeriod restricts sales to [From, To). A nil period is a no-op.
func withinPeriod(period *entity.Period) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if period == nil {
			return db
		}

		return db.Where("sales.sold_at >= ? AND sales.sold_at < ?", period.From.UTC(), period.To.UTC())
	}
}

// --- Mapper Functions ---

func toSaleDomain(data *model.SaleModel) *entity.Sale {
	if data == nil {
		return nil
	}

	items := make([]entity.SaleItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.SaleItem{
			ProductID: item.ProductID,
			ModelID:   item.ModelID,
			ModelName: item.ModelName,
			Color:     item.Color,
			Storage:   item.Storage,
			Price:     item.Price,
		})
	}

	sale := &entity.Sale{
		ID:            data.ID,
		TenantID:      data.TenantID,
		CustomerID:    data.CustomerID,
		Items:         items,
		PaymentMethod: entity.PaymentMethod(data.PaymentMethod),
		TotalValue:    data.TotalValue,
		Note:          data.Note,
		SoldAt:        data.SoldAt.UTC(),
		UpdatedAt:     data.UpdatedAt,
	}
	if data.Customer != nil {
		sale.CustomerName = data.Customer.Name
	}

	return sale
}

func fromSaleDomain(data *entity.Sale) *model.SaleModel {
	if data == nil {
		return nil
	}

	items := make([]model.SaleItemData, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.SaleItemData{
			ProductID: item.ProductID,
			ModelID:   item.ModelID,
			ModelName: item.ModelName,
			Color:     item.Color,
			Storage:   item.Storage,
			Price:     item.Price,
		})
	}

	return &model.SaleModel{
		ID:            data.ID,
		TenantID:      data.TenantID,
		CustomerID:    data.CustomerID,
		Items:         datatypes.JSONSlice[model.SaleItemData](items),
		PaymentMethod: data.PaymentMethod.String(),
		TotalValue:    data.TotalValue,
		Note:          data.Note,
		SoldAt:        data.SoldAt.UTC(),
		UpdatedAt:     data.UpdatedAt,
	}
}
