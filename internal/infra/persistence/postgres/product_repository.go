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
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// List returns the tenant's products newest first.
func (repo *productRepository) List(ctx context.Context, tenantID uuid.UUID, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Preload("DeviceModel").
		Scopes(scopedTo("products", tenantID), paginate(filter.Page))

	if filter.ModelID != nil {
		query = query.Where("model_id = ?", *filter.ModelID)
	}
	if filter.Sold != nil {
		query = query.Where("sold = ?", *filter.Sold)
	}

	var productModels []*model.ProductModel
	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindByID retrieves a product of the tenant with its model name.
func (repo *productRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("DeviceModel").
		Scopes(scopedTo("products", tenantID)).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new product. The model must belong to the same tenant.
func (repo *productRepository) Create(ctx context.Context, tenantID uuid.UUID, p *entity.Product) error {
	modelM, err := repo.requireModel(ctx, tenantID, p.ModelID)
	if err != nil {
		return err
	}

	if p.ID == uuid.Nil {
		p.ID = newID()
	}
	p.TenantID = tenantID
	p.Sold = false
	p.SaleID = nil
	productM := fromProductDomain(p)

	if err := repo.db.WithContext(ctx).Omit("DeviceModel").Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrModelNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	p.ModelName = modelM.Name
	p.CreatedAt = productM.CreatedAt
	p.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update persists the descriptive fields of a product.
func (repo *productRepository) Update(ctx context.Context, tenantID uuid.UUID, p *entity.Product) error {
	modelM, err := repo.requireModel(ctx, tenantID, p.ModelID)
	if err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Scopes(scopedTo("products", tenantID)).
		Where("id = ?", p.ID).
		Select("model_id", "color", "storage", "battery_percent", "imei", "price", "updated_at").
		Updates(fromProductDomain(p))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}
	p.ModelName = modelM.Name

	return nil
}

// Delete removes a product. Sales keep their snapshot of it.
func (repo *productRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Scopes(scopedTo("products", tenantID)).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// MarkSold is a conditional update: only one caller can move a product out of stock.
func (repo *productRepository) MarkSold(ctx context.Context, tenantID, productID, saleID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Scopes(scopedTo("products", tenantID)).
		Where("id = ? AND sold = ?", productID, false).
		Updates(map[string]any{
			"sold":       true,
			"sale_id":    saleID,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark product as sold")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductUnavailable
	}

	return nil
}

// Restore puts back in stock the products still linked to saleID.
func (repo *productRepository) Restore(ctx context.Context, tenantID, saleID uuid.UUID, productIDs []uuid.UUID) (int64, error) {
	if len(productIDs) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Scopes(scopedTo("products", tenantID)).
		Where("id IN ? AND sale_id = ?", productIDs, saleID).
		Updates(map[string]any{
			"sold":       false,
			"sale_id":    nil,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to restore products")
	}

	return result.RowsAffected, nil
}

// CountAvailable counts the tenant's unsold products.
func (repo *productRepository) CountAvailable(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Scopes(scopedTo("products", tenantID)).
		Where("sold = ?", false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count available products")
	}

	return count, nil
}

func (repo *productRepository) requireModel(ctx context.Context, tenantID, modelID uuid.UUID) (*entity.DeviceModel, error) {
	return NewDeviceModelRepository(repo.db).FindByID(ctx, tenantID, modelID)
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:             data.ID,
		TenantID:       data.TenantID,
		ModelID:        data.ModelID,
		Color:          data.Color,
		Storage:        data.Storage,
		BatteryPercent: data.BatteryPercent,
		IMEI:           data.IMEI,
		Price:          data.Price,
		Sold:           data.Sold,
		SaleID:         data.SaleID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
	if data.DeviceModel != nil {
		product.ModelName = data.DeviceModel.Name
	}

	return product
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:             data.ID,
		TenantID:       data.TenantID,
		ModelID:        data.ModelID,
		Color:          data.Color,
		Storage:        data.Storage,
		BatteryPercent: data.BatteryPercent,
		IMEI:           data.IMEI,
		Price:          data.Price,
		Sold:           data.Sold,
		SaleID:         data.SaleID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
