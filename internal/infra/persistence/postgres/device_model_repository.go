package postgres

import (
	"context"
	"strings"
	"time"

	"cellcontrol/internal/domain/entity"
	domainerrors "cellcontrol/internal/domain/errors"
	"cellcontrol/internal/domain/repository"
	"cellcontrol/internal/errors"
	"cellcontrol/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// deviceModelRepository implements the repository.DeviceModelRepository interface.
type deviceModelRepository struct {
	db *gorm.DB
}

// NewDeviceModelRepository is the constructor for deviceModelRepository.
func NewDeviceModelRepository(db *gorm.DB) repository.DeviceModelRepository {
	return &deviceModelRepository{db: db}
}

// List returns the tenant's models with their unsold product count.
func (repo *deviceModelRepository) List(ctx context.Context, tenantID uuid.UUID, page repository.Page) ([]*entity.DeviceModelStock, error) {
	available := repo.db.
		Model(&model.ProductModel{}).
		Select("COUNT(*)").
		Where("products.model_id = device_models.id AND products.tenant_id = device_models.tenant_id AND products.sold = ?", false)

	var rows []*model.DeviceModelStockRow
	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModelModel{}).
		Select("device_models.*, (?) AS available_count", available).
		Scopes(scopedTo("device_models", tenantID), paginate(page)).
		Order("device_models.name ASC").
		Order("device_models.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list models")
	}

	models := make([]*entity.DeviceModelStock, 0, len(rows))
	for _, row := range rows {
		models = append(models, &entity.DeviceModelStock{
			DeviceModel: entity.DeviceModel{
				ID:        row.ID,
				TenantID:  row.TenantID,
				Name:      row.Name,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			AvailableCount: row.AvailableCount,
		})
	}

	return models, nil
}

// FindByID retrieves a model of the tenant.
func (repo *deviceModelRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.DeviceModel, error) {
	var modelM model.DeviceModelModel

	if err := repo.db.WithContext(ctx).
		Scopes(scopedTo("device_models", tenantID)).
		Where("id = ?", id).
		First(&modelM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrModelNotFound
		}

		return nil, errors.Wrap(err, "failed to find model by id")
	}

	return toDeviceModelDomain(&modelM), nil
}

// FindByName matches the name case-insensitively.
func (repo *deviceModelRepository) FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*entity.DeviceModel, error) {
	var modelM model.DeviceModelModel

	if err := repo.db.WithContext(ctx).
		Scopes(scopedTo("device_models", tenantID)).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		Order("created_at ASC").
		First(&modelM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrModelNotFound
		}

		return nil, errors.Wrap(err, "failed to find model by name")
	}

	return toDeviceModelDomain(&modelM), nil
}

// Create persists a new model for the tenant.
func (repo *deviceModelRepository) Create(ctx context.Context, tenantID uuid.UUID, m *entity.DeviceModel) error {
	if m.ID == uuid.Nil {
		m.ID = newID()
	}
	m.TenantID = tenantID
	modelM := fromDeviceModelDomain(m)

	if err := repo.db.WithContext(ctx).Omit("Tenant").Create(modelM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTenantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create model")
	}

	m.CreatedAt = modelM.CreatedAt
	m.UpdatedAt = modelM.UpdatedAt

	return nil
}

// Update renames a model.
func (repo *deviceModelRepository) Update(ctx context.Context, tenantID uuid.UUID, m *entity.DeviceModel) error {
	m.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModelModel{}).
		Scopes(scopedTo("device_models", tenantID)).
		Where("id = ?", m.ID).
		Updates(map[string]any{"name": m.Name, "updated_at": m.UpdatedAt})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update model")
	}

	if result.RowsAffected == 0 {
		return repository.ErrModelNotFound
	}
	m.TenantID = tenantID

	return nil
}

// Delete removes a model that no product references, in a single statement.
func (repo *deviceModelRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	linked := repo.db.
		Model(&model.ProductModel{}).
		Select("1").
		Where("products.model_id = device_models.id AND products.tenant_id = device_models.tenant_id")

	result := repo.db.WithContext(ctx).
		Scopes(scopedTo("device_models", tenantID)).
		Where("device_models.id = ?", id).
		Where("NOT EXISTS (?)", linked).
		Delete(&model.DeviceModelModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete model")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindByID(ctx, tenantID, id); err != nil {
			return err
		}

		return repository.ErrModelInUse
	}

	return nil
}

// Count returns the number of models of the tenant.
func (repo *deviceModelRepository) Count(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModelModel{}).
		Scopes(scopedTo("device_models", tenantID)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count models")
	}

	return count, nil
}

// --- Mapper Functions ---

func toDeviceModelDomain(data *model.DeviceModelModel) *entity.DeviceModel {
	if data == nil {
		return nil
	}

	return &entity.DeviceModel{
		ID:        data.ID,
		TenantID:  data.TenantID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDeviceModelDomain(data *entity.DeviceModel) *model.DeviceModelModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModelModel{
		ID:        data.ID,
		TenantID:  data.TenantID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
