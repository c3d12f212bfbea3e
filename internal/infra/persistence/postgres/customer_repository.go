package postgres

import (
	"context"
	"strings"
	"time"

	"cellcontrol/internal/domain/entity"
	domainerrors "cellcontrol/internal/domain/errors"
	"cellcontrol/internal/domain/repository"
	"cellcontrol/internal/domain/validation"
	"cellcontrol/internal/errors"
	"cellcontrol/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// List returns the tenant's customers ordered by name, optionally matching a name or CPF fragment.
func (repo *customerRepository) List(ctx context.Context, tenantID uuid.UUID, filter repository.CustomerFilter) ([]*entity.Customer, error) {
	query := repo.db.WithContext(ctx).
		Scopes(scopedTo("customers", tenantID), paginate(filter.Page))

	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		digits := validation.Digits(q)
		if digits != "" {
			query = query.Where("LOWER(name) LIKE ? OR cpf LIKE ?", "%"+q+"%", "%"+digits+"%")
		} else {
			query = query.Where("LOWER(name) LIKE ?", "%"+q+"%")
		}
	}

	var customerModels []*model.CustomerModel
	if err := query.
		Order("name ASC").
		Order("id ASC").
		Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// FindByID retrieves a customer of the tenant.
func (repo *customerRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Scopes(scopedTo("customers", tenantID)).
		Where("id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return toCustomerDomain(&customerM), nil
}

// Create persists a new customer for the tenant.
func (repo *customerRepository) Create(ctx context.Context, tenantID uuid.UUID, c *entity.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = newID()
	}
	c.TenantID = tenantID
	customerM := fromCustomerDomain(c)

	if err := repo.db.WithContext(ctx).Omit("Tenant").Create(customerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTenantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	c.CreatedAt = customerM.CreatedAt
	c.UpdatedAt = customerM.UpdatedAt

	return nil
}

// Update persists every editable customer field.
func (repo *customerRepository) Update(ctx context.Context, tenantID uuid.UUID, c *entity.Customer) error {
	c.UpdatedAt = time.Now().UTC()
	c.TenantID = tenantID

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Scopes(scopedTo("customers", tenantID)).
		Where("id = ?", c.ID).
		Select("name", "cpf", "whatsapp", "email", "phone", "address", "updated_at").
		Updates(fromCustomerDomain(c))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// Delete removes a customer without sales, in a single statement.
func (repo *customerRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	linked := repo.db.
		Model(&model.SaleModel{}).
		Select("1").
		Where("sales.customer_id = customers.id AND sales.tenant_id = customers.tenant_id")

	result := repo.db.WithContext(ctx).
		Scopes(scopedTo("customers", tenantID)).
		Where("customers.id = ?", id).
		Where("NOT EXISTS (?)", linked).
		Delete(&model.CustomerModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete customer")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindByID(ctx, tenantID, id); err != nil {
			return err
		}

		return repository.ErrCustomerInUse
	}

	return nil
}

// Count returns the number of customers of the tenant.
func (repo *customerRepository) Count(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Scopes(scopedTo("customers", tenantID)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count customers")
	}

	return count, nil
}

// --- Mapper Functions ---

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:        data.ID,
		TenantID:  data.TenantID,
		Name:      data.Name,
		CPF:       data.CPF,
		WhatsApp:  data.WhatsApp,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:        data.ID,
		TenantID:  data.TenantID,
		Name:      data.Name,
		CPF:       data.CPF,
		WhatsApp:  data.WhatsApp,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
