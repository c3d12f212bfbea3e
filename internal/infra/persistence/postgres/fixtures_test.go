package postgres

import (
	"context"
	"testing"
	"time"

	"cellcontrol/internal/domain/entity"
	"cellcontrol/internal/infra/persistence/sqlitetest"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type repoFixtures struct {
	db        *gorm.DB
	ctx       context.Context
	tenants   *tenantRepository
	users     *userRepository
	models    *deviceModelRepository
	products  *productRepository
	customers *customerRepository
	sales     *saleRepository
}

func newRepoFixtures(t *testing.T) *repoFixtures {
	t.Helper()
	db := sqlitetest.Open(t)

	return &repoFixtures{
		db:        db,
		ctx:       context.Background(),
		tenants:   NewTenantRepository(db).(*tenantRepository),
		users:     NewUserRepository(db).(*userRepository),
		models:    NewDeviceModelRepository(db).(*deviceModelRepository),
		products:  NewProductRepository(db).(*productRepository),
		customers: NewCustomerRepository(db).(*customerRepository),
		sales:     NewSaleRepository(db).(*saleRepository),
	}
}

func (f *repoFixtures) tenant(t *testing.T, slug string) *entity.Tenant {
	t.Helper()
	tenant := &entity.Tenant{Slug: slug, Name: slug, Active: true}
	require.NoError(t, f.tenants.Create(f.ctx, tenant))

	return tenant
}

func (f *repoFixtures) model(t *testing.T, tenantID uuid.UUID, name string) *entity.DeviceModel {
	t.Helper()
	m := &entity.DeviceModel{Name: name}
	require.NoError(t, f.models.Create(f.ctx, tenantID, m))

	return m
}

func (f *repoFixtures) product(t *testing.T, tenantID, modelID uuid.UUID, price string) *entity.Product {
	t.Helper()
	p := &entity.Product{
		ModelID: modelID,
		Color:   "Black",
		Storage: "128GB",
		Price:   decimal.RequireFromString(price),
	}
	require.NoError(t, f.products.Create(f.ctx, tenantID, p))

	return p
}

func (f *repoFixtures) customer(t *testing.T, tenantID uuid.UUID, name string) *entity.Customer {
	t.Helper()
	c := &entity.Customer{Name: name, CPF: "12345678900", WhatsApp: "11999998888"}
	require.NoError(t, f.customers.Create(f.ctx, tenantID, c))

	return c
}

func (f *repoFixtures) sale(t *testing.T, tenantID, customerID uuid.UUID, total string, soldAt time.Time) *entity.Sale {
	t.Helper()
	s := &entity.Sale{
		CustomerID:    customerID,
		PaymentMethod: entity.PaymentPix,
		TotalValue:    decimal.RequireFromString(total),
		SoldAt:        soldAt,
	}
	require.NoError(t, f.sales.Create(f.ctx, tenantID, s))

	return s
}
