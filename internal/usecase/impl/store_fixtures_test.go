package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cellcontrol/internal/domain/entity"
	"cellcontrol/internal/domain/repository"
	"cellcontrol/internal/infra/persistence/postgres"
	"cellcontrol/internal/infra/persistence/sqlitetest"
	mockSvc "cellcontrol/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// storeFixtures wires the real repositories over an in-memory database.
type storeFixtures struct {
	ctx       context.Context
	db        *gorm.DB
	logger    *slog.Logger
	txManager repository.TransactionManager
	tenants   repository.TenantRepository
	users     repository.UserRepository
	models    repository.DeviceModelRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
	sales     repository.SaleRepository
}

func newStoreFixtures(t *testing.T) *storeFixtures {
	t.Helper()
	db := sqlitetest.Open(t)

	return &storeFixtures{
		ctx:       context.Background(),
		db:        db,
		logger:    discardLogger(),
		txManager: postgres.NewTransactionManager(db),
		tenants:   postgres.NewTenantRepository(db),
		users:     postgres.NewUserRepository(db),
		models:    postgres.NewDeviceModelRepository(db),
		products:  postgres.NewProductRepository(db),
		customers: postgres.NewCustomerRepository(db),
		sales:     postgres.NewSaleRepository(db),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (f *storeFixtures) tenant(t *testing.T, slug string) *entity.Tenant {
	t.Helper()
	tenant := &entity.Tenant{Slug: slug, Name: "Store " + slug, Active: true}
	require.NoError(t, f.tenants.Create(f.ctx, tenant))

	return tenant
}

func (f *storeFixtures) model(t *testing.T, tenantID uuid.UUID, name string) *entity.DeviceModel {
	t.Helper()
	m := &entity.DeviceModel{Name: name}
	require.NoError(t, f.models.Create(f.ctx, tenantID, m))

	return m
}

func (f *storeFixtures) product(t *testing.T, tenantID, modelID uuid.UUID, price string) *entity.Product {
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

func (f *storeFixtures) customer(t *testing.T, tenantID uuid.UUID, name, cpf string) *entity.Customer {
	t.Helper()
	c := &entity.Customer{Name: name, CPF: cpf, WhatsApp: "11999998888"}
	require.NoError(t, f.customers.Create(f.ctx, tenantID, c))

	return c
}

// saleService builds the sale orchestrator with a fixed clock and relaxed
// publisher and metrics mocks.
func (f *storeFixtures) saleService(t *testing.T, now time.Time) (*saleService, *mockSvc.MockEventPublisher, *mockSvc.MockMetricsRecorder) {
	t.Helper()
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)
	publisher.EXPECT().PublishSaleEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
	metrics.EXPECT().SaleCreated(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	metrics.EXPECT().SaleDeleted(mock.Anything).Return().Maybe()

	srv := NewSaleService(SaleServiceParams{
		TxManager: f.txManager,
		SaleRepo:  f.sales,
		Publisher: publisher,
		Metrics:   metrics,
		Logger:    f.logger,
	}).(*saleService)
	srv.now = func() time.Time { return now }

	return srv, publisher, metrics
}

func (f *storeFixtures) reloadProduct(t *testing.T, tenantID, id uuid.UUID) *entity.Product {
	t.Helper()
	p, err := f.products.FindByID(f.ctx, tenantID, id)
	require.NoError(t, err)

	return p
}
