package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cellcontrol/internal/domain/entity"
	domainerrors "cellcontrol/internal/domain/errors"
	"cellcontrol/internal/domain/repository"
	mockRepo "cellcontrol/internal/mocks/repository"
	"cellcontrol/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestModelService_Lifecycle(t *testing.T) {
	f := newStoreFixtures(t)
	tenant := f.tenant(t, "loja-a")
	srv := NewModelService(ModelServiceParams{ModelRepo: f.models, ProductRepo: f.products, Logger: f.logger})

	_, err := srv.Create(f.ctx, tenant.ID, &usecase.ModelInput{Name: "   "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	m, err := srv.Create(f.ctx, tenant.ID, &usecase.ModelInput{Name: " iPhone 13 "})
	require.NoError(t, err)
	assert.Equal(t, "iPhone 13", m.Name)

	f.product(t, tenant.ID, m.ID, "3000")
	sold := f.product(t, tenant.ID, m.ID, "3100")
	customer := f.customer(t, tenant.ID, "Maria", "12345678900")
	sales, _, _ := f.saleService(t, saleClock)
	_, err = sales.Create(f.ctx, tenant, &usecase.CreateSaleInput{
		CustomerID:    customer.ID,
		ProductIDs:    []uuid.UUID{sold.ID},
		PaymentMethod: entity.PaymentPix,
	})
	require.NoError(t, err)

	stock, err := srv.Get(f.ctx, tenant.ID, m.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stock.AvailableCount)

	renamed, err := srv.Update(f.ctx, tenant.ID, m.ID, &usecase.ModelInput{Name: "iPhone 13 Pro"})
	require.NoError(t, err)
	assert.Equal(t, "iPhone 13 Pro", renamed.Name)

	err = srv.Delete(f.ctx, tenant.ID, m.ID)
	assert.ErrorIs(t, err, domainerrors.ErrModelInUse)

	empty, err := srv.Create(f.ctx, tenant.ID, &usecase.ModelInput{Name: "Pixel 7"})
	require.NoError(t, err)
	require.NoError(t, srv.Delete(f.ctx, tenant.ID, empty.ID))

	_, err = srv.Get(f.ctx, tenant.ID, empty.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestModelService_OtherTenantIsInvisible(t *testing.T) {
	f := newStoreFixtures(t)
	storeA := f.tenant(t, "loja-a")
	storeB := f.tenant(t, "loja-b")
	m := f.model(t, storeA.ID, "Galaxy S23")
	srv := NewModelService(ModelServiceParams{ModelRepo: f.models, ProductRepo: f.products, Logger: f.logger})

	_, err := srv.Get(f.ctx, storeB.ID, m.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = srv.Update(f.ctx, storeB.ID, m.ID, &usecase.ModelInput{Name: "hijacked"})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	assert.ErrorIs(t, srv.Delete(f.ctx, storeB.ID, m.ID), domainerrors.ErrNotFound)

	models, err := srv.List(f.ctx, storeB.ID, repository.Page{})
	require.NoError(t, err)
	assert.Empty(t, models)
}

func TestModelService_RepositoryErrors(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	modelRepo := mockRepo.NewMockDeviceModelRepository(t)
	srv := NewModelService(ModelServiceParams{
		ModelRepo:   modelRepo,
		ProductRepo: mockRepo.NewMockProductRepository(t),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	driverErr := errors.New("connection reset by peer")
	modelRepo.EXPECT().List(ctx, tenantID, mock.Anything).Return(nil, driverErr)
	modelRepo.EXPECT().Create(ctx, tenantID, mock.Anything).Return(domainerrors.NewDatabaseExecuteError(driverErr, "failed to create model"))
	inUse := uuid.New()
	modelRepo.EXPECT().Delete(ctx, tenantID, inUse).Return(repository.ErrModelInUse)

	_, err := srv.List(ctx, tenantID, repository.Page{})
	require.Error(t, err)
	assert.ErrorIs(t, err, driverErr)
	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr), "driver errors must surface as internal errors")

	_, err = srv.Create(ctx, tenantID, &usecase.ModelInput{Name: "iPhone 15"})
	assert.ErrorIs(t, err, driverErr)

	assert.ErrorIs(t, srv.Delete(ctx, tenantID, inUse), domainerrors.ErrModelInUse)
}

func TestProductService_Create(t *testing.T) {
	f := newStoreFixtures(t)
	storeA := f.tenant(t, "loja-a")
	storeB := f.tenant(t, "loja-b")
	m := f.model(t, storeA.ID, "iPhone 12")
	foreign := f.model(t, storeB.ID, "iPhone 12")
	srv := NewProductService(ProductServiceParams{ProductRepo: f.products, Logger: f.logger})

	battery := 87
	imei := " 356938035643809 "
	p, err := srv.Create(f.ctx, storeA.ID, &usecase.CreateProductInput{
		ModelID:        m.ID,
		Color:          "Azul",
		Storage:        "128GB",
		BatteryPercent: &battery,
		IMEI:           &imei,
		Price:          "R$ 2.999,90",
	})
	require.NoError(t, err)
	assert.Equal(t, "2999.90", p.Price.StringFixed(2))
	assert.False(t, p.Sold)
	require.NotNil(t, p.IMEI)
	assert.Equal(t, "356938035643809", *p.IMEI)

	tests := []struct {
		name    string
		input   usecase.CreateProductInput
		wantErr error
	}{
		{"missing color", usecase.CreateProductInput{ModelID: m.ID, Storage: "64GB", Price: "100"}, domainerrors.ErrValidationFailed},
		{"zero price", usecase.CreateProductInput{ModelID: m.ID, Color: "Preto", Storage: "64GB", Price: "0"}, domainerrors.ErrValidationFailed},
		{"battery above 100", usecase.CreateProductInput{ModelID: m.ID, Color: "Preto", Storage: "64GB", Price: "100", BatteryPercent: intPtr(101)}, domainerrors.ErrValidationFailed},
		{"model of another store", usecase.CreateProductInput{ModelID: foreign.ID, Color: "Preto", Storage: "64GB", Price: "100"}, domainerrors.ErrInvalidReference},
		{"unknown model", usecase.CreateProductInput{ModelID: uuid.New(), Color: "Preto", Storage: "64GB", Price: "100"}, domainerrors.ErrInvalidReference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.Create(f.ctx, storeA.ID, &tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProductService_UpdateAndFilter(t *testing.T) {
	f := newStoreFixtures(t)
	tenant := f.tenant(t, "loja-a")
	m := f.model(t, tenant.ID, "Moto G84")
	other := f.model(t, tenant.ID, "Moto E13")
	p := f.product(t, tenant.ID, m.ID, "1200")
	f.product(t, tenant.ID, other.ID, "700")
	srv := NewProductService(ProductServiceParams{ProductRepo: f.products, Logger: f.logger})

	price := "1.150,00"
	color := "Verde"
	updated, err := srv.Update(f.ctx, tenant.ID, p.ID, &usecase.UpdateProductInput{Price: &price, Color: &color, ModelID: &other.ID})
	require.NoError(t, err)
	assert.Equal(t, "1150.00", updated.Price.StringFixed(2))
	assert.Equal(t, "Verde", updated.Color)

	byModel, err := srv.List(f.ctx, tenant.ID, repository.ProductFilter{ModelID: &other.ID})
	require.NoError(t, err)
	assert.Len(t, byModel, 2)

	battery := 88
	withBattery, err := srv.Update(f.ctx, tenant.ID, p.ID, &usecase.UpdateProductInput{BatteryPercent: &battery})
	require.NoError(t, err)
	require.NotNil(t, withBattery.BatteryPercent)
	assert.Equal(t, 88, *withBattery.BatteryPercent)

	_, err = srv.Update(f.ctx, tenant.ID, p.ID, &usecase.UpdateProductInput{BatteryPercent: &battery, ClearBattery: true})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	cleared, err := srv.Update(f.ctx, tenant.ID, p.ID, &usecase.UpdateProductInput{ClearBattery: true})
	require.NoError(t, err)
	assert.Nil(t, cleared.BatteryPercent)
	reloaded, err := srv.Get(f.ctx, tenant.ID, p.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.BatteryPercent)
	assert.Equal(t, "Verde", reloaded.Color)

	missing := uuid.New()
	_, err = srv.Update(f.ctx, tenant.ID, p.ID, &usecase.UpdateProductInput{ModelID: &missing})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)

	require.NoError(t, srv.Delete(f.ctx, tenant.ID, p.ID))
	_, err = srv.Get(f.ctx, tenant.ID, p.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCustomerService_Lifecycle(t *testing.T) {
	f := newStoreFixtures(t)
	tenant := f.tenant(t, "loja-a")
	srv := NewCustomerService(CustomerServiceParams{CustomerRepo: f.customers, Logger: f.logger})

	email := "maria@example.com"
	c, err := srv.Create(f.ctx, tenant.ID, &usecase.CreateCustomerInput{
		Name:     "Maria Silva",
		CPF:      "123.456.789-00",
		WhatsApp: "(11) 99999-8888",
		Email:    &email,
	})
	require.NoError(t, err)
	assert.Equal(t, "12345678900", c.CPF)
	assert.Equal(t, "11999998888", c.WhatsApp)

	_, err = srv.Create(f.ctx, tenant.ID, &usecase.CreateCustomerInput{Name: "X", CPF: "123", WhatsApp: "11999998888"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.Create(f.ctx, tenant.ID, &usecase.CreateCustomerInput{Name: "X", CPF: "12345678900", WhatsApp: "999"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	found, err := srv.List(f.ctx, tenant.ID, repository.CustomerFilter{Query: "silva"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, c.ID, found[0].ID)

	phone := "1133334444"
	updated, err := srv.Update(f.ctx, tenant.ID, c.ID, &usecase.UpdateCustomerInput{Phone: &phone})
	require.NoError(t, err)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, phone, *updated.Phone)

	m := f.model(t, tenant.ID, "iPhone 13")
	p := f.product(t, tenant.ID, m.ID, "3000")
	sales, _, _ := f.saleService(t, saleClock)
	_, err = sales.Create(f.ctx, tenant, &usecase.CreateSaleInput{CustomerID: c.ID, ProductIDs: []uuid.UUID{p.ID}, PaymentMethod: entity.PaymentCash})
	require.NoError(t, err)

	assert.ErrorIs(t, srv.Delete(f.ctx, tenant.ID, c.ID), domainerrors.ErrCustomerInUse)

	other := f.customer(t, tenant.ID, "Sem Compras", "99988877766")
	require.NoError(t, srv.Delete(f.ctx, tenant.ID, other.ID))
}

func intPtr(v int) *int {
	return &v
}
