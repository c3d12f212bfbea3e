package impl

import (
	"testing"
	"time"

	"cellcontrol/internal/domain/entity"
	"cellcontrol/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_StoreDashboard(t *testing.T) {
	f := newStoreFixtures(t)
	tenant := f.tenant(t, "loja-a")
	other := f.tenant(t, "loja-b")
	iphone := f.model(t, tenant.ID, "iPhone 13")
	galaxy := f.model(t, tenant.ID, "Galaxy S22")
	moto := f.model(t, tenant.ID, "Moto G84")
	pixel := f.model(t, tenant.ID, "Pixel 7")

	p1 := f.product(t, tenant.ID, iphone.ID, "100.00")
	p2 := f.product(t, tenant.ID, galaxy.ID, "250.50")
	p3 := f.product(t, tenant.ID, moto.ID, "999.00")
	f.product(t, tenant.ID, pixel.ID, "1800.00")
	customer := f.customer(t, tenant.ID, "Maria", "12345678900")
	f.customer(t, tenant.ID, "João", "98765432100")

	foreignModel := f.model(t, other.ID, "iPhone 13")
	foreignProduct := f.product(t, other.ID, foreignModel.ID, "5000")
	foreignCustomer := f.customer(t, other.ID, "Outro", "11122233344")

	sell := func(tenant *entity.Tenant, at time.Time, customerID uuid.UUID, productIDs ...uuid.UUID) {
		t.Helper()
		srv, _, _ := f.saleService(t, at)
		_, err := srv.Create(f.ctx, tenant, &usecase.CreateSaleInput{
			CustomerID:    customerID,
			ProductIDs:    productIDs,
			PaymentMethod: entity.PaymentPix,
		})
		require.NoError(t, err)
	}
	sell(tenant, time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC), customer.ID, p1.ID)
	sell(tenant, time.Date(2024, time.January, 31, 23, 59, 0, 0, time.UTC), customer.ID, p2.ID)
	sell(tenant, time.Date(2023, time.December, 31, 23, 0, 0, 0, time.UTC), customer.ID, p3.ID)
	sell(other, time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC), foreignCustomer.ID, foreignProduct.ID)

	srv := NewDashboardService(DashboardServiceParams{
		ModelRepo:    f.models,
		ProductRepo:  f.products,
		CustomerRepo: f.customers,
		SaleRepo:     f.sales,
		Logger:       f.logger,
	})
	january := entity.MonthPeriod(2024, time.January)

	dashboard, err := srv.StoreDashboard(f.ctx, tenant.ID, &january)

	require.NoError(t, err)
	assert.Equal(t, int64(4), dashboard.TotalModels)
	assert.Equal(t, int64(1), dashboard.TotalProducts)
	assert.Equal(t, int64(2), dashboard.TotalCustomers)
	assert.Equal(t, int64(2), dashboard.TotalSales)
	assert.True(t, decimal.RequireFromString("350.50").Equal(dashboard.SalesValue), dashboard.SalesValue.String())

	require.Len(t, dashboard.InStock, 1)
	assert.Equal(t, pixel.ID, dashboard.InStock[0].ID)
	assert.Equal(t, int64(1), dashboard.InStock[0].AvailableCount)
	outOfStock := make([]uuid.UUID, 0, len(dashboard.OutOfStock))
	for _, m := range dashboard.OutOfStock {
		outOfStock = append(outOfStock, m.ID)
	}
	assert.ElementsMatch(t, []uuid.UUID{iphone.ID, galaxy.ID, moto.ID}, outOfStock)

	require.Len(t, dashboard.TopModels, 2)
	first, second := dashboard.TopModels[0], dashboard.TopModels[1]
	assert.Less(t, first.ModelID.String(), second.ModelID.String())
	assert.Equal(t, int64(1), first.Quantity)

	t.Run("all time", func(t *testing.T) {
		dashboard, err := srv.StoreDashboard(f.ctx, tenant.ID, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(3), dashboard.TotalSales)
		assert.Equal(t, "1349.50", dashboard.SalesValue.StringFixed(2))
		assert.Len(t, dashboard.TopModels, 3)
	})

	t.Run("empty store", func(t *testing.T) {
		empty := f.tenant(t, "vazia")

		dashboard, err := srv.StoreDashboard(f.ctx, empty.ID, &january)

		require.NoError(t, err)
		assert.Zero(t, dashboard.TotalSales)
		assert.True(t, dashboard.SalesValue.IsZero())
		assert.Empty(t, dashboard.InStock)
		assert.Empty(t, dashboard.OutOfStock)
		assert.Empty(t, dashboard.TopModels)
	})
}

func TestRankTopModels(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	b := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	c := uuid.MustParse("00000000-0000-0000-0000-00000000000c")
	item := func(modelID uuid.UUID, price int64) entity.SaleItem {
		return entity.SaleItem{ProductID: uuid.New(), ModelID: modelID, ModelName: modelID.String()[35:], Price: decimal.NewFromInt(price)}
	}
	sales := []*entity.Sale{
		{Items: []entity.SaleItem{item(c, 10), item(b, 20)}},
		{Items: []entity.SaleItem{item(c, 30), item(a, 5)}},
		{Items: []entity.SaleItem{item(b, 40)}},
	}

	ranked := rankTopModels(sales, 10)

	require.Len(t, ranked, 3)
	assert.Equal(t, []uuid.UUID{b, c, a}, []uuid.UUID{ranked[0].ModelID, ranked[1].ModelID, ranked[2].ModelID})
	assert.Equal(t, int64(2), ranked[0].Quantity)
	assert.Equal(t, "60", ranked[0].Value.String())
	assert.Equal(t, "40", ranked[1].Value.String())

	assert.Len(t, rankTopModels(sales, 1), 1)
	assert.Empty(t, rankTopModels(nil, 10))
}
