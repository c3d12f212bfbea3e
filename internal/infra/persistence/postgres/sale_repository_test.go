package postgres

import (
	"testing"
	"time"

	"cellcontrol/internal/domain/entity"
	"cellcontrol/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleRepository_SnapshotRoundTrip(t *testing.T) {
	f := newRepoFixtures(t)
	tenant := f.tenant(t, "store")
	m := f.model(t, tenant.ID, "iPhone 13")
	p := f.product(t, tenant.ID, m.ID, "2999.90")
	c := f.customer(t, tenant.ID, "Maria")

	note := "entrega amanhã"
	sale := &entity.Sale{
		CustomerID:    c.ID,
		Items:         []entity.SaleItem{entity.NewSaleItem(p, m.Name)},
		PaymentMethod: entity.PaymentCreditCard,
		TotalValue:    p.Price,
		Note:          &note,
	}
	require.NoError(t, f.sales.Create(f.ctx, tenant.ID, sale))

	got, err := f.sales.FindByID(f.ctx, tenant.ID, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria", got.CustomerName)
	assert.Equal(t, entity.PaymentCreditCard, got.PaymentMethod)
	require.Len(t, got.Items, 1)
	assert.Equal(t, p.ID, got.Items[0].ProductID)
	assert.Equal(t, m.ID, got.Items[0].ModelID)
	assert.Equal(t, "iPhone 13", got.Items[0].ModelName)
	assert.True(t, decimal.RequireFromString("2999.90").Equal(got.Items[0].Price))

	// Renaming the model must not touch the snapshot.
	m.Name = "Renamed"
	require.NoError(t, f.models.Update(f.ctx, tenant.ID, m))
	got, err = f.sales.FindByID(f.ctx, tenant.ID, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, "iPhone 13", got.Items[0].ModelName)

	got.PaymentMethod = entity.PaymentCash
	got.Note = nil
	require.NoError(t, f.sales.UpdateDetails(f.ctx, tenant.ID, got))
	updated, err := f.sales.FindByID(f.ctx, tenant.ID, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCash, updated.PaymentMethod)
	assert.Nil(t, updated.Note)
	assert.True(t, sale.TotalValue.Equal(updated.TotalValue))
}

func TestSaleRepository_TenantIsolation(t *testing.T) {
	f := newRepoFixtures(t)
	storeA := f.tenant(t, "a")
	storeB := f.tenant(t, "b")
	c := f.customer(t, storeA.ID, "Maria")
	sale := f.sale(t, storeA.ID, c.ID, "100", time.Now().UTC())

	_, err := f.sales.FindByID(f.ctx, storeB.ID, sale.ID)
	assert.ErrorIs(t, err, repository.ErrSaleNotFound)
	assert.ErrorIs(t, f.sales.Delete(f.ctx, storeB.ID, sale.ID), repository.ErrSaleNotFound)

	sales, err := f.sales.List(f.ctx, storeB.ID, repository.SaleFilter{})
	require.NoError(t, err)
	assert.Empty(t, sales)

	require.NoError(t, f.sales.Delete(f.ctx, storeA.ID, sale.ID))
	assert.ErrorIs(t, f.sales.Delete(f.ctx, storeA.ID, sale.ID), repository.ErrSaleNotFound)
}

func TestSaleRepository_TotalsWithinMonth(t *testing.T) {
	f := newRepoFixtures(t)
	tenant := f.tenant(t, "store")
	c := f.customer(t, tenant.ID, "Maria")

	f.sale(t, tenant.ID, c.ID, "100.00", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	f.sale(t, tenant.ID, c.ID, "250.50", time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC))
	f.sale(t, tenant.ID, c.ID, "999.00", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

	march := entity.MonthPeriod(2024, time.March)
	totals, err := f.sales.Totals(f.ctx, tenant.ID, &march)
	require.NoError(t, err)
	assert.Equal(t, int64(2), totals.Count)
	assert.True(t, decimal.RequireFromString("350.50").Equal(totals.Value), "got %s", totals.Value)

	all, err := f.sales.Totals(f.ctx, tenant.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Count)

	listed, err := f.sales.List(f.ctx, tenant.ID, repository.SaleFilter{Period: &march})
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.True(t, listed[0].SoldAt.After(listed[1].SoldAt))

	may := entity.MonthPeriod(2024, time.May)
	empty, err := f.sales.Totals(f.ctx, tenant.ID, &may)
	require.NoError(t, err)
	assert.Zero(t, empty.Count)
	assert.True(t, empty.Value.IsZero())
}
