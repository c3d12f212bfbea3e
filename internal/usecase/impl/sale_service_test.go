package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"cellcontrol/internal/domain/constants"
	"cellcontrol/internal/domain/entity"
	domainerrors "cellcontrol/internal/domain/errors"
	"cellcontrol/internal/domain/repository"
	"cellcontrol/internal/domain/service"
	mockRepo "cellcontrol/internal/mocks/repository"
	mockSvc "cellcontrol/internal/mocks/service"
	"cellcontrol/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var saleClock = time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)

func TestSaleService_Create_Success(t *testing.T) {
	f := newStoreFixtures(t)
	tenant := f.tenant(t, "loja-a")
	iphone := f.model(t, tenant.ID, "iPhone 13")
	p1 := f.product(t, tenant.ID, iphone.ID, "100.00")
	p2 := f.product(t, tenant.ID, iphone.ID, "250.50")
	customer := f.customer(t, tenant.ID, "Maria", "12345678900")
	srv, publisher, metrics := f.saleService(t, saleClock)

	note := "  paid upfront "
	sale, err := srv.Create(f.ctx, tenant, &usecase.CreateSaleInput{
		CustomerID:    customer.ID,
		ProductIDs:    []uuid.UUID{p2.ID, p1.ID},
		PaymentMethod: entity.PaymentPix,
		Note:          &note,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, sale.ID)
	assert.Equal(t, "350.50", sale.TotalValue.StringFixed(2))
	assert.Equal(t, saleClock, sale.SoldAt)
	require.Len(t, sale.Items, 2)
	assert.Equal(t, p2.ID, sale.Items[0].ProductID)
	assert.Equal(t, "iPhone 13", sale.Items[0].ModelName)
	require.NotNil(t, sale.Note)
	assert.Equal(t, "paid upfront", *sale.Note)

	for _, id := range []uuid.UUID{p1.ID, p2.ID} {
		p := f.reloadProduct(t, tenant.ID, id)
		assert.True(t, p.Sold)
		require.NotNil(t, p.SaleID)
		assert.Equal(t, sale.ID, *p.SaleID)
	}

	metrics.AssertCalled(t, "SaleCreated", "loja-a", mock.MatchedBy(func(total decimal.Decimal) bool {
		return total.Equal(decimal.RequireFromString("350.50"))
	}), 2)
	publisher.AssertCalled(t, "PublishSaleEvent", mock.Anything, mock.MatchedBy(func(e *service.SaleEvent) bool {
		return e.Type == constants.EventSaleCreated && e.SaleID == sale.ID.String() && e.TotalValue == "350.50"
	}))
}

func TestSaleService_Create_RejectsSoldProductAndKeepsStock(t *testing.T) {
	f := newStoreFixtures(t)
	tenant := f.tenant(t, "loja-a")
	m := f.model(t, tenant.ID, "Galaxy S22")
	available := f.product(t, tenant.ID, m.ID, "1000")
	taken := f.product(t, tenant.ID, m.ID, "1200")
	customer := f.customer(t, tenant.ID, "João", "98765432100")
	srv, _, _ := f.saleService(t, saleClock)

	_, err := srv.Create(f.ctx, tenant, &usecase.CreateSaleInput{
		CustomerID:    customer.ID,
		ProductIDs:    []uuid.UUID{taken.ID},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	_, err = srv.Create(f.ctx, tenant, &usecase.CreateSaleInput{
		CustomerID:    customer.ID,
		ProductIDs:    []uuid.UUID{available.ID, taken.ID},
		PaymentMethod: entity.PaymentCash,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductUnavailable)
	assert.False(t, f.reloadProduct(t, tenant.ID, available.ID).Sold)

	sales, err := f.sales.List(f.ctx, tenant.ID, repository.SaleFilter{})
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}

func TestSaleService_Create_InvalidInput(t *testing.T) {
	f := newStoreFixtures(t)
	tenant := f.tenant(t, "loja-a")
	m := f.model(t, tenant.ID, "Moto G")
	p := f.product(t, tenant.ID, m.ID, "800")
	customer := f.customer(t, tenant.ID, "Ana", "11122233344")
	srv, _, _ := f.saleService(t, saleClock)

	tests := []struct {
		name    string
		input   *usecase.CreateSaleInput
		wantErr error
	}{
		{
			name:    "no products",
			input:   &usecase.CreateSaleInput{CustomerID: customer.ID, PaymentMethod: entity.PaymentPix},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "duplicate product",
			input:   &usecase.CreateSaleInput{CustomerID: customer.ID, ProductIDs: []uuid.UUID{p.ID, p.ID}, PaymentMethod: entity.PaymentPix},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown payment method",
			input:   &usecase.CreateSaleInput{CustomerID: customer.ID, ProductIDs: []uuid.UUID{p.ID}, PaymentMethod: "barter"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown customer",
			input:   &usecase.CreateSaleInput{CustomerID: uuid.New(), ProductIDs: []uuid.UUID{p.ID}, PaymentMethod: entity.PaymentPix},
			wantErr: domainerrors.ErrNotFound,
		},
		{
			name:    "unknown product",
			input:   &usecase.CreateSaleInput{CustomerID: customer.ID, ProductIDs: []uuid.UUID{uuid.New()}, PaymentMethod: entity.PaymentPix},
			wantErr: domainerrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.Create(f.ctx, tenant, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.False(t, f.reloadProduct(t, tenant.ID, p.ID).Sold)
}

func TestSaleService_Create_IgnoresOtherTenantsRecords(t *testing.T) {
	f := newStoreFixtures(t)
	storeA := f.tenant(t, "loja-a")
	storeB := f.tenant(t, "loja-b")
	m := f.model(t, storeA.ID, "iPhone 12")
	productA := f.product(t, storeA.ID, m.ID, "2000")
	customerB := f.customer(t, storeB.ID, "Pedro", "55566677788")
	srv, _, _ := f.saleService(t, saleClock)

	_, err := srv.Create(f.ctx, storeB, &usecase.CreateSaleInput{
		CustomerID:    customerB.ID,
		ProductIDs:    []uuid.UUID{productA.ID},
		PaymentMethod: entity.PaymentPix,
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.False(t, f.reloadProduct(t, storeA.ID, productA.ID).Sold)
}

func TestSaleService_Create_ConcurrentSalesOfSameProduct(t *testing.T) {
	f := newStoreFixtures(t)
	tenant := f.tenant(t, "loja-a")
	m := f.model(t, tenant.ID, "iPhone 14")
	p := f.product(t, tenant.ID, m.ID, "4500")
	c1 := f.customer(t, tenant.ID, "Lucas", "10020030040")
	c2 := f.customer(t, tenant.ID, "Julia", "50060070080")
	srv, _, metrics := f.saleService(t, saleClock)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, customerID := range []uuid.UUID{c1.ID, c2.ID} {
		wg.Add(1)
		go func(i int, customerID uuid.UUID) {
			defer wg.Done()
			_, errs[i] = srv.Create(context.Background(), tenant, &usecase.CreateSaleInput{
				CustomerID:    customerID,
				ProductIDs:    []uuid.UUID{p.ID},
				PaymentMethod: entity.PaymentCreditCard,
			})
		}(i, customerID)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domainerrors.ErrProductUnavailable)
	}
	assert.Equal(t, 1, succeeded)
	metrics.AssertNumberOfCalls(t, "SaleCreated", 1)

	sales, err := f.sales.List(f.ctx, tenant.ID, repository.SaleFilter{})
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}

func TestSaleService_Create_MarkSoldConflictAbortsTransaction(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	srv := NewSaleService(SaleServiceParams{
		TxManager: txManager,
		SaleRepo:  mockRepo.NewMockSaleRepository(t),
		Publisher: publisher,
		Metrics:   metrics,
		Logger:    discardLogger(),
	})

	ctx := context.Background()
	tenant := &entity.Tenant{ID: uuid.New(), Slug: "loja-a", Active: true}
	customer := &entity.Customer{ID: uuid.New(), Name: "Maria"}
	product := &entity.Product{ID: uuid.New(), ModelID: uuid.New(), ModelName: "iPhone 13", Price: decimal.NewFromInt(100)}
	input := &usecase.CreateSaleInput{CustomerID: customer.ID, ProductIDs: []uuid.UUID{product.ID}, PaymentMethod: entity.PaymentPix}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			customerRepo := mockRepo.NewMockCustomerRepository(t)
			productRepo := mockRepo.NewMockProductRepository(t)
			saleRepo := mockRepo.NewMockSaleRepository(t)

			factory.EXPECT().NewCustomerRepository().Return(customerRepo)
			factory.EXPECT().NewProductRepository().Return(productRepo)
			factory.EXPECT().NewSaleRepository().Return(saleRepo)

			customerRepo.EXPECT().FindByID(ctx, tenant.ID, customer.ID).Return(customer, nil)
			productRepo.EXPECT().FindByID(ctx, tenant.ID, product.ID).Return(product, nil)
			saleRepo.EXPECT().
				Create(ctx, tenant.ID, mock.AnythingOfType("*entity.Sale")).
				Run(func(_ context.Context, _ uuid.UUID, sale *entity.Sale) { sale.ID = uuid.New() }).
				Return(nil)
			productRepo.EXPECT().
				MarkSold(ctx, tenant.ID, product.ID, mock.AnythingOfType("uuid.UUID")).
				Return(repository.ErrProductUnavailable)

			return fn(factory)
		})

	sale, err := srv.Create(ctx, tenant, input)

	assert.Nil(t, sale)
	assert.ErrorIs(t, err, domainerrors.ErrProductUnavailable)
	metrics.AssertNotCalled(t, "SaleCreated", mock.Anything, mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishSaleEvent", mock.Anything, mock.Anything)
}

func TestSaleService_Create_PublishFailureKeepsSale(t *testing.T) {
	f := newStoreFixtures(t)
	tenant := f.tenant(t, "loja-a")
	m := f.model(t, tenant.ID, "Redmi Note 12")
	p := f.product(t, tenant.ID, m.ID, "1300")
	customer := f.customer(t, tenant.ID, "Carla", "12312312312")

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishSaleEvent(mock.Anything, mock.Anything).Return(assert.AnError)
	metrics := mockSvc.NewMockMetricsRecorder(t)
	metrics.EXPECT().SaleCreated("loja-a", mock.Anything, 1).Return()
	srv := NewSaleService(SaleServiceParams{
		TxManager: f.txManager,
		SaleRepo:  f.sales,
		Publisher: publisher,
		Metrics:   metrics,
		Logger:    f.logger,
	})

	sale, err := srv.Create(f.ctx, tenant, &usecase.CreateSaleInput{
		CustomerID:    customer.ID,
		ProductIDs:    []uuid.UUID{p.ID},
		PaymentMethod: entity.PaymentDebitCard,
	})

	require.NoError(t, err)
	stored, err := f.sales.FindByID(f.ctx, tenant.ID, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, "1300.00", stored.TotalValue.StringFixed(2))
}

func TestSaleService_Delete_RestoresStock(t *testing.T) {
	f := newStoreFixtures(t)
	tenant := f.tenant(t, "loja-a")
	m := f.model(t, tenant.ID, "iPhone 11")
	p1 := f.product(t, tenant.ID, m.ID, "1500")
	p2 := f.product(t, tenant.ID, m.ID, "1600")
	customer := f.customer(t, tenant.ID, "Rafael", "32132132132")
	srv, publisher, metrics := f.saleService(t, saleClock)

	sale, err := srv.Create(f.ctx, tenant, &usecase.CreateSaleInput{
		CustomerID:    customer.ID,
		ProductIDs:    []uuid.UUID{p1.ID, p2.ID},
		PaymentMethod: entity.PaymentTransfer,
	})
	require.NoError(t, err)

	require.NoError(t, srv.Delete(f.ctx, tenant, sale.ID))

	for _, id := range []uuid.UUID{p1.ID, p2.ID} {
		p := f.reloadProduct(t, tenant.ID, id)
		assert.False(t, p.Sold)
		assert.Nil(t, p.SaleID)
	}
	_, err = f.sales.FindByID(f.ctx, tenant.ID, sale.ID)
	assert.ErrorIs(t, err, repository.ErrSaleNotFound)
	metrics.AssertCalled(t, "SaleDeleted", "loja-a")
	publisher.AssertCalled(t, "PublishSaleEvent", mock.Anything, mock.MatchedBy(func(e *service.SaleEvent) bool {
		return e.Type == constants.EventSaleDeleted && e.SaleID == sale.ID.String()
	}))

	err = srv.Delete(f.ctx, tenant, sale.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	metrics.AssertNumberOfCalls(t, "SaleDeleted", 1)
}

func TestSaleService_Delete_ProductRemovedAfterSale(t *testing.T) {
	f := newStoreFixtures(t)
	tenant := f.tenant(t, "loja-a")
	m := f.model(t, tenant.ID, "iPhone 12")
	p1 := f.product(t, tenant.ID, m.ID, "1300")
	p2 := f.product(t, tenant.ID, m.ID, "1350")
	customer := f.customer(t, tenant.ID, "Paula", "65465465465")
	srv, _, _ := f.saleService(t, saleClock)

	sale, err := srv.Create(f.ctx, tenant, &usecase.CreateSaleInput{
		CustomerID:    customer.ID,
		ProductIDs:    []uuid.UUID{p1.ID, p2.ID},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)
	require.NoError(t, f.products.Delete(f.ctx, tenant.ID, p1.ID))

	require.NoError(t, srv.Delete(f.ctx, tenant, sale.ID))

	p := f.reloadProduct(t, tenant.ID, p2.ID)
	assert.False(t, p.Sold)
	assert.Nil(t, p.SaleID)
	_, err = f.products.FindByID(f.ctx, tenant.ID, p1.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	_, err = f.sales.FindByID(f.ctx, tenant.ID, sale.ID)
	assert.ErrorIs(t, err, repository.ErrSaleNotFound)
}

func TestSaleService_Delete_OtherTenantSale(t *testing.T) {
	f := newStoreFixtures(t)
	storeA := f.tenant(t, "loja-a")
	storeB := f.tenant(t, "loja-b")
	m := f.model(t, storeA.ID, "iPhone 15")
	p := f.product(t, storeA.ID, m.ID, "6000")
	customer := f.customer(t, storeA.ID, "Bruna", "45645645645")
	srv, _, _ := f.saleService(t, saleClock)

	sale, err := srv.Create(f.ctx, storeA, &usecase.CreateSaleInput{
		CustomerID:    customer.ID,
		ProductIDs:    []uuid.UUID{p.ID},
		PaymentMethod: entity.PaymentPix,
	})
	require.NoError(t, err)

	err = srv.Delete(f.ctx, storeB, sale.ID)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.True(t, f.reloadProduct(t, storeA.ID, p.ID).Sold)
}

func TestSaleService_Update(t *testing.T) {
	f := newStoreFixtures(t)
	tenant := f.tenant(t, "loja-a")
	m := f.model(t, tenant.ID, "Galaxy A54")
	p := f.product(t, tenant.ID, m.ID, "1900")
	customer := f.customer(t, tenant.ID, "Tiago", "78978978978")
	srv, _, _ := f.saleService(t, saleClock)

	sale, err := srv.Create(f.ctx, tenant, &usecase.CreateSaleInput{
		CustomerID:    customer.ID,
		ProductIDs:    []uuid.UUID{p.ID},
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	t.Run("nothing to update", func(t *testing.T) {
		_, err := srv.Update(f.ctx, tenant.ID, sale.ID, &usecase.UpdateSaleInput{})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("invalid payment method", func(t *testing.T) {
		method := entity.PaymentMethod("cheque")
		_, err := srv.Update(f.ctx, tenant.ID, sale.ID, &usecase.UpdateSaleInput{PaymentMethod: &method})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("payment and note", func(t *testing.T) {
		method := entity.PaymentCreditCard
		note := "3x no cartão"
		updated, err := srv.Update(f.ctx, tenant.ID, sale.ID, &usecase.UpdateSaleInput{PaymentMethod: &method, Note: &note})

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentCreditCard, updated.PaymentMethod)
		assert.Equal(t, "1900.00", updated.TotalValue.StringFixed(2))

		stored, err := f.sales.FindByID(f.ctx, tenant.ID, sale.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentCreditCard, stored.PaymentMethod)
		require.NotNil(t, stored.Note)
		assert.Equal(t, note, *stored.Note)
		assert.Len(t, stored.Items, 1)
	})

	t.Run("unknown sale", func(t *testing.T) {
		note := "x"
		_, err := srv.Update(f.ctx, tenant.ID, uuid.New(), &usecase.UpdateSaleInput{Note: &note})
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}
