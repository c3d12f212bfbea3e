package impl

import (
	"context"
	"testing"

	"cellcontrol/config"
	"cellcontrol/internal/domain/entity"
	domainerrors "cellcontrol/internal/domain/errors"
	"cellcontrol/internal/domain/service"
	"cellcontrol/internal/infra/auth"
	mockSvc "cellcontrol/internal/mocks/service"
	"cellcontrol/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testHasher() service.PasswordHasher {
	return auth.NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})
}

func createTestAdminService(t *testing.T, f *storeFixtures) (usecase.AdminUsecase, *mockSvc.MockQRCodeService) {
	qr := mockSvc.NewMockQRCodeService(t)

	return NewAdminService(AdminServiceParams{
		TxManager:  f.txManager,
		TenantRepo: f.tenants,
		UserRepo:   f.users,
		Hasher:     testHasher(),
		QRCode:     qr,
		Logger:     f.logger,
	}), qr
}

func TestAdminService_CreateTenant(t *testing.T) {
	f := newStoreFixtures(t)
	srv, _ := createTestAdminService(t, f)

	tenant, err := srv.CreateTenant(f.ctx, &usecase.CreateTenantInput{Name: "Isaac Imports"})
	require.NoError(t, err)
	assert.Equal(t, "isaacimports", tenant.Slug)
	assert.True(t, tenant.Active)

	explicit, err := srv.CreateTenant(f.ctx, &usecase.CreateTenantInput{Name: "Loja Dois", Slug: "Loja-Dois"})
	require.NoError(t, err)
	assert.Equal(t, "loja-dois", explicit.Slug)

	_, err = srv.CreateTenant(f.ctx, &usecase.CreateTenantInput{Name: "Isaac  Imports!"})
	assert.ErrorIs(t, err, domainerrors.ErrSlugTaken)

	_, err = srv.CreateTenant(f.ctx, &usecase.CreateTenantInput{Name: "!!!"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.CreateTenant(f.ctx, &usecase.CreateTenantInput{Name: " "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_UpdateTenantAndStats(t *testing.T) {
	f := newStoreFixtures(t)
	srv, _ := createTestAdminService(t, f)
	tenant := f.tenant(t, "loja-a")
	m := f.model(t, tenant.ID, "iPhone 13")
	p := f.product(t, tenant.ID, m.ID, "1000")
	f.product(t, tenant.ID, m.ID, "1100")
	customer := f.customer(t, tenant.ID, "Maria", "12345678900")
	sales, _, _ := f.saleService(t, saleClock)
	_, err := sales.Create(f.ctx, tenant, &usecase.CreateSaleInput{CustomerID: customer.ID, ProductIDs: []uuid.UUID{p.ID}, PaymentMethod: entity.PaymentPix})
	require.NoError(t, err)

	inactive := false
	name := "Loja A Centro"
	updated, err := srv.UpdateTenant(f.ctx, tenant.ID, &usecase.UpdateTenantInput{Name: &name, Active: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, "loja-a", updated.Slug)

	got, err := srv.GetTenant(f.ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Loja A Centro", got.Tenant.Name)
	assert.Equal(t, int64(1), got.Stats.TotalModels)
	assert.Equal(t, int64(1), got.Stats.TotalProducts)
	assert.Equal(t, int64(1), got.Stats.TotalSales)
	assert.Equal(t, "1000.00", got.Stats.TotalSalesValue.StringFixed(2))

	f.tenant(t, "loja-b")
	dashboard, err := srv.Dashboard(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), dashboard.TotalTenants)
	assert.Equal(t, int64(1), dashboard.ActiveTenants)
	assert.Equal(t, int64(1), dashboard.TotalSales)
	assert.Equal(t, "1000.00", dashboard.TotalSalesValue.StringFixed(2))

	_, err = srv.GetTenant(f.ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAdminService_TenantQRCode(t *testing.T) {
	f := newStoreFixtures(t)
	srv, qr := createTestAdminService(t, f)
	tenant := f.tenant(t, "loja-a")
	png := []byte("\x89PNG")

	qr.EXPECT().StoreLoginQR(context.Background(), "loja-a").Return(png, nil)
	qr.EXPECT().StoreLoginURL("loja-a").Return("https://app.example.com/tenants/loja-a/login")

	code, err := srv.TenantQRCode(f.ctx, tenant.ID)

	require.NoError(t, err)
	assert.Equal(t, png, code.PNG)
	assert.Equal(t, "https://app.example.com/tenants/loja-a/login", code.LoginURL)
}

func TestAdminService_Users(t *testing.T) {
	f := newStoreFixtures(t)
	srv, _ := createTestAdminService(t, f)
	tenant := f.tenant(t, "loja-a")

	root, err := srv.CreateUser(f.ctx, &usecase.CreateUserInput{
		Email: "Root@CellControl.app", Name: "Root", Password: "secret1", Role: entity.RoleSuperAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "root@cellcontrol.app", root.User.Email)
	assert.Nil(t, root.TenantSlug)

	admin, err := srv.CreateUser(f.ctx, &usecase.CreateUserInput{
		Email: "admin@loja-a.com", Name: "Admin A", Password: "secret1", Role: entity.RoleTenantAdmin, TenantID: &tenant.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, admin.TenantSlug)
	assert.Equal(t, "loja-a", *admin.TenantSlug)
	assert.NotEqual(t, "secret1", admin.User.PasswordHash)
	assert.NoError(t, testHasher().Compare(admin.User.PasswordHash, "secret1"))

	missing := uuid.New()
	invalid := []struct {
		name    string
		input   usecase.CreateUserInput
		wantErr error
	}{
		{"duplicate email", usecase.CreateUserInput{Email: "ADMIN@loja-a.com", Name: "Dup", Password: "secret1", Role: entity.RoleTenantAdmin, TenantID: &tenant.ID}, domainerrors.ErrEmailTaken},
		{"tenant admin without store", usecase.CreateUserInput{Email: "x@x.com", Name: "X", Password: "secret1", Role: entity.RoleTenantAdmin}, domainerrors.ErrValidationFailed},
		{"super admin with store", usecase.CreateUserInput{Email: "y@x.com", Name: "Y", Password: "secret1", Role: entity.RoleSuperAdmin, TenantID: &tenant.ID}, domainerrors.ErrValidationFailed},
		{"unknown store", usecase.CreateUserInput{Email: "z@x.com", Name: "Z", Password: "secret1", Role: entity.RoleTenantAdmin, TenantID: &missing}, domainerrors.ErrInvalidReference},
		{"short password", usecase.CreateUserInput{Email: "w@x.com", Name: "W", Password: "123", Role: entity.RoleSuperAdmin}, domainerrors.ErrValidationFailed},
		{"unknown role", usecase.CreateUserInput{Email: "v@x.com", Name: "V", Password: "secret1", Role: "owner"}, domainerrors.ErrValidationFailed},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.CreateUser(f.ctx, &tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	users, err := srv.ListUsers(f.ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	disabled := false
	password := "newpass1"
	updated, err := srv.UpdateUser(f.ctx, admin.User.ID, &usecase.UpdateUserInput{Active: &disabled, Password: &password})
	require.NoError(t, err)
	assert.False(t, updated.User.Active)
	assert.NoError(t, testHasher().Compare(updated.User.PasswordHash, "newpass1"))

	rootSession := &entity.Session{UserID: root.User.ID, Role: entity.RoleSuperAdmin}
	assert.ErrorIs(t, srv.DeleteUser(f.ctx, rootSession, root.User.ID), domainerrors.ErrConflict)
	require.NoError(t, srv.DeleteUser(f.ctx, rootSession, admin.User.ID))
	assert.ErrorIs(t, srv.DeleteUser(f.ctx, rootSession, admin.User.ID), domainerrors.ErrNotFound)
}
