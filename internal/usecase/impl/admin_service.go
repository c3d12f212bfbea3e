package impl

import (
	"context"
	"log/slog"

	deliverycontext "cellcontrol/internal/delivery/context"
	"cellcontrol/internal/domain/entity"
	domainerrors "cellcontrol/internal/domain/errors"
	"cellcontrol/internal/domain/repository"
	"cellcontrol/internal/domain/service"
	"cellcontrol/internal/domain/validation"
	"cellcontrol/internal/errors"
	"cellcontrol/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager  repository.TransactionManager
	tenantRepo repository.TenantRepository
	userRepo   repository.UserRepository
	hasher     service.PasswordHasher
	qrCode     service.QRCodeService
	logger     *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	TenantRepo repository.TenantRepository
	UserRepo   repository.UserRepository
	Hasher     service.PasswordHasher
	QRCode     service.QRCodeService
	Logger     *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:  params.TxManager,
		tenantRepo: params.TenantRepo,
		userRepo:   params.UserRepo,
		hasher:     params.Hasher,
		qrCode:     params.QRCode,
		logger:     params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard aggregates every store.
func (srv *adminService) Dashboard(ctx context.Context) (*usecase.AdminDashboard, error) {
	tenants, err := srv.ListTenants(ctx)
	if err != nil {
		return nil, err
	}
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	dashboard := &usecase.AdminDashboard{
		TotalTenants:    int64(len(tenants)),
		TotalUsers:      int64(len(users)),
		TotalSalesValue: decimal.Zero,
		Tenants:         tenants,
	}
	for _, t := range tenants {
		if t.Tenant.Active {
			dashboard.ActiveTenants++
		}
		dashboard.TotalSales += t.Stats.TotalSales
		dashboard.TotalSalesValue = dashboard.TotalSalesValue.Add(t.Stats.TotalSalesValue)
	}

	return dashboard, nil
}

func (srv *adminService) ListTenants(ctx context.Context) ([]*usecase.TenantWithStats, error) {
	tenants, err := srv.tenantRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tenants")
	}

	result := make([]*usecase.TenantWithStats, 0, len(tenants))
	for _, tenant := range tenants {
		stats, err := srv.tenantRepo.Stats(ctx, tenant.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load stats of tenant %s", tenant.Slug)
		}
		result = append(result, &usecase.TenantWithStats{Tenant: tenant, Stats: stats})
	}

	return result, nil
}

func (srv *adminService) GetTenant(ctx context.Context, id uuid.UUID) (*usecase.TenantWithStats, error) {
	tenant, err := srv.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find tenant")
	}

	stats, err := srv.tenantRepo.Stats(ctx, tenant.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tenant stats")
	}

	return &usecase.TenantWithStats{Tenant: tenant, Stats: stats}, nil
}

// CreateTenant derives the slug from the given slug or, when blank, from the name.
func (srv *adminService) CreateTenant(ctx context.Context, input *usecase.CreateTenantInput) (*entity.Tenant, error) {
	name, err := validation.RequireText("name", input.Name)
	if err != nil {
		return nil, err
	}

	source := input.Slug
	if source == "" {
		source = name
	}
	slug := validation.Slugify(source)
	if slug == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("slug must contain letters or digits")
	}

	tenant := &entity.Tenant{
		Slug:    slug,
		Name:    name,
		LogoURL: validation.OptionalText(input.LogoURL),
		Active:  true,
	}
	if err := srv.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, mapRepositoryError(err, "failed to create tenant")
	}
	srv.log(ctx).Info("Tenant created", slog.Any("tenant_id", tenant.ID), slog.String("slug", tenant.Slug))

	return tenant, nil
}

func (srv *adminService) UpdateTenant(ctx context.Context, id uuid.UUID, input *usecase.UpdateTenantInput) (*entity.Tenant, error) {
	tenant, err := srv.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find tenant")
	}

	if input.Name != nil {
		name, err := validation.RequireText("name", *input.Name)
		if err != nil {
			return nil, err
		}
		tenant.Name = name
	}
	if input.Active != nil {
		tenant.Active = *input.Active
	}
	if input.LogoURL != nil {
		tenant.LogoURL = validation.OptionalText(input.LogoURL)
	}

	if err := srv.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, mapRepositoryError(err, "failed to update tenant")
	}
	srv.log(ctx).Info("Tenant updated", slog.Any("tenant_id", tenant.ID), slog.Bool("active", tenant.Active))

	return tenant, nil
}

func (srv *adminService) TenantQRCode(ctx context.Context, id uuid.UUID) (*usecase.StoreQRCode, error) {
	tenant, err := srv.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find tenant")
	}

	png, err := srv.qrCode.StoreLoginQR(ctx, tenant.Slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render store QR code")
	}

	return &usecase.StoreQRCode{PNG: png, LoginURL: srv.qrCode.StoreLoginURL(tenant.Slug)}, nil
}

func (srv *adminService) ListUsers(ctx context.Context) ([]*usecase.UserWithTenant, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	tenants, err := srv.tenantRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tenants")
	}

	byID := make(map[uuid.UUID]*entity.Tenant, len(tenants))
	for _, t := range tenants {
		byID[t.ID] = t
	}

	result := make([]*usecase.UserWithTenant, 0, len(users))
	for _, user := range users {
		var tenant *entity.Tenant
		if user.TenantID != nil {
			tenant = byID[*user.TenantID]
		}
		result = append(result, withTenant(user, tenant))
	}

	return result, nil
}

// CreateUser binds tenant admins to an existing store inside one transaction.
func (srv *adminService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*usecase.UserWithTenant, error) {
	email := validation.NormalizeEmail(input.Email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("email is required")
	}
	name, err := validation.RequireText("name", input.Name)
	if err != nil {
		return nil, err
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithMessage("invalid role")
	}
	if input.Role.RequiresTenant() && input.TenantID == nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("a store admin must be bound to a store")
	}
	if !input.Role.RequiresTenant() && input.TenantID != nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("a super admin cannot be bound to a store")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         input.Role,
		TenantID:     input.TenantID,
		Active:       true,
	}

	var tenant *entity.Tenant
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if user.TenantID != nil {
			found, err := repoFactory.NewTenantRepository().FindByID(ctx, *user.TenantID)
			if errors.Is(err, repository.ErrTenantNotFound) {
				return domainerrors.ErrInvalidReference.WithMessage("store does not exist")
			}
			if err != nil {
				return errors.Wrap(err, "failed to find user tenant")
			}
			tenant = found
		}

		return mapRepositoryError(repoFactory.NewUserRepository().Create(ctx, user), "failed to create user")
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("User created", slog.Any("user_id", user.ID), slog.String("role", user.Role.String()))

	return withTenant(user, tenant), nil
}

func (srv *adminService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*usecase.UserWithTenant, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find user")
	}

	if input.Name != nil {
		name, err := validation.RequireText("name", *input.Name)
		if err != nil {
			return nil, err
		}
		user.Name = name
	}
	if input.Email != nil {
		email := validation.NormalizeEmail(*input.Email)
		if email == "" {
			return nil, domainerrors.ErrValidationFailed.WithMessage("email is required")
		}
		user.Email = email
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if input.Active != nil {
		user.Active = *input.Active
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, mapRepositoryError(err, "failed to update user")
	}

	var tenant *entity.Tenant
	if user.TenantID != nil {
		tenant, err = srv.tenantRepo.FindByID(ctx, *user.TenantID)
		if err != nil && !errors.Is(err, repository.ErrTenantNotFound) {
			return nil, errors.Wrap(err, "failed to find user tenant")
		}
	}

	return withTenant(user, tenant), nil
}

func (srv *adminService) DeleteUser(ctx context.Context, actor *entity.Session, id uuid.UUID) error {
	if actor != nil && actor.UserID == id {
		return domainerrors.ErrConflict.WithMessage("you cannot delete your own account")
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err, "failed to delete user")
	}
	srv.log(ctx).Info("User deleted", slog.Any("user_id", id))

	return nil
}

func withTenant(user *entity.User, tenant *entity.Tenant) *usecase.UserWithTenant {
	out := &usecase.UserWithTenant{User: user}
	if tenant != nil {
		out.TenantName = &tenant.Name
		out.TenantSlug = &tenant.Slug
	}

	return out
}
