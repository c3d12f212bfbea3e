package impl

import (
	"context"
	"log/slog"

	"cellcontrol/config"
	"cellcontrol/internal/domain/entity"
	"cellcontrol/internal/domain/repository"
	"cellcontrol/internal/domain/service"
	"cellcontrol/internal/domain/validation"
	"cellcontrol/internal/errors"
	"cellcontrol/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// bootstrapService provisions the first super admin and, optionally, a first store.
type bootstrapService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	cfg       *config.BootstrapConfig
	logger    *slog.Logger
}

// BootstrapServiceParams holds dependencies for BootstrapService, injected by Fx.
type BootstrapServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewBootstrapService is the constructor for bootstrapService.
func NewBootstrapService(params BootstrapServiceParams) usecase.BootstrapUsecase {
	return &bootstrapService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		cfg:       params.Config.Bootstrap,
		logger:    params.Logger,
	}
}

// Seed runs only on a database without super admins, so restarts are no-ops.
func (srv *bootstrapService) Seed(ctx context.Context) error {
	if srv.cfg == nil || srv.cfg.SuperAdmin == nil || srv.cfg.SuperAdmin.Email == "" {
		srv.logger.Debug("Bootstrap not configured")

		return nil
	}
	if srv.cfg.SuperAdmin.Password == "" {
		srv.logger.Warn("Bootstrap super admin has no password, skipping seed")

		return nil
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		exists, err := userRepo.ExistsSuperAdmin(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to check super admins")
		}
		if exists {
			return nil
		}

		if _, err := srv.createUser(ctx, userRepo, srv.cfg.SuperAdmin, entity.RoleSuperAdmin, nil); err != nil {
			return err
		}

		return srv.seedTenant(ctx, repoFactory)
	})
}

func (srv *bootstrapService) seedTenant(ctx context.Context, repoFactory repository.RepositoryFactory) error {
	seed := srv.cfg.Tenant
	if seed == nil || seed.Name == "" {
		return nil
	}

	slug := seed.Slug
	if slug == "" {
		slug = seed.Name
	}
	tenant := &entity.Tenant{Slug: validation.Slugify(slug), Name: seed.Name, Active: true}
	if err := repoFactory.NewTenantRepository().Create(ctx, tenant); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			srv.logger.Info("Bootstrap tenant already exists", slog.String("slug", tenant.Slug))

			return nil
		}

		return errors.Wrap(err, "failed to create bootstrap tenant")
	}
	srv.logger.Info("Bootstrap tenant created", slog.String("slug", tenant.Slug))

	if seed.Admin == nil || seed.Admin.Email == "" || seed.Admin.Password == "" {
		return nil
	}
	_, err := srv.createUser(ctx, repoFactory.NewUserRepository(), seed.Admin, entity.RoleTenantAdmin, &tenant.ID)

	return err
}

func (srv *bootstrapService) createUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	seed *config.BootstrapUser,
	role entity.Role,
	tenantID *uuid.UUID,
) (*entity.User, error) {
	hash, err := srv.hasher.Hash(seed.Password)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to hash bootstrap password for %s", seed.Email)
	}

	email := validation.NormalizeEmail(seed.Email)
	name := seed.Name
	if name == "" {
		name = email
	}
	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
		TenantID:     tenantID,
		Active:       true,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrapf(err, "failed to create bootstrap user %s", user.Email)
	}
	srv.logger.Info("Bootstrap user created", slog.String("email", user.Email), slog.String("role", role.String()))

	return user, nil
}
