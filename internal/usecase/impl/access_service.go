package impl

import (
	"context"
	"log/slog"

	deliverycontext "cellcontrol/internal/delivery/context"
	"cellcontrol/internal/domain/entity"
	domainerrors "cellcontrol/internal/domain/errors"
	"cellcontrol/internal/domain/policy"
	"cellcontrol/internal/domain/repository"
	"cellcontrol/internal/errors"
	"cellcontrol/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var errStoreNotFound = domainerrors.ErrNotFound.WithMessage("store not found")

// accessService implements the AccessUsecase interface.
type accessService struct {
	tenantRepo repository.TenantRepository
	logger     *slog.Logger
}

// AccessServiceParams holds dependencies for AccessService, injected by Fx.
type AccessServiceParams struct {
	fx.In

	TenantRepo repository.TenantRepository
	Logger     *slog.Logger
}

// NewAccessService is the constructor for accessService.
func NewAccessService(params AccessServiceParams) usecase.AccessUsecase {
	return &accessService{
		tenantRepo: params.TenantRepo,
		logger:     params.Logger,
	}
}

func (srv *accessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve finds a tenant by slug or id without leaking inactive stores.
func (srv *accessService) Resolve(ctx context.Context, ref entity.TenantRef, viewer *entity.Session) (*entity.Tenant, error) {
	if ref.IsZero() {
		return nil, errStoreNotFound
	}

	var (
		tenant *entity.Tenant
		err    error
	)
	if ref.ID != uuid.Nil {
		tenant, err = srv.tenantRepo.FindByID(ctx, ref.ID)
	} else {
		tenant, err = srv.tenantRepo.FindBySlug(ctx, ref.Slug)
	}
	if errors.Is(err, repository.ErrTenantNotFound) {
		return nil, errStoreNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve tenant")
	}

	if !tenant.Active {
		if viewer.IsTenantAdminOf(tenant.ID) {
			return nil, domainerrors.ErrTenantInactive
		}

		return nil, errStoreNotFound
	}

	return tenant, nil
}

// VerifyStore is the anonymous lookup used by the store login page.
func (srv *accessService) VerifyStore(ctx context.Context, slug string) (*usecase.StoreInfo, error) {
	tenant, err := srv.Resolve(ctx, entity.TenantRef{Slug: slug}, nil)
	if err != nil {
		return nil, err
	}

	return &usecase.StoreInfo{
		Exists:  true,
		Name:    tenant.Name,
		Slug:    tenant.Slug,
		LogoURL: tenant.LogoURL,
	}, nil
}

// AuthorizeStore resolves the session's own tenant by id and checks it against slug.
func (srv *accessService) AuthorizeStore(ctx context.Context, session *entity.Session, slug string) (*entity.Tenant, error) {
	var own *entity.Tenant
	if session != nil && session.Role == entity.RoleTenantAdmin && session.TenantID != nil {
		tenant, err := srv.tenantRepo.FindByID(ctx, *session.TenantID)
		if err != nil && !errors.Is(err, repository.ErrTenantNotFound) {
			return nil, errors.Wrap(err, "failed to load session tenant")
		}
		own = tenant
	}

	if err := policy.Decide(session, policy.ScopeStore, slug, own); err != nil {
		if session != nil {
			srv.log(ctx).Info("Store access denied",
				slog.Any("user_id", session.UserID),
				slog.String("slug", slug),
				slog.Any("reason", err),
			)
		}

		return nil, err
	}

	return own, nil
}

// AuthorizeAdmin allows super admins only.
func (srv *accessService) AuthorizeAdmin(ctx context.Context, session *entity.Session) error {
	if err := policy.Decide(session, policy.ScopeAdmin, "", nil); err != nil {
		if session != nil {
			srv.log(ctx).Info("Admin access denied", slog.Any("user_id", session.UserID))
		}

		return err
	}

	return nil
}
