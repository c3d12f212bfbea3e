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

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	tenantRepo   repository.TenantRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	throttle     service.LoginThrottle
	metrics      service.MetricsRecorder
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TenantRepo   repository.TenantRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Throttle     service.LoginThrottle
	Metrics      service.MetricsRecorder
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		tenantRepo:   params.TenantRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		throttle:     params.Throttle,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies email and password and issues a session token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := validation.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	blocked, err := srv.throttle.Blocked(ctx, email)
	if err != nil {
		// Fail open when the throttle store is down.
		srv.log(ctx).Warn("Login throttle unavailable", slog.Any("error", err))
	}
	if blocked {
		srv.log(ctx).Warn("Login throttled", slog.String("email", email))
		srv.metrics.LoginAttempt(service.LoginThrottled)

		return nil, domainerrors.ErrTooManyAttempts
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, srv.rejectLogin(ctx, email, "unknown email")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if err := srv.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, srv.rejectLogin(ctx, email, "password mismatch")
	}

	if !user.Active {
		srv.metrics.LoginAttempt(service.LoginFailed)

		return nil, domainerrors.ErrAccountDisabled
	}

	tenant, err := srv.tenantOf(ctx, user)
	if err != nil {
		return nil, err
	}

	session := newSession(user)
	token, err := srv.tokenService.Issue(session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	if err := srv.throttle.Reset(ctx, email); err != nil {
		srv.log(ctx).Warn("Failed to reset login throttle", slog.Any("error", err))
	}
	srv.metrics.LoginAttempt(service.LoginSucceeded)
	srv.log(ctx).Info("User logged in", slog.Any("user_id", user.ID), slog.String("role", user.Role.String()))

	return &usecase.LoginOutput{Token: token, User: user, Tenant: tenant}, nil
}

func (srv *authService) rejectLogin(ctx context.Context, email, reason string) error {
	srv.log(ctx).Info("Login rejected", slog.String("email", email), slog.String("reason", reason))
	srv.metrics.LoginAttempt(service.LoginFailed)

	if err := srv.throttle.RegisterFailure(ctx, email); err != nil {
		srv.log(ctx).Warn("Failed to record login failure", slog.Any("error", err))
	}

	return domainerrors.ErrInvalidCredentials
}

// Me reloads the session's account so disabled users and renamed stores are seen.
func (srv *authService) Me(ctx context.Context, session *entity.Session) (*usecase.MeOutput, error) {
	if session == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find current user")
	}
	if !user.Active {
		return nil, domainerrors.ErrAccountDisabled
	}

	tenant, err := srv.tenantOf(ctx, user)
	if err != nil {
		return nil, err
	}

	return &usecase.MeOutput{User: user, Tenant: tenant}, nil
}

// VerifyToken validates a bearer token.
func (srv *authService) VerifyToken(_ context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	return srv.tokenService.Validate(token)
}

// tenantOf loads the store of a tenant admin. A dangling binding is tolerated.
func (srv *authService) tenantOf(ctx context.Context, user *entity.User) (*entity.Tenant, error) {
	if user.TenantID == nil {
		return nil, nil
	}

	tenant, err := srv.tenantRepo.FindByID(ctx, *user.TenantID)
	if errors.Is(err, repository.ErrTenantNotFound) {
		srv.log(ctx).Warn("User bound to a missing tenant", slog.Any("user_id", user.ID), slog.Any("tenant_id", *user.TenantID))

		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user tenant")
	}

	return tenant, nil
}

func newSession(user *entity.User) *entity.Session {
	return &entity.Session{
		UserID:   user.ID,
		Role:     user.Role,
		TenantID: user.TenantID,
		Email:    user.Email,
		Name:     user.Name,
	}
}
