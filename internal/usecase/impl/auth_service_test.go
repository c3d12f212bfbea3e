package impl

import (
	"context"
	"testing"

	"cellcontrol/internal/domain/entity"
	domainerrors "cellcontrol/internal/domain/errors"
	"cellcontrol/internal/domain/repository"
	"cellcontrol/internal/domain/service"
	mockRepo "cellcontrol/internal/mocks/repository"
	mockSvc "cellcontrol/internal/mocks/service"
	"cellcontrol/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	tenantRepo   *mockRepo.MockTenantRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	throttle     *mockSvc.MockLoginThrottle
	metrics      *mockSvc.MockMetricsRecorder
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tenantRepo := mockRepo.NewMockTenantRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	throttle := mockSvc.NewMockLoginThrottle(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	srv := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		TenantRepo:   tenantRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Throttle:     throttle,
		Metrics:      metrics,
		Logger:       discardLogger(),
	})

	return authServiceFixtures{
		service:      srv,
		userRepo:     userRepo,
		tenantRepo:   tenantRepo,
		hasher:       hasher,
		tokenService: tokenService,
		throttle:     throttle,
		metrics:      metrics,
	}
}

func newTenantAdmin(tenantID uuid.UUID) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        "admin@loja-a.com",
		PasswordHash: "hashed",
		Name:         "Admin Loja A",
		Role:         entity.RoleTenantAdmin,
		TenantID:     &tenantID,
		Active:       true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	tenant := &entity.Tenant{ID: uuid.New(), Slug: "loja-a", Name: "Loja A", Active: true}
	user := newTenantAdmin(tenant.ID)

	fx.throttle.EXPECT().Blocked(ctx, "admin@loja-a.com").Return(false, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "admin@loja-a.com").Return(user, nil)
	fx.hasher.EXPECT().Compare("hashed", "secret1").Return(nil)
	fx.tenantRepo.EXPECT().FindByID(ctx, tenant.ID).Return(tenant, nil)
	fx.tokenService.EXPECT().
		Issue(mock.MatchedBy(func(s *entity.Session) bool {
			return s.UserID == user.ID && s.Role == entity.RoleTenantAdmin && *s.TenantID == tenant.ID
		})).
		Return("signed-token", nil)
	fx.throttle.EXPECT().Reset(ctx, "admin@loja-a.com").Return(nil)
	fx.metrics.EXPECT().LoginAttempt(service.LoginSucceeded).Return()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "  Admin@Loja-A.com ", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, user, output.User)
	assert.Equal(t, tenant, output.Tenant)
}

func TestAuthService_Login_SuperAdminHasNoTenant(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "root@cellcontrol.app", PasswordHash: "hashed", Role: entity.RoleSuperAdmin, Active: true}

	fx.throttle.EXPECT().Blocked(ctx, user.Email).Return(false, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Compare("hashed", "secret1").Return(nil)
	fx.tokenService.EXPECT().Issue(mock.AnythingOfType("*entity.Session")).Return("token", nil)
	fx.throttle.EXPECT().Reset(ctx, user.Email).Return(nil)
	fx.metrics.EXPECT().LoginAttempt(service.LoginSucceeded).Return()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret1"})

	require.NoError(t, err)
	assert.Nil(t, output.Tenant)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.throttle.EXPECT().Blocked(ctx, "nobody@example.com").Return(false, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)
	fx.throttle.EXPECT().RegisterFailure(ctx, "nobody@example.com").Return(nil)
	fx.metrics.EXPECT().LoginAttempt(service.LoginFailed).Return()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := newTenantAdmin(uuid.New())

	fx.throttle.EXPECT().Blocked(ctx, user.Email).Return(false, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Compare("hashed", "wrong").Return(domainerrors.ErrInvalidCredentials)
	fx.throttle.EXPECT().RegisterFailure(ctx, user.Email).Return(nil)
	fx.metrics.EXPECT().LoginAttempt(service.LoginFailed).Return()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := newTenantAdmin(uuid.New())
	user.Active = false

	fx.throttle.EXPECT().Blocked(ctx, user.Email).Return(false, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Compare("hashed", "secret1").Return(nil)
	fx.metrics.EXPECT().LoginAttempt(service.LoginFailed).Return()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret1"})

	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestAuthService_Login_Throttled(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.throttle.EXPECT().Blocked(ctx, "admin@loja-a.com").Return(true, nil)
	fx.metrics.EXPECT().LoginAttempt(service.LoginThrottled).Return()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "admin@loja-a.com", Password: "secret1"})

	assert.ErrorIs(t, err, domainerrors.ErrTooManyAttempts)
	fx.userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestAuthService_Login_ThrottleDownFailsOpen(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "root@cellcontrol.app", PasswordHash: "hashed", Role: entity.RoleSuperAdmin, Active: true}

	fx.throttle.EXPECT().Blocked(ctx, user.Email).Return(false, assert.AnError)
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Compare("hashed", "secret1").Return(nil)
	fx.tokenService.EXPECT().Issue(mock.AnythingOfType("*entity.Session")).Return("token", nil)
	fx.throttle.EXPECT().Reset(ctx, user.Email).Return(assert.AnError)
	fx.metrics.EXPECT().LoginAttempt(service.LoginSucceeded).Return()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "token", output.Token)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: " ", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = fx.service.Login(context.Background(), &usecase.LoginInput{Email: "a@b.com"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()

	t.Run("reloads user and tenant", func(t *testing.T) {
		fx := createTestAuthService(t)
		tenant := &entity.Tenant{ID: uuid.New(), Slug: "loja-a", Name: "Loja A Renamed", Active: true}
		user := newTenantAdmin(tenant.ID)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.tenantRepo.EXPECT().FindByID(ctx, tenant.ID).Return(tenant, nil)

		output, err := fx.service.Me(ctx, newSession(user))

		require.NoError(t, err)
		assert.Equal(t, "Loja A Renamed", output.Tenant.Name)
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestAuthService(t)
		userID := uuid.New()
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Me(ctx, &entity.Session{UserID: userID, Role: entity.RoleSuperAdmin})

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("disabled user", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := newTenantAdmin(uuid.New())
		user.Active = false
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		_, err := fx.service.Me(ctx, newSession(user))

		assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
	})

	t.Run("dangling tenant binding", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := newTenantAdmin(uuid.New())
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.tenantRepo.EXPECT().FindByID(ctx, *user.TenantID).Return(nil, repository.ErrTenantNotFound)

		output, err := fx.service.Me(ctx, newSession(user))

		require.NoError(t, err)
		assert.Nil(t, output.Tenant)
	})

	t.Run("no session", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.Me(ctx, nil)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestAuthService_VerifyToken(t *testing.T) {
	ctx := context.Background()

	t.Run("empty token", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.VerifyToken(ctx, "")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("delegates to token service", func(t *testing.T) {
		fx := createTestAuthService(t)
		session := &entity.Session{UserID: uuid.New(), Role: entity.RoleSuperAdmin}
		fx.tokenService.EXPECT().Validate("abc").Return(session, nil)

		got, err := fx.service.VerifyToken(ctx, "abc")

		require.NoError(t, err)
		assert.Equal(t, session, got)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().Validate("bad").Return(nil, domainerrors.ErrTokenInvalid)

		_, err := fx.service.VerifyToken(ctx, "bad")

		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})
}
