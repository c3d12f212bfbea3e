package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "cellcontrol/internal/delivery/context"
	"cellcontrol/internal/domain/entity"
	domainerrors "cellcontrol/internal/domain/errors"
	"cellcontrol/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	contextKeySession = "session"
	contextKeyTenant  = "tenant"

	bearerPrefix = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC   usecase.AuthUsecase
	AccessUC usecase.AccessUsecase
	Logger   *slog.Logger
}

// AuthMiddleware authenticates bearer tokens and applies the store access policy.
type AuthMiddleware struct {
	authUC   usecase.AuthUsecase
	accessUC usecase.AccessUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC:   params.AuthUC,
		accessUC: params.AccessUC,
		logger:   params.Logger,
	}
}

// Authenticate verifies the bearer token and stores the session on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrTokenInvalid.WithDetails("must be a Bearer token")
		}

		ctx := c.Request().Context()
		session, err := m.authUC.VerifyToken(ctx, strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			return err
		}

		c.Set(contextKeySession, session)

		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", session.UserID.String()))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}

// RequireStore resolves the :slug path parameter and rejects sessions that may not
// operate that store. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireStore(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, _ := GetSession(c)

		tenant, err := m.accessUC.AuthorizeStore(c.Request().Context(), session, c.Param("slug"))
		if err != nil {
			return err
		}

		c.Set(contextKeyTenant, tenant)

		return next(c)
	}
}

// RequireAdmin allows super admins only. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, _ := GetSession(c)
		if err := m.accessUC.AuthorizeAdmin(c.Request().Context(), session); err != nil {
			return err
		}

		return next(c)
	}
}

// GetSession returns the session set by Authenticate.
func GetSession(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(contextKeySession).(*entity.Session)

	return session, ok && session != nil
}

// GetTenant returns the store resolved by RequireStore.
func GetTenant(c echo.Context) (*entity.Tenant, bool) {
	tenant, ok := c.Get(contextKeyTenant).(*entity.Tenant)

	return tenant, ok && tenant != nil
}
