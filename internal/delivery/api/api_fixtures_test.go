package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cellcontrol/config"
	"cellcontrol/internal/delivery/api/middleware"
	"cellcontrol/internal/delivery/api/router"
	"cellcontrol/internal/delivery/api/router/handler"
	deliverycontext "cellcontrol/internal/delivery/context"
	"cellcontrol/internal/domain/entity"
	"cellcontrol/internal/infra/auth"
	"cellcontrol/internal/infra/metrics"
	"cellcontrol/internal/infra/persistence/postgres"
	"cellcontrol/internal/infra/persistence/sqlitetest"
	"cellcontrol/internal/infra/ratelimit"
	mockSvc "cellcontrol/internal/mocks/service"
	"cellcontrol/internal/usecase"
	"cellcontrol/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "secret123"

// apiFixtures runs the real HTTP stack over an in-memory database.
type apiFixtures struct {
	ctx      context.Context
	echo     *echo.Echo
	admin    usecase.AdminUsecase
	qr       *mockSvc.MockQRCodeService
	registry *metrics.Registry
}

func newAPIFixtures(t *testing.T) *apiFixtures {
	t.Helper()

	cfg := &config.Config{
		Auth:    &config.AuthConfig{BcryptCost: bcrypt.MinCost, TokenTTL: time.Hour},
		Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Env.ServiceName = "cellcontrol-test"
	cfg.HTTP.MaxRequestBodySize = "2MB"

	db := sqlitetest.Open(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := metrics.NewRegistry(true)
	txManager := postgres.NewTransactionManager(db)
	tenantRepo := postgres.NewTenantRepository(db)
	userRepo := postgres.NewUserRepository(db)
	modelRepo := postgres.NewDeviceModelRepository(db)
	productRepo := postgres.NewProductRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	saleRepo := postgres.NewSaleRepository(db)

	hasher := auth.NewBcryptHasher(cfg)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishSaleEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
	qr := mockSvc.NewMockQRCodeService(t)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     userRepo,
		TenantRepo:   tenantRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Throttle:     ratelimit.NewNoopThrottle(),
		Metrics:      registry,
		Logger:       logger,
	})
	accessUC := impl.NewAccessService(impl.AccessServiceParams{TenantRepo: tenantRepo, Logger: logger})
	adminUC := impl.NewAdminService(impl.AdminServiceParams{
		TxManager:  txManager,
		TenantRepo: tenantRepo,
		UserRepo:   userRepo,
		Hasher:     hasher,
		QRCode:     qr,
		Logger:     logger,
	})

	routerParams := router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, AccessUC: accessUC, Logger: logger}),
		ModelHandler: handler.NewModelHandler(handler.ModelHandlerParams{
			ModelUC: impl.NewModelService(impl.ModelServiceParams{ModelRepo: modelRepo, ProductRepo: productRepo, Logger: logger}),
			Logger:  logger,
		}),
		ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{
			ProductUC: impl.NewProductService(impl.ProductServiceParams{ProductRepo: productRepo, Logger: logger}),
			Logger:    logger,
		}),
		CustomerHandler: handler.NewCustomerHandler(handler.CustomerHandlerParams{
			CustomerUC: impl.NewCustomerService(impl.CustomerServiceParams{CustomerRepo: customerRepo, Logger: logger}),
			Logger:     logger,
		}),
		SaleHandler: handler.NewSaleHandler(handler.SaleHandlerParams{
			SaleUC: impl.NewSaleService(impl.SaleServiceParams{
				TxManager: txManager,
				SaleRepo:  saleRepo,
				Publisher: publisher,
				Metrics:   registry,
				Logger:    logger,
			}),
			Logger: logger,
		}),
		DashboardHandler: handler.NewDashboardHandler(handler.DashboardHandlerParams{
			DashboardUC: impl.NewDashboardService(impl.DashboardServiceParams{
				ModelRepo:    modelRepo,
				ProductRepo:  productRepo,
				CustomerRepo: customerRepo,
				SaleRepo:     saleRepo,
				Logger:       logger,
			}),
			Logger: logger,
		}),
		AdminHandler: handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: adminUC, Logger: logger}),
		ImportHandler: handler.NewImportHandler(handler.ImportHandlerParams{
			ImportUC: impl.NewImportService(impl.ImportServiceParams{TxManager: txManager, TenantRepo: tenantRepo, Logger: logger}),
			Logger:   logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: authUC, AccessUC: accessUC, Logger: logger}),
		Metrics:        registry,
		Config:         cfg,
	}

	return &apiFixtures{
		ctx:      context.Background(),
		echo:     NewEcho(cfg, logger, registry, routerParams),
		admin:    adminUC,
		qr:       qr,
		registry: registry,
	}
}

// store provisions an active store with its admin and returns the admin's token.
func (f *apiFixtures) store(t *testing.T, name string) (*entity.Tenant, string) {
	t.Helper()
	tenant, err := f.admin.CreateTenant(f.ctx, &usecase.CreateTenantInput{Name: name})
	require.NoError(t, err)

	email := "admin@" + tenant.Slug + ".com"
	_, err = f.admin.CreateUser(f.ctx, &usecase.CreateUserInput{
		Email:    email,
		Name:     "Admin " + name,
		Password: testPassword,
		Role:     entity.RoleTenantAdmin,
		TenantID: &tenant.ID,
	})
	require.NoError(t, err)

	return tenant, f.login(t, email)
}

func (f *apiFixtures) superAdmin(t *testing.T) string {
	t.Helper()
	_, err := f.admin.CreateUser(f.ctx, &usecase.CreateUserInput{
		Email:    "root@cellcontrol.app",
		Name:     "Root",
		Password: testPassword,
		Role:     entity.RoleSuperAdmin,
	})
	require.NoError(t, err)

	return f.login(t, "root@cellcontrol.app")
}

func (f *apiFixtures) login(t *testing.T, email string) string {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": email, "password": testPassword})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res handler.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	return res.Token
}

// do sends body as JSON and returns the recorded response.
func (f *apiFixtures) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(deliverycontext.HeaderXRequestID, "test-request")
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	return f.serve(req)
}

func (f *apiFixtures) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

// errorBody mirrors the error response with an extra redirect check.
type errorBody struct {
	Detail    string `json:"detail"`
	Code      string `json:"code"`
	RequestID string `json:"request_id"`
	Redirect  string `json:"redirect"`
}
