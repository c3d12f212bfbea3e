// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cellcontrol/config"
	"cellcontrol/internal/delivery/api/middleware"
	"cellcontrol/internal/delivery/api/router/handler"
	"cellcontrol/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ModelHandler     *handler.ModelHandler
	ProductHandler   *handler.ProductHandler
	CustomerHandler  *handler.CustomerHandler
	SaleHandler      *handler.SaleHandler
	DashboardHandler *handler.DashboardHandler
	AdminHandler     *handler.AdminHandler
	ImportHandler    *handler.ImportHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Metrics          *metrics.Registry
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	modelHandler     *handler.ModelHandler
	productHandler   *handler.ProductHandler
	customerHandler  *handler.CustomerHandler
	saleHandler      *handler.SaleHandler
	dashboardHandler *handler.DashboardHandler
	adminHandler     *handler.AdminHandler
	importHandler    *handler.ImportHandler
	authMiddleware   *middleware.AuthMiddleware
	metrics          *metrics.Registry
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		modelHandler:     params.ModelHandler,
		productHandler:   params.ProductHandler,
		customerHandler:  params.CustomerHandler,
		saleHandler:      params.SaleHandler,
		dashboardHandler: params.DashboardHandler,
		adminHandler:     params.AdminHandler,
		importHandler:    params.ImportHandler,
		authMiddleware:   params.AuthMiddleware,
		metrics:          params.Metrics,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.metrics.Enabled() {
		path := "/metrics"
		if r.config.Metrics != nil && r.config.Metrics.Path != "" {
			path = r.config.Metrics.Path
		}
		e.GET(path, echo.WrapHandler(r.metrics.Handler()))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Store routes: the verify lookup is public, everything else is scoped to
	// the store the session may operate.
	storeGroup := e.Group("/tenants/:slug")
	storeGroup.GET("/verify", r.authHandler.VerifyStore)

	scoped := storeGroup.Group("", r.authMiddleware.Authenticate, r.authMiddleware.RequireStore)
	{
		scoped.GET("/models", r.modelHandler.ListModels)
		scoped.POST("/models", r.modelHandler.CreateModel)
		scoped.GET("/models/:id", r.modelHandler.GetModel)
		scoped.PUT("/models/:id", r.modelHandler.UpdateModel)
		scoped.DELETE("/models/:id", r.modelHandler.DeleteModel)

		scoped.GET("/products", r.productHandler.ListProducts)
		scoped.POST("/products", r.productHandler.CreateProduct)
		scoped.GET("/products/:id", r.productHandler.GetProduct)
		scoped.PUT("/products/:id", r.productHandler.UpdateProduct)
		scoped.DELETE("/products/:id", r.productHandler.DeleteProduct)

		scoped.GET("/customers", r.customerHandler.ListCustomers)
		scoped.POST("/customers", r.customerHandler.CreateCustomer)
		scoped.GET("/customers/:id", r.customerHandler.GetCustomer)
		scoped.PUT("/customers/:id", r.customerHandler.UpdateCustomer)
		scoped.DELETE("/customers/:id", r.customerHandler.DeleteCustomer)

		scoped.GET("/sales", r.saleHandler.ListSales)
		scoped.POST("/sales", r.saleHandler.CreateSale)
		scoped.GET("/sales/:id", r.saleHandler.GetSale)
		scoped.PUT("/sales/:id", r.saleHandler.UpdateSale)
		scoped.DELETE("/sales/:id", r.saleHandler.DeleteSale)

		scoped.GET("/dashboard", r.dashboardHandler.GetDashboard)
	}

	// Admin routes require a super admin session
	adminGroup := e.Group("/admin", r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/dashboard", r.adminHandler.Dashboard)

		adminGroup.GET("/tenants", r.adminHandler.ListTenants)
		adminGroup.POST("/tenants", r.adminHandler.CreateTenant)
		adminGroup.GET("/tenants/:id", r.adminHandler.GetTenant)
		adminGroup.PUT("/tenants/:id", r.adminHandler.UpdateTenant)
		adminGroup.GET("/tenants/:id/qrcode", r.adminHandler.TenantQRCode)

		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.POST("/users", r.adminHandler.CreateUser)
		adminGroup.PUT("/users/:id", r.adminHandler.UpdateUser)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)

		adminGroup.POST("/import/:tenantId", r.importHandler.Import)
	}
}
