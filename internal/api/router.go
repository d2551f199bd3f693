package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/burningbushdesign/storefront-api/internal/api/handler"
	"github.com/burningbushdesign/storefront-api/internal/api/middleware"
	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/service"
	"github.com/burningbushdesign/storefront-api/internal/infrastructure/config"
	mongodb "github.com/burningbushdesign/storefront-api/internal/infrastructure/db/mongo"
	redisdb "github.com/burningbushdesign/storefront-api/internal/infrastructure/db/redis"
	"github.com/burningbushdesign/storefront-api/pkg/sessiontoken"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = newErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Infrastructure ---
	codec := sessiontoken.New(cfg.Session.JWTSecret, cfg.Session.TokenTTL)
	admins := mongodb.NewAdminRepository(db)
	products := mongodb.NewProductRepository(db)
	categories := mongodb.NewCategoryRepository(db)
	customers := mongodb.NewCustomerRepository(db)
	orders := mongodb.NewOrderRepository(db)
	inquiries := mongodb.NewInquiryRepository(db)
	projects := mongodb.NewProjectRepository(db)
	teamStores := mongodb.NewTeamStoreRepository(db)
	analytics := mongodb.NewAnalyticsRepository(db)
	deduper := redisdb.NewInquiryDeduper(rdb, cfg.Redis.InquiryDedupTTL)

	// --- Services ---
	authService := service.NewAuthService(admins, codec)
	catalogService := service.NewCatalogService(products, categories, log)
	customerService := service.NewCustomerService(customers)
	orderService := service.NewOrderService(orders, log)
	inquiryService := service.NewInquiryService(inquiries, customers, deduper, log)
	projectService := service.NewProjectService(projects)
	teamStoreService := service.NewTeamStoreService(teamStores, log)
	analyticsService := service.NewAnalyticsService(analytics)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, codec.TTL(), cfg.IsProduction())
	catalogHandler := handler.NewCatalogHandler(catalogService)
	contactHandler := handler.NewContactHandler(inquiryService, teamStoreService)
	customerHandler := handler.NewCustomerHandler(customerService)
	orderHandler := handler.NewOrderHandler(orderService)
	inquiryHandler := handler.NewInquiryHandler(inquiryService)
	projectHandler := handler.NewProjectHandler(projectService)
	teamStoreHandler := handler.NewTeamStoreHandler(teamStoreService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	// --- Session guard ---
	trustMode, err := middleware.ParseTrustMode(cfg.Session.TrustMode)
	if err != nil {
		log.Warn().Str("mode", cfg.Session.TrustMode).Msg("invalid session trust mode, falling back to revalidation")
		trustMode = middleware.TrustRevalidate
	}
	policy := middleware.SessionPolicy{TrustMode: trustMode, SecureCookies: cfg.IsProduction()}
	session := middleware.Session(codec, admins, policy, log)

	// --- Public storefront ---
	e.GET("/products", catalogHandler.ListProducts)
	e.GET("/products/:slug", catalogHandler.GetProductBySlug)
	e.GET("/categories", catalogHandler.ListCategories)
	e.POST("/contact", contactHandler.Submit)
	e.GET("/team-stores/:slug", contactHandler.GetTeamStore)
	e.POST("/team-stores/:slug/inquiries", contactHandler.SubmitForTeamStore)

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, session)

	// --- Admin panel (ADMIN and above) ---
	admin := e.Group("/admin", session, middleware.RBAC(domain.RoleAdmin, domain.RoleSuperAdmin))

	admin.GET("/products", catalogHandler.AdminListProducts)
	admin.POST("/products", catalogHandler.CreateProduct)
	admin.GET("/products/:id", catalogHandler.GetProduct)
	admin.PUT("/products/:id", catalogHandler.UpdateProduct)
	admin.DELETE("/products/:id", catalogHandler.DeleteProduct)
	admin.POST("/categories", catalogHandler.CreateCategory)

	admin.GET("/customers", customerHandler.List)
	admin.GET("/customers/:id", customerHandler.Get)

	admin.GET("/orders", orderHandler.List)
	admin.GET("/orders/:id", orderHandler.Get)
	admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

	admin.GET("/inquiries", inquiryHandler.List)
	admin.GET("/inquiries/:id", inquiryHandler.Get)
	admin.PATCH("/inquiries/:id", inquiryHandler.Update)
	admin.POST("/inquiries/:id/convert", inquiryHandler.Convert)

	admin.GET("/projects", projectHandler.List)
	admin.GET("/projects/:id", projectHandler.Get)
	admin.PATCH("/projects/:id", projectHandler.Update)

	admin.GET("/team-stores", teamStoreHandler.List)
	admin.POST("/team-stores", teamStoreHandler.Create)
	admin.GET("/team-stores/:id", teamStoreHandler.Get)
	admin.PATCH("/team-stores/:id", teamStoreHandler.Update)

	admin.GET("/analytics", analyticsHandler.Overview)
	admin.GET("/reports/:type", analyticsHandler.Export)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	return e
}
