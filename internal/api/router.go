package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tajer/shop-finance-api/internal/api/handler"
	"github.com/tajer/shop-finance-api/internal/api/middleware"
	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// Dependencies carries everything the router needs: the service layer plus
// the stores backing the readiness probe.
type Dependencies struct {
	Auth         ports.AuthService
	Users        ports.UserService
	Shops        ports.ShopService
	Products     ports.ProductService
	Customers    ports.CustomerService
	Suppliers    ports.SupplierService
	Employees    ports.EmployeeService
	Transactions ports.TransactionService
	Invoices     ports.InvoiceService
	Purchases    ports.PurchaseService
	Reports      ports.ReportService

	DB        *mongo.Database
	RDB       *redis.Client
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("shopfinance"))

	// --- Handlers ---
	userHandler := handler.NewUserHandler(deps.Auth, deps.Users)
	shopHandler := handler.NewShopHandler(deps.Shops)
	productHandler := handler.NewProductHandler(deps.Products)
	customerHandler := handler.NewCustomerHandler(deps.Customers)
	supplierHandler := handler.NewSupplierHandler(deps.Suppliers)
	employeeHandler := handler.NewEmployeeHandler(deps.Employees)
	transactionHandler := handler.NewTransactionHandler(deps.Transactions)
	invoiceHandler := handler.NewInvoiceHandler(deps.Invoices)
	purchaseHandler := handler.NewPurchaseHandler(deps.Purchases)
	reportHandler := handler.NewReportHandler(deps.Reports)
	healthHandler := handler.NewHealthHandler(deps.DB, deps.RDB)

	authn := middleware.Auth(deps.JWTSecret, deps.Auth)
	ownerOnly := middleware.RBAC(domain.RoleOwner)
	managerUp := middleware.RBAC(domain.RoleOwner, domain.RoleManager)

	// --- Probes, metrics, docs ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	api := e.Group("/api")

	// --- Users ---
	users := api.Group("/users")
	users.POST("/register", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.GET("/me", userHandler.Me, authn)
	users.PUT("/me", userHandler.UpdateMe, authn)
	users.PUT("/me/deactivate", userHandler.DeactivateMe, authn)
	users.GET("", userHandler.List, authn, managerUp)
	users.PUT("/:id", userHandler.Update, authn, managerUp)

	// --- Shops ---
	// Any authenticated user may open their first shop; the service
	// promotes the creator to owner and enforces one shop per user.
	shops := api.Group("/shops", authn)
	shops.POST("", shopHandler.Create)
	shops.GET("/:id", shopHandler.Get, managerUp)
	shops.PUT("/:id", shopHandler.Update, ownerOnly)

	// --- Products ---
	products := api.Group("/products", authn)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, managerUp)
	products.PUT("/:id", productHandler.Update, managerUp)
	products.PATCH("/:id/stock", productHandler.AdjustStock, managerUp)

	// --- Customers / Suppliers ---
	customers := api.Group("/customers", authn)
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.POST("", customerHandler.Create)
	customers.PUT("/:id", customerHandler.Update)

	suppliers := api.Group("/suppliers", authn)
	suppliers.GET("", supplierHandler.List)
	suppliers.GET("/:id", supplierHandler.Get)
	suppliers.POST("", supplierHandler.Create)
	suppliers.PUT("/:id", supplierHandler.Update)

	// --- Transactions ---
	transactions := api.Group("/transactions", authn)
	transactions.POST("", transactionHandler.Create)
	transactions.GET("", transactionHandler.List)
	transactions.GET("/stats", transactionHandler.Stats)

	// --- Invoices ---
	invoices := api.Group("/invoices", authn)
	invoices.GET("", invoiceHandler.List)
	invoices.GET("/:id", invoiceHandler.Get)
	invoices.POST("", invoiceHandler.Create)
	invoices.PUT("/:id", invoiceHandler.Update, managerUp)

	// --- Purchases ---
	purchases := api.Group("/purchases", authn, managerUp)
	purchases.GET("", purchaseHandler.List)
	purchases.GET("/:id", purchaseHandler.Get)
	purchases.POST("", purchaseHandler.Create)
	purchases.PUT("/:id", purchaseHandler.Update)

	// --- Reports ---
	reports := api.Group("/reports", authn)
	reports.GET("", reportHandler.List)
	reports.GET("/:id", reportHandler.Get)
	reports.POST("", reportHandler.Create, managerUp)

	// --- Employees ---
	employees := api.Group("/employees", authn, managerUp)
	employees.GET("", employeeHandler.List)
	employees.GET("/:id", employeeHandler.Get)
	employees.POST("", employeeHandler.Create)
	employees.PUT("/:id", employeeHandler.Update)
	employees.POST("/:id/link-user", employeeHandler.LinkUser)

	return e
}
