// Shop finance API server.
//
// @title        Shop Finance API
// @version      1.0
// @description  Multi-tenant retail back-office: catalog, parties, invoices, purchases, ledger and reports.
// @BasePath     /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tajer/shop-finance-api/internal/api"
	"github.com/tajer/shop-finance-api/internal/core/service"
	"github.com/tajer/shop-finance-api/internal/infrastructure/config"
	mongodb "github.com/tajer/shop-finance-api/internal/infrastructure/db/mongo"
	redisdb "github.com/tajer/shop-finance-api/internal/infrastructure/db/redis"
	"github.com/tajer/shop-finance-api/internal/infrastructure/queue"
	"github.com/tajer/shop-finance-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Stores ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	shopRepo := mongodb.NewShopRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	customerRepo := mongodb.NewCustomerRepository(db)
	supplierRepo := mongodb.NewSupplierRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	invoiceRepo := mongodb.NewInvoiceRepository(db)
	purchaseRepo := mongodb.NewPurchaseRepository(db)
	transactionRepo := mongodb.NewTransactionRepository(db)
	reportRepo := mongodb.NewReportRepository(db)
	alertRepo := mongodb.NewStockAlertRepository(db)
	counterRepo := mongodb.NewCounterRepository(db)
	txRunner := mongodb.NewTxRunner(client)
	reportCache := redisdb.NewReportCache(rdb)

	ensureIndexes(ctx, log,
		userRepo, shopRepo, productRepo, customerRepo, supplierRepo,
		employeeRepo, invoiceRepo, purchaseRepo, transactionRepo,
		reportRepo, alertRepo,
	)

	// --- Alert workers ---
	dispatcher := queue.NewDispatcher(cfg.Workers, productRepo, alertRepo, log)
	dispatcher.Start(ctx)

	// --- Services ---
	authService := service.NewAuthService(userRepo, shopRepo, employeeRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, log)
	shopService := service.NewShopService(shopRepo, userRepo, log)
	productService := service.NewProductService(productRepo, log)
	customerService := service.NewCustomerService(customerRepo, log)
	supplierService := service.NewSupplierService(supplierRepo, log)
	employeeService := service.NewEmployeeService(employeeRepo, userRepo, log)
	transactionService := service.NewTransactionService(transactionRepo, shopRepo, log)
	invoiceService := service.NewInvoiceService(invoiceRepo, customerRepo, productRepo, transactionRepo, counterRepo, txRunner, dispatcher, log)
	purchaseService := service.NewPurchaseService(purchaseRepo, supplierRepo, productRepo, transactionRepo, counterRepo, txRunner, log)
	reportService := service.NewReportService(reportRepo, invoiceRepo, purchaseRepo, transactionRepo, productRepo, reportCache, log)

	e := api.NewRouter(api.Dependencies{
		Auth:         authService,
		Users:        userService,
		Shops:        shopService,
		Products:     productService,
		Customers:    customerService,
		Suppliers:    supplierService,
		Employees:    employeeService,
		Transactions: transactionService,
		Invoices:     invoiceService,
		Purchases:    purchaseService,
		Reports:      reportService,
		DB:           db,
		RDB:          rdb,
		JWTSecret:    cfg.JWTSecret,
		Logger:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// ensureIndexes bootstraps collection indexes. Failures are logged but do not
// abort startup; the server can serve without them, just slower.
func ensureIndexes(ctx context.Context, log zerolog.Logger, repos ...indexer) {
	for _, repo := range repos {
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msgf("index bootstrap failed for %T", repo)
		}
	}
}
