package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ledgerapp "github.com/erp/ledger/internal/application/ledger"
	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/infrastructure/cache"
	"github.com/erp/ledger/internal/infrastructure/config"
	"github.com/erp/ledger/internal/infrastructure/event"
	"github.com/erp/ledger/internal/infrastructure/logger"
	"github.com/erp/ledger/internal/infrastructure/persistence"
	"github.com/erp/ledger/internal/infrastructure/storage"
	"github.com/erp/ledger/internal/infrastructure/telemetry"
	"github.com/erp/ledger/internal/interfaces/http/handler"
	"github.com/erp/ledger/internal/interfaces/http/router"
	"go.uber.org/zap"

	_ "github.com/erp/ledger/docs"
)

//	@title			Construction Ledger API
//	@version		1.0
//	@description	Per-project supplier ledger: expenses, deposits, invoices and their documents.

//	@host		localhost:8080
//	@BasePath	/api/v1

//go:generate swag init --dir ../.. --generalInfo cmd/server/main.go --output ../../docs --outputTypes go

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := logger.ConfigForEnvironment(cfg.App.Env, cfg.Log.Level)
	logCfg.Format = cfg.Log.Format
	logCfg.Output = cfg.Log.Output
	log, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting ledger",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()

	serviceName := cfg.Telemetry.ServiceName
	if serviceName == "" {
		serviceName = cfg.App.Name
	}
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       serviceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.ExportInterval,
		ServiceName:       serviceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}

	loggerProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       serviceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize log export", zap.Error(err))
	}
	log = loggerProvider.Bridge(log, logger.ParseLevel(cfg.Log.Level))

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:         cfg.Telemetry.ProfilingEnabled,
		ServerAddress:   cfg.Telemetry.ProfilerAddress,
		ApplicationName: serviceName,
		ProfileTypes:    cfg.Telemetry.ProfileTypes,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if cfg.Telemetry.SpanProfiles && profiler.IsEnabled() {
		tracerProvider.EnableSpanProfiles()
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), 200*time.Millisecond)
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	if db.Driver == config.DriverSQLite {
		// sqlite has no migration history; the schema comes from the models
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to create sqlite schema", zap.Error(err))
		}
	}
	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:    cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		DBSystem:   db.Driver,
		LogFullSQL: cfg.Telemetry.DBLogFullSQL,
	}, log); err != nil {
		log.Warn("Database tracing disabled", zap.Error(err))
	}
	log.Info("Database connected", zap.String("driver", db.Driver))

	repos := ledgerapp.Repositories{
		Suppliers: persistence.NewGormSupplierRepository(db.DB),
		Links:     persistence.NewGormLinkRepository(db.DB),
		Expenses:  persistence.NewGormExpenseRepository(db.DB),
		Deposits:  persistence.NewGormDepositRepository(db.DB),
		Documents: persistence.NewGormDocumentRepository(db.DB),
		Settings:  persistence.NewGormSettingRepository(db.DB),
		Orders:    persistence.NewGormPurchaseOrderRepository(db.DB),
	}

	documentStorage, err := storage.New(&cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize document storage", zap.Error(err))
	}

	stores, err := cache.NewStoreFactory(cfg.Redis, cfg.Ledger, cache.WithLogger(log)).CreateStores()
	if err != nil {
		log.Fatal("Failed to initialize session stores", zap.Error(err))
	}

	// Notices go through Redis when it is available so every instance sees them
	bus := event.NewChangeBus(log)
	var changes interface {
		ledger.ChangePublisher
		ledger.ChangeSubscriber
	} = bus
	var notifier *cache.RedisChangeNotifier
	if stores.Redis != nil {
		notifier = cache.NewRedisChangeNotifier(stores.Redis, bus,
			cache.WithNotifierChannel(cfg.Redis.ChangeChannel),
			cache.WithNotifierLogger(log))
		go func() {
			if err := notifier.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("Change subscription ended", zap.Error(err))
			}
		}()
		changes = notifier
	}

	orders := ledgerapp.NewOrderBook()
	ledgerService := ledgerapp.NewLedgerService(repos, stores.Sessions, orders, log)
	entryService := ledgerapp.NewEntryService(repos, changes, log)
	supplierService := ledgerapp.NewSupplierService(repos, stores.Sessions, orders, changes, log)
	invoiceService := ledgerapp.NewInvoiceService(repos, documentStorage, stores.Sessions, stores.Wizards, changes, log)
	orderService := ledgerapp.NewPurchaseOrderService(repos, changes, log)
	articleService := ledgerapp.NewArticleService(repos, log)
	documentService := ledgerapp.NewDocumentService(repos, documentStorage, changes, log,
		ledgerapp.WithUndoWindow(cfg.Ledger.UndoWindow),
		ledgerapp.WithUndoStore(stores.Undo))

	changesHandler := handler.NewChangesHandler(changes,
		handler.WithSSELogger(log),
		handler.WithSSEHeartbeat(cfg.Ledger.SSEHeartbeat))
	systemHandler := handler.NewSystemHandler(cfg.App.Name, version, db)

	engine := router.NewEngine(router.EngineConfig{
		HTTP:           cfg.HTTP,
		ServiceName:    serviceName,
		Production:     cfg.App.Env == "production",
		TracingEnabled: tracerProvider.IsEnabled(),
		MeterProvider:  meterProvider,
		RequestTimeout: cfg.HTTP.WriteTimeout,
		Logger:         log,
	}, systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	for _, group := range router.LedgerRoutes(router.Handlers{
		Ledger:    handler.NewLedgerHandler(ledgerService, entryService),
		Suppliers: handler.NewSupplierHandler(supplierService),
		Entries:   handler.NewEntryHandler(entryService),
		Documents: handler.NewDocumentHandler(documentService),
		Invoices:  handler.NewInvoiceHandler(invoiceService),
		Orders:    handler.NewPurchaseOrderHandler(orderService),
		Articles:  handler.NewArticleHandler(articleService),
		Changes:   changesHandler,
		System:    systemHandler,
	}) {
		r.Register(group)
	}
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// open streams would otherwise hold Shutdown until the timeout
	changesHandler.Stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if notifier != nil {
		if err := notifier.Close(); err != nil {
			log.Warn("Error stopping change subscription", zap.Error(err))
		}
	}
	if err := stores.Close(); err != nil {
		log.Warn("Error closing session stores", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		log.Error("Error closing database", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Error flushing metrics", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Error flushing traces", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		log.Warn("Error stopping profiler", zap.Error(err))
	}

	log.Info("Server exited gracefully")
	_ = loggerProvider.Shutdown(shutdownCtx)
}
