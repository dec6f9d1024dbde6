package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shopspring/decimal"

	_ "github.com/ridwanfathin/invoice-register-service/docs"
	"github.com/ridwanfathin/invoice-register-service/internal/config"
	"github.com/ridwanfathin/invoice-register-service/internal/database"
	"github.com/ridwanfathin/invoice-register-service/internal/handler"
	"github.com/ridwanfathin/invoice-register-service/internal/logger"
	"github.com/ridwanfathin/invoice-register-service/internal/metrics"
	"github.com/ridwanfathin/invoice-register-service/internal/repository"
	"github.com/ridwanfathin/invoice-register-service/internal/server"
	"github.com/ridwanfathin/invoice-register-service/internal/service"
)

// @title Invoice Register API
// @version 1.0
// @description Query, update and delete purchase and sales register invoices.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.LogFormat == "pretty",
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLog.Sync() }()
	logger.SetDefault(appLog)

	gin.SetMode(cfg.GinMode)

	// Amounts are serialized as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	if err := run(cfg, appLog); err != nil {
		appLog.Fatalw("server error", "error", err)
	}

	fmt.Println("Server shutdown complete")
}

func run(cfg *config.Config, appLog *logger.Logger) error {
	var (
		m        *metrics.Metrics
		gatherer prometheus.Gatherer
	)
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.New(reg)
		gatherer = reg
	}

	var (
		purchaseRepo repository.PurchaseInvoiceRepository
		salesRepo    repository.SalesInvoiceRepository
		opts         = server.Options{Metrics: m, Gatherer: gatherer}
	)

	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		appLog.Infow("connecting to PostgreSQL", "max_conns", cfg.DBMaxConns)
		db, err := database.NewPostgresDB(context.Background(), database.Config{
			URL:            cfg.PostgresDBURL,
			MaxConns:       cfg.DBMaxConns,
			ConnectRetries: cfg.DBConnectRetries,
			OnRetry: func(err error, wait time.Duration) {
				appLog.Warnw("database not ready, retrying", "error", err, "wait", wait)
			},
		})
		if err != nil {
			return err
		}
		defer db.Close()

		purchaseRepo = repository.NewPostgresPurchaseInvoiceRepository(db, cfg.DBQueryTimeout, m)
		salesRepo = repository.NewPostgresSalesInvoiceRepository(db, cfg.DBQueryTimeout, m)
		opts.Database = db
	default:
		appLog.Warnw("using in-memory invoice store; data is lost on restart")
		memory := repository.NewMemoryInvoiceRepository()
		purchaseRepo = memory
		salesRepo = memory
	}

	srv := server.NewServer(cfg, appLog, opts)
	srv.RegisterHandlers(
		handler.NewPurchaseInvoiceHandler(service.NewPurchaseInvoiceService(purchaseRepo), m),
		handler.NewSalesInvoiceHandler(service.NewSalesInvoiceService(salesRepo), m),
	)

	return srv.Start()
}
