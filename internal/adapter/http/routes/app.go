package routes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm_assistencia/internal/adapter/persistence/memory"
	"crm_assistencia/internal/adapter/persistence/repository"
	"crm_assistencia/internal/infrastructure/auth"
	"crm_assistencia/internal/infrastructure/config"
	"crm_assistencia/internal/infrastructure/database"
	"crm_assistencia/internal/infrastructure/idgen"
	"crm_assistencia/internal/infrastructure/messaging"
	"crm_assistencia/internal/infrastructure/metrics"
	"crm_assistencia/internal/infrastructure/notification"
	"crm_assistencia/internal/infrastructure/payments"
	"crm_assistencia/internal/infrastructure/scheduler"
	"crm_assistencia/internal/usecase"
	"crm_assistencia/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// App is the wired service: router plus the background pieces that need
// starting and closing.
type App struct {
	Router *gin.Engine
	Store  interfaces.IStore

	scheduler *scheduler.Scheduler
	closers   []func() error
}

// Build wires every component from cfg. Optional integrations that are not
// configured, or fail to connect, are replaced by their log-only fallback.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	app := &App{}
	m := metrics.New()

	store := memory.NewStore(memory.WithIDGenerator(idgen.UUIDGenerator{}))
	if cfg.SeedDemoData {
		if err := memory.SeedDemoData(ctx, store); err != nil {
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
		log.Info().Msg("[app][bootstrap] demo data loaded")
	}
	app.Store = store

	publisher := app.eventPublisher(cfg.RabbitMQ)

	users, err := auth.NewUserDirectory(auth.DemoAccounts(), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("build user directory: %w", err)
	}
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)

	deps := Dependencies{
		Auth:          usecase.NewAuthUseCase(users, tokens),
		Customers:     usecase.NewCustomerUseCase(store),
		Products:      usecase.NewProductUseCase(store, publisher, m),
		ServiceOrders: usecase.NewServiceOrderUseCase(store, publisher, m),
		Sales:         usecase.NewSaleUseCase(store, publisher, m),
		Reports:       usecase.NewReportUseCase(store, time.Now, time.Local),
		Metrics:       m,
	}

	if cfg.Payments.Enabled {
		paymentsUC, err := buildSalePayments(ctx, cfg.Payments, cfg.DynamoDB, store)
		if err != nil {
			return nil, err
		}
		deps.Payments = paymentsUC
	}

	if cfg.LowStockCheckEvery > 0 {
		var notifier interfaces.IStockAlertNotifier
		if cfg.SMTP.Enabled() {
			notifier = notification.NewEmailNotifier(cfg.SMTP)
		}
		alerts := usecase.NewStockAlertUseCase(store, notifier, publisher)

		s := scheduler.New(time.Local)
		if err := s.ScheduleLowStockCheck(alerts, cfg.LowStockCheckEvery); err != nil {
			return nil, fmt.Errorf("schedule low stock check: %w", err)
		}
		app.scheduler = s
	}

	app.Router = NewRouter(cfg, deps)
	return app, nil
}

func (a *App) eventPublisher(cfg config.RabbitMQConfig) interfaces.IEventPublisher {
	if !cfg.Enabled() {
		return messaging.LogPublisher{}
	}
	client := messaging.NewRabbitMQClient(cfg)
	if err := client.Connect(); err != nil {
		log.Error().Err(err).Msg("[app][bootstrap] RabbitMQ unavailable; events will only be logged")
		return messaging.LogPublisher{}
	}
	a.closers = append(a.closers, client.Close)
	return messaging.NewPublisher(client)
}

func buildSalePayments(ctx context.Context, cfg config.PaymentsConfig, ddbCfg config.DynamoDBConfig, store interfaces.IStore) (usecase.ISalePaymentUseCase, error) {
	ddb, err := database.ConnectDynamoDB(ctx, ddbCfg)
	if err != nil {
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}
	repo := repository.NewSalePaymentDynamoRepository(ddb, cfg.SalePaymentsTable)
	if err := repo.EnsureTable(ctx); err != nil {
		return nil, fmt.Errorf("ensure sale payments table: %w", err)
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.AccessToken, cfg.Mock)
	if err != nil {
		log.Warn().Err(err).Msg("[app][bootstrap] Mercado Pago gateway not configured")
	} else {
		gateway = mpGateway
	}

	return usecase.NewSalePaymentUseCase(store, repo, gateway, cfg.SandboxPayerEmail), nil
}

func (a *App) Start() {
	if a.scheduler != nil {
		a.scheduler.Start()
	}
}

func (a *App) Close() error {
	if a.scheduler != nil {
		a.scheduler.Stop()
	}
	var errs []error
	for _, closeFn := range a.closers {
		errs = append(errs, closeFn())
	}
	return errors.Join(errs...)
}
