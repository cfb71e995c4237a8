package app

import (
	"context"
	"errors"
	"fmt"

	"wondershop/internal/adapter/http/handlers"
	"wondershop/internal/adapter/http/routes"
	"wondershop/internal/adapter/persistence/memory"
	"wondershop/internal/adapter/persistence/repository"
	"wondershop/internal/config"
	"wondershop/internal/infrastructure/database"
	"wondershop/internal/infrastructure/messaging"
	"wondershop/internal/infrastructure/observability"
	"wondershop/internal/usecase"
	"wondershop/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Container holds the long-lived components of one running shop.
type Container struct {
	config    *config.Config
	logger    *zap.Logger
	tracer    observability.Tracer
	catalog   interfaces.ICatalogRepository
	ledger    interfaces.IOrderLedger
	inventory interfaces.IInventoryStore
	events    *messaging.KafkaOrderPublisher
	publisher interfaces.IOrderEventPublisher
	dialogue  usecase.IDialogueUseCase
	router    *gin.Engine

	otelLogShutdown   func(context.Context) error
	otelTraceShutdown func(context.Context) error
}

// NewContainer wires every component from cfg.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{config: cfg}

	tp := c.setupObservability(ctx)

	if err := c.setupStores(ctx); err != nil {
		c.Shutdown(ctx)
		return nil, err
	}

	if err := c.setupPublisher(tp); err != nil {
		c.Shutdown(ctx)
		return nil, err
	}

	c.setupUseCases()
	return c, nil
}

// setupObservability installs OTel exporters when an endpoint is configured
// and builds the logger on top of them.
func (c *Container) setupObservability(ctx context.Context) trace.TracerProvider {
	if c.config.OtelEndpoint == "" {
		c.logger = observability.NewLogger(false)
		c.tracer = otel.Tracer(config.ServiceName)
		return otel.GetTracerProvider()
	}

	otelLogShutdown, logErr := observability.SetupLoggingSDK(ctx, c.config)
	c.otelLogShutdown = otelLogShutdown

	tp, otelTraceShutdown, traceErr := observability.SetupTracingSDK(ctx, c.config)
	c.otelTraceShutdown = otelTraceShutdown

	c.logger = observability.NewLogger(logErr == nil)
	if logErr != nil {
		c.logger.Error("[app][container] failed to setup OpenTelemetry logging", zap.Error(logErr))
	}
	if traceErr != nil {
		c.logger.Error("[app][container] failed to setup OpenTelemetry tracing", zap.Error(traceErr))
	}

	c.tracer = otel.Tracer(config.ServiceName)
	if tp == nil {
		return otel.GetTracerProvider()
	}
	return tp
}

func (c *Container) setupStores(ctx context.Context) error {
	switch c.config.StoreBackend {
	case config.StoreDynamoDB:
		ddb, err := database.NewDynamoDBClient(ctx)
		if err != nil {
			return fmt.Errorf("failed to create dynamodb client: %w", err)
		}
		c.catalog = repository.NewProductDynamoRepository(ddb)
		c.ledger = repository.NewOrderDynamoRepository(ddb)
		c.inventory = repository.NewInventoryDynamoStore(ddb)
	default:
		policy := memory.IDMonotonic
		if c.config.ProductIDPolicy == config.ProductIDMaxPlusOne {
			policy = memory.IDMaxPlusOne
		}
		catalog := memory.NewCatalogRepository(policy)
		ledger := memory.NewOrderLedger()
		c.catalog = catalog
		c.ledger = ledger
		c.inventory = memory.NewInventoryStore(catalog, ledger)
	}

	c.logger.Info("[app][container] stores ready",
		zap.String("backend", c.config.StoreBackend),
		zap.String("product_id_policy", c.config.ProductIDPolicy),
	)
	return nil
}

func (c *Container) setupPublisher(tp trace.TracerProvider) error {
	if c.config.KafkaBroker == "" {
		c.logger.Info("[app][container] KAFKA_BROKER not set, order events disabled")
		return nil
	}

	producer, err := messaging.NewOrderProducer(c.config.KafkaBroker, tp)
	if err != nil {
		return fmt.Errorf("failed to create kafka producer: %w", err)
	}
	c.events = messaging.NewKafkaOrderPublisher(producer, c.logger)
	c.publisher = c.events
	return nil
}

func (c *Container) setupUseCases() {
	catalog := usecase.NewCatalogUseCase(c.catalog, c.logger)
	orders := usecase.NewOrderUseCase(c.ledger)
	inventory := usecase.NewInventoryUseCase(c.inventory, c.logger, c.tracer)

	c.dialogue = usecase.NewDialogueUseCase(catalog, inventory, orders, c.publisher, usecase.DialogueConfig{
		Operators:       c.config.OperatorIDs,
		DefaultPhotoRef: c.config.DefaultPhotoRef,
		WelcomePhotoRef: c.config.WelcomePhotoRef,
		SessionTTL:      c.config.SessionTTL,
	}, c.logger)

	roster := handlers.NewOperatorRoster(c.config.OperatorIDs)
	c.router = routes.NewRouter(routes.Handlers{
		Events:   handlers.NewEventHandler(c.dialogue, roster),
		Products: handlers.NewProductHandler(catalog),
		Orders:   handlers.NewOrderHandler(orders, roster),
	}, c.logger)
}

func (c *Container) Logger() *zap.Logger {
	return c.logger
}

func (c *Container) Router() *gin.Engine {
	return c.router
}

func (c *Container) Dialogue() usecase.IDialogueUseCase {
	return c.dialogue
}

// Shutdown closes the order event publisher and flushes the OTel pipelines.
func (c *Container) Shutdown(ctx context.Context) error {
	var err error
	if c.events != nil {
		err = errors.Join(err, c.events.Close())
	}
	if c.otelTraceShutdown != nil {
		err = errors.Join(err, c.otelTraceShutdown(ctx))
	}
	if c.otelLogShutdown != nil {
		err = errors.Join(err, c.otelLogShutdown(ctx))
	}
	if c.logger != nil {
		_ = c.logger.Sync()
	}
	return err
}
