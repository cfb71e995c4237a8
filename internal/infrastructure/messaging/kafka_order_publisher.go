package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"wondershop/internal/config"
	"wondershop/internal/domain/entities"
	"wondershop/internal/infrastructure/observability"
	"wondershop/internal/usecase/interfaces"

	otelkafka "github.com/Trendyol/otel-kafka-konsumer"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var ErrMissingKafkaBroker = errors.New("missing KAFKA_BROKER")

// MessageProducer is the slice of a Kafka writer the publisher needs.
type MessageProducer interface {
	WriteMessage(ctx context.Context, msg kafka.Message) error
	Close() error
}

// OrderPlacedEvent is the payload written to the orders topic.
type OrderPlacedEvent struct {
	EventID     string    `json:"event_id"`
	OrderID     int64     `json:"order_id"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	BuyerID     string    `json:"buyer_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// KafkaOrderPublisher announces committed orders on Kafka, keyed by order id.
type KafkaOrderPublisher struct {
	producer MessageProducer
	logger   observability.Logger
}

var _ interfaces.IOrderEventPublisher = (*KafkaOrderPublisher)(nil)

func NewKafkaOrderPublisher(producer MessageProducer, logger observability.Logger) *KafkaOrderPublisher {
	return &KafkaOrderPublisher{producer: producer, logger: logger}
}

// NewOrderProducer builds a traced Kafka writer for the orders topic.
func NewOrderProducer(broker string, tp trace.TracerProvider) (MessageProducer, error) {
	if broker == "" {
		return nil, ErrMissingKafkaBroker
	}

	baseWriter := &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        config.OrdersTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: config.BatchTimeout,
		BatchSize:    config.BatchSize,
	}

	writer, err := otelkafka.NewWriter(baseWriter,
		otelkafka.WithTracerProvider(tp),
		otelkafka.WithPropagator(propagation.TraceContext{}),
		otelkafka.WithAttributes(
			[]attribute.KeyValue{
				semconv.MessagingDestinationNameKey.String(config.OrdersTopic),
				attribute.String("messaging.kafka.client_id", config.ServiceName),
			},
		),
	)
	if err != nil {
		return nil, err
	}
	return writer, nil
}

func (p *KafkaOrderPublisher) PublishOrderPlaced(ctx context.Context, o entities.Order) error {
	event := OrderPlacedEvent{
		EventID:     uuid.NewString(),
		OrderID:     o.ID,
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
		Quantity:    o.Quantity,
		BuyerID:     o.BuyerID,
		CreatedAt:   o.CreatedAt,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("[orders][publisher] failed to serialize event", zap.Error(err), zap.Int64("order_id", o.ID))
		return err
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(o.ID, 10)),
		Value: payload,
	}
	if err := p.producer.WriteMessage(ctx, msg); err != nil {
		p.logger.Error("[orders][publisher] failed to publish event", zap.Error(err), zap.Int64("order_id", o.ID))
		return err
	}

	p.logger.Info("[orders][publisher] order event sent", zap.Int64("order_id", o.ID), zap.String("event_id", event.EventID))
	return nil
}

func (p *KafkaOrderPublisher) Close() error {
	return p.producer.Close()
}
