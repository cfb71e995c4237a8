package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wondershop/internal/domain/entities"
	"wondershop/internal/infrastructure/observability"
	"wondershop/internal/usecase/interfaces"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// ErrLedgerUnavailable marks an internal fault: the purchase could not be
// committed and neither the stock nor the ledger changed.
var ErrLedgerUnavailable = errors.New("order ledger unavailable")

// IInventoryUseCase is the only path that turns a purchase intent into
// committed state.
type IInventoryUseCase interface {
	Execute(ctx context.Context, productID int64, quantity int, buyerID string) (entities.Order, error)
}

type InventoryUseCase struct {
	store   interfaces.IInventoryStore
	logger  observability.Logger
	tracer  observability.Tracer
	now     func() time.Time
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(
	store interfaces.IInventoryStore,
	logger observability.Logger,
	tracer observability.Tracer,
) *InventoryUseCase {
	return &InventoryUseCase{
		store:   store,
		logger:  logger,
		tracer:  tracer,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Execute commits the purchase through the inventory store, which checks the
// stock, decrements it and appends the order as one unit. Concurrent buyers of
// a product never oversell and never observe a decrement that is later undone.
func (u *InventoryUseCase) Execute(ctx context.Context, productID int64, quantity int, buyerID string) (entities.Order, error) {
	ctx, span := u.tracer.Start(ctx, "inventory_transaction")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("product.id", productID),
		attribute.Int("order.quantity", quantity),
		attribute.String("order.buyer_id", buyerID),
	)

	if quantity <= 0 {
		span.SetStatus(codes.Error, "invalid quantity")
		return entities.Order{}, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	order, product, err := u.store.Commit(ctx, productID, quantity, entities.Order{
		BuyerID:   buyerID,
		CreatedAt: u.now(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "commit failed")
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInsufficientStock) {
			u.logger.Info("[inventory][usecase] purchase rejected", zap.Error(err), zap.Int64("product_id", productID))
			return entities.Order{}, err
		}
		u.logger.Error("[inventory][usecase] commit failed",
			zap.Error(err),
			zap.Int64("product_id", productID),
			zap.Int("quantity", quantity),
		)
		return entities.Order{}, fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
	}

	span.SetAttributes(
		attribute.Int64("order.id", order.ID),
		attribute.Int("inventory.remaining", product.Quantity),
	)
	span.SetStatus(codes.Ok, "order committed")
	u.logger.Info("[inventory][usecase] order committed",
		zap.Int64("order_id", order.ID),
		zap.Int64("product_id", productID),
		zap.Int("quantity", quantity),
		zap.Int("remaining", product.Quantity),
	)
	return order, nil
}
