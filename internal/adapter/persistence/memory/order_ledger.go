package memory

import (
	"context"
	"slices"
	"sync"

	"wondershop/internal/domain/entities"
	"wondershop/internal/usecase/interfaces"
)

// OrderLedger is an append-only, mutex-guarded order history.
type OrderLedger struct {
	mu     sync.Mutex
	orders []entities.Order
}

var _ interfaces.IOrderLedger = (*OrderLedger)(nil)

func NewOrderLedger() *OrderLedger {
	return &OrderLedger{}
}

func (l *OrderLedger) Append(_ context.Context, o entities.Order) (entities.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	o.ID = int64(len(l.orders)) + 1
	l.orders = append(l.orders, o)
	return o, nil
}

func (l *OrderLedger) List(_ context.Context) ([]entities.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.orders), nil
}
