package interfaces

import (
	"context"
	"wondershop/internal/domain/entities"
)

// IOrderLedger abstracts the append-only order history.
//
// Append assigns ID = current length + 1 and must be linearized: concurrent
// appends receive distinct, gap-free ids.

type IOrderLedger interface {
	Append(ctx context.Context, o entities.Order) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
}
