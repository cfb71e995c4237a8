package usecase

import (
	"context"

	"wondershop/internal/domain/entities"
	"wondershop/internal/usecase/interfaces"
)

// IOrderUseCase exposes read access to the order ledger.
type IOrderUseCase interface {
	ListOrders(ctx context.Context) ([]entities.Order, error)
}

type OrderUseCase struct {
	ledger interfaces.IOrderLedger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(ledger interfaces.IOrderLedger) *OrderUseCase {
	return &OrderUseCase{ledger: ledger}
}

func (u *OrderUseCase) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return u.ledger.List(ctx)
}
