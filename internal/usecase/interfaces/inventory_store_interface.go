package interfaces

import (
	"context"
	"wondershop/internal/domain/entities"
)

// IInventoryStore commits a purchase as one unit.
//
// Commit must check quantity >= requested, decrement the product and append
// the order (ID assigned, ProductName snapshotted) atomically: either both
// effects become visible together or neither does. It fails with
// entities.ErrNotFound or entities.ErrInsufficientStock when the product
// cannot satisfy the request, and returns the product as left by the commit.

type IInventoryStore interface {
	Commit(ctx context.Context, productID int64, quantity int, order entities.Order) (entities.Order, entities.Product, error)
}
