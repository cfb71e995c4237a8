package memory

import (
	"context"
	"fmt"

	"wondershop/internal/domain/entities"
	"wondershop/internal/usecase/interfaces"
)

// InventoryStore commits purchases against an in-memory catalog.
//
// The catalog write lock is held from the stock check through the ledger
// append, so no reader ever observes a decrement whose order may still fail.
// Lock order is catalog, then ledger.
type InventoryStore struct {
	catalog *CatalogRepository
	ledger  interfaces.IOrderLedger
}

var _ interfaces.IInventoryStore = (*InventoryStore)(nil)

func NewInventoryStore(catalog *CatalogRepository, ledger interfaces.IOrderLedger) *InventoryStore {
	return &InventoryStore{catalog: catalog, ledger: ledger}
}

func (s *InventoryStore) Commit(ctx context.Context, productID int64, quantity int, order entities.Order) (entities.Order, entities.Product, error) {
	s.catalog.mu.Lock()
	defer s.catalog.mu.Unlock()

	p, ok := s.catalog.products[productID]
	if !ok {
		return entities.Order{}, entities.Product{}, fmt.Errorf("%w: product %d", entities.ErrNotFound, productID)
	}
	if quantity > p.Quantity {
		return entities.Order{}, entities.Product{}, fmt.Errorf("%w: product %d has %d, requested %d",
			entities.ErrInsufficientStock, productID, p.Quantity, quantity)
	}

	order.ProductID = productID
	order.ProductName = p.Name
	order.Quantity = quantity
	committed, err := s.ledger.Append(ctx, order)
	if err != nil {
		return entities.Order{}, entities.Product{}, err
	}

	p.Quantity -= quantity
	s.catalog.products[productID] = p
	return committed, p, nil
}
