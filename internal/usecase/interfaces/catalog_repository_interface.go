package interfaces

import (
	"context"
	"wondershop/internal/domain/entities"
)

// ICatalogRepository abstracts storage of the product catalog.
//
// Implementations must:
//   - assign the product id on Create
//   - return a zero Product (ID 0) from GetByID when the id is unknown
//   - fail Delete of an unknown id with entities.ErrNotFound
//
// Stock changes go through IInventoryStore, never through this port.

type ICatalogRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id int64) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Delete(ctx context.Context, id int64) error
}
