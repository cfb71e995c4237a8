package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"wondershop/internal/domain/entities"
	"wondershop/internal/usecase/interfaces"
)

// IDPolicy selects how new product ids are assigned.
type IDPolicy string

const (
	// IDMonotonic never reuses an id, even after the highest product is deleted.
	IDMonotonic IDPolicy = "monotonic"
	// IDMaxPlusOne assigns max(existing ids)+1, so deleting the newest product
	// and creating another hands out the deleted id again.
	IDMaxPlusOne IDPolicy = "max_plus_one"
)

// CatalogRepository keeps the catalog in process memory.
//
// Reads return copies taken under the read lock. Stock only moves through
// InventoryStore, which holds the write lock for the whole purchase.
type CatalogRepository struct {
	mu       sync.RWMutex
	policy   IDPolicy
	lastID   int64
	order    []int64
	products map[int64]entities.Product
}

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(policy IDPolicy) *CatalogRepository {
	if policy == "" {
		policy = IDMonotonic
	}
	return &CatalogRepository{
		policy:   policy,
		products: make(map[int64]entities.Product),
	}
}

func (r *CatalogRepository) Create(_ context.Context, p entities.Product) (entities.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID()
	if p.ID > r.lastID {
		r.lastID = p.ID
	}
	r.products[p.ID] = p
	r.order = append(r.order, p.ID)
	return p, nil
}

func (r *CatalogRepository) nextID() int64 {
	if r.policy == IDMaxPlusOne {
		var highest int64
		for id := range r.products {
			if id > highest {
				highest = id
			}
		}
		return highest + 1
	}
	return r.lastID + 1
}

func (r *CatalogRepository) GetByID(_ context.Context, id int64) (entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.products[id], nil
}

func (r *CatalogRepository) List(_ context.Context) ([]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.products[id])
	}
	return out, nil
}

func (r *CatalogRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("%w: product %d", entities.ErrNotFound, id)
	}
	delete(r.products, id)
	r.order = slices.DeleteFunc(r.order, func(v int64) bool { return v == id })
	return nil
}
