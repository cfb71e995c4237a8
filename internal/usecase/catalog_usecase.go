package usecase

import (
	"context"
	"fmt"
	"strings"

	"wondershop/internal/domain/entities"
	"wondershop/internal/infrastructure/observability"
	"wondershop/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ICatalogUseCase exposes catalog maintenance and reads.
type ICatalogUseCase interface {
	CreateProduct(ctx context.Context, name string, quantity int, photoRef string) (entities.Product, error)
	GetProduct(ctx context.Context, id int64) (entities.Product, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type CatalogUseCase struct {
	repo   interfaces.ICatalogRepository
	logger observability.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository, logger observability.Logger) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, logger: logger}
}

func (u *CatalogUseCase) CreateProduct(ctx context.Context, name string, quantity int, photoRef string) (entities.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Product{}, fmt.Errorf("%w: empty product name", ErrInvalidInput)
	}
	if quantity <= 0 {
		return entities.Product{}, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	p, err := u.repo.Create(ctx, entities.Product{
		Name:     name,
		Quantity: quantity,
		PhotoRef: strings.TrimSpace(photoRef),
	})
	if err != nil {
		u.logger.Error("[catalog][usecase] create failed", zap.Error(err), zap.String("name", name))
		return entities.Product{}, err
	}
	u.logger.Info("[catalog][usecase] product created", zap.Int64("product_id", p.ID), zap.Int("quantity", p.Quantity))
	return p, nil
}

func (u *CatalogUseCase) GetProduct(ctx context.Context, id int64) (entities.Product, error) {
	if id <= 0 {
		return entities.Product{}, fmt.Errorf("%w: product id must be positive", ErrInvalidInput)
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == 0 {
		return entities.Product{}, fmt.Errorf("%w: product %d", ErrNotFound, id)
	}
	return p, nil
}

func (u *CatalogUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: product id must be positive", ErrInvalidInput)
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.logger.Info("[catalog][usecase] product deleted", zap.Int64("product_id", id))
	return nil
}
