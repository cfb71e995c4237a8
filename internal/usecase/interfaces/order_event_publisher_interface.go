package interfaces

import (
	"context"
	"wondershop/internal/domain/entities"
)

// IOrderEventPublisher announces committed orders to downstream consumers.
type IOrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, o entities.Order) error
}
