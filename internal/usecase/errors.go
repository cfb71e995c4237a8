package usecase

import "wondershop/internal/domain/entities"

var (
	ErrInvalidInput      = entities.ErrInvalidInput
	ErrNotFound          = entities.ErrNotFound
	ErrInsufficientStock = entities.ErrInsufficientStock
	ErrUnauthorized      = entities.ErrUnauthorized
)
