package response

import (
	"errors"

	"wondershop/internal/domain/entities"
	"wondershop/internal/usecase"
)

type EventResponse struct {
	Outcome string            `json:"outcome"`
	Phase   string            `json:"phase"`
	Intents []entities.Intent `json:"intents"`
	Order   *OrderResponse    `json:"order,omitempty"`
	Product *ProductResponse  `json:"product,omitempty"`
	Error   string            `json:"error,omitempty"`
}

func FromReply(r usecase.Reply) EventResponse {
	resp := EventResponse{
		Outcome: string(r.Outcome),
		Phase:   string(r.Phase),
		Intents: r.Intents,
		Error:   errorKind(r.Err),
	}
	if resp.Intents == nil {
		resp.Intents = []entities.Intent{}
	}
	if r.Order != nil {
		o := FromOrder(*r.Order)
		resp.Order = &o
	}
	if r.Product != nil {
		p := FromProduct(*r.Product)
		resp.Product = &p
	}
	return resp
}

// errorKind reports the error category, never its message.
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, usecase.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, usecase.ErrNotFound):
		return "not_found"
	case errors.Is(err, usecase.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, usecase.ErrUnauthorized):
		return "unauthorized"
	default:
		return "internal"
	}
}
