package response

import (
	"time"

	"wondershop/internal/domain/entities"
)

type OrderResponse struct {
	OrderID     int64     `json:"order_id"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	BuyerID     string    `json:"buyer_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		OrderID:     o.ID,
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
		Quantity:    o.Quantity,
		BuyerID:     o.BuyerID,
		CreatedAt:   o.CreatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
