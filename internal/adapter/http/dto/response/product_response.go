package response

import "wondershop/internal/domain/entities"

type ProductResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	PhotoRef string `json:"photo_ref,omitempty"`
	InStock  bool   `json:"in_stock"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Quantity: p.Quantity,
		PhotoRef: p.PhotoRef,
		InStock:  p.InStock(),
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
