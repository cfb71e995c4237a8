package entities

import "time"

// Order is an immutable ledger entry created when an inventory transaction commits.
//
// ProductName is a snapshot taken at order time so history survives catalog
// edits; ProductID may dangle once the product is deleted.
type Order struct {
	ID          int64     `json:"order_id"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	BuyerID     string    `json:"buyer_id"`
	CreatedAt   time.Time `json:"created_at"`
}
