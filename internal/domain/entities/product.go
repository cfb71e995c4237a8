package entities

// Product is a catalog entry with finite stock.
//
// Domain notes:
//   - Quantity never drops below zero; a product sold out stays listed.
//   - PhotoRef is an opaque media reference; empty means "use the default photo".
type Product struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	PhotoRef string `json:"photo_ref,omitempty"`
}

func (p Product) InStock() bool {
	return p.Quantity > 0
}

// PhotoOr returns the product photo, falling back to def when none was uploaded.
func (p Product) PhotoOr(def string) string {
	if p.PhotoRef != "" {
		return p.PhotoRef
	}
	return def
}
