// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// LineKey is the composite identity of a cart line. Two lines with the same
// product but a different size or color are distinct lines.
type LineKey struct {
	ProductID int    `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// CartItem is one distinct (product, size, color) combination in the cart.
// This struct is also the persisted record shape, so the JSON tags are part
// of the storage contract.
type CartItem struct {
	ProductID int     `json:"productId"` // Catalog ID of the product.
	Name      string  `json:"name"`      // Display name at the time the line was added.
	Price     float64 `json:"price"`     // Unit price, non-negative.
	Image     string  `json:"image"`     // Image reference for the line.
	Size      string  `json:"size"`      // Selected size.
	Color     string  `json:"color"`     // Selected color.
	Quantity  int     `json:"quantity"`  // Always >= 1 while the line exists.
}

// Key returns the line's composite identity.
func (i CartItem) Key() LineKey {
	return LineKey{ProductID: i.ProductID, Size: i.Size, Color: i.Color}
}

// CartSnapshot is the externally observable state of the cart. Total and
// ItemCount are derived from Items and are recomputed on every transition,
// never stored independently.
type CartSnapshot struct {
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}

// ComputeCartTotals derives the total price and item count from a line sequence.
func ComputeCartTotals(items []CartItem) (total float64, itemCount int) {
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
		itemCount += item.Quantity
	}

	return total, itemCount
}
