// Package catalog provides the product catalog. The storefront ships a
// fixed collection; swapping in a database-backed implementation only
// requires satisfying repository.ProductCatalog.
package catalog

import (
	"context"

	"threadz/internal/domain/entity"
	"threadz/internal/domain/repository"
)

type staticCatalog struct {
	products []entity.Product
	byID     map[int]entity.Product
}

// New creates the catalog with the built-in product collection.
func New() repository.ProductCatalog {
	c := &staticCatalog{products: collection()}
	c.byID = make(map[int]entity.Product, len(c.products))
	for _, p := range c.products {
		c.byID[p.ID] = p
	}

	return c
}

func (c *staticCatalog) ListAll(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, len(c.products))
	copy(out, c.products)

	return out, nil
}

func (c *staticCatalog) FindByID(_ context.Context, id int) (*entity.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return &p, nil
}

// collection returns products in featured order.
func collection() []entity.Product {
	return []entity.Product{
		{
			ID:            1,
			Name:          "Urban Classic Hoodie",
			Description:   "Premium cotton blend hoodie with modern streetwear design.",
			Price:         89.99,
			OriginalPrice: 119.99,
			Category:      "Hoodies",
			Gender:        entity.GenderUnisex,
			Images:        []string{"https://images.pexels.com/photos/2013898/pexels-photo-2013898.jpeg"},
			Colors:        []string{"Black", "White", "Gray"},
			Sizes:         []string{"XS", "S", "M", "L", "XL"},
			Rating:        4.8,
			Reviews:       124,
			IsNew:         true,
			CreatedAt:     "2024-01-15",
		},
		{
			ID:          2,
			Name:        "Street Essential Tee",
			Description: "Everyday heavyweight tee with a relaxed streetwear fit.",
			Price:       34.99,
			Category:    "T-Shirts",
			Gender:      entity.GenderUnisex,
			Images:      []string{"https://images.pexels.com/photos/1656684/pexels-photo-1656684.jpeg"},
			Colors:      []string{"White", "Black", "Sand"},
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Rating:      4.6,
			Reviews:     89,
			CreatedAt:   "2024-01-10",
		},
		{
			ID:          3,
			Name:        "Distressed Denim Jacket",
			Description: "Vintage-wash denim jacket with hand-finished distressing.",
			Price:       129.99,
			Category:    "Jeans",
			Gender:      entity.GenderMen,
			Images:      []string{"https://images.pexels.com/photos/1124468/pexels-photo-1124468.jpeg"},
			Colors:      []string{"Blue", "Black"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Rating:      4.5,
			Reviews:     67,
			CreatedAt:   "2024-01-08",
		},
		{
			ID:          4,
			Name:        "Cargo Utility Pants",
			Description: "Relaxed-fit cargo pants with oversized utility pockets.",
			Price:       79.99,
			Category:    "Jeans",
			Gender:      entity.GenderMen,
			Images:      []string{"https://images.pexels.com/photos/1082529/pexels-photo-1082529.jpeg"},
			Colors:      []string{"Olive", "Black", "Khaki"},
			Sizes:       []string{"28", "30", "32", "34", "36"},
			Rating:      4.4,
			Reviews:     52,
			CreatedAt:   "2024-01-05",
		},
		{
			ID:          5,
			Name:        "High-Top Sneakers",
			Description: "Classic high-top sneakers with modern comfort technology.",
			Price:       149.99,
			Category:    "Sneakers",
			Gender:      entity.GenderUnisex,
			Images:      []string{"https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg"},
			Colors:      []string{"White", "Black", "Red"},
			Sizes:       []string{"7", "8", "9", "10", "11", "12"},
			Rating:      4.7,
			Reviews:     203,
			CreatedAt:   "2024-01-12",
		},
		{
			ID:            6,
			Name:          "Oversized Graphic Hoodie",
			Description:   "Drop-shoulder hoodie with screen-printed back graphic.",
			Price:         99.99,
			OriginalPrice: 124.99,
			Category:      "Hoodies",
			Gender:        entity.GenderWomen,
			Images:        []string{"https://images.pexels.com/photos/6311392/pexels-photo-6311392.jpeg"},
			Colors:        []string{"Cream", "Black"},
			Sizes:         []string{"XS", "S", "M", "L"},
			Rating:        4.6,
			Reviews:       41,
			IsNew:         true,
			CreatedAt:     "2024-01-18",
		},
		{
			ID:          7,
			Name:        "Logo Snapback Cap",
			Description: "Structured six-panel snapback with embroidered logo.",
			Price:       29.99,
			Category:    "Accessories",
			Gender:      entity.GenderUnisex,
			Images:      []string{"https://images.pexels.com/photos/1124465/pexels-photo-1124465.jpeg"},
			Colors:      []string{"Black", "Navy"},
			Sizes:       []string{"One Size"},
			Rating:      4.3,
			Reviews:     118,
			CreatedAt:   "2024-01-02",
		},
		{
			ID:          8,
			Name:        "Relaxed Slim Jeans",
			Description: "Mid-rise slim jeans in a stretch denim with a tapered leg.",
			Price:       94.99,
			Category:    "Jeans",
			Gender:      entity.GenderWomen,
			Images:      []string{"https://images.pexels.com/photos/1598507/pexels-photo-1598507.jpeg"},
			Colors:      []string{"Blue", "Light Wash"},
			Sizes:       []string{"26", "27", "28", "29", "30"},
			Rating:      4.5,
			Reviews:     76,
			CreatedAt:   "2024-01-03",
		},
	}
}
