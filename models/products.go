package models

type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	InStock     bool     `json:"inStock"`
}

// ProductCreate is the payload for POST and PUT /api/products.
// InStock is a pointer so an omitted field defaults to true.
type ProductCreate struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    string   `json:"category" validate:"required"`
	Image       string   `json:"image"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	InStock     *bool    `json:"inStock"`
}

func (p ProductCreate) Product() Product {
	inStock := true
	if p.InStock != nil {
		inStock = *p.InStock
	}
	return Product{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		Sizes:       p.Sizes,
		Colors:      p.Colors,
		InStock:     inStock,
	}
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
