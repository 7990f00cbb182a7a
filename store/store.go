package store

import (
	"context"
	"errors"

	"rajas/models"
)

// ErrNotFound is returned when a product or order id does not exist.
var ErrNotFound = errors.New("not found")

// CategoryAll is the sentinel filter value meaning "no filter".
const CategoryAll = "all"

type ProductStore interface {
	List(ctx context.Context, category string) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Create(ctx context.Context, p models.Product) (*models.Product, error)
	Update(ctx context.Context, id int, p models.Product) (*models.Product, error)
	Delete(ctx context.Context, id int) error
}

type OrderStore interface {
	Create(ctx context.Context, o models.Order) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	Delete(ctx context.Context, id int) error
	UpdateStatus(ctx context.Context, id int, status string) (*models.Order, error)
	Stats(ctx context.Context) (*models.AdminStats, error)
}

func filterActive(category string) bool {
	return category != "" && category != CategoryAll
}
