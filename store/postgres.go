package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"rajas/models"
)

// PostgresProducts implements ProductStore on a shared pool.
type PostgresProducts struct {
	pool *pgxpool.Pool
}

func NewPostgresProducts(pool *pgxpool.Pool) *PostgresProducts {
	return &PostgresProducts{pool: pool}
}

var _ ProductStore = (*PostgresProducts)(nil)

const productColumns = `id, name, description, price, category, image, sizes, colors, in_stock`

func (s *PostgresProducts) List(ctx context.Context, category string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id ASC`
	args := []interface{}{}
	if filterActive(category) {
		query = `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY id ASC`
		args = append(args, category)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
			&p.Image, &p.Sizes, &p.Colors, &p.InStock); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *PostgresProducts) GetByID(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	err := s.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
		&p.Image, &p.Sizes, &p.Colors, &p.InStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *PostgresProducts) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO products (name, description, price, category, image, sizes, colors, in_stock)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 RETURNING id`,
		p.Name, p.Description, p.Price, p.Category, p.Image, p.Sizes, p.Colors, p.InStock,
	).Scan(&p.ID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PostgresProducts) Update(ctx context.Context, id int, p models.Product) (*models.Product, error) {
	tag, err := s.pool.Exec(ctx,
		`UPDATE products
		 SET name=$1, description=$2, price=$3, category=$4, image=$5, sizes=$6, colors=$7, in_stock=$8
		 WHERE id=$9`,
		p.Name, p.Description, p.Price, p.Category, p.Image, p.Sizes, p.Colors, p.InStock, id,
	)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	p.ID = id
	return &p, nil
}

func (s *PostgresProducts) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// PostgresOrders implements OrderStore.
type PostgresOrders struct {
	pool *pgxpool.Pool
}

func NewPostgresOrders(pool *pgxpool.Pool) *PostgresOrders {
	return &PostgresOrders{pool: pool}
}

var _ OrderStore = (*PostgresOrders)(nil)

const orderColumns = `id, customer_name, phone, email, cnic, address, product_id, product_name, quantity, total_price, payment_method, status, created_at`

func (s *PostgresOrders) Create(ctx context.Context, o models.Order) (*models.Order, error) {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO orders (customer_name, phone, email, cnic, address, product_id, product_name, quantity, total_price, payment_method, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		 RETURNING id, created_at`,
		o.CustomerName, o.Phone, o.Email, o.CNIC, o.Address,
		o.ProductID, o.ProductName, o.Quantity, o.TotalPrice, o.PaymentMethod, o.Status,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *PostgresOrders) List(ctx context.Context) ([]models.Order, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.Phone, &o.Email, &o.CNIC, &o.Address,
			&o.ProductID, &o.ProductName, &o.Quantity, &o.TotalPrice, &o.PaymentMethod,
			&o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *PostgresOrders) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresOrders) UpdateStatus(ctx context.Context, id int, status string) (*models.Order, error) {
	var o models.Order
	err := s.pool.QueryRow(ctx,
		`UPDATE orders SET status=$1 WHERE id=$2
		 RETURNING `+orderColumns,
		status, id,
	).Scan(&o.ID, &o.CustomerName, &o.Phone, &o.Email, &o.CNIC, &o.Address,
		&o.ProductID, &o.ProductName, &o.Quantity, &o.TotalPrice, &o.PaymentMethod,
		&o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (s *PostgresOrders) Stats(ctx context.Context) (*models.AdminStats, error) {
	var st models.AdminStats
	err := s.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'completed' AND created_at >= date_trunc('day', now())),
			COUNT(*) FILTER (WHERE status = 'completed' AND created_at >= date_trunc('week', now())),
			COUNT(*) FILTER (WHERE status = 'completed' AND created_at >= date_trunc('month', now())),
			COALESCE(SUM(total_price) FILTER (WHERE status = 'completed' AND created_at >= date_trunc('day', now())), 0),
			COALESCE(SUM(total_price) FILTER (WHERE status = 'completed' AND created_at >= date_trunc('week', now())), 0),
			COALESCE(SUM(total_price) FILTER (WHERE status = 'completed' AND created_at >= date_trunc('month', now())), 0)
		FROM orders`,
	).Scan(&st.TotalOrders, &st.PendingOrders,
		&st.CompletedToday, &st.CompletedThisWeek, &st.CompletedThisMonth,
		&st.SalesToday, &st.SalesThisWeek, &st.SalesThisMonth)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
