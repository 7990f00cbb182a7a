package condb

import (
	"context"
	"os"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/rs/zerolog"

	"rajas/config"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func Connect(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

const productsDDL = `
CREATE TABLE IF NOT EXISTS products (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price DOUBLE PRECISION NOT NULL,
	category TEXT NOT NULL,
	image TEXT NOT NULL DEFAULT '',
	sizes TEXT[] NOT NULL DEFAULT '{}',
	colors TEXT[] NOT NULL DEFAULT '{}',
	in_stock BOOLEAN NOT NULL DEFAULT TRUE
)`

const ordersDDL = `
CREATE TABLE IF NOT EXISTS orders (
	id SERIAL PRIMARY KEY,
	customer_name TEXT NOT NULL,
	phone TEXT NOT NULL,
	email TEXT NOT NULL,
	cnic TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL,
	product_id INTEGER NOT NULL,
	product_name TEXT NOT NULL,
	quantity INTEGER NOT NULL DEFAULT 1,
	total_price DOUBLE PRECISION NOT NULL,
	payment_method TEXT NOT NULL DEFAULT 'COD',
	status TEXT NOT NULL DEFAULT 'pending',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// EnsureSchema creates both tables when absent. There is no migration
// mechanism beyond this.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, ddl := range []string{productsDDL, ordersDDL} {
		if _, err := pool.Exec(ctx, ddl); err != nil {
			return err
		}
	}
	return nil
}

// SeedProducts loads the starter catalog into an empty products table.
// A non-empty table is left alone, so restarts never duplicate rows.
func SeedProducts(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		logger.Info().Int("products", count).Msg("Catalog already seeded, skipping")
		return nil
	}

	for _, p := range seedProducts {
		_, err := pool.Exec(ctx,
			`INSERT INTO products (id, name, description, price, category, image, sizes, colors, in_stock)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			p.ID, p.Name, p.Description, p.Price, p.Category, p.Image, p.Sizes, p.Colors, p.InStock,
		)
		if err != nil {
			return err
		}
	}

	// seeds carry explicit ids, so move the sequence past them
	if _, err := pool.Exec(ctx,
		`SELECT setval('products_id_seq', (SELECT MAX(id) FROM products))`); err != nil {
		return err
	}

	logger.Info().Int("products", len(seedProducts)).Msg("Seeded catalog")
	return nil
}
