// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pricing

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/querylab/internal/platform/database/schema"
	"github.com/taibuivan/querylab/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) CreateProduct(ctx context.Context, product *Product) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s) VALUES ($1, $2)
		RETURNING %s, %s
	`, schema.PricedProduct.Table, schema.PricedProduct.Name, schema.PricedProduct.Price,
		schema.PricedProduct.ID, schema.PricedProduct.Price)

	err := repository.db.QueryRow(ctx, sql, product.Name, product.Price).Scan(&product.ID, &product.Price)
	return dberr.Wrap(err, "Product", "create_product")
}

func (repository *PostgresRepository) GetProduct(ctx context.Context, id int64) (*Product, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s p WHERE p.%s = $1`,
		schema.Select("p", schema.PricedProduct.Columns()...), schema.PricedProduct.Table, schema.PricedProduct.ID)

	product := &Product{}
	if err := repository.db.QueryRow(ctx, sql, id).Scan(&product.ID, &product.Name, &product.Price); err != nil {
		return nil, dberr.Wrap(err, "Product", "get_product")
	}
	return product, nil
}
