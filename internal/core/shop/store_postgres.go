// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/querylab/internal/platform/database/schema"
	"github.com/taibuivan/querylab/internal/platform/dberr"
	"github.com/taibuivan/querylab/internal/platform/postgres"
	"github.com/taibuivan/querylab/pkg/pointer"
	"github.com/taibuivan/querylab/pkg/query"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	profileColumns = schema.Select("p", schema.Profile.Columns()...)
	productColumns = schema.Select("pr", schema.ShopProduct.Columns()...)

	// orderCount counts the orders of profile p.
	orderCount = fmt.Sprintf(`(SELECT COUNT(*) FROM %s o WHERE o.%s = p.%s)`,
		schema.Order.Table, schema.Order.ProfileID, schema.Profile.ID)
)

func scanProfile(row pgx.Row, profile *Profile, extra ...any) error {
	dest := append([]any{&profile.ID, &profile.FullName, &profile.Email, &profile.PhoneNumber, &profile.Address,
		&profile.IsActive, &profile.CreationDate}, extra...)
	return row.Scan(dest...)
}

func scanProduct(row pgx.Row, product *Product, extra ...any) error {
	dest := append([]any{&product.ID, &product.Name, &product.Description, &product.Price, &product.InStock,
		&product.IsAvailable, &product.CreationDate}, extra...)
	return row.Scan(dest...)
}

// # Records

func (repository *PostgresRepository) CreateProfile(ctx context.Context, profile *Profile) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6::timestamptz, now()))
		RETURNING %s, %s
	`,
		schema.Profile.Table,
		schema.Profile.FullName, schema.Profile.Email, schema.Profile.PhoneNumber, schema.Profile.Address,
		schema.Profile.IsActive, schema.Profile.CreationDate,
		schema.Profile.ID, schema.Profile.CreationDate,
	)

	err := repository.db.QueryRow(ctx, sql,
		profile.FullName, profile.Email, profile.PhoneNumber, profile.Address, profile.IsActive,
		pointer.NonZero(profile.CreationDate),
	).Scan(&profile.ID, &profile.CreationDate)
	return dberr.Wrap(err, "Profile", "create_profile")
}

func (repository *PostgresRepository) GetProfile(ctx context.Context, id int64) (*Profile, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s p WHERE p.%s = $1`, profileColumns, schema.Profile.Table, schema.Profile.ID)

	profile := &Profile{}
	if err := scanProfile(repository.db.QueryRow(ctx, sql, id), profile); err != nil {
		return nil, dberr.Wrap(err, "Profile", "get_profile")
	}
	return profile, nil
}

func (repository *PostgresRepository) CreateProduct(ctx context.Context, product *Product) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6::timestamptz, now()))
		RETURNING %s, %s
	`,
		schema.ShopProduct.Table,
		schema.ShopProduct.Name, schema.ShopProduct.Description, schema.ShopProduct.Price, schema.ShopProduct.InStock,
		schema.ShopProduct.IsAvailable, schema.ShopProduct.CreationDate,
		schema.ShopProduct.ID, schema.ShopProduct.CreationDate,
	)

	err := repository.db.QueryRow(ctx, sql,
		product.Name, product.Description, product.Price, product.InStock, product.IsAvailable,
		pointer.NonZero(product.CreationDate),
	).Scan(&product.ID, &product.CreationDate)
	return dberr.Wrap(err, "Product", "create_product")
}

func (repository *PostgresRepository) GetProduct(ctx context.Context, id int64) (*Product, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s pr WHERE pr.%s = $1`, productColumns, schema.ShopProduct.Table, schema.ShopProduct.ID)

	product := &Product{}
	if err := scanProduct(repository.db.QueryRow(ctx, sql, id), product); err != nil {
		return nil, dberr.Wrap(err, "Product", "get_product")
	}
	return product, nil
}

func (repository *PostgresRepository) CreateOrder(ctx context.Context, order *Order) error {
	insertOrder := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, COALESCE($4::timestamptz, now()))
		RETURNING %s, %s
	`,
		schema.Order.Table,
		schema.Order.ProfileID, schema.Order.TotalPrice, schema.Order.IsCompleted, schema.Order.CreationDate,
		schema.Order.ID, schema.Order.CreationDate,
	)
	insertProducts := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING
	`, schema.OrderProduct.Table, schema.OrderProduct.OrderID, schema.OrderProduct.ProductID)

	err := postgres.WithTx(ctx, repository.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertOrder,
			order.ProfileID, order.TotalPrice, order.IsCompleted, pointer.NonZero(order.CreationDate),
		).Scan(&order.ID, &order.CreationDate); err != nil {
			return err
		}

		if len(order.ProductIDs) == 0 {
			order.ProductIDs = []int64{}
			return nil
		}
		_, err := tx.Exec(ctx, insertProducts, order.ID, order.ProductIDs)
		return err
	})
	return dberr.Wrap(err, "Order", "create_order")
}

func (repository *PostgresRepository) GetOrder(ctx context.Context, id int64) (*Order, error) {
	sql := fmt.Sprintf(`
		SELECT o.%s, o.%s, o.%s, o.%s, o.%s,
		       COALESCE(array_agg(op.%s ORDER BY op.%s) FILTER (WHERE op.%s IS NOT NULL), '{}')
		FROM %s o
		LEFT JOIN %s op ON op.%s = o.%s
		WHERE o.%s = $1
		GROUP BY o.%s
	`,
		schema.Order.ID, schema.Order.ProfileID, schema.Order.TotalPrice, schema.Order.IsCompleted, schema.Order.CreationDate,
		schema.OrderProduct.ProductID, schema.OrderProduct.ProductID, schema.OrderProduct.ProductID,
		schema.Order.Table,
		schema.OrderProduct.Table, schema.OrderProduct.OrderID, schema.Order.ID,
		schema.Order.ID,
		schema.Order.ID,
	)

	order := &Order{}
	err := repository.db.QueryRow(ctx, sql, id).Scan(
		&order.ID, &order.ProfileID, &order.TotalPrice, &order.IsCompleted, &order.CreationDate, &order.ProductIDs,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Order", "get_order")
	}
	return order, nil
}

// # Reports

func (repository *PostgresRepository) SearchProfiles(ctx context.Context, search string) ([]ProfileOrders, error) {
	sql := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s p
		WHERE p.%s ILIKE $1 OR p.%s ILIKE $1 OR p.%s ILIKE $1
		ORDER BY p.%s %s, p.%s
	`,
		profileColumns, orderCount,
		schema.Profile.Table,
		schema.Profile.FullName, schema.Profile.Email, schema.Profile.PhoneNumber,
		schema.Profile.FullName, schema.CollateC, schema.Profile.ID,
	)
	return repository.queryProfileOrders(ctx, "search_profiles", sql, query.Contains(search))
}

func (repository *PostgresRepository) ProfilesWithMoreOrders(ctx context.Context, minOrders int) ([]ProfileOrders, error) {
	sql := fmt.Sprintf(`
		SELECT * FROM (
			SELECT %s, %s AS orders
			FROM %s p
		) ranked
		WHERE ranked.orders > $1
		ORDER BY ranked.orders DESC, ranked.%s %s, ranked.%s
	`,
		profileColumns, orderCount,
		schema.Profile.Table,
		schema.Profile.FullName, schema.CollateC, schema.Profile.ID,
	)
	return repository.queryProfileOrders(ctx, "profiles_with_more_orders", sql, minOrders)
}

func (repository *PostgresRepository) queryProfileOrders(ctx context.Context, action, sql string, args ...any) ([]ProfileOrders, error) {
	rows, err := repository.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Profile", action)
	}
	defer rows.Close()

	var result []ProfileOrders
	for rows.Next() {
		var row ProfileOrders
		if err := scanProfile(rows, &row.Profile, &row.Orders); err != nil {
			return nil, dberr.Wrap(err, "Profile", "scan_profile_orders")
		}
		result = append(result, row)
	}
	return result, dberr.Wrap(rows.Err(), "Profile", action)
}

func (repository *PostgresRepository) LatestOrderProducts(ctx context.Context) ([]string, bool, error) {
	sql := fmt.Sprintf(`
		WITH latest AS (
			SELECT o.%s FROM %s o
			ORDER BY o.%s DESC, o.%s DESC
			LIMIT 1
		)
		SELECT COALESCE(array_agg(pr.%s ORDER BY pr.%s %s, pr.%s) FILTER (WHERE pr.%s IS NOT NULL), '{}')
		FROM latest
		LEFT JOIN %s op ON op.%s = latest.%s
		LEFT JOIN %s pr ON pr.%s = op.%s
		GROUP BY latest.%s
	`,
		schema.Order.ID, schema.Order.Table,
		schema.Order.CreationDate, schema.Order.ID,
		schema.ShopProduct.Name, schema.ShopProduct.Name, schema.CollateC, schema.ShopProduct.ID, schema.ShopProduct.ID,
		schema.OrderProduct.Table, schema.OrderProduct.OrderID, schema.Order.ID,
		schema.ShopProduct.Table, schema.ShopProduct.ID, schema.OrderProduct.ProductID,
		schema.Order.ID,
	)

	var names []string
	err := repository.db.QueryRow(ctx, sql).Scan(&names)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, dberr.Wrap(err, "Order", "latest_order_products")
	}
	return names, true, nil
}

func (repository *PostgresRepository) TopProducts(ctx context.Context, limit int) ([]ProductOrders, error) {
	sql := fmt.Sprintf(`
		SELECT %s, COUNT(op.%s) AS orders
		FROM %s pr
		JOIN %s op ON op.%s = pr.%s
		GROUP BY pr.%s
		ORDER BY orders DESC, pr.%s %s, pr.%s
		LIMIT $1
	`,
		productColumns, schema.OrderProduct.OrderID,
		schema.ShopProduct.Table,
		schema.OrderProduct.Table, schema.OrderProduct.ProductID, schema.ShopProduct.ID,
		schema.ShopProduct.ID,
		schema.ShopProduct.Name, schema.CollateC, schema.ShopProduct.ID,
	)

	rows, err := repository.db.Query(ctx, sql, schema.Limit(limit))
	if err != nil {
		return nil, dberr.Wrap(err, "Product", "top_products")
	}
	defer rows.Close()

	var result []ProductOrders
	for rows.Next() {
		var row ProductOrders
		if err := scanProduct(rows, &row.Product, &row.Orders); err != nil {
			return nil, dberr.Wrap(err, "Product", "scan_product_orders")
		}
		result = append(result, row)
	}
	return result, dberr.Wrap(rows.Err(), "Product", "top_products")
}

// # Bulk Updates

func (repository *PostgresRepository) DiscountOpenOrders(ctx context.Context, minProducts int, factor float64) (int, error) {
	sql := fmt.Sprintf(`
		UPDATE %s o
		SET %s = ROUND(o.%s * $2::numeric, 2)
		WHERE NOT o.%s
		  AND (SELECT COUNT(*) FROM %s op WHERE op.%s = o.%s) > $1
	`,
		schema.Order.Table,
		schema.Order.TotalPrice, schema.Order.TotalPrice,
		schema.Order.IsCompleted,
		schema.OrderProduct.Table, schema.OrderProduct.OrderID, schema.Order.ID,
	)

	tag, err := repository.db.Exec(ctx, sql, minProducts, factor)
	if err != nil {
		return 0, dberr.Wrap(err, "Order", "discount_open_orders")
	}
	return int(tag.RowsAffected()), nil
}

func (repository *PostgresRepository) CompleteOldestOrder(ctx context.Context) (bool, error) {
	lockOldest := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE NOT %s
		ORDER BY %s, %s
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`, schema.Order.ID, schema.Order.Table, schema.Order.IsCompleted, schema.Order.CreationDate, schema.Order.ID)

	complete := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $1`,
		schema.Order.Table, schema.Order.IsCompleted, schema.Order.ID)

	takeStock := fmt.Sprintf(`
		UPDATE %s pr
		SET %s = GREATEST(pr.%s - 1, 0),
		    %s = pr.%s AND pr.%s > 1
		FROM %s op
		WHERE op.%s = pr.%s AND op.%s = $1
	`,
		schema.ShopProduct.Table,
		schema.ShopProduct.InStock, schema.ShopProduct.InStock,
		schema.ShopProduct.IsAvailable, schema.ShopProduct.IsAvailable, schema.ShopProduct.InStock,
		schema.OrderProduct.Table,
		schema.OrderProduct.ProductID, schema.ShopProduct.ID, schema.OrderProduct.OrderID,
	)

	completed := false
	err := postgres.WithTx(ctx, repository.db, func(tx pgx.Tx) error {
		var orderID int64
		err := tx.QueryRow(ctx, lockOldest).Scan(&orderID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, complete, orderID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, takeStock, orderID); err != nil {
			return err
		}

		completed = true
		return nil
	})
	if err != nil {
		return false, dberr.Wrap(err, "Order", "complete_oldest_order")
	}
	return completed, nil
}
