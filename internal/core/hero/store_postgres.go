// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
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

var heroColumns = schema.Select("", schema.Hero.Columns()...)

func scanHero(row pgx.Row) (*Hero, error) {
	hero := &Hero{}
	if err := row.Scan(&hero.ID, &hero.Name, &hero.HeroTitle, &hero.Energy); err != nil {
		return nil, err
	}
	return hero, nil
}

func (repository *PostgresRepository) CreateHero(ctx context.Context, hero *Hero) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)
		RETURNING %s
	`, schema.Hero.Table, schema.Hero.Name, schema.Hero.HeroTitle, schema.Hero.Energy, schema.Hero.ID)

	err := repository.db.QueryRow(ctx, sql, hero.Name, hero.HeroTitle, hero.Energy).Scan(&hero.ID)
	return dberr.Wrap(err, "Hero", "create_hero")
}

func (repository *PostgresRepository) GetHero(ctx context.Context, id int64) (*Hero, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, heroColumns, schema.Hero.Table, schema.Hero.ID)

	hero, err := scanHero(repository.db.QueryRow(ctx, sql, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Hero", "get_hero")
	}
	return hero, nil
}

func (repository *PostgresRepository) Recharge(ctx context.Context, id int64, amount int) (*Hero, error) {
	sql := fmt.Sprintf(`
		UPDATE %s SET %s = LEAST(%s + $2, $3)
		WHERE %s = $1
		RETURNING %s
	`, schema.Hero.Table, schema.Hero.Energy, schema.Hero.Energy, schema.Hero.ID, heroColumns)

	hero, err := scanHero(repository.db.QueryRow(ctx, sql, id, amount, MaxEnergy))
	if err != nil {
		return nil, dberr.Wrap(err, "Hero", "recharge_energy")
	}
	return hero, nil
}

func (repository *PostgresRepository) SpendEnergy(ctx context.Context, id int64, cost int) (*Hero, bool, error) {
	sql := fmt.Sprintf(`
		UPDATE %s SET %s = %s - $2
		WHERE %s = $1 AND %s - $2 > 0
		RETURNING %s
	`, schema.Hero.Table, schema.Hero.Energy, schema.Hero.Energy, schema.Hero.ID, schema.Hero.Energy, heroColumns)

	hero, err := scanHero(repository.db.QueryRow(ctx, sql, id, cost))
	if err == nil {
		return hero, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, dberr.Wrap(err, "Hero", "spend_energy")
	}

	hero, err = repository.GetHero(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return hero, false, nil
}
