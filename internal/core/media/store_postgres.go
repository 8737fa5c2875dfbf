// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/querylab/internal/platform/database/schema"
	"github.com/taibuivan/querylab/internal/platform/dberr"
	"github.com/taibuivan/querylab/pkg/pointer"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// mediaTable names the columns every media table shares, plus the kind-specific ones.
type mediaTable struct {
	resource    string
	table       string
	id          string
	title       string
	description string
	genre       string
	createdAt   string
	extra       []string
}

func (t mediaTable) columns() []string {
	return append([]string{t.id, t.title, t.description, t.genre, t.createdAt}, t.extra...)
}

var (
	bookTable = mediaTable{
		resource: "Book", table: schema.Book.Table, id: schema.Book.ID, title: schema.Book.Title,
		description: schema.Book.Description, genre: schema.Book.Genre, createdAt: schema.Book.CreatedAt,
		extra: []string{schema.Book.Author, schema.Book.ISBN},
	}
	movieTable = mediaTable{
		resource: "Movie", table: schema.MediaMovie.Table, id: schema.MediaMovie.ID, title: schema.MediaMovie.Title,
		description: schema.MediaMovie.Description, genre: schema.MediaMovie.Genre, createdAt: schema.MediaMovie.CreatedAt,
		extra: []string{schema.MediaMovie.Director},
	}
	musicTable = mediaTable{
		resource: "Music", table: schema.Music.Table, id: schema.Music.ID, title: schema.Music.Title,
		description: schema.Music.Description, genre: schema.Music.Genre, createdAt: schema.Music.CreatedAt,
		extra: []string{schema.Music.Artist},
	}

	customerColumns = schema.Select("c", schema.Customer.Columns()...)
)

func baseFields(base *BaseMedia) []any {
	return []any{&base.ID, &base.Title, &base.Description, &base.Genre, &base.CreatedAt}
}

// # Media

func (repository *PostgresRepository) CreateBook(ctx context.Context, book *Book) error {
	return repository.insert(ctx, bookTable, &book.BaseMedia, book.Author, book.ISBN)
}

func (repository *PostgresRepository) ListBooks(ctx context.Context) ([]Book, error) {
	return list(ctx, repository, bookTable, func(row pgx.Row) (Book, error) {
		var book Book
		err := row.Scan(append(baseFields(&book.BaseMedia), &book.Author, &book.ISBN)...)
		return book, err
	})
}

func (repository *PostgresRepository) CreateMovie(ctx context.Context, movie *Movie) error {
	return repository.insert(ctx, movieTable, &movie.BaseMedia, movie.Director)
}

func (repository *PostgresRepository) ListMovies(ctx context.Context) ([]Movie, error) {
	return list(ctx, repository, movieTable, func(row pgx.Row) (Movie, error) {
		var movie Movie
		err := row.Scan(append(baseFields(&movie.BaseMedia), &movie.Director)...)
		return movie, err
	})
}

func (repository *PostgresRepository) CreateMusic(ctx context.Context, music *Music) error {
	return repository.insert(ctx, musicTable, &music.BaseMedia, music.Artist)
}

func (repository *PostgresRepository) ListMusic(ctx context.Context) ([]Music, error) {
	return list(ctx, repository, musicTable, func(row pgx.Row) (Music, error) {
		var music Music
		err := row.Scan(append(baseFields(&music.BaseMedia), &music.Artist)...)
		return music, err
	})
}

// insert writes the shared columns followed by extra, in the order of table.extra.
func (repository *PostgresRepository) insert(ctx context.Context, table mediaTable, base *BaseMedia, extra ...any) error {
	placeholders := make([]string, len(extra))
	for i := range extra {
		placeholders[i] = fmt.Sprintf("$%d", i+5)
	}

	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, COALESCE($4::timestamptz, now()), %s)
		RETURNING %s, %s
	`,
		table.table,
		table.title, table.description, table.genre, table.createdAt, strings.Join(table.extra, ", "),
		strings.Join(placeholders, ", "),
		table.id, table.createdAt,
	)

	args := append([]any{base.Title, base.Description, base.Genre, pointer.NonZero(base.CreatedAt)}, extra...)
	err := repository.db.QueryRow(ctx, sql, args...).Scan(&base.ID, &base.CreatedAt)
	return dberr.Wrap(err, table.resource, "create_"+strings.ToLower(table.resource))
}

func list[T any](ctx context.Context, repository *PostgresRepository, table mediaTable, scan func(pgx.Row) (T, error)) ([]T, error) {
	action := "list_" + strings.ToLower(table.resource)
	sql := fmt.Sprintf(`
		SELECT %s FROM %s m
		ORDER BY m.%s DESC, m.%s %s, m.%s
	`, schema.Select("m", table.columns()...), table.table, table.createdAt, table.title, schema.CollateC, table.id)

	rows, err := repository.db.Query(ctx, sql)
	if err != nil {
		return nil, dberr.Wrap(err, table.resource, action)
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, dberr.Wrap(err, table.resource, action)
		}
		items = append(items, item)
	}
	return items, dberr.Wrap(rows.Err(), table.resource, action)
}

// # Customers

func (repository *PostgresRepository) CreateCustomer(ctx context.Context, customer *Customer) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`,
		schema.Customer.Table,
		schema.Customer.Name, schema.Customer.Age, schema.Customer.Email, schema.Customer.PhoneNumber, schema.Customer.WebsiteURL,
		schema.Customer.ID,
	)

	err := repository.db.QueryRow(ctx, sql,
		customer.Name, customer.Age, customer.Email, customer.PhoneNumber, customer.WebsiteURL,
	).Scan(&customer.ID)
	return dberr.Wrap(err, "Customer", "create_customer")
}

func (repository *PostgresRepository) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s c WHERE c.%s = $1`, customerColumns, schema.Customer.Table, schema.Customer.ID)

	customer := &Customer{}
	err := repository.db.QueryRow(ctx, sql, id).Scan(
		&customer.ID, &customer.Name, &customer.Age, &customer.Email, &customer.PhoneNumber, &customer.WebsiteURL,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Customer", "get_customer")
	}
	return customer, nil
}
