// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

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

var (
	listingColumns = schema.Select("l", schema.Listing.Columns()...)
	gameColumns    = schema.Select("g", schema.VideoGame.Columns()...)
)

func scanListing(row pgx.Row, listing *Listing) error {
	return row.Scan(&listing.ID, &listing.PropertyType, &listing.Price, &listing.Bedrooms, &listing.Location)
}

func scanGame(row pgx.Row, game *VideoGame) error {
	return row.Scan(&game.ID, &game.Title, &game.Genre, &game.ReleaseYear, &game.Rating)
}

// # Listings

func (repository *PostgresRepository) CreateListing(ctx context.Context, listing *Listing) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s
	`,
		schema.Listing.Table,
		schema.Listing.PropertyType, schema.Listing.Price, schema.Listing.Bedrooms, schema.Listing.Location,
		schema.Listing.ID, schema.Listing.Price,
	)

	err := repository.db.QueryRow(ctx, sql,
		listing.PropertyType, listing.Price, listing.Bedrooms, listing.Location,
	).Scan(&listing.ID, &listing.Price)
	return dberr.Wrap(err, "Listing", "create_listing")
}

func (repository *PostgresRepository) GetListing(ctx context.Context, id int64) (*Listing, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s l WHERE l.%s = $1`, listingColumns, schema.Listing.Table, schema.Listing.ID)

	listing := &Listing{}
	if err := scanListing(repository.db.QueryRow(ctx, sql, id), listing); err != nil {
		return nil, dberr.Wrap(err, "Listing", "get_listing")
	}
	return listing, nil
}

func (repository *PostgresRepository) ListingsByPropertyType(ctx context.Context, propertyType string) ([]Listing, error) {
	return repository.findListings(ctx, "listings_by_property_type",
		fmt.Sprintf(`l.%s = $1`, schema.Listing.PropertyType), propertyType)
}

func (repository *PostgresRepository) ListingsInPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]Listing, error) {
	return repository.findListings(ctx, "listings_in_price_range",
		fmt.Sprintf(`l.%s BETWEEN $1 AND $2`, schema.Listing.Price), minPrice, maxPrice)
}

func (repository *PostgresRepository) ListingsWithBedrooms(ctx context.Context, bedrooms int) ([]Listing, error) {
	return repository.findListings(ctx, "listings_with_bedrooms",
		fmt.Sprintf(`l.%s = $1`, schema.Listing.Bedrooms), bedrooms)
}

func (repository *PostgresRepository) findListings(ctx context.Context, action, condition string, args ...any) ([]Listing, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s l WHERE %s ORDER BY l.%s`,
		listingColumns, schema.Listing.Table, condition, schema.Listing.ID)

	rows, err := repository.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Listing", action)
	}
	defer rows.Close()

	var listings []Listing
	for rows.Next() {
		var listing Listing
		if err := scanListing(rows, &listing); err != nil {
			return nil, dberr.Wrap(err, "Listing", "scan_listing")
		}
		listings = append(listings, listing)
	}
	return listings, dberr.Wrap(rows.Err(), "Listing", action)
}

func (repository *PostgresRepository) PopularLocations(ctx context.Context, limit int) ([]LocationCount, error) {
	sql := fmt.Sprintf(`
		SELECT l.%s, COUNT(*) AS total
		FROM %s l
		GROUP BY l.%s
		ORDER BY total DESC, l.%s %s
		LIMIT $1
	`, schema.Listing.Location, schema.Listing.Table, schema.Listing.Location, schema.Listing.Location, schema.CollateC)

	rows, err := repository.db.Query(ctx, sql, schema.Limit(limit))
	if err != nil {
		return nil, dberr.Wrap(err, "Listing", "popular_locations")
	}
	defer rows.Close()

	var result []LocationCount
	for rows.Next() {
		var row LocationCount
		if err := rows.Scan(&row.Location, &row.Count); err != nil {
			return nil, dberr.Wrap(err, "Listing", "scan_location_count")
		}
		result = append(result, row)
	}
	return result, dberr.Wrap(rows.Err(), "Listing", "popular_locations")
}

// # Video Games

func (repository *PostgresRepository) CreateVideoGame(ctx context.Context, game *VideoGame) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s
	`,
		schema.VideoGame.Table,
		schema.VideoGame.Title, schema.VideoGame.Genre, schema.VideoGame.ReleaseYear, schema.VideoGame.Rating,
		schema.VideoGame.ID, schema.VideoGame.Rating,
	)

	err := repository.db.QueryRow(ctx, sql,
		game.Title, game.Genre, game.ReleaseYear, game.Rating,
	).Scan(&game.ID, &game.Rating)
	return dberr.Wrap(err, "Video game", "create_video_game")
}

func (repository *PostgresRepository) GetVideoGame(ctx context.Context, id int64) (*VideoGame, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s g WHERE g.%s = $1`, gameColumns, schema.VideoGame.Table, schema.VideoGame.ID)

	game := &VideoGame{}
	if err := scanGame(repository.db.QueryRow(ctx, sql, id), game); err != nil {
		return nil, dberr.Wrap(err, "Video game", "get_video_game")
	}
	return game, nil
}

func (repository *PostgresRepository) GamesByGenre(ctx context.Context, genre string) ([]VideoGame, error) {
	return repository.findGames(ctx, "games_by_genre",
		fmt.Sprintf(`g.%s = $1`, schema.VideoGame.Genre), genre)
}

func (repository *PostgresRepository) GamesReleasedSince(ctx context.Context, year int) ([]VideoGame, error) {
	return repository.findGames(ctx, "games_released_since",
		fmt.Sprintf(`g.%s >= $1`, schema.VideoGame.ReleaseYear), year)
}

func (repository *PostgresRepository) findGames(ctx context.Context, action, condition string, args ...any) ([]VideoGame, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s g WHERE %s ORDER BY g.%s`,
		gameColumns, schema.VideoGame.Table, condition, schema.VideoGame.ID)

	rows, err := repository.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Video game", action)
	}
	defer rows.Close()

	var games []VideoGame
	for rows.Next() {
		var game VideoGame
		if err := scanGame(rows, &game); err != nil {
			return nil, dberr.Wrap(err, "Video game", "scan_video_game")
		}
		games = append(games, game)
	}
	return games, dberr.Wrap(rows.Err(), "Video game", action)
}

func (repository *PostgresRepository) HighestRatedGame(ctx context.Context) (*VideoGame, error) {
	return repository.pickGame(ctx, "highest_rated_game", "DESC")
}

func (repository *PostgresRepository) LowestRatedGame(ctx context.Context) (*VideoGame, error) {
	return repository.pickGame(ctx, "lowest_rated_game", "ASC")
}

// pickGame returns the first game by rating in direction, then title, then id.
func (repository *PostgresRepository) pickGame(ctx context.Context, action, direction string) (*VideoGame, error) {
	sql := fmt.Sprintf(`
		SELECT %s FROM %s g
		ORDER BY g.%s %s, g.%s %s, g.%s
		LIMIT 1
	`, gameColumns, schema.VideoGame.Table,
		schema.VideoGame.Rating, direction, schema.VideoGame.Title, schema.CollateC, schema.VideoGame.ID)

	game := &VideoGame{}
	err := scanGame(repository.db.QueryRow(ctx, sql), game)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "Video game", action)
	}
	return game, nil
}

func (repository *PostgresRepository) AverageRating(ctx context.Context) (*float64, error) {
	sql := fmt.Sprintf(`SELECT AVG(g.%s)::float8 FROM %s g`, schema.VideoGame.Rating, schema.VideoGame.Table)

	var average *float64
	if err := repository.db.QueryRow(ctx, sql).Scan(&average); err != nil {
		return nil, dberr.Wrap(err, "Video game", "average_rating")
	}
	return average, nil
}
