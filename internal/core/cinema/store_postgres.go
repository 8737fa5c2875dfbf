// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cinema

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/querylab/internal/platform/database/schema"
	"github.com/taibuivan/querylab/internal/platform/dberr"
	"github.com/taibuivan/querylab/internal/platform/postgres"
	"github.com/taibuivan/querylab/pkg/query"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	directorColumns = schema.Select("d", schema.Director.ID, schema.Director.FullName, schema.Director.BirthDate,
		schema.Director.Nationality, schema.Director.YearsOfExperience)
	actorColumns = schema.Select("a", schema.Actor.ID, schema.Actor.FullName, schema.Actor.BirthDate,
		schema.Actor.Nationality, schema.Actor.IsAwarded, schema.Actor.LastUpdated)
	movieColumns = schema.Select("m", schema.Movie.ID, schema.Movie.Title, schema.Movie.ReleaseDate, schema.Movie.Storyline,
		schema.Movie.Genre, schema.Movie.Rating, schema.Movie.IsClassic, schema.Movie.IsAwarded, schema.Movie.LastUpdated,
		schema.Movie.DirectorID, schema.Movie.StarringActorID)
)

func scanDirector(row pgx.Row, director *Director, extra ...any) error {
	dest := append([]any{&director.ID, &director.FullName, &director.BirthDate, &director.Nationality, &director.YearsOfExperience}, extra...)
	return row.Scan(dest...)
}

func scanActor(row pgx.Row, actor *Actor, extra ...any) error {
	dest := append([]any{&actor.ID, &actor.FullName, &actor.BirthDate, &actor.Nationality, &actor.IsAwarded, &actor.LastUpdated}, extra...)
	return row.Scan(dest...)
}

func scanMovie(row pgx.Row, movie *Movie, extra ...any) error {
	dest := append([]any{&movie.ID, &movie.Title, &movie.ReleaseDate, &movie.Storyline, &movie.Genre, &movie.Rating,
		&movie.IsClassic, &movie.IsAwarded, &movie.LastUpdated, &movie.DirectorID, &movie.StarringActorID}, extra...)
	return row.Scan(dest...)
}

// # Records

func (repository *PostgresRepository) CreateDirector(ctx context.Context, director *Director) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`,
		schema.Director.Table,
		schema.Director.FullName, schema.Director.BirthDate, schema.Director.Nationality, schema.Director.YearsOfExperience,
		schema.Director.ID,
	)

	err := repository.db.QueryRow(ctx, sql,
		director.FullName, director.BirthDate, director.Nationality, director.YearsOfExperience,
	).Scan(&director.ID)
	return dberr.Wrap(err, "Director", "create_director")
}

func (repository *PostgresRepository) GetDirector(ctx context.Context, id int64) (*Director, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s d WHERE d.%s = $1`, directorColumns, schema.Director.Table, schema.Director.ID)

	director := &Director{}
	if err := scanDirector(repository.db.QueryRow(ctx, sql, id), director); err != nil {
		return nil, dberr.Wrap(err, "Director", "get_director")
	}
	return director, nil
}

func (repository *PostgresRepository) CreateActor(ctx context.Context, actor *Actor) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s
	`,
		schema.Actor.Table,
		schema.Actor.FullName, schema.Actor.BirthDate, schema.Actor.Nationality, schema.Actor.IsAwarded,
		schema.Actor.ID, schema.Actor.LastUpdated,
	)

	err := repository.db.QueryRow(ctx, sql,
		actor.FullName, actor.BirthDate, actor.Nationality, actor.IsAwarded,
	).Scan(&actor.ID, &actor.LastUpdated)
	return dberr.Wrap(err, "Actor", "create_actor")
}

func (repository *PostgresRepository) GetActor(ctx context.Context, id int64) (*Actor, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s a WHERE a.%s = $1`, actorColumns, schema.Actor.Table, schema.Actor.ID)

	actor := &Actor{}
	if err := scanActor(repository.db.QueryRow(ctx, sql, id), actor); err != nil {
		return nil, dberr.Wrap(err, "Actor", "get_actor")
	}
	return actor, nil
}

func (repository *PostgresRepository) CreateMovie(ctx context.Context, movie *Movie) error {
	insertMovie := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s, %s
	`,
		schema.Movie.Table,
		schema.Movie.Title, schema.Movie.ReleaseDate, schema.Movie.Storyline, schema.Movie.Genre, schema.Movie.Rating,
		schema.Movie.IsClassic, schema.Movie.IsAwarded, schema.Movie.DirectorID, schema.Movie.StarringActorID,
		schema.Movie.ID, schema.Movie.LastUpdated,
	)
	insertCast := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING
	`, schema.MovieActor.Table, schema.MovieActor.MovieID, schema.MovieActor.ActorID)

	err := postgres.WithTx(ctx, repository.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertMovie,
			movie.Title, movie.ReleaseDate, movie.Storyline, movie.Genre, movie.Rating,
			movie.IsClassic, movie.IsAwarded, movie.DirectorID, movie.StarringActorID,
		).Scan(&movie.ID, &movie.LastUpdated); err != nil {
			return err
		}

		if len(movie.ActorIDs) == 0 {
			movie.ActorIDs = []int64{}
			return nil
		}
		_, err := tx.Exec(ctx, insertCast, movie.ID, movie.ActorIDs)
		return err
	})
	return dberr.Wrap(err, "Movie", "create_movie")
}

func (repository *PostgresRepository) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	sql := fmt.Sprintf(`
		SELECT %s,
		       COALESCE(array_agg(ma.%s ORDER BY ma.%s) FILTER (WHERE ma.%s IS NOT NULL), '{}')
		FROM %s m
		LEFT JOIN %s ma ON ma.%s = m.%s
		WHERE m.%s = $1
		GROUP BY m.%s
	`,
		movieColumns,
		schema.MovieActor.ActorID, schema.MovieActor.ActorID, schema.MovieActor.ActorID,
		schema.Movie.Table,
		schema.MovieActor.Table, schema.MovieActor.MovieID, schema.Movie.ID,
		schema.Movie.ID,
		schema.Movie.ID,
	)

	movie := &Movie{}
	if err := scanMovie(repository.db.QueryRow(ctx, sql, id), movie, &movie.ActorIDs); err != nil {
		return nil, dberr.Wrap(err, "Movie", "get_movie")
	}
	return movie, nil
}

// # Reports

func (repository *PostgresRepository) SearchDirectors(ctx context.Context, filter DirectorFilter) ([]Director, error) {
	var conditions []string
	var args []any

	if filter.Name != nil {
		args = append(args, query.Contains(*filter.Name))
		conditions = append(conditions, fmt.Sprintf("d.%s ILIKE $%d", schema.Director.FullName, len(args)))
	}
	if filter.Nationality != nil {
		args = append(args, query.Contains(*filter.Nationality))
		conditions = append(conditions, fmt.Sprintf("d.%s ILIKE $%d", schema.Director.Nationality, len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	sql := fmt.Sprintf(`
		SELECT %s FROM %s d
		%s
		ORDER BY d.%s %s, d.%s
	`, directorColumns, schema.Director.Table, where, schema.Director.FullName, schema.CollateC, schema.Director.ID)

	rows, err := repository.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Director", "search_directors")
	}
	defer rows.Close()

	var directors []Director
	for rows.Next() {
		var director Director
		if err := scanDirector(rows, &director); err != nil {
			return nil, dberr.Wrap(err, "Director", "scan_director")
		}
		directors = append(directors, director)
	}
	return directors, dberr.Wrap(rows.Err(), "Director", "search_directors")
}

func (repository *PostgresRepository) DirectorsByMovieCount(ctx context.Context, limit int) ([]DirectorMovies, error) {
	sql := fmt.Sprintf(`
		SELECT %s, COUNT(m.%s) AS movies
		FROM %s d
		LEFT JOIN %s m ON m.%s = d.%s
		GROUP BY d.%s
		ORDER BY movies DESC, d.%s %s, d.%s
		LIMIT $1
	`,
		directorColumns, schema.Movie.ID,
		schema.Director.Table,
		schema.Movie.Table, schema.Movie.DirectorID, schema.Director.ID,
		schema.Director.ID,
		schema.Director.FullName, schema.CollateC, schema.Director.ID,
	)

	rows, err := repository.db.Query(ctx, sql, schema.Limit(limit))
	if err != nil {
		return nil, dberr.Wrap(err, "Director", "directors_by_movie_count")
	}
	defer rows.Close()

	var result []DirectorMovies
	for rows.Next() {
		var row DirectorMovies
		if err := scanDirector(rows, &row.Director, &row.Movies); err != nil {
			return nil, dberr.Wrap(err, "Director", "scan_director_movies")
		}
		result = append(result, row)
	}
	return result, dberr.Wrap(rows.Err(), "Director", "directors_by_movie_count")
}

func (repository *PostgresRepository) TopStarringActor(ctx context.Context) (*StarringActor, error) {
	sql := fmt.Sprintf(`
		SELECT %s,
		       COUNT(m.%s) AS movies,
		       AVG(m.%s)::float8,
		       COALESCE(array_agg(m.%s ORDER BY m.%s %s, m.%s) FILTER (WHERE m.%s IS NOT NULL), '{}')
		FROM %s a
		LEFT JOIN %s m ON m.%s = a.%s
		GROUP BY a.%s
		ORDER BY movies DESC, a.%s %s, a.%s
		LIMIT 1
	`,
		actorColumns,
		schema.Movie.ID,
		schema.Movie.Rating,
		schema.Movie.Title, schema.Movie.Title, schema.CollateC, schema.Movie.ID, schema.Movie.ID,
		schema.Actor.Table,
		schema.Movie.Table, schema.Movie.StarringActorID, schema.Actor.ID,
		schema.Actor.ID,
		schema.Actor.FullName, schema.CollateC, schema.Actor.ID,
	)

	row := &StarringActor{}
	err := scanActor(repository.db.QueryRow(ctx, sql), &row.Actor, &row.Movies, &row.AvgRating, &row.Titles)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "Actor", "top_starring_actor")
	}
	return row, nil
}

func (repository *PostgresRepository) ActorsByMovieCount(ctx context.Context, limit int) ([]ActorMovies, error) {
	sql := fmt.Sprintf(`
		SELECT %s, COUNT(ma.%s) AS movies
		FROM %s a
		LEFT JOIN %s ma ON ma.%s = a.%s
		GROUP BY a.%s
		ORDER BY movies DESC, a.%s %s, a.%s
		LIMIT $1
	`,
		actorColumns, schema.MovieActor.MovieID,
		schema.Actor.Table,
		schema.MovieActor.Table, schema.MovieActor.ActorID, schema.Actor.ID,
		schema.Actor.ID,
		schema.Actor.FullName, schema.CollateC, schema.Actor.ID,
	)

	rows, err := repository.db.Query(ctx, sql, schema.Limit(limit))
	if err != nil {
		return nil, dberr.Wrap(err, "Actor", "actors_by_movie_count")
	}
	defer rows.Close()

	var result []ActorMovies
	for rows.Next() {
		var row ActorMovies
		if err := scanActor(rows, &row.Actor, &row.Movies); err != nil {
			return nil, dberr.Wrap(err, "Actor", "scan_actor_movies")
		}
		result = append(result, row)
	}
	return result, dberr.Wrap(rows.Err(), "Actor", "actors_by_movie_count")
}

func (repository *PostgresRepository) TopRatedAwardedMovie(ctx context.Context) (*AwardedMovie, error) {
	sql := fmt.Sprintf(`
		SELECT %s,
		       sa.%s,
		       COALESCE(array_agg(ca.%s ORDER BY ca.%s %s) FILTER (WHERE ca.%s IS NOT NULL), '{}'),
		       COALESCE(array_agg(ca.%s ORDER BY ca.%s) FILTER (WHERE ca.%s IS NOT NULL), '{}')
		FROM %s m
		LEFT JOIN %s sa ON sa.%s = m.%s
		LEFT JOIN %s ma ON ma.%s = m.%s
		LEFT JOIN %s ca ON ca.%s = ma.%s
		WHERE m.%s
		GROUP BY m.%s, sa.%s
		ORDER BY m.%s DESC, m.%s %s, m.%s
		LIMIT 1
	`,
		movieColumns,
		schema.Actor.FullName,
		schema.Actor.FullName, schema.Actor.FullName, schema.CollateC, schema.Actor.ID,
		schema.Actor.ID, schema.Actor.ID, schema.Actor.ID,
		schema.Movie.Table,
		schema.Actor.Table, schema.Actor.ID, schema.Movie.StarringActorID,
		schema.MovieActor.Table, schema.MovieActor.MovieID, schema.Movie.ID,
		schema.Actor.Table, schema.Actor.ID, schema.MovieActor.ActorID,
		schema.Movie.IsAwarded,
		schema.Movie.ID, schema.Actor.FullName,
		schema.Movie.Rating, schema.Movie.Title, schema.CollateC, schema.Movie.ID,
	)

	row := &AwardedMovie{}
	err := scanMovie(repository.db.QueryRow(ctx, sql), &row.Movie, &row.StarringActor, &row.Cast, &row.Movie.ActorIDs)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "Movie", "top_rated_awarded_movie")
	}
	return row, nil
}

// # Bulk Updates

func (repository *PostgresRepository) IncreaseClassicRatings(ctx context.Context, step, ceiling float64) (int, error) {
	sql := fmt.Sprintf(`
		UPDATE %s
		SET %s = LEAST(%s + $1, $2), %s = now()
		WHERE %s AND %s < $2
	`,
		schema.Movie.Table,
		schema.Movie.Rating, schema.Movie.Rating, schema.Movie.LastUpdated,
		schema.Movie.IsClassic, schema.Movie.Rating,
	)

	tag, err := repository.db.Exec(ctx, sql, step, ceiling)
	if err != nil {
		return 0, dberr.Wrap(err, "Movie", "increase_classic_ratings")
	}
	return int(tag.RowsAffected()), nil
}
