// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cinema

import "context"

// Repository is the storage contract for directors, actors and movies.
//
// Aggregate queries return rows already ordered with their tie-break applied.
// Empty results are not errors.
type Repository interface {
	CreateDirector(ctx context.Context, director *Director) error
	GetDirector(ctx context.Context, id int64) (*Director, error)
	CreateActor(ctx context.Context, actor *Actor) error
	GetActor(ctx context.Context, id int64) (*Actor, error)
	CreateMovie(ctx context.Context, movie *Movie) error
	GetMovie(ctx context.Context, id int64) (*Movie, error)

	// SearchDirectors applies every non-nil filter field (AND), ordered by full name.
	SearchDirectors(ctx context.Context, filter DirectorFilter) ([]Director, error)

	// DirectorsByMovieCount orders by movie count desc, then full name. limit <= 0 means all.
	DirectorsByMovieCount(ctx context.Context, limit int) ([]DirectorMovies, error)

	// TopStarringActor returns the actor starring in the most movies (tie: full name), or nil.
	// Titles are ordered by title.
	TopStarringActor(ctx context.Context) (*StarringActor, error)

	// ActorsByMovieCount orders by cast participation desc, then full name.
	ActorsByMovieCount(ctx context.Context, limit int) ([]ActorMovies, error)

	// TopRatedAwardedMovie returns the best rated awarded movie (tie: title), or nil.
	TopRatedAwardedMovie(ctx context.Context) (*AwardedMovie, error)

	// IncreaseClassicRatings adds step to every classic movie rated below ceiling,
	// capping the result at ceiling, and reports how many rows changed.
	IncreaseClassicRatings(ctx context.Context, step, ceiling float64) (int, error)
}
