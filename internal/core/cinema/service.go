// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cinema

import (
	"context"
	"log/slog"

	"github.com/taibuivan/querylab/internal/platform/constants"
	"github.com/taibuivan/querylab/internal/platform/reportcache"
	"github.com/taibuivan/querylab/pkg/pointer"
)

// Report names, used as cache keys and metric labels.
const (
	ReportSearchDirectors      = "search-directors"
	ReportDirectorsByMovies    = "directors-by-movie-count"
	ReportTopDirector          = "top-director"
	ReportTopActor             = "top-actor"
	ReportActorsByMovies       = "actors-by-movie-count"
	ReportTopRatedAwardedMovie = "top-rated-awarded-movie"
)

// actorRankingSize is how many actors the participation ranking shows.
const actorRankingSize = 3

type Service struct {
	repo   Repository
	cache  *reportcache.Cache
	logger *slog.Logger
}

// NewService wires the cinema reports. cache may be nil.
func NewService(repo Repository, cache *reportcache.Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// # Records

func (service *Service) CreateDirector(ctx context.Context, director *Director) error {
	ApplyPersonDefaults(&director.Person)
	if err := ValidateDirector(director); err != nil {
		return err
	}

	if err := service.repo.CreateDirector(ctx, director); err != nil {
		return err
	}

	service.cache.Invalidate(ctx, constants.DomainCinema)
	service.logger.InfoContext(ctx, "director_created", slog.Int64("director_id", director.ID))
	return nil
}

func (service *Service) GetDirector(ctx context.Context, id int64) (*Director, error) {
	return service.repo.GetDirector(ctx, id)
}

func (service *Service) CreateActor(ctx context.Context, actor *Actor) error {
	ApplyPersonDefaults(&actor.Person)
	if err := ValidateActor(actor); err != nil {
		return err
	}

	if err := service.repo.CreateActor(ctx, actor); err != nil {
		return err
	}

	service.cache.Invalidate(ctx, constants.DomainCinema)
	service.logger.InfoContext(ctx, "actor_created", slog.Int64("actor_id", actor.ID))
	return nil
}

func (service *Service) GetActor(ctx context.Context, id int64) (*Actor, error) {
	return service.repo.GetActor(ctx, id)
}

func (service *Service) CreateMovie(ctx context.Context, movie *Movie) error {
	if movie.Genre == "" {
		movie.Genre = GenreOther
	}
	if err := ValidateMovie(movie); err != nil {
		return err
	}

	if err := service.repo.CreateMovie(ctx, movie); err != nil {
		return err
	}

	service.cache.Invalidate(ctx, constants.DomainCinema)
	service.logger.InfoContext(ctx, "movie_created",
		slog.Int64("movie_id", movie.ID),
		slog.Int64("director_id", movie.DirectorID),
	)
	return nil
}

func (service *Service) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	return service.repo.GetMovie(ctx, id)
}

// # Reports

// SearchDirectors returns matching directors, or "" when neither filter is supplied.
func (service *Service) SearchDirectors(ctx context.Context, name, nationality *string) (string, error) {
	if pointer.NoneSet(name, nationality) {
		return "", nil
	}

	args := []string{reportcache.OptionalArg(name), reportcache.OptionalArg(nationality)}
	return service.cache.Remember(ctx, constants.DomainCinema, ReportSearchDirectors, args, func(ctx context.Context) (string, error) {
		directors, err := service.repo.SearchDirectors(ctx, DirectorFilter{Name: name, Nationality: nationality})
		if err != nil {
			return "", err
		}
		return FormatDirectors(directors), nil
	})
}

// DirectorsByMovieCount returns every director annotated with their movie count.
func (service *Service) DirectorsByMovieCount(ctx context.Context) ([]DirectorMovies, error) {
	return service.repo.DirectorsByMovieCount(ctx, 0)
}

// DirectorsByMovieCountReport is [Service.DirectorsByMovieCount] rendered as text.
func (service *Service) DirectorsByMovieCountReport(ctx context.Context) (string, error) {
	return service.cache.Remember(ctx, constants.DomainCinema, ReportDirectorsByMovies, nil, func(ctx context.Context) (string, error) {
		rows, err := service.repo.DirectorsByMovieCount(ctx, 0)
		if err != nil {
			return "", err
		}
		return FormatDirectorMovieCounts(rows), nil
	})
}

// TopDirector returns the director with the most movies.
func (service *Service) TopDirector(ctx context.Context) (string, error) {
	return service.cache.Remember(ctx, constants.DomainCinema, ReportTopDirector, nil, func(ctx context.Context) (string, error) {
		rows, err := service.repo.DirectorsByMovieCount(ctx, 1)
		if err != nil || len(rows) == 0 {
			return "", err
		}
		return FormatTopDirector(rows[0]), nil
	})
}

// TopActor returns the actor starring in the most movies.
func (service *Service) TopActor(ctx context.Context) (string, error) {
	return service.cache.Remember(ctx, constants.DomainCinema, ReportTopActor, nil, func(ctx context.Context) (string, error) {
		row, err := service.repo.TopStarringActor(ctx)
		if err != nil {
			return "", err
		}
		return FormatTopActor(row), nil
	})
}

// ActorsByMovieCount returns the three actors cast in the most movies.
func (service *Service) ActorsByMovieCount(ctx context.Context) (string, error) {
	return service.cache.Remember(ctx, constants.DomainCinema, ReportActorsByMovies, nil, func(ctx context.Context) (string, error) {
		rows, err := service.repo.ActorsByMovieCount(ctx, actorRankingSize)
		if err != nil {
			return "", err
		}
		return FormatActorsByMovieCount(rows), nil
	})
}

// TopRatedAwardedMovie returns the best rated awarded movie with its cast.
func (service *Service) TopRatedAwardedMovie(ctx context.Context) (string, error) {
	return service.cache.Remember(ctx, constants.DomainCinema, ReportTopRatedAwardedMovie, nil, func(ctx context.Context) (string, error) {
		row, err := service.repo.TopRatedAwardedMovie(ctx)
		if err != nil {
			return "", err
		}
		return FormatAwardedMovie(row), nil
	})
}

// # Bulk Updates

// IncreaseRating raises every classic movie below the maximum rating by one step.
func (service *Service) IncreaseRating(ctx context.Context) (string, error) {
	updated, err := service.repo.IncreaseClassicRatings(ctx, RatingIncrement, MaxRating)
	if err != nil {
		return "", err
	}

	if updated > 0 {
		service.cache.Invalidate(ctx, constants.DomainCinema)
	}
	service.logger.InfoContext(ctx, "movie_ratings_increased", slog.Int("updated", updated))

	return FormatRatingIncrease(updated), nil
}
