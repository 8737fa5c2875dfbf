// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cinema

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/taibuivan/querylab/internal/platform/apperr"
	"github.com/taibuivan/querylab/pkg/convert"
	"github.com/taibuivan/querylab/pkg/fold"
	"github.com/taibuivan/querylab/pkg/slice"
)

// MemoryRepository keeps the cinema tables in process memory.
//
// Reads return copies; callers never share slices with the store.
type MemoryRepository struct {
	mu        sync.RWMutex
	directors map[int64]Director
	actors    map[int64]Actor
	movies    map[int64]Movie
	lastID    int64
	now       func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		directors: map[int64]Director{},
		actors:    map[int64]Actor{},
		movies:    map[int64]Movie{},
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (repository *MemoryRepository) nextID() int64 {
	repository.lastID++
	return repository.lastID
}

// # Records

func (repository *MemoryRepository) CreateDirector(_ context.Context, director *Director) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	director.ID = repository.nextID()
	repository.directors[director.ID] = *director
	return nil
}

func (repository *MemoryRepository) GetDirector(_ context.Context, id int64) (*Director, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	director, ok := repository.directors[id]
	if !ok {
		return nil, apperr.NotFound("Director")
	}
	return &director, nil
}

func (repository *MemoryRepository) CreateActor(_ context.Context, actor *Actor) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	actor.ID = repository.nextID()
	actor.LastUpdated = repository.now()
	repository.actors[actor.ID] = *actor
	return nil
}

func (repository *MemoryRepository) GetActor(_ context.Context, id int64) (*Actor, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	actor, ok := repository.actors[id]
	if !ok {
		return nil, apperr.NotFound("Actor")
	}
	return &actor, nil
}

func (repository *MemoryRepository) CreateMovie(_ context.Context, movie *Movie) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.directors[movie.DirectorID]; !ok {
		return apperr.ValidationError("Referenced record does not exist")
	}
	if movie.StarringActorID != nil {
		if _, ok := repository.actors[*movie.StarringActorID]; !ok {
			return apperr.ValidationError("Referenced record does not exist")
		}
	}
	for _, actorID := range movie.ActorIDs {
		if _, ok := repository.actors[actorID]; !ok {
			return apperr.ValidationError("Referenced record does not exist")
		}
	}

	movie.ID = repository.nextID()
	movie.LastUpdated = repository.now()
	movie.ActorIDs = slice.Unique(movie.ActorIDs)

	stored := *movie
	stored.ActorIDs = slices.Clone(movie.ActorIDs)
	repository.movies[movie.ID] = stored
	return nil
}

func (repository *MemoryRepository) GetMovie(_ context.Context, id int64) (*Movie, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	movie, ok := repository.movies[id]
	if !ok {
		return nil, apperr.NotFound("Movie")
	}
	movie.ActorIDs = slices.Clone(movie.ActorIDs)
	return &movie, nil
}

// # Reports

func (repository *MemoryRepository) SearchDirectors(_ context.Context, filter DirectorFilter) ([]Director, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	var matches []Director
	for _, director := range repository.directors {
		if filter.Name != nil && !fold.Contains(director.FullName, *filter.Name) {
			continue
		}
		if filter.Nationality != nil && !fold.Contains(director.Nationality, *filter.Nationality) {
			continue
		}
		matches = append(matches, director)
	}

	slices.SortFunc(matches, func(a, b Director) int {
		return cmp.Or(cmp.Compare(a.FullName, b.FullName), cmp.Compare(a.ID, b.ID))
	})
	return matches, nil
}

func (repository *MemoryRepository) DirectorsByMovieCount(_ context.Context, limit int) ([]DirectorMovies, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	counts := map[int64]int{}
	for _, movie := range repository.movies {
		counts[movie.DirectorID]++
	}

	rows := make([]DirectorMovies, 0, len(repository.directors))
	for id, director := range repository.directors {
		rows = append(rows, DirectorMovies{Director: director, Movies: counts[id]})
	}

	slices.SortFunc(rows, func(a, b DirectorMovies) int {
		return cmp.Or(
			cmp.Compare(b.Movies, a.Movies),
			cmp.Compare(a.Director.FullName, b.Director.FullName),
			cmp.Compare(a.Director.ID, b.Director.ID),
		)
	})
	return slice.Limit(rows, limit), nil
}

func (repository *MemoryRepository) TopStarringActor(_ context.Context) (*StarringActor, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	starring := map[int64][]Movie{}
	for _, movie := range repository.movies {
		if movie.StarringActorID != nil {
			starring[*movie.StarringActorID] = append(starring[*movie.StarringActorID], movie)
		}
	}

	var best *StarringActor
	for id, actor := range repository.actors {
		candidate := StarringActor{Actor: actor, Movies: len(starring[id])}
		if best == nil || compareRanking(candidate.Movies, candidate.Actor, best.Movies, best.Actor) < 0 {
			best = &candidate
		}
	}
	if best == nil {
		return nil, nil
	}

	movies := starring[best.Actor.ID]
	slices.SortFunc(movies, func(a, b Movie) int {
		return cmp.Or(cmp.Compare(a.Title, b.Title), cmp.Compare(a.ID, b.ID))
	})
	best.Titles = slice.Map(movies, func(movie Movie) string { return movie.Title })

	if len(movies) > 0 {
		total := slice.Reduce(movies, 0.0, func(sum float64, movie Movie) float64 { return sum + movie.Rating })
		average := total / float64(len(movies))
		best.AvgRating = &average
	}
	return best, nil
}

func (repository *MemoryRepository) ActorsByMovieCount(_ context.Context, limit int) ([]ActorMovies, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	counts := map[int64]int{}
	for _, movie := range repository.movies {
		for _, actorID := range movie.ActorIDs {
			counts[actorID]++
		}
	}

	rows := make([]ActorMovies, 0, len(repository.actors))
	for id, actor := range repository.actors {
		rows = append(rows, ActorMovies{Actor: actor, Movies: counts[id]})
	}

	slices.SortFunc(rows, func(a, b ActorMovies) int {
		return compareRanking(a.Movies, a.Actor, b.Movies, b.Actor)
	})
	return slice.Limit(rows, limit), nil
}

func (repository *MemoryRepository) TopRatedAwardedMovie(_ context.Context) (*AwardedMovie, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	var best *Movie
	for _, movie := range repository.movies {
		if !movie.IsAwarded {
			continue
		}
		if best == nil || cmp.Or(
			cmp.Compare(best.Rating, movie.Rating),
			cmp.Compare(movie.Title, best.Title),
			cmp.Compare(movie.ID, best.ID),
		) < 0 {
			candidate := movie
			best = &candidate
		}
	}
	if best == nil {
		return nil, nil
	}

	row := &AwardedMovie{Movie: *best}
	if best.StarringActorID != nil {
		if actor, ok := repository.actors[*best.StarringActorID]; ok {
			name := actor.FullName
			row.StarringActor = &name
		}
	}

	cast := make([]string, 0, len(best.ActorIDs))
	for _, actorID := range best.ActorIDs {
		cast = append(cast, repository.actors[actorID].FullName)
	}
	slices.Sort(cast)
	row.Cast = cast
	row.Movie.ActorIDs = slices.Clone(best.ActorIDs)

	return row, nil
}

// # Bulk Updates

func (repository *MemoryRepository) IncreaseClassicRatings(_ context.Context, step, ceiling float64) (int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	updated := 0
	for id, movie := range repository.movies {
		if !movie.IsClassic || movie.Rating >= ceiling {
			continue
		}
		movie.Rating = convert.Round(min(movie.Rating+step, ceiling), 1)
		movie.LastUpdated = repository.now()
		repository.movies[id] = movie
		updated++
	}
	return updated, nil
}

// # Helpers

// compareRanking orders by count desc, then full name, then id.
func compareRanking(countA int, actorA Actor, countB int, actorB Actor) int {
	return cmp.Or(
		cmp.Compare(countB, countA),
		cmp.Compare(actorA.FullName, actorB.FullName),
		cmp.Compare(actorA.ID, actorB.ID),
	)
}
