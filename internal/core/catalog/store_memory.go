// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/taibuivan/querylab/internal/platform/apperr"
	"github.com/taibuivan/querylab/pkg/convert"
	"github.com/taibuivan/querylab/pkg/slice"
)

// MemoryRepository keeps the catalog tables in process memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	listings map[int64]Listing
	games    map[int64]VideoGame
	lastID   int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		listings: map[int64]Listing{},
		games:    map[int64]VideoGame{},
	}
}

// # Listings

func (repository *MemoryRepository) CreateListing(_ context.Context, listing *Listing) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.lastID++
	listing.ID = repository.lastID
	listing.Price = convert.Cents(listing.Price)
	repository.listings[listing.ID] = *listing
	return nil
}

func (repository *MemoryRepository) GetListing(_ context.Context, id int64) (*Listing, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	listing, ok := repository.listings[id]
	if !ok {
		return nil, apperr.NotFound("Listing")
	}
	return &listing, nil
}

func (repository *MemoryRepository) ListingsByPropertyType(_ context.Context, propertyType string) ([]Listing, error) {
	return repository.filterListings(func(listing Listing) bool {
		return listing.PropertyType == propertyType
	}), nil
}

func (repository *MemoryRepository) ListingsInPriceRange(_ context.Context, minPrice, maxPrice float64) ([]Listing, error) {
	return repository.filterListings(func(listing Listing) bool {
		return listing.Price >= minPrice && listing.Price <= maxPrice
	}), nil
}

func (repository *MemoryRepository) ListingsWithBedrooms(_ context.Context, bedrooms int) ([]Listing, error) {
	return repository.filterListings(func(listing Listing) bool {
		return listing.Bedrooms == bedrooms
	}), nil
}

func (repository *MemoryRepository) PopularLocations(_ context.Context, limit int) ([]LocationCount, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	counts := map[string]int{}
	for _, listing := range repository.listings {
		counts[listing.Location]++
	}

	rows := make([]LocationCount, 0, len(counts))
	for location, count := range counts {
		rows = append(rows, LocationCount{Location: location, Count: count})
	}
	slices.SortFunc(rows, func(a, b LocationCount) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), strings.Compare(a.Location, b.Location))
	})
	return slice.Limit(rows, limit), nil
}

// # Video Games

func (repository *MemoryRepository) CreateVideoGame(_ context.Context, game *VideoGame) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.lastID++
	game.ID = repository.lastID
	game.Rating = convert.Round(game.Rating, 1)
	repository.games[game.ID] = *game
	return nil
}

func (repository *MemoryRepository) GetVideoGame(_ context.Context, id int64) (*VideoGame, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	game, ok := repository.games[id]
	if !ok {
		return nil, apperr.NotFound("Video game")
	}
	return &game, nil
}

func (repository *MemoryRepository) GamesByGenre(_ context.Context, genre string) ([]VideoGame, error) {
	return repository.filterGames(func(game VideoGame) bool {
		return game.Genre == genre
	}), nil
}

func (repository *MemoryRepository) GamesReleasedSince(_ context.Context, year int) ([]VideoGame, error) {
	return repository.filterGames(func(game VideoGame) bool {
		return game.ReleaseYear >= year
	}), nil
}

func (repository *MemoryRepository) HighestRatedGame(_ context.Context) (*VideoGame, error) {
	return repository.pickGame(func(a, b VideoGame) int {
		return cmp.Compare(b.Rating, a.Rating)
	}), nil
}

func (repository *MemoryRepository) LowestRatedGame(_ context.Context) (*VideoGame, error) {
	return repository.pickGame(func(a, b VideoGame) int {
		return cmp.Compare(a.Rating, b.Rating)
	}), nil
}

func (repository *MemoryRepository) AverageRating(_ context.Context) (*float64, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	if len(repository.games) == 0 {
		return nil, nil
	}

	total := 0.0
	for _, game := range repository.games {
		total += game.Rating
	}
	average := total / float64(len(repository.games))
	return &average, nil
}

// # Helpers

func (repository *MemoryRepository) filterListings(keep func(Listing) bool) []Listing {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	var matches []Listing
	for _, listing := range repository.listings {
		if keep(listing) {
			matches = append(matches, listing)
		}
	}
	slices.SortFunc(matches, func(a, b Listing) int { return cmp.Compare(a.ID, b.ID) })
	return matches
}

func (repository *MemoryRepository) filterGames(keep func(VideoGame) bool) []VideoGame {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	var matches []VideoGame
	for _, game := range repository.games {
		if keep(game) {
			matches = append(matches, game)
		}
	}
	slices.SortFunc(matches, func(a, b VideoGame) int { return cmp.Compare(a.ID, b.ID) })
	return matches
}

// pickGame returns the first game under byRating, then title, then id.
func (repository *MemoryRepository) pickGame(byRating func(a, b VideoGame) int) *VideoGame {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	var best *VideoGame
	for _, game := range repository.games {
		if best == nil || cmp.Or(
			byRating(game, *best),
			strings.Compare(game.Title, best.Title),
			cmp.Compare(game.ID, best.ID),
		) < 0 {
			candidate := game
			best = &candidate
		}
	}
	return best
}
