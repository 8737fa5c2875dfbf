// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/taibuivan/querylab/internal/platform/constants"
	"github.com/taibuivan/querylab/internal/platform/reportcache"
)

// Report names, used as cache keys and metric labels.
const (
	ReportListingsByType    = "listings-by-property-type"
	ReportListingsByPrice   = "listings-in-price-range"
	ReportListingsBedrooms  = "listings-with-bedrooms"
	ReportPopularLocations  = "popular-locations"
	ReportGamesByGenre      = "games-by-genre"
	ReportRecentGames       = "recently-released-games"
	ReportHighestRatedGame  = "highest-rated-game"
	ReportLowestRatedGame   = "lowest-rated-game"
	ReportAverageGameRating = "average-rating"
)

type Service struct {
	repo   Repository
	cache  *reportcache.Cache
	logger *slog.Logger
}

// NewService wires the catalog reports. cache may be nil.
func NewService(repo Repository, cache *reportcache.Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// # Records

func (service *Service) CreateListing(ctx context.Context, listing *Listing) error {
	if err := ValidateListing(listing); err != nil {
		return err
	}

	if err := service.repo.CreateListing(ctx, listing); err != nil {
		return err
	}

	service.cache.Invalidate(ctx, constants.DomainCatalog)
	service.logger.InfoContext(ctx, "listing_created",
		slog.Int64("listing_id", listing.ID),
		slog.String("location", listing.Location),
	)
	return nil
}

func (service *Service) GetListing(ctx context.Context, id int64) (*Listing, error) {
	return service.repo.GetListing(ctx, id)
}

func (service *Service) CreateVideoGame(ctx context.Context, game *VideoGame) error {
	if err := ValidateVideoGame(game); err != nil {
		return err
	}

	if err := service.repo.CreateVideoGame(ctx, game); err != nil {
		return err
	}

	service.cache.Invalidate(ctx, constants.DomainCatalog)
	service.logger.InfoContext(ctx, "video_game_created", slog.Int64("video_game_id", game.ID))
	return nil
}

func (service *Service) GetVideoGame(ctx context.Context, id int64) (*VideoGame, error) {
	return service.repo.GetVideoGame(ctx, id)
}

// # Listing Reports

func (service *Service) ListingsByPropertyType(ctx context.Context, propertyType string) (string, error) {
	return service.listings(ctx, ReportListingsByType, []string{propertyType}, func(ctx context.Context) ([]Listing, error) {
		return service.repo.ListingsByPropertyType(ctx, propertyType)
	})
}

// ListingsInPriceRange includes both bounds.
func (service *Service) ListingsInPriceRange(ctx context.Context, minPrice, maxPrice float64) (string, error) {
	args := []string{formatFloat(minPrice), formatFloat(maxPrice)}
	return service.listings(ctx, ReportListingsByPrice, args, func(ctx context.Context) ([]Listing, error) {
		return service.repo.ListingsInPriceRange(ctx, minPrice, maxPrice)
	})
}

func (service *Service) ListingsWithBedrooms(ctx context.Context, bedrooms int) (string, error) {
	return service.listings(ctx, ReportListingsBedrooms, []string{strconv.Itoa(bedrooms)}, func(ctx context.Context) ([]Listing, error) {
		return service.repo.ListingsWithBedrooms(ctx, bedrooms)
	})
}

// PopularLocations shows the two locations with the most listings.
func (service *Service) PopularLocations(ctx context.Context) (string, error) {
	return service.cache.Remember(ctx, constants.DomainCatalog, ReportPopularLocations, nil, func(ctx context.Context) (string, error) {
		rows, err := service.repo.PopularLocations(ctx, PopularLocationsSize)
		if err != nil {
			return "", err
		}
		return FormatLocations(rows), nil
	})
}

func (service *Service) listings(ctx context.Context, report string, args []string, find func(context.Context) ([]Listing, error)) (string, error) {
	return service.cache.Remember(ctx, constants.DomainCatalog, report, args, func(ctx context.Context) (string, error) {
		listings, err := find(ctx)
		if err != nil {
			return "", err
		}
		return FormatListings(listings), nil
	})
}

// # Game Reports

func (service *Service) GamesByGenre(ctx context.Context, genre string) (string, error) {
	return service.games(ctx, ReportGamesByGenre, []string{genre}, func(ctx context.Context) ([]VideoGame, error) {
		return service.repo.GamesByGenre(ctx, genre)
	})
}

// RecentlyReleasedGames lists games released in year or later.
func (service *Service) RecentlyReleasedGames(ctx context.Context, year int) (string, error) {
	return service.games(ctx, ReportRecentGames, []string{strconv.Itoa(year)}, func(ctx context.Context) ([]VideoGame, error) {
		return service.repo.GamesReleasedSince(ctx, year)
	})
}

func (service *Service) HighestRatedGame(ctx context.Context) (string, error) {
	return service.cache.Remember(ctx, constants.DomainCatalog, ReportHighestRatedGame, nil, func(ctx context.Context) (string, error) {
		game, err := service.repo.HighestRatedGame(ctx)
		if err != nil {
			return "", err
		}
		return FormatGame(game), nil
	})
}

func (service *Service) LowestRatedGame(ctx context.Context) (string, error) {
	return service.cache.Remember(ctx, constants.DomainCatalog, ReportLowestRatedGame, nil, func(ctx context.Context) (string, error) {
		game, err := service.repo.LowestRatedGame(ctx)
		if err != nil {
			return "", err
		}
		return FormatGame(game), nil
	})
}

// AverageRating averages every game rating, "0.0" when there are none.
func (service *Service) AverageRating(ctx context.Context) (string, error) {
	return service.cache.Remember(ctx, constants.DomainCatalog, ReportAverageGameRating, nil, func(ctx context.Context) (string, error) {
		average, err := service.repo.AverageRating(ctx)
		if err != nil {
			return "", err
		}
		return FormatAverageRating(average), nil
	})
}

func (service *Service) games(ctx context.Context, report string, args []string, find func(context.Context) ([]VideoGame, error)) (string, error) {
	return service.cache.Remember(ctx, constants.DomainCatalog, report, args, func(ctx context.Context) (string, error) {
		games, err := find(ctx)
		if err != nil {
			return "", err
		}
		return FormatGames(games), nil
	})
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
