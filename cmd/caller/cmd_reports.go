// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taibuivan/querylab/internal/app"
)

// # Cinema

func newCinemaCmd(s *session) *cobra.Command {
	cinemaCmd := &cobra.Command{Use: "cinema", Short: "Directors, actors and movies"}

	search := reportCmd(s, "search-directors", "Search directors by name and nationality", cobra.NoArgs,
		func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
			return services.Cinema.SearchDirectors(cmd.Context(), optionalFlag(cmd, "name"), optionalFlag(cmd, "nationality"))
		})
	search.Flags().String("name", "", "Case-insensitive substring of the full name")
	search.Flags().String("nationality", "", "Case-insensitive substring of the nationality")

	cinemaCmd.AddCommand(
		search,
		reportCmd(s, "directors-by-movie-count", "Directors ordered by movie count", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
				return services.Cinema.DirectorsByMovieCountReport(cmd.Context())
			}),
		reportCmd(s, "top-director", "Director with the most movies", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
				return services.Cinema.TopDirector(cmd.Context())
			}),
		reportCmd(s, "top-actor", "Actor starring in the most movies", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
				return services.Cinema.TopActor(cmd.Context())
			}),
		reportCmd(s, "actors-by-movie-count", "Actors ordered by cast appearances", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
				return services.Cinema.ActorsByMovieCount(cmd.Context())
			}),
		reportCmd(s, "top-rated-awarded-movie", "Highest rated awarded movie", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
				return services.Cinema.TopRatedAwardedMovie(cmd.Context())
			}),
		reportCmd(s, "increase-rating", "Raise the rating of every classic movie", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
				return services.Cinema.IncreaseRating(cmd.Context())
			}),
	)
	return cinemaCmd
}

// # Shop

func newShopCmd(s *session) *cobra.Command {
	shopCmd := &cobra.Command{Use: "shop", Short: "Profiles, products and orders"}

	search := reportCmd(s, "search-profiles", "Search profiles by name, email or phone", cobra.NoArgs,
		func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
			return services.Shop.SearchProfiles(cmd.Context(), optionalFlag(cmd, "query"))
		})
	search.Flags().String("query", "", "Case-insensitive substring")

	shopCmd.AddCommand(
		search,
		reportCmd(s, "loyal-profiles", "Profiles with more than one order", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
				return services.Shop.LoyalProfiles(cmd.Context())
			}),
		reportCmd(s, "last-sold-products", "Products of the latest order", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
				return services.Shop.LastSoldProducts(cmd.Context())
			}),
		reportCmd(s, "top-products", "Most ordered products", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
				return services.Shop.TopProducts(cmd.Context())
			}),
		reportCmd(s, "apply-discounts", "Discount open orders with several products", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
				return services.Shop.ApplyDiscounts(cmd.Context())
			}),
		reportCmd(s, "complete-order", "Complete the oldest open order", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
				return services.Shop.CompleteOrder(cmd.Context())
			}),
	)
	return shopCmd
}

// # Press

func newPressCmd(s *session) *cobra.Command {
	pressCmd := &cobra.Command{Use: "press", Short: "Authors, articles and reviews"}

	search := reportCmd(s, "search-authors", "Search authors by name and email", cobra.NoArgs,
		func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
			return services.Press.SearchAuthors(cmd.Context(), optionalFlag(cmd, "name"), optionalFlag(cmd, "email"))
		})
	search.Flags().String("name", "", "Case-insensitive substring of the full name")
	search.Flags().String("email", "", "Case-insensitive substring of the email")

	ban := reportCmd(s, "ban-author", "Ban an author and delete their reviews", cobra.NoArgs,
		func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
			return services.Press.BanAuthor(cmd.Context(), optionalFlag(cmd, "email"))
		})
	ban.Flags().String("email", "", "Exact email of the author")

	pressCmd.AddCommand(
		search,
		reportCmd(s, "top-publisher", "Author with the most articles", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
				return services.Press.TopPublisher(cmd.Context())
			}),
		reportCmd(s, "top-reviewer", "Author with the most reviews", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
				return services.Press.TopReviewer(cmd.Context())
			}),
		reportCmd(s, "latest-article", "Most recently published article", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
				return services.Press.LatestArticle(cmd.Context())
			}),
		reportCmd(s, "top-rated-article", "Article with the best average rating", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
				return services.Press.TopRatedArticle(cmd.Context())
			}),
		ban,
	)
	return pressCmd
}

// # Catalog

func newCatalogCmd(s *session) *cobra.Command {
	catalogCmd := &cobra.Command{Use: "catalog", Short: "Real estate listings and video games"}

	priceRange := reportCmd(s, "listings-in-price-range", "Listings priced within a range", cobra.NoArgs,
		func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
			minPrice, _ := cmd.Flags().GetFloat64("min")
			maxPrice, _ := cmd.Flags().GetFloat64("max")
			return services.Catalog.ListingsInPriceRange(cmd.Context(), minPrice, maxPrice)
		})
	priceRange.Flags().Float64("min", 0, "Lowest price (inclusive)")
	priceRange.Flags().Float64("max", math.MaxFloat64, "Highest price (inclusive)")

	catalogCmd.AddCommand(
		reportCmd(s, "listings-by-property-type <type>", "Listings of one property type", cobra.ExactArgs(1),
			func(cmd *cobra.Command, services *app.Services, args []string) (string, error) {
				return services.Catalog.ListingsByPropertyType(cmd.Context(), args[0])
			}),
		priceRange,
		reportCmd(s, "listings-with-bedrooms <count>", "Listings with an exact bedroom count", cobra.ExactArgs(1),
			func(cmd *cobra.Command, services *app.Services, args []string) (string, error) {
				bedrooms, err := strconv.Atoi(args[0])
				if err != nil {
					return "", fmt.Errorf("invalid bedroom count %q", args[0])
				}
				return services.Catalog.ListingsWithBedrooms(cmd.Context(), bedrooms)
			}),
		reportCmd(s, "popular-locations", "Locations with the most listings", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
				return services.Catalog.PopularLocations(cmd.Context())
			}),
		reportCmd(s, "games-by-genre <genre>", "Video games of one genre", cobra.ExactArgs(1),
			func(cmd *cobra.Command, services *app.Services, args []string) (string, error) {
				return services.Catalog.GamesByGenre(cmd.Context(), args[0])
			}),
		reportCmd(s, "recently-released-games <year>", "Video games released in or after a year", cobra.ExactArgs(1),
			func(cmd *cobra.Command, services *app.Services, args []string) (string, error) {
				year, err := strconv.Atoi(args[0])
				if err != nil {
					return "", fmt.Errorf("invalid year %q", args[0])
				}
				return services.Catalog.RecentlyReleasedGames(cmd.Context(), year)
			}),
		reportCmd(s, "highest-rated-game", "Best rated video game", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
				return services.Catalog.HighestRatedGame(cmd.Context())
			}),
		reportCmd(s, "lowest-rated-game", "Worst rated video game", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
				return services.Catalog.LowestRatedGame(cmd.Context())
			}),
		reportCmd(s, "average-rating", "Average video game rating", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
				return services.Catalog.AverageRating(cmd.Context())
			}),
	)
	return catalogCmd
}

// # Pricing

func newPricingCmd(s *session) *cobra.Command {
	pricingCmd := &cobra.Command{Use: "pricing", Short: "Product quotes under a pricing variant"}

	quote := reportCmd(s, "quote <product-id>", "Quote a product", cobra.ExactArgs(1),
		func(cmd *cobra.Command, services *app.Services, args []string) (string, error) {
			id, err := parseID(args[0])
			if err != nil {
				return "", err
			}
			variant, _ := cmd.Flags().GetString("variant")
			weight, _ := cmd.Flags().GetFloat64("weight")
			return services.Pricing.Quote(cmd.Context(), id, variant, weight)
		})
	quote.Flags().String("variant", "regular", "Pricing variant (regular or discounted)")
	quote.Flags().Float64("weight", 0, "Shipping weight")

	pricingCmd.AddCommand(quote)
	return pricingCmd
}
