// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/querylab/internal/platform/middleware"
	requestutil "github.com/taibuivan/querylab/internal/platform/request"
	"github.com/taibuivan/querylab/internal/platform/respond"
	"github.com/taibuivan/querylab/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/listings/{id}", handler.getListing)
	router.Get("/video-games/{id}", handler.getVideoGame)

	router.Route("/reports", func(reports chi.Router) {
		reports.Get("/listings-by-property-type", handler.listingsByPropertyType)
		reports.Get("/listings-in-price-range", handler.listingsInPriceRange)
		reports.Get("/listings-with-bedrooms", handler.listingsWithBedrooms)
		reports.Get("/popular-locations", respond.ReportFunc(handler.service.PopularLocations))
		reports.Get("/games-by-genre", handler.gamesByGenre)
		reports.Get("/recently-released-games", handler.recentlyReleasedGames)
		reports.Get("/highest-rated-game", respond.ReportFunc(handler.service.HighestRatedGame))
		reports.Get("/lowest-rated-game", respond.ReportFunc(handler.service.LowestRatedGame))
		reports.Get("/average-rating", respond.ReportFunc(handler.service.AverageRating))
	})

	router.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(sec.RoleEditor))
		editor.Post("/listings", handler.createListing)
		editor.Post("/video-games", handler.createVideoGame)
	})
}

// # Records

func (handler *Handler) createListing(writer http.ResponseWriter, request *http.Request) {
	var listing Listing
	if err := requestutil.DecodeJSON(request, &listing); err != nil {
		respond.Error(writer, request, err)
		return
	}

	listing.ID = 0
	if err := handler.service.CreateListing(request.Context(), &listing); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, listing)
}

func (handler *Handler) getListing(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	listing, err := handler.service.GetListing(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, listing)
}

func (handler *Handler) createVideoGame(writer http.ResponseWriter, request *http.Request) {
	var game VideoGame
	if err := requestutil.DecodeJSON(request, &game); err != nil {
		respond.Error(writer, request, err)
		return
	}

	game.ID = 0
	if err := handler.service.CreateVideoGame(request.Context(), &game); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, game)
}

func (handler *Handler) getVideoGame(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	game, err := handler.service.GetVideoGame(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, game)
}

// # Reports

func (handler *Handler) listingsByPropertyType(writer http.ResponseWriter, request *http.Request) {
	report, err := handler.service.ListingsByPropertyType(request.Context(), request.URL.Query().Get("type"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Report(writer, report)
}

func (handler *Handler) listingsInPriceRange(writer http.ResponseWriter, request *http.Request) {
	minPrice, err := requestutil.QueryFloat(request, "min", 0)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	maxPrice, err := requestutil.QueryFloat(request, "max", math.MaxFloat64)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	report, err := handler.service.ListingsInPriceRange(request.Context(), minPrice, maxPrice)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Report(writer, report)
}

func (handler *Handler) listingsWithBedrooms(writer http.ResponseWriter, request *http.Request) {
	bedrooms, err := requestutil.QueryInt(request, "bedrooms", 0)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	report, err := handler.service.ListingsWithBedrooms(request.Context(), bedrooms)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Report(writer, report)
}

func (handler *Handler) gamesByGenre(writer http.ResponseWriter, request *http.Request) {
	report, err := handler.service.GamesByGenre(request.Context(), request.URL.Query().Get("genre"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Report(writer, report)
}

func (handler *Handler) recentlyReleasedGames(writer http.ResponseWriter, request *http.Request) {
	year, err := requestutil.QueryInt(request, "year", 0)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	report, err := handler.service.RecentlyReleasedGames(request.Context(), year)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Report(writer, report)
}
