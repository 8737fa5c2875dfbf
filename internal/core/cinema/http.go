// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cinema

import (
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
	router.Get("/directors/{id}", handler.getDirector)
	router.Get("/actors/{id}", handler.getActor)
	router.Get("/movies/{id}", handler.getMovie)

	router.Route("/reports", func(reports chi.Router) {
		reports.Get("/search-directors", handler.searchDirectors)
		reports.Get("/directors-by-movie-count", respond.ReportFunc(handler.service.DirectorsByMovieCountReport))
		reports.Get("/top-director", respond.ReportFunc(handler.service.TopDirector))
		reports.Get("/top-actor", respond.ReportFunc(handler.service.TopActor))
		reports.Get("/actors-by-movie-count", respond.ReportFunc(handler.service.ActorsByMovieCount))
		reports.Get("/top-rated-awarded-movie", respond.ReportFunc(handler.service.TopRatedAwardedMovie))
	})

	router.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(sec.RoleEditor))
		editor.Post("/directors", handler.createDirector)
		editor.Post("/actors", handler.createActor)
		editor.Post("/movies", handler.createMovie)
	})

	router.With(middleware.RequireRole(sec.RoleAdmin)).Post("/movies/increase-rating", respond.ReportFunc(handler.service.IncreaseRating))
}

// # Payloads

type personRequest struct {
	FullName    string `json:"full_name"`
	BirthDate   string `json:"birth_date"`
	Nationality string `json:"nationality"`
}

func (payload personRequest) person() (Person, error) {
	birthDate, err := requestutil.Date("birth_date", payload.BirthDate)
	if err != nil {
		return Person{}, err
	}
	return Person{FullName: payload.FullName, BirthDate: birthDate, Nationality: payload.Nationality}, nil
}

type directorRequest struct {
	personRequest
	YearsOfExperience int `json:"years_of_experience"`
}

type actorRequest struct {
	personRequest
	IsAwarded bool `json:"is_awarded"`
}

type movieRequest struct {
	Title           string  `json:"title"`
	ReleaseDate     string  `json:"release_date"`
	Storyline       *string `json:"storyline"`
	Genre           string  `json:"genre"`
	Rating          float64 `json:"rating"`
	IsClassic       bool    `json:"is_classic"`
	IsAwarded       bool    `json:"is_awarded"`
	DirectorID      int64   `json:"director_id"`
	StarringActorID *int64  `json:"starring_actor_id"`
	ActorIDs        []int64 `json:"actor_ids"`
}

// # Records

func (handler *Handler) createDirector(writer http.ResponseWriter, request *http.Request) {
	var payload directorRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	person, err := payload.person()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	director := &Director{Person: person, YearsOfExperience: payload.YearsOfExperience}
	if err := handler.service.CreateDirector(request.Context(), director); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, director)
}

func (handler *Handler) getDirector(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	director, err := handler.service.GetDirector(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, director)
}

func (handler *Handler) createActor(writer http.ResponseWriter, request *http.Request) {
	var payload actorRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	person, err := payload.person()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	actor := &Actor{Person: person, Awarded: Awarded{IsAwarded: payload.IsAwarded}}
	if err := handler.service.CreateActor(request.Context(), actor); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, actor)
}

func (handler *Handler) getActor(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	actor, err := handler.service.GetActor(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, actor)
}

func (handler *Handler) createMovie(writer http.ResponseWriter, request *http.Request) {
	var payload movieRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	releaseDate, err := requestutil.Date(FieldReleaseDate, payload.ReleaseDate)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	movie := &Movie{
		Title:           payload.Title,
		ReleaseDate:     releaseDate,
		Storyline:       payload.Storyline,
		Genre:           payload.Genre,
		Rating:          payload.Rating,
		IsClassic:       payload.IsClassic,
		Awarded:         Awarded{IsAwarded: payload.IsAwarded},
		DirectorID:      payload.DirectorID,
		StarringActorID: payload.StarringActorID,
		ActorIDs:        payload.ActorIDs,
	}
	if err := handler.service.CreateMovie(request.Context(), movie); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, movie)
}

func (handler *Handler) getMovie(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	movie, err := handler.service.GetMovie(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movie)
}

// # Reports

func (handler *Handler) searchDirectors(writer http.ResponseWriter, request *http.Request) {
	report, err := handler.service.SearchDirectors(request.Context(),
		requestutil.OptionalQuery(request, "name"),
		requestutil.OptionalQuery(request, "nationality"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Report(writer, report)
}

