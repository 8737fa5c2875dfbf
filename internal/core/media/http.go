// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/querylab/internal/platform/middleware"
	requestutil "github.com/taibuivan/querylab/internal/platform/request"
	"github.com/taibuivan/querylab/internal/platform/respond"
	"github.com/taibuivan/querylab/internal/platform/sec"
	"github.com/taibuivan/querylab/pkg/pagination"
)

// Handler serves the media collections.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/books", listFunc(handler.service.ListBooks))
	router.Get("/movies", listFunc(handler.service.ListMovies))
	router.Get("/music", listFunc(handler.service.ListMusic))

	router.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(sec.RoleEditor))
		editor.Post("/books", createFunc(handler.service.CreateBook))
		editor.Post("/movies", createFunc(handler.service.CreateMovie))
		editor.Post("/music", createFunc(handler.service.CreateMusic))
	})
}

// CustomerHandler serves customer records.
type CustomerHandler struct {
	service *Service
}

func NewCustomerHandler(service *Service) *CustomerHandler {
	return &CustomerHandler{service: service}
}

func (handler *CustomerHandler) RegisterRoutes(router chi.Router) {
	router.Get("/{id}", handler.getCustomer)
	router.With(middleware.RequireRole(sec.RoleEditor)).Post("/", createFunc(handler.service.CreateCustomer))
}

func (handler *CustomerHandler) getCustomer(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	customer, err := handler.service.GetCustomer(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, customer)
}

// listFunc serves one page of a collection in its default ordering.
func listFunc[T any](list func(ctx context.Context) ([]T, error)) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		items, err := list(request.Context())
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		params := pagination.FromRequest(request)
		respond.Paginated(writer, pagination.Window(items, params), pagination.NewMeta(params.Page, params.Limit, len(items)))
	}
}

// createFunc decodes the body into a fresh T and hands it to create.
func createFunc[T any](create func(ctx context.Context, item *T) error) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		item := new(T)
		if err := requestutil.DecodeJSON(request, item); err != nil {
			respond.Error(writer, request, err)
			return
		}
		if err := create(request.Context(), item); err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.Created(writer, item)
	}
}
