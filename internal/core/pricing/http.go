// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pricing

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
	router.Get("/products/{id}", handler.getProduct)
	router.Get("/products/{id}/quote", handler.quote)
	router.With(middleware.RequireRole(sec.RoleEditor)).Post("/products", handler.createProduct)
}

type productRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (handler *Handler) createProduct(writer http.ResponseWriter, request *http.Request) {
	var payload productRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	product := &Product{Name: payload.Name, Price: payload.Price}
	if err := handler.service.CreateProduct(request.Context(), product); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, product)
}

func (handler *Handler) getProduct(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.service.GetProduct(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, product)
}

// quote reads ?variant=regular|discounted (default regular) and ?weight= (default 0).
func (handler *Handler) quote(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	weight, err := requestutil.QueryFloat(request, "weight", 0)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	variant := request.URL.Query().Get("variant")
	if variant == "" {
		variant = TagRegular
	}

	report, err := handler.service.Quote(request.Context(), id, variant, weight)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Report(writer, report)
}
