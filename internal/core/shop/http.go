// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shop

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/querylab/internal/platform/middleware"
	requestutil "github.com/taibuivan/querylab/internal/platform/request"
	"github.com/taibuivan/querylab/internal/platform/respond"
	"github.com/taibuivan/querylab/internal/platform/sec"
	"github.com/taibuivan/querylab/pkg/pointer"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/profiles/{id}", handler.getProfile)
	router.Get("/products/{id}", handler.getProduct)
	router.Get("/orders/{id}", handler.getOrder)

	router.Route("/reports", func(reports chi.Router) {
		reports.Get("/search-profiles", handler.searchProfiles)
		reports.Get("/loyal-profiles", respond.ReportFunc(handler.service.LoyalProfiles))
		reports.Get("/last-sold-products", respond.ReportFunc(handler.service.LastSoldProducts))
		reports.Get("/top-products", respond.ReportFunc(handler.service.TopProducts))
	})

	router.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(sec.RoleEditor))
		editor.Post("/profiles", handler.createProfile)
		editor.Post("/products", handler.createProduct)
		editor.Post("/orders", handler.createOrder)
	})

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Post("/orders/apply-discounts", respond.ReportFunc(handler.service.ApplyDiscounts))
		admin.Post("/orders/complete", respond.ReportFunc(handler.service.CompleteOrder))
	})
}

// # Payloads

type profileRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	IsActive    *bool  `json:"is_active"`
}

type productRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	InStock     int     `json:"in_stock"`
	IsAvailable *bool   `json:"is_available"`
}

type orderRequest struct {
	ProfileID   int64   `json:"profile_id"`
	ProductIDs  []int64 `json:"product_ids"`
	TotalPrice  float64 `json:"total_price"`
	IsCompleted bool    `json:"is_completed"`
}

// # Records

func (handler *Handler) createProfile(writer http.ResponseWriter, request *http.Request) {
	var payload profileRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile := &Profile{
		FullName:    payload.FullName,
		Email:       payload.Email,
		PhoneNumber: payload.PhoneNumber,
		Address:     payload.Address,
		IsActive:    pointer.Fallback(payload.IsActive, true),
	}
	if err := handler.service.CreateProfile(request.Context(), profile); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, profile)
}

func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.GetProfile(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

func (handler *Handler) createProduct(writer http.ResponseWriter, request *http.Request) {
	var payload productRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	product := &Product{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		InStock:     payload.InStock,
		IsAvailable: pointer.Fallback(payload.IsAvailable, true),
	}
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

func (handler *Handler) createOrder(writer http.ResponseWriter, request *http.Request) {
	var payload orderRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	order := &Order{
		ProfileID:   payload.ProfileID,
		ProductIDs:  payload.ProductIDs,
		TotalPrice:  payload.TotalPrice,
		IsCompleted: payload.IsCompleted,
	}
	if err := handler.service.CreateOrder(request.Context(), order); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, order)
}

func (handler *Handler) getOrder(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	order, err := handler.service.GetOrder(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, order)
}

// # Reports

func (handler *Handler) searchProfiles(writer http.ResponseWriter, request *http.Request) {
	report, err := handler.service.SearchProfiles(request.Context(), requestutil.OptionalQuery(request, "search"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Report(writer, report)
}
