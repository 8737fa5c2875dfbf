// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero

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
	router.Get("/{id}", handler.getHero)

	router.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(sec.RoleEditor))
		editor.Post("/", handler.createHero)
		editor.Post("/{id}/recharge", handler.recharge)
		editor.Post("/{id}/abilities/{ability}", handler.useAbility)
	})
}

type heroRequest struct {
	Name      string `json:"name"`
	HeroTitle string `json:"hero_title"`
	Energy    int    `json:"energy"`
}

type rechargeRequest struct {
	Amount int `json:"amount"`
}

func (handler *Handler) createHero(writer http.ResponseWriter, request *http.Request) {
	var payload heroRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	hero := &Hero{Name: payload.Name, HeroTitle: payload.HeroTitle, Energy: payload.Energy}
	if err := handler.service.CreateHero(request.Context(), hero); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, hero)
}

func (handler *Handler) getHero(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	hero, err := handler.service.GetHero(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, hero)
}

func (handler *Handler) recharge(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload rechargeRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	hero, err := handler.service.RechargeEnergy(request.Context(), id, payload.Amount)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, hero)
}

func (handler *Handler) useAbility(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	report, err := handler.service.UseAbility(request.Context(), id, requestutil.Param(request, "ability"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Report(writer, report)
}
