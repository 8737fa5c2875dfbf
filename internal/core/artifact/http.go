// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artifact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/querylab/internal/platform/middleware"
	requestutil "github.com/taibuivan/querylab/internal/platform/request"
	"github.com/taibuivan/querylab/internal/platform/respond"
	"github.com/taibuivan/querylab/internal/platform/sec"
	"github.com/taibuivan/querylab/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listArtifacts)
	router.Get("/{id}", handler.getArtifact)

	router.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(sec.RoleEditor))
		editor.Post("/", handler.createArtifact)
		editor.Patch("/{id}/name", handler.renameArtifact)
	})

	router.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/", handler.deleteAll)
}

type artifactRequest struct {
	Name        string `json:"name"`
	Origin      string `json:"origin"`
	Age         int    `json:"age"`
	Description string `json:"description"`
	IsMagical   bool   `json:"is_magical"`
}

type renameRequest struct {
	Name string `json:"name"`
}

func (handler *Handler) createArtifact(writer http.ResponseWriter, request *http.Request) {
	var payload artifactRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	artifact := &Artifact{
		Name:        payload.Name,
		Origin:      payload.Origin,
		Age:         payload.Age,
		Description: payload.Description,
		IsMagical:   payload.IsMagical,
	}
	report, err := handler.service.CreateArtifact(request.Context(), artifact)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, map[string]any{"artifact": artifact, "report": report})
}

func (handler *Handler) getArtifact(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artifact, err := handler.service.GetArtifact(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artifact)
}

func (handler *Handler) listArtifacts(writer http.ResponseWriter, request *http.Request) {
	artifacts, meta, err := handler.service.ListArtifacts(request.Context(), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, artifacts, meta)
}

func (handler *Handler) renameArtifact(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload renameRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	artifact, err := handler.service.RenameArtifact(request.Context(), id, payload.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artifact)
}

func (handler *Handler) deleteAll(writer http.ResponseWriter, request *http.Request) {
	deleted, err := handler.service.DeleteAllArtifacts(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int{"deleted": deleted})
}
