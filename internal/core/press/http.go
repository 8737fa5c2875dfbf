// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package press

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
	router.Get("/authors/{id}", handler.getAuthor)
	router.Get("/authors/by-article-count", handler.authorsByArticleCount)
	router.Get("/articles/{id}", handler.getArticle)
	router.Get("/reviews/{id}", handler.getReview)

	router.Route("/reports", func(reports chi.Router) {
		reports.Get("/search-authors", handler.searchAuthors)
		reports.Get("/top-publisher", respond.ReportFunc(handler.service.TopPublisher))
		reports.Get("/top-reviewer", respond.ReportFunc(handler.service.TopReviewer))
		reports.Get("/latest-article", respond.ReportFunc(handler.service.LatestArticle))
		reports.Get("/top-rated-article", respond.ReportFunc(handler.service.TopRatedArticle))
	})

	router.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(sec.RoleEditor))
		editor.Post("/authors", handler.createAuthor)
		editor.Post("/articles", handler.createArticle)
		editor.Post("/reviews", handler.createReview)
	})

	router.With(middleware.RequireRole(sec.RoleAdmin)).Post("/authors/ban", handler.banAuthor)
}

// # Payloads

type authorRequest struct {
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	IsBanned  bool    `json:"is_banned"`
	BirthYear int     `json:"birth_year"`
	Website   *string `json:"website"`
}

type articleRequest struct {
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Category    string  `json:"category"`
	AuthorIDs   []int64 `json:"author_ids"`
	PublishedOn string  `json:"published_on"`
}

type reviewRequest struct {
	Content     string  `json:"content"`
	Rating      float64 `json:"rating"`
	AuthorID    int64   `json:"author_id"`
	ArticleID   int64   `json:"article_id"`
	PublishedOn string  `json:"published_on"`
}

// # Records

func (handler *Handler) createAuthor(writer http.ResponseWriter, request *http.Request) {
	var payload authorRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	author := &Author{
		FullName:  payload.FullName,
		Email:     payload.Email,
		IsBanned:  payload.IsBanned,
		BirthYear: payload.BirthYear,
		Website:   payload.Website,
	}
	if err := handler.service.CreateAuthor(request.Context(), author); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, author)
}

func (handler *Handler) getAuthor(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	author, err := handler.service.GetAuthor(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, author)
}

func (handler *Handler) createArticle(writer http.ResponseWriter, request *http.Request) {
	var payload articleRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	publishedOn, err := requestutil.Date("published_on", payload.PublishedOn)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	article := &Article{
		Title:       payload.Title,
		Content:     payload.Content,
		Category:    payload.Category,
		AuthorIDs:   payload.AuthorIDs,
		PublishedOn: publishedOn,
	}
	if err := handler.service.CreateArticle(request.Context(), article); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, article)
}

func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.GetArticle(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, article)
}

func (handler *Handler) createReview(writer http.ResponseWriter, request *http.Request) {
	var payload reviewRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	publishedOn, err := requestutil.Date("published_on", payload.PublishedOn)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	review := &Review{
		Content:     payload.Content,
		Rating:      payload.Rating,
		AuthorID:    payload.AuthorID,
		ArticleID:   payload.ArticleID,
		PublishedOn: publishedOn,
	}
	if err := handler.service.CreateReview(request.Context(), review); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, review)
}

func (handler *Handler) getReview(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.service.GetReview(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, review)
}

// # Reports

func (handler *Handler) authorsByArticleCount(writer http.ResponseWriter, request *http.Request) {
	rows, err := handler.service.AuthorsByArticleCount(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, rows)
}

func (handler *Handler) searchAuthors(writer http.ResponseWriter, request *http.Request) {
	report, err := handler.service.SearchAuthors(request.Context(),
		requestutil.OptionalQuery(request, "name"),
		requestutil.OptionalQuery(request, "email"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Report(writer, report)
}

// # Bulk Updates

func (handler *Handler) banAuthor(writer http.ResponseWriter, request *http.Request) {
	report, err := handler.service.BanAuthor(request.Context(), requestutil.OptionalQuery(request, "email"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Report(writer, report)
}
