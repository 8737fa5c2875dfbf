// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package press

import (
	"context"
	"log/slog"

	"github.com/taibuivan/querylab/internal/platform/constants"
	"github.com/taibuivan/querylab/internal/platform/reportcache"
	"github.com/taibuivan/querylab/pkg/pointer"
)

// Report names, used as cache keys and metric labels.
const (
	ReportSearchAuthors   = "search-authors"
	ReportTopPublisher    = "top-publisher"
	ReportTopReviewer     = "top-reviewer"
	ReportLatestArticle   = "latest-article"
	ReportTopRatedArticle = "top-rated-article"
)

type Service struct {
	repo   Repository
	cache  *reportcache.Cache
	logger *slog.Logger
}

// NewService wires the press reports. cache may be nil.
func NewService(repo Repository, cache *reportcache.Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// # Records

func (service *Service) CreateAuthor(ctx context.Context, author *Author) error {
	if err := ValidateAuthor(author); err != nil {
		return err
	}

	if err := service.repo.CreateAuthor(ctx, author); err != nil {
		return err
	}

	service.cache.Invalidate(ctx, constants.DomainPress)
	service.logger.InfoContext(ctx, "author_created", slog.Int64("author_id", author.ID))
	return nil
}

func (service *Service) GetAuthor(ctx context.Context, id int64) (*Author, error) {
	return service.repo.GetAuthor(ctx, id)
}

func (service *Service) CreateArticle(ctx context.Context, article *Article) error {
	if article.Category == "" {
		article.Category = CategoryTechnology
	}
	if err := ValidateArticle(article); err != nil {
		return err
	}

	if err := service.repo.CreateArticle(ctx, article); err != nil {
		return err
	}

	service.cache.Invalidate(ctx, constants.DomainPress)
	service.logger.InfoContext(ctx, "article_created",
		slog.Int64("article_id", article.ID),
		slog.Int("authors", len(article.AuthorIDs)),
	)
	return nil
}

func (service *Service) GetArticle(ctx context.Context, id int64) (*Article, error) {
	return service.repo.GetArticle(ctx, id)
}

func (service *Service) CreateReview(ctx context.Context, review *Review) error {
	if err := ValidateReview(review); err != nil {
		return err
	}

	if err := service.repo.CreateReview(ctx, review); err != nil {
		return err
	}

	service.cache.Invalidate(ctx, constants.DomainPress)
	service.logger.InfoContext(ctx, "review_created",
		slog.Int64("review_id", review.ID),
		slog.Int64("article_id", review.ArticleID),
	)
	return nil
}

func (service *Service) GetReview(ctx context.Context, id int64) (*Review, error) {
	return service.repo.GetReview(ctx, id)
}

// # Reports

// SearchAuthors returns matching authors, or "" when neither filter is supplied.
func (service *Service) SearchAuthors(ctx context.Context, name, email *string) (string, error) {
	if pointer.NoneSet(name, email) {
		return "", nil
	}

	args := []string{reportcache.OptionalArg(name), reportcache.OptionalArg(email)}
	return service.cache.Remember(ctx, constants.DomainPress, ReportSearchAuthors, args, func(ctx context.Context) (string, error) {
		authors, err := service.repo.SearchAuthors(ctx, AuthorFilter{Name: name, Email: email})
		if err != nil {
			return "", err
		}
		return FormatAuthors(authors), nil
	})
}

// AuthorsByArticleCount ranks every author by articles written, most first.
func (service *Service) AuthorsByArticleCount(ctx context.Context) ([]AuthorCount, error) {
	return service.repo.AuthorsByArticleCount(ctx, 0)
}

// TopPublisher names the author with the most articles.
func (service *Service) TopPublisher(ctx context.Context) (string, error) {
	return service.cache.Remember(ctx, constants.DomainPress, ReportTopPublisher, nil, func(ctx context.Context) (string, error) {
		rows, err := service.repo.AuthorsByArticleCount(ctx, 1)
		if err != nil || len(rows) == 0 {
			return "", err
		}
		return FormatTopPublisher(rows[0]), nil
	})
}

// TopReviewer names the author with the most reviews.
func (service *Service) TopReviewer(ctx context.Context) (string, error) {
	return service.cache.Remember(ctx, constants.DomainPress, ReportTopReviewer, nil, func(ctx context.Context) (string, error) {
		rows, err := service.repo.AuthorsByReviewCount(ctx, 1)
		if err != nil || len(rows) == 0 {
			return "", err
		}
		return FormatTopReviewer(rows[0]), nil
	})
}

// LatestArticle describes the newest article.
func (service *Service) LatestArticle(ctx context.Context) (string, error) {
	return service.cache.Remember(ctx, constants.DomainPress, ReportLatestArticle, nil, func(ctx context.Context) (string, error) {
		summary, err := service.repo.LatestArticle(ctx)
		if err != nil {
			return "", err
		}
		return FormatLatestArticle(summary), nil
	})
}

// TopRatedArticle describes the reviewed article with the best average rating.
func (service *Service) TopRatedArticle(ctx context.Context) (string, error) {
	return service.cache.Remember(ctx, constants.DomainPress, ReportTopRatedArticle, nil, func(ctx context.Context) (string, error) {
		summary, err := service.repo.TopRatedArticle(ctx)
		if err != nil {
			return "", err
		}
		return FormatTopRatedArticle(summary), nil
	})
}

// # Bulk Updates

// BanAuthor bans the author with this exact email and deletes their reviews.
func (service *Service) BanAuthor(ctx context.Context, email *string) (string, error) {
	if email == nil {
		return NoAuthorsBanned, nil
	}

	ban, err := service.repo.BanAuthor(ctx, *email)
	if err != nil || ban == nil {
		return FormatBan(nil), err
	}

	service.cache.Invalidate(ctx, constants.DomainPress)
	service.logger.InfoContext(ctx, "author_banned",
		slog.Int64("author_id", ban.Author.ID),
		slog.Int("reviews_deleted", ban.ReviewsDeleted),
	)
	return FormatBan(ban), nil
}
