// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package press

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/taibuivan/querylab/internal/platform/apperr"
	"github.com/taibuivan/querylab/pkg/fold"
	"github.com/taibuivan/querylab/pkg/slice"
)

// MemoryRepository keeps the press tables in process memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	authors  map[int64]Author
	articles map[int64]Article
	reviews  map[int64]Review
	lastID   int64
	now      func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		authors:  map[int64]Author{},
		articles: map[int64]Article{},
		reviews:  map[int64]Review{},
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (repository *MemoryRepository) nextID() int64 {
	repository.lastID++
	return repository.lastID
}

// # Records

func (repository *MemoryRepository) CreateAuthor(_ context.Context, author *Author) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, existing := range repository.authors {
		if existing.Email == author.Email {
			return apperr.Conflict("Author with this email already exists")
		}
	}

	author.ID = repository.nextID()
	repository.authors[author.ID] = *author
	return nil
}

func (repository *MemoryRepository) GetAuthor(_ context.Context, id int64) (*Author, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	author, ok := repository.authors[id]
	if !ok {
		return nil, apperr.NotFound("Author")
	}
	return &author, nil
}

func (repository *MemoryRepository) CreateArticle(_ context.Context, article *Article) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, authorID := range article.AuthorIDs {
		if _, ok := repository.authors[authorID]; !ok {
			return apperr.ValidationError("Referenced record does not exist")
		}
	}

	article.ID = repository.nextID()
	article.AuthorIDs = slice.Unique(article.AuthorIDs)
	if article.PublishedOn.IsZero() {
		article.PublishedOn = repository.now()
	}

	stored := *article
	stored.AuthorIDs = slices.Clone(article.AuthorIDs)
	repository.articles[article.ID] = stored
	return nil
}

func (repository *MemoryRepository) GetArticle(_ context.Context, id int64) (*Article, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	article, ok := repository.articles[id]
	if !ok {
		return nil, apperr.NotFound("Article")
	}
	article.AuthorIDs = slices.Clone(article.AuthorIDs)
	return &article, nil
}

func (repository *MemoryRepository) CreateReview(_ context.Context, review *Review) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	_, authorFound := repository.authors[review.AuthorID]
	_, articleFound := repository.articles[review.ArticleID]
	if !authorFound || !articleFound {
		return apperr.ValidationError("Referenced record does not exist")
	}

	review.ID = repository.nextID()
	if review.PublishedOn.IsZero() {
		review.PublishedOn = repository.now()
	}
	repository.reviews[review.ID] = *review
	return nil
}

func (repository *MemoryRepository) GetReview(_ context.Context, id int64) (*Review, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	review, ok := repository.reviews[id]
	if !ok {
		return nil, apperr.NotFound("Review")
	}
	return &review, nil
}

// # Reports

func (repository *MemoryRepository) SearchAuthors(_ context.Context, filter AuthorFilter) ([]Author, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	var matches []Author
	for _, author := range repository.authors {
		if filter.Name != nil && !fold.Contains(author.FullName, *filter.Name) {
			continue
		}
		if filter.Email != nil && !fold.Contains(author.Email, *filter.Email) {
			continue
		}
		matches = append(matches, author)
	}

	slices.SortFunc(matches, func(a, b Author) int {
		return cmp.Or(cmp.Compare(b.FullName, a.FullName), cmp.Compare(a.ID, b.ID))
	})
	return matches, nil
}

func (repository *MemoryRepository) AuthorsByArticleCount(_ context.Context, limit int) ([]AuthorCount, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	counts := map[int64]int{}
	for _, article := range repository.articles {
		for _, authorID := range article.AuthorIDs {
			counts[authorID]++
		}
	}
	return slice.Limit(repository.rankAuthors(counts), limit), nil
}

func (repository *MemoryRepository) AuthorsByReviewCount(_ context.Context, limit int) ([]AuthorCount, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	counts := map[int64]int{}
	for _, review := range repository.reviews {
		counts[review.AuthorID]++
	}
	return slice.Limit(repository.rankAuthors(counts), limit), nil
}

func (repository *MemoryRepository) LatestArticle(_ context.Context) (*ArticleSummary, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	var latest *Article
	for _, article := range repository.articles {
		if latest == nil || cmp.Or(
			article.PublishedOn.Compare(latest.PublishedOn),
			cmp.Compare(article.ID, latest.ID),
		) > 0 {
			candidate := article
			latest = &candidate
		}
	}
	if latest == nil {
		return nil, nil
	}
	return repository.summarize(*latest), nil
}

func (repository *MemoryRepository) TopRatedArticle(_ context.Context) (*ArticleSummary, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	var best *ArticleSummary
	for _, article := range repository.articles {
		summary := repository.summarize(article)
		if summary.AvgRating == nil {
			continue
		}
		if best == nil || cmp.Or(
			cmp.Compare(*best.AvgRating, *summary.AvgRating),
			cmp.Compare(summary.Article.Title, best.Article.Title),
			cmp.Compare(summary.Article.ID, best.Article.ID),
		) < 0 {
			best = summary
		}
	}
	return best, nil
}

// # Bulk Updates

func (repository *MemoryRepository) BanAuthor(_ context.Context, email string) (*Ban, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var target *Author
	for _, author := range repository.authors {
		if author.Email == email {
			candidate := author
			target = &candidate
			break
		}
	}
	if target == nil {
		return nil, nil
	}

	deleted := 0
	for id, review := range repository.reviews {
		if review.AuthorID == target.ID {
			delete(repository.reviews, id)
			deleted++
		}
	}

	target.IsBanned = true
	repository.authors[target.ID] = *target
	return &Ban{Author: *target, ReviewsDeleted: deleted}, nil
}

// # Helpers

// rankAuthors annotates every author with counts[id], ordered count desc then email.
// Callers hold the lock.
func (repository *MemoryRepository) rankAuthors(counts map[int64]int) []AuthorCount {
	rows := make([]AuthorCount, 0, len(repository.authors))
	for id, author := range repository.authors {
		rows = append(rows, AuthorCount{Author: author, Count: counts[id]})
	}

	slices.SortFunc(rows, func(a, b AuthorCount) int {
		return cmp.Or(
			cmp.Compare(b.Count, a.Count),
			strings.Compare(a.Author.Email, b.Author.Email),
			cmp.Compare(a.Author.ID, b.Author.ID),
		)
	})
	return rows
}

// summarize resolves author names and review statistics. Callers hold the lock.
func (repository *MemoryRepository) summarize(article Article) *ArticleSummary {
	summary := &ArticleSummary{Article: article}
	summary.Article.AuthorIDs = slices.Clone(article.AuthorIDs)

	summary.Authors = make([]string, 0, len(article.AuthorIDs))
	for _, authorID := range article.AuthorIDs {
		summary.Authors = append(summary.Authors, repository.authors[authorID].FullName)
	}
	slices.Sort(summary.Authors)

	total := 0.0
	for _, review := range repository.reviews {
		if review.ArticleID == article.ID {
			summary.Reviews++
			total += review.Rating
		}
	}
	if summary.Reviews > 0 {
		average := total / float64(summary.Reviews)
		summary.AvgRating = &average
	}
	return summary
}
