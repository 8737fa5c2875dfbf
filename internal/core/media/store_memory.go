// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/taibuivan/querylab/internal/platform/apperr"
)

// MemoryRepository keeps the media tables in process memory.
type MemoryRepository struct {
	mu        sync.RWMutex
	books     map[int64]Book
	movies    map[int64]Movie
	music     map[int64]Music
	customers map[int64]Customer
	lastID    int64
	now       func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		books:     map[int64]Book{},
		movies:    map[int64]Movie{},
		music:     map[int64]Music{},
		customers: map[int64]Customer{},
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (repository *MemoryRepository) stamp(base *BaseMedia) {
	repository.lastID++
	base.ID = repository.lastID
	if base.CreatedAt.IsZero() {
		base.CreatedAt = repository.now()
	}
}

// # Media

func (repository *MemoryRepository) CreateBook(_ context.Context, book *Book) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, existing := range repository.books {
		if existing.ISBN == book.ISBN {
			return apperr.Conflict("Book with this isbn already exists")
		}
	}

	repository.stamp(&book.BaseMedia)
	repository.books[book.ID] = *book
	return nil
}

func (repository *MemoryRepository) ListBooks(_ context.Context) ([]Book, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return sortedMedia(repository.books, func(book Book) BaseMedia { return book.BaseMedia }), nil
}

func (repository *MemoryRepository) CreateMovie(_ context.Context, movie *Movie) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.stamp(&movie.BaseMedia)
	repository.movies[movie.ID] = *movie
	return nil
}

func (repository *MemoryRepository) ListMovies(_ context.Context) ([]Movie, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return sortedMedia(repository.movies, func(movie Movie) BaseMedia { return movie.BaseMedia }), nil
}

func (repository *MemoryRepository) CreateMusic(_ context.Context, music *Music) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.stamp(&music.BaseMedia)
	repository.music[music.ID] = *music
	return nil
}

func (repository *MemoryRepository) ListMusic(_ context.Context) ([]Music, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return sortedMedia(repository.music, func(music Music) BaseMedia { return music.BaseMedia }), nil
}

// sortedMedia returns the items newest first, then by title and id.
func sortedMedia[T any](items map[int64]T, base func(T) BaseMedia) []T {
	sorted := make([]T, 0, len(items))
	for _, item := range items {
		sorted = append(sorted, item)
	}

	slices.SortFunc(sorted, func(a, b T) int {
		left, right := base(a), base(b)
		return cmp.Or(
			right.CreatedAt.Compare(left.CreatedAt),
			strings.Compare(left.Title, right.Title),
			cmp.Compare(left.ID, right.ID),
		)
	})
	return sorted
}

// # Customers

func (repository *MemoryRepository) CreateCustomer(_ context.Context, customer *Customer) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.lastID++
	customer.ID = repository.lastID
	repository.customers[customer.ID] = *customer
	return nil
}

func (repository *MemoryRepository) GetCustomer(_ context.Context, id int64) (*Customer, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	customer, ok := repository.customers[id]
	if !ok {
		return nil, apperr.NotFound("Customer")
	}
	return &customer, nil
}
