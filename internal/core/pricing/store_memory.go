// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pricing

import (
	"context"
	"sync"

	"github.com/taibuivan/querylab/internal/platform/apperr"
	"github.com/taibuivan/querylab/pkg/convert"
)

// MemoryRepository keeps products in process memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	products map[int64]Product
	lastID   int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{products: map[int64]Product{}}
}

func (repository *MemoryRepository) CreateProduct(_ context.Context, product *Product) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.lastID++
	product.ID = repository.lastID
	product.Price = convert.Cents(product.Price)
	repository.products[product.ID] = *product
	return nil
}

func (repository *MemoryRepository) GetProduct(_ context.Context, id int64) (*Product, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	product, ok := repository.products[id]
	if !ok {
		return nil, apperr.NotFound("Product")
	}
	return &product, nil
}
