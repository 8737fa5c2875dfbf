// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shop

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/taibuivan/querylab/internal/platform/apperr"
	"github.com/taibuivan/querylab/pkg/convert"
	"github.com/taibuivan/querylab/pkg/fold"
	"github.com/taibuivan/querylab/pkg/slice"
)

// MemoryRepository keeps the shop tables in process memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	profiles map[int64]Profile
	products map[int64]Product
	orders   map[int64]Order
	lastID   int64
	now      func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		profiles: map[int64]Profile{},
		products: map[int64]Product{},
		orders:   map[int64]Order{},
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (repository *MemoryRepository) stamp(timestamped *Timestamped) int64 {
	if timestamped.CreationDate.IsZero() {
		timestamped.CreationDate = repository.now()
	}
	repository.lastID++
	return repository.lastID
}

// # Records

func (repository *MemoryRepository) CreateProfile(_ context.Context, profile *Profile) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	profile.ID = repository.stamp(&profile.Timestamped)
	repository.profiles[profile.ID] = *profile
	return nil
}

func (repository *MemoryRepository) GetProfile(_ context.Context, id int64) (*Profile, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	profile, ok := repository.profiles[id]
	if !ok {
		return nil, apperr.NotFound("Profile")
	}
	return &profile, nil
}

func (repository *MemoryRepository) CreateProduct(_ context.Context, product *Product) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	product.ID = repository.stamp(&product.Timestamped)
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

func (repository *MemoryRepository) CreateOrder(_ context.Context, order *Order) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.profiles[order.ProfileID]; !ok {
		return apperr.ValidationError("Referenced record does not exist")
	}
	for _, productID := range order.ProductIDs {
		if _, ok := repository.products[productID]; !ok {
			return apperr.ValidationError("Referenced record does not exist")
		}
	}

	order.ID = repository.stamp(&order.Timestamped)
	order.ProductIDs = slice.Unique(order.ProductIDs)

	stored := *order
	stored.ProductIDs = slices.Clone(order.ProductIDs)
	repository.orders[order.ID] = stored
	return nil
}

func (repository *MemoryRepository) GetOrder(_ context.Context, id int64) (*Order, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	order, ok := repository.orders[id]
	if !ok {
		return nil, apperr.NotFound("Order")
	}
	order.ProductIDs = slices.Clone(order.ProductIDs)
	return &order, nil
}

// # Reports

func (repository *MemoryRepository) SearchProfiles(_ context.Context, search string) ([]ProfileOrders, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	counts := repository.orderCounts()

	var rows []ProfileOrders
	for id, profile := range repository.profiles {
		if !fold.Contains(profile.FullName, search) &&
			!fold.Contains(profile.Email, search) &&
			!fold.Contains(profile.PhoneNumber, search) {
			continue
		}
		rows = append(rows, ProfileOrders{Profile: profile, Orders: counts[id]})
	}

	slices.SortFunc(rows, func(a, b ProfileOrders) int {
		return cmp.Or(cmp.Compare(a.Profile.FullName, b.Profile.FullName), cmp.Compare(a.Profile.ID, b.Profile.ID))
	})
	return rows, nil
}

func (repository *MemoryRepository) ProfilesWithMoreOrders(_ context.Context, minOrders int) ([]ProfileOrders, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	counts := repository.orderCounts()

	var rows []ProfileOrders
	for id, profile := range repository.profiles {
		if counts[id] > minOrders {
			rows = append(rows, ProfileOrders{Profile: profile, Orders: counts[id]})
		}
	}

	slices.SortFunc(rows, func(a, b ProfileOrders) int {
		return cmp.Or(
			cmp.Compare(b.Orders, a.Orders),
			cmp.Compare(a.Profile.FullName, b.Profile.FullName),
			cmp.Compare(a.Profile.ID, b.Profile.ID),
		)
	})
	return rows, nil
}

func (repository *MemoryRepository) LatestOrderProducts(_ context.Context) ([]string, bool, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	var latest *Order
	for _, order := range repository.orders {
		if latest == nil || cmp.Or(
			order.CreationDate.Compare(latest.CreationDate),
			cmp.Compare(order.ID, latest.ID),
		) > 0 {
			candidate := order
			latest = &candidate
		}
	}
	if latest == nil {
		return nil, false, nil
	}

	names := make([]string, 0, len(latest.ProductIDs))
	for _, productID := range latest.ProductIDs {
		names = append(names, repository.products[productID].Name)
	}
	slices.Sort(names)
	return names, true, nil
}

func (repository *MemoryRepository) TopProducts(_ context.Context, limit int) ([]ProductOrders, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	counts := map[int64]int{}
	for _, order := range repository.orders {
		for _, productID := range order.ProductIDs {
			counts[productID]++
		}
	}

	var rows []ProductOrders
	for id, orders := range counts {
		rows = append(rows, ProductOrders{Product: repository.products[id], Orders: orders})
	}

	slices.SortFunc(rows, func(a, b ProductOrders) int {
		return cmp.Or(
			cmp.Compare(b.Orders, a.Orders),
			cmp.Compare(a.Product.Name, b.Product.Name),
			cmp.Compare(a.Product.ID, b.Product.ID),
		)
	})
	return slice.Limit(rows, limit), nil
}

// # Bulk Updates

func (repository *MemoryRepository) DiscountOpenOrders(_ context.Context, minProducts int, factor float64) (int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	updated := 0
	for id, order := range repository.orders {
		if order.IsCompleted || len(order.ProductIDs) <= minProducts {
			continue
		}
		order.TotalPrice = convert.ScaleCents(order.TotalPrice, factor)
		repository.orders[id] = order
		updated++
	}
	return updated, nil
}

func (repository *MemoryRepository) CompleteOldestOrder(_ context.Context) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var oldest *Order
	for _, order := range repository.orders {
		if order.IsCompleted {
			continue
		}
		if oldest == nil || cmp.Or(
			order.CreationDate.Compare(oldest.CreationDate),
			cmp.Compare(order.ID, oldest.ID),
		) < 0 {
			candidate := order
			oldest = &candidate
		}
	}
	if oldest == nil {
		return false, nil
	}

	oldest.IsCompleted = true
	repository.orders[oldest.ID] = *oldest

	for _, productID := range oldest.ProductIDs {
		product := repository.products[productID]
		product.InStock = max(product.InStock-1, 0)
		if product.InStock == 0 {
			product.IsAvailable = false
		}
		repository.products[productID] = product
	}
	return true, nil
}

// orderCounts returns the number of orders per profile. Callers hold the lock.
func (repository *MemoryRepository) orderCounts() map[int64]int {
	counts := map[int64]int{}
	for _, order := range repository.orders {
		counts[order.ProfileID]++
	}
	return counts
}
