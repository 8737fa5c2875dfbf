// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shop

import (
	"context"
	"log/slog"

	"github.com/taibuivan/querylab/internal/platform/constants"
	"github.com/taibuivan/querylab/internal/platform/reportcache"
)

// Report names, used as cache keys and metric labels.
const (
	ReportSearchProfiles   = "search-profiles"
	ReportLoyalProfiles    = "loyal-profiles"
	ReportLastSoldProducts = "last-sold-products"
	ReportTopProducts      = "top-products"
)

type Service struct {
	repo   Repository
	cache  *reportcache.Cache
	logger *slog.Logger
}

// NewService wires the shop reports. cache may be nil.
func NewService(repo Repository, cache *reportcache.Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// # Records

func (service *Service) CreateProfile(ctx context.Context, profile *Profile) error {
	if err := ValidateProfile(profile); err != nil {
		return err
	}

	if err := service.repo.CreateProfile(ctx, profile); err != nil {
		return err
	}

	service.cache.Invalidate(ctx, constants.DomainShop)
	service.logger.InfoContext(ctx, "profile_created", slog.Int64("profile_id", profile.ID))
	return nil
}

func (service *Service) GetProfile(ctx context.Context, id int64) (*Profile, error) {
	return service.repo.GetProfile(ctx, id)
}

func (service *Service) CreateProduct(ctx context.Context, product *Product) error {
	if err := ValidateProduct(product); err != nil {
		return err
	}

	if err := service.repo.CreateProduct(ctx, product); err != nil {
		return err
	}

	service.cache.Invalidate(ctx, constants.DomainShop)
	service.logger.InfoContext(ctx, "product_created", slog.Int64("product_id", product.ID))
	return nil
}

func (service *Service) GetProduct(ctx context.Context, id int64) (*Product, error) {
	return service.repo.GetProduct(ctx, id)
}

func (service *Service) CreateOrder(ctx context.Context, order *Order) error {
	if err := ValidateOrder(order); err != nil {
		return err
	}

	if err := service.repo.CreateOrder(ctx, order); err != nil {
		return err
	}

	service.cache.Invalidate(ctx, constants.DomainShop)
	service.logger.InfoContext(ctx, "order_created",
		slog.Int64("order_id", order.ID),
		slog.Int64("profile_id", order.ProfileID),
		slog.Int("products", len(order.ProductIDs)),
	)
	return nil
}

func (service *Service) GetOrder(ctx context.Context, id int64) (*Order, error) {
	return service.repo.GetOrder(ctx, id)
}

// # Reports

// SearchProfiles matches name, email or phone number; nil search yields "".
func (service *Service) SearchProfiles(ctx context.Context, search *string) (string, error) {
	if search == nil {
		return "", nil
	}

	args := []string{reportcache.OptionalArg(search)}
	return service.cache.Remember(ctx, constants.DomainShop, ReportSearchProfiles, args, func(ctx context.Context) (string, error) {
		rows, err := service.repo.SearchProfiles(ctx, *search)
		if err != nil {
			return "", err
		}
		return FormatProfiles(rows), nil
	})
}

// RegularCustomers lists profiles with more than two orders, most orders first.
func (service *Service) RegularCustomers(ctx context.Context) ([]ProfileOrders, error) {
	return service.repo.ProfilesWithMoreOrders(ctx, RegularCustomerMinOrders)
}

// LoyalProfiles renders [Service.RegularCustomers].
func (service *Service) LoyalProfiles(ctx context.Context) (string, error) {
	return service.cache.Remember(ctx, constants.DomainShop, ReportLoyalProfiles, nil, func(ctx context.Context) (string, error) {
		rows, err := service.RegularCustomers(ctx)
		if err != nil {
			return "", err
		}
		return FormatLoyalProfiles(rows), nil
	})
}

// LastSoldProducts lists the products of the newest order.
func (service *Service) LastSoldProducts(ctx context.Context) (string, error) {
	return service.cache.Remember(ctx, constants.DomainShop, ReportLastSoldProducts, nil, func(ctx context.Context) (string, error) {
		names, found, err := service.repo.LatestOrderProducts(ctx)
		if err != nil || !found {
			return "", err
		}
		return FormatLastSoldProducts(names), nil
	})
}

// TopProducts lists the five most ordered products.
func (service *Service) TopProducts(ctx context.Context) (string, error) {
	return service.cache.Remember(ctx, constants.DomainShop, ReportTopProducts, nil, func(ctx context.Context) (string, error) {
		rows, err := service.repo.TopProducts(ctx, TopProductsSize)
		if err != nil {
			return "", err
		}
		return FormatTopProducts(rows), nil
	})
}

// # Bulk Updates

// ApplyDiscounts takes 10% off every open order with more than two products.
func (service *Service) ApplyDiscounts(ctx context.Context) (string, error) {
	updated, err := service.repo.DiscountOpenOrders(ctx, DiscountMinProducts, DiscountFactor)
	if err != nil {
		return "", err
	}

	if updated > 0 {
		service.cache.Invalidate(ctx, constants.DomainShop)
	}
	service.logger.InfoContext(ctx, "order_discounts_applied", slog.Int("updated", updated))

	return FormatDiscounts(updated), nil
}

// CompleteOrder completes the oldest open order; "" when none is open.
func (service *Service) CompleteOrder(ctx context.Context) (string, error) {
	completed, err := service.repo.CompleteOldestOrder(ctx)
	if err != nil || !completed {
		return "", err
	}

	service.cache.Invalidate(ctx, constants.DomainShop)
	service.logger.InfoContext(ctx, "order_completed")

	return OrderCompleted, nil
}
