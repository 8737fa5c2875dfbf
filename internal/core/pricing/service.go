// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pricing

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/taibuivan/querylab/internal/platform/constants"
	"github.com/taibuivan/querylab/internal/platform/reportcache"
)

// ReportQuote is the cache key of a formatted quote.
const ReportQuote = "quote"

type Service struct {
	repo   Repository
	cache  *reportcache.Cache
	logger *slog.Logger
}

// NewService wires product quoting. cache may be nil.
func NewService(repo Repository, cache *reportcache.Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (service *Service) CreateProduct(ctx context.Context, product *Product) error {
	if err := ValidateProduct(product); err != nil {
		return err
	}
	if err := service.repo.CreateProduct(ctx, product); err != nil {
		return err
	}

	service.cache.Invalidate(ctx, constants.DomainPricing)
	service.logger.InfoContext(ctx, "product_created", slog.Int64("product_id", product.ID))
	return nil
}

func (service *Service) GetProduct(ctx context.Context, id int64) (*Product, error) {
	return service.repo.GetProduct(ctx, id)
}

// Quote prices product id under the variant tag for weight units of shipping.
func (service *Service) Quote(ctx context.Context, id int64, tag string, weight float64) (string, error) {
	variant, err := ParseVariant(tag)
	if err != nil {
		return "", err
	}
	if err := validateWeight(weight); err != nil {
		return "", err
	}

	args := []string{strconv.FormatInt(id, 10), tag, strconv.FormatFloat(weight, 'f', -1, 64)}
	return service.cache.Remember(ctx, constants.DomainPricing, ReportQuote, args, func(ctx context.Context) (string, error) {
		product, err := service.repo.GetProduct(ctx, id)
		if err != nil {
			return "", err
		}
		return FormatQuote(NewQuote(*product, variant, weight)), nil
	})
}
