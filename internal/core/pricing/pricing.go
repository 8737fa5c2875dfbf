// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pricing

import (
	"fmt"

	"github.com/taibuivan/querylab/internal/platform/apperr"
	"github.com/taibuivan/querylab/pkg/convert"
)

// Product is priced differently depending on the variant it is quoted under.
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Variant tags.
const (
	TagRegular    = "regular"
	TagDiscounted = "discounted"
)

// Variant is the pricing behaviour a product is quoted under.
type Variant interface {
	Tag() string
	Tax(price float64) float64
	Shipping(weight float64) float64
	DisplayName(name string) string
}

// Regular charges 8% tax and 2.00 shipping per weight unit.
type Regular struct{}

func (Regular) Tag() string                     { return TagRegular }
func (Regular) Tax(price float64) float64       { return price * 0.08 }
func (Regular) Shipping(weight float64) float64 { return weight * 2.00 }
func (Regular) DisplayName(name string) string  { return "Product: " + name }

// Discounted charges 5% tax and 1.50 shipping per weight unit, and knows its pre-discount price.
type Discounted struct{}

func (Discounted) Tag() string                     { return TagDiscounted }
func (Discounted) Tax(price float64) float64       { return price * 0.05 }
func (Discounted) Shipping(weight float64) float64 { return weight * 1.50 }
func (Discounted) DisplayName(name string) string  { return "Discounted Product: " + name }

// PriceWithoutDiscount is the price before the 20% discount was applied.
func (Discounted) PriceWithoutDiscount(price float64) float64 { return price * 1.20 }

// ParseVariant resolves a variant tag.
func ParseVariant(tag string) (Variant, error) {
	switch tag {
	case TagRegular:
		return Regular{}, nil
	case TagDiscounted:
		return Discounted{}, nil
	}
	return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   FieldVariant,
		Message: fmt.Sprintf("Must be one of: %s, %s", TagRegular, TagDiscounted),
	})
}

// Quote is a priced product under one variant. Amounts are rounded to cents.
type Quote struct {
	Product              Product  `json:"product"`
	Variant              string   `json:"variant"`
	Name                 string   `json:"name"`
	Tax                  float64  `json:"tax"`
	Shipping             float64  `json:"shipping"`
	PriceWithoutDiscount *float64 `json:"price_without_discount,omitempty"`
}

// NewQuote prices product under variant for a shipment of weight units.
func NewQuote(product Product, variant Variant, weight float64) Quote {
	quote := Quote{
		Product:  product,
		Variant:  variant.Tag(),
		Name:     variant.DisplayName(product.Name),
		Tax:      convert.Cents(variant.Tax(product.Price)),
		Shipping: convert.Cents(variant.Shipping(weight)),
	}
	if discounted, ok := variant.(Discounted); ok {
		full := convert.Cents(discounted.PriceWithoutDiscount(product.Price))
		quote.PriceWithoutDiscount = &full
	}
	return quote
}

// Field names for validation
const (
	FieldName    = "name"
	FieldPrice   = "price"
	FieldVariant = "variant"
	FieldWeight  = "weight"
)
