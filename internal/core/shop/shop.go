// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shop

import "time"

// Timestamped carries the creation time assigned on insert.
type Timestamped struct {
	CreationDate time.Time `json:"creation_date"`
}

// Profile is a shop customer.
type Profile struct {
	ID          int64  `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	IsActive    bool   `json:"is_active"`
	Timestamped
}

// Product is an item that can be ordered while in stock.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	InStock     int     `json:"in_stock"`
	IsAvailable bool    `json:"is_available"`
	Timestamped
}

// Order belongs to a profile and lists the products bought.
type Order struct {
	ID          int64   `json:"id"`
	ProfileID   int64   `json:"profile_id"`
	ProductIDs  []int64 `json:"product_ids"`
	TotalPrice  float64 `json:"total_price"`
	IsCompleted bool    `json:"is_completed"`
	Timestamped
}

// ProfileOrders is a profile annotated with its order count.
type ProfileOrders struct {
	Profile Profile `json:"profile"`
	Orders  int     `json:"orders"`
}

// ProductOrders is a product annotated with the number of orders containing it.
type ProductOrders struct {
	Product Product `json:"product"`
	Orders  int     `json:"orders"`
}

// Report thresholds.
const (
	// RegularCustomerMinOrders is exceeded by loyal profiles.
	RegularCustomerMinOrders = 2

	// DiscountMinProducts is exceeded by orders that qualify for a discount.
	DiscountMinProducts = 2

	// DiscountFactor is applied to the total price of qualifying orders.
	DiscountFactor = 0.9

	// TopProductsSize is how many products the best seller list shows.
	TopProductsSize = 5

	MinPrice = 0.01
)

// Field names for validation
const (
	FieldFullName    = "full_name"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
	FieldAddress     = "address"
	FieldName        = "name"
	FieldPrice       = "price"
	FieldInStock     = "in_stock"
	FieldProfileID   = "profile_id"
	FieldTotalPrice  = "total_price"
)
