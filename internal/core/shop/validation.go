// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shop

import "github.com/taibuivan/querylab/internal/platform/validate"

// ValidateProfile checks a profile before it is written.
func ValidateProfile(profile *Profile) error {
	return (&validate.Validator{}).
		MinLen(FieldFullName, profile.FullName, 2).
		MaxLen(FieldFullName, profile.FullName, 100).
		Email(FieldEmail, profile.Email).
		Required(FieldPhoneNumber, profile.PhoneNumber).
		MaxLen(FieldPhoneNumber, profile.PhoneNumber, 15).
		Required(FieldAddress, profile.Address).
		Err()
}

// ValidateProduct checks a product before it is written.
func ValidateProduct(product *Product) error {
	return (&validate.Validator{}).
		Required(FieldName, product.Name).
		MaxLen(FieldName, product.Name, 100).
		FloatMin(FieldPrice, product.Price, MinPrice).
		Min(FieldInStock, product.InStock, 0).
		Err()
}

// ValidateOrder checks an order before it is written.
func ValidateOrder(order *Order) error {
	return (&validate.Validator{}).
		Custom(FieldProfileID, order.ProfileID < 1, "This field is required").
		FloatMin(FieldTotalPrice, order.TotalPrice, MinPrice).
		Err()
}
