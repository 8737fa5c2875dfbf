// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pricing

import "github.com/taibuivan/querylab/internal/platform/validate"

// ValidateProduct checks a product before it is written.
func ValidateProduct(product *Product) error {
	return (&validate.Validator{}).
		Required(FieldName, product.Name).
		MaxLen(FieldName, product.Name, 100).
		FloatMin(FieldPrice, product.Price, 0).
		Err()
}

func validateWeight(weight float64) error {
	return (&validate.Validator{}).FloatMin(FieldWeight, weight, 0).Err()
}
