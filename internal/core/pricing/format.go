// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pricing

import (
	"fmt"

	"github.com/taibuivan/querylab/pkg/convert"
)

// FormatQuote renders a quote on one line. Discounted quotes end with the pre-discount price.
func FormatQuote(quote Quote) string {
	line := fmt.Sprintf("%s, price: %s, tax: %s, shipping: %s",
		quote.Name,
		convert.Decimal(quote.Product.Price, 2),
		convert.Decimal(quote.Tax, 2),
		convert.Decimal(quote.Shipping, 2),
	)
	if quote.PriceWithoutDiscount != nil {
		line += ", price without discount: " + convert.Decimal(*quote.PriceWithoutDiscount, 2)
	}
	return line
}
