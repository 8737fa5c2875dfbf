// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shop

import (
	"fmt"
	"strings"

	"github.com/taibuivan/querylab/pkg/slice"
)

// FormatProfiles renders the profile search results.
func FormatProfiles(rows []ProfileOrders) string {
	return slice.Join(rows, "\n", func(row ProfileOrders) string {
		return fmt.Sprintf("Profile: %s, email: %s, phone number: %s, orders: %d",
			row.Profile.FullName, row.Profile.Email, row.Profile.PhoneNumber, row.Orders)
	})
}

// FormatLoyalProfiles renders one line per regular customer.
func FormatLoyalProfiles(rows []ProfileOrders) string {
	return slice.Join(rows, "\n", func(row ProfileOrders) string {
		return fmt.Sprintf("Profile: %s, orders: %d", row.Profile.FullName, row.Orders)
	})
}

// FormatLastSoldProducts renders the products of the newest order.
func FormatLastSoldProducts(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return "Last sold products: " + strings.Join(names, ", ")
}

// FormatTopProducts renders the best sellers under a heading.
func FormatTopProducts(rows []ProductOrders) string {
	if len(rows) == 0 {
		return ""
	}
	return "Top products:\n" + slice.Join(rows, "\n", func(row ProductOrders) string {
		return fmt.Sprintf("%s, sold %d times", row.Product.Name, row.Orders)
	})
}

// FormatDiscounts renders the outcome of the bulk discount. Zero is reported too.
func FormatDiscounts(updated int) string {
	return fmt.Sprintf("Discount applied to %d orders.", updated)
}

// OrderCompleted is returned once the oldest open order has been completed.
const OrderCompleted = "Order has been completed!"
