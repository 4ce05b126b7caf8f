package catalog

import (
	"strings"

	"robomart/internal/domain"
)

// Filter narrows a product list by free-text search and category chip.
// Search matches case-insensitively against name or description; an empty
// search matches everything. Category must match exactly unless it is the
// "All Products" sentinel. Output preserves input order.
func Filter(products []domain.Product, search, category string) []domain.Product {
	q := strings.ToLower(search)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		if category != domain.AllProducts && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}
