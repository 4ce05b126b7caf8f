package catalog

import "robomart/internal/domain"

// LowStockThreshold marks the quantity below which an in-stock product counts
// as low stock. Zero stock is "out of stock", not "low".
const LowStockThreshold = 10

type Stats struct {
	Count         int
	TotalValue    float64
	LowStockCount int
	CategoryCount int
}

// ComputeStats aggregates the admin dashboard metrics over a product list:
// total count, inventory value (sum of price*stock), low-stock count and the
// number of distinct categories. An empty list yields zero stats.
func ComputeStats(products []domain.Product) Stats {
	var s Stats
	cats := map[string]struct{}{}
	for _, p := range products {
		s.Count++
		s.TotalValue += p.Price * float64(p.Stock)
		if p.Stock > 0 && p.Stock < LowStockThreshold {
			s.LowStockCount++
		}
		cats[p.Category] = struct{}{}
	}
	s.CategoryCount = len(cats)
	return s
}
