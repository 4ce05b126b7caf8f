package catalog_test

import (
	"testing"

	"robomart/internal/catalog"
	"robomart/internal/domain"
)

func TestComputeStatsEmpty(t *testing.T) {
	s := catalog.ComputeStats(nil)
	if s != (catalog.Stats{}) {
		t.Fatalf("empty list must yield zero stats, got %+v", s)
	}
}

func TestComputeStatsScenario(t *testing.T) {
	s := catalog.ComputeStats(sampleProducts())
	want := catalog.Stats{Count: 2, TotalValue: 2500, LowStockCount: 1, CategoryCount: 2}
	if s != want {
		t.Fatalf("want %+v, got %+v", want, s)
	}
}

func TestComputeStatsLowStockBoundaries(t *testing.T) {
	cases := []struct {
		stock int
		low   bool
	}{
		{0, false}, // out of stock, not low
		{1, true},
		{9, true},
		{10, false}, // threshold is strict
		{11, false},
	}
	for _, tc := range cases {
		s := catalog.ComputeStats([]domain.Product{{Name: "x", Stock: tc.stock}})
		got := s.LowStockCount == 1
		if got != tc.low {
			t.Errorf("stock=%d: low-stock counted=%v, want %v", tc.stock, got, tc.low)
		}
	}
}

func TestComputeStatsOrderIndependent(t *testing.T) {
	a := sampleProducts()
	b := []domain.Product{a[1], a[0]}
	if catalog.ComputeStats(a) != catalog.ComputeStats(b) {
		t.Fatal("stats must not depend on list order")
	}
}

func TestComputeStatsDuplicateCategoriesCollapse(t *testing.T) {
	s := catalog.ComputeStats([]domain.Product{
		{Name: "a", Category: "Drones"},
		{Name: "b", Category: "Drones"},
		{Name: "c", Category: "Kits"},
	})
	if s.CategoryCount != 2 {
		t.Fatalf("want 2 distinct categories, got %d", s.CategoryCount)
	}
}
