package domain_test

import (
	"reflect"
	"testing"

	"robomart/internal/domain"
)

func validDraft() domain.Draft {
	return domain.Draft{
		Name:        "Arm X",
		Description: "6-axis industrial arm",
		Price:       1000,
		Stock:       3,
		Category:    "Robotic Arms",
		Features:    []string{"6-axis movement", "High precision"},
	}
}

func TestDraftValidateOK(t *testing.T) {
	if err := validDraft().Validate(); err != nil {
		t.Fatalf("valid draft rejected: %v", err)
	}
}

func TestDraftValidateNamesFailingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.Draft)
		fields []string
	}{
		{"empty name", func(d *domain.Draft) { d.Name = "" }, []string{"name"}},
		{"blank name", func(d *domain.Draft) { d.Name = "   " }, []string{"name"}},
		{"empty description", func(d *domain.Draft) { d.Description = "" }, []string{"description"}},
		{"negative price", func(d *domain.Draft) { d.Price = -1 }, []string{"price"}},
		{"negative stock", func(d *domain.Draft) { d.Stock = -1 }, []string{"stock"}},
		{"empty category", func(d *domain.Draft) { d.Category = "" }, []string{"category"}},
		{"multiple violations", func(d *domain.Draft) {
			d.Name = ""
			d.Price = -5
			d.Category = ""
		}, []string{"name", "price", "category"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(&d)
			verr := d.Validate()
			if verr == nil {
				t.Fatal("expected a validation error")
			}
			if !reflect.DeepEqual(verr.Fields, tc.fields) {
				t.Fatalf("want fields %v, got %v", tc.fields, verr.Fields)
			}
		})
	}
}

func TestDraftValidateZeroPriceAndStockAllowed(t *testing.T) {
	d := validDraft()
	d.Price = 0
	d.Stock = 0
	if err := d.Validate(); err != nil {
		t.Fatalf("zero price/stock must be accepted: %v", err)
	}
}
