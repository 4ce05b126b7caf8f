package domain

// AllProducts is the sentinel category meaning "no category restriction".
const AllProducts = "All Products"

// DefaultCategories are the category suggestions shown in the UI. The backend
// accepts arbitrary category text, so the set is advisory, not exhaustive.
var DefaultCategories = []string{"Drones", "Robotic Arms", "Sensors", "Kits", "Other"}

type Image struct {
	URL string `json:"url"`
}

// Product mirrors the backend catalog entity. The backend owns every field;
// the client never mutates a Product in place — edits round-trip through the
// remote API and the authoritative copy is whatever the backend returns.
type Product struct {
	ID          string         `json:"_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Stock       int            `json:"stock"`
	Category    string         `json:"category"`
	Features    []string       `json:"features"`
	Images      []Image        `json:"images"`
	Specs       map[string]any `json:"specifications,omitempty"`
}

// PrimaryImage returns the first image URL, or "" when the product has none.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}
