package models

// Part is a sellable catalog item. The catalog is seeded at startup and
// read-only afterwards, so parts carry no timestamps or update metadata.
type Part struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Brand              string   `json:"brand"`
	Price              float64  `json:"price"`
	ImageURL           string   `json:"imageUrl"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	CompatibleVehicles []string `json:"compatibleVehicles"`
	SKU                string   `json:"sku,omitempty"`
	Stock              int      `json:"stock,omitempty"`
	Rating             float64  `json:"rating,omitempty"`
	ReviewCount        int      `json:"reviewCount,omitempty"`
}
