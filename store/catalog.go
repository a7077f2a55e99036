package store

import (
	"strings"

	"github.com/mibon4ik/toyota-sub000/models"
)

// CatalogStore answers read-only queries over the fixed parts list. The list
// is copied at construction and never mutated, so no locking is needed.
type CatalogStore struct {
	parts []models.Part
}

func NewCatalogStore(parts []models.Part) *CatalogStore {
	cp := make([]models.Part, len(parts))
	copy(cp, parts)
	return &CatalogStore{parts: cp}
}

// catchAllPhrases mark compatibility entries that apply to broad vehicle
// ranges; they satisfy every VIN and make/model lookup.
var catchAllPhrases = []string{
	"most models",
	"various models",
	"большинство моделей",
	"различные модели",
}

// vinPrefixKeywords maps a VIN world-manufacturer prefix to the keyword a
// compatibility entry must contain. Order matters: the first matching prefix
// wins.
var vinPrefixKeywords = []struct {
	prefix  string
	keyword string
}{
	{"JT", "toyota"}, // Toyota, Japan-built
	{"2T", "camry"},  // Toyota, Canada-built (Camry family)
	{"4T", "toyota"}, // Toyota, US-built
	{"5T", "toyota"}, // Toyota trucks, US-built
}

// ListByCategory returns all parts for an empty or "all" category, otherwise
// the parts whose category matches exactly (case-insensitive). Result order
// is seed order.
func (s *CatalogStore) ListByCategory(category string) []models.Part {
	if category == "" || strings.EqualFold(category, "all") {
		out := make([]models.Part, len(s.parts))
		copy(out, s.parts)
		return out
	}
	out := []models.Part{}
	for _, p := range s.parts {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Search matches the query as a case-insensitive substring of name, brand,
// description, category or SKU. An empty query returns an empty result, not
// the full catalog.
func (s *CatalogStore) Search(query string) []models.Part {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []models.Part{}
	if q == "" {
		return out
	}
	for _, p := range s.parts {
		haystack := strings.ToLower(p.Name + " " + p.Brand + " " + p.Description + " " + p.Category + " " + p.SKU)
		if strings.Contains(haystack, q) {
			out = append(out, p)
		}
	}
	return out
}

// GetByID returns the part and true, or a zero Part and false when the id is
// unknown. Absent ids are not an error.
func (s *CatalogStore) GetByID(id string) (models.Part, bool) {
	for _, p := range s.parts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Part{}, false
}

// MatchByVIN resolves a 17-character VIN to compatible parts via the
// manufacturer-prefix heuristics above. Anything that is not exactly 17
// characters yields an empty result without error.
func (s *CatalogStore) MatchByVIN(vin string) []models.Part {
	out := []models.Part{}
	if len(vin) != 17 {
		return out
	}
	upper := strings.ToUpper(vin)

	keyword := ""
	for _, pk := range vinPrefixKeywords {
		if strings.HasPrefix(upper, pk.prefix) {
			keyword = pk.keyword
			break
		}
	}

	for _, p := range s.parts {
		for _, entry := range p.CompatibleVehicles {
			lower := strings.ToLower(entry)
			if isCatchAll(lower) || (keyword != "" && strings.Contains(lower, keyword)) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// MatchByMakeModel returns parts with a compatibility entry containing both
// the make and the model (case-insensitive substrings), plus catch-all
// entries. An empty make or model yields an empty result.
func (s *CatalogStore) MatchByMakeModel(make, model string) []models.Part {
	out := []models.Part{}
	mk := strings.ToLower(strings.TrimSpace(make))
	md := strings.ToLower(strings.TrimSpace(model))
	if mk == "" || md == "" {
		return out
	}
	for _, p := range s.parts {
		for _, entry := range p.CompatibleVehicles {
			lower := strings.ToLower(entry)
			if isCatchAll(lower) || (strings.Contains(lower, mk) && strings.Contains(lower, md)) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func isCatchAll(lowerEntry string) bool {
	for _, phrase := range catchAllPhrases {
		if strings.Contains(lowerEntry, phrase) {
			return true
		}
	}
	return false
}
