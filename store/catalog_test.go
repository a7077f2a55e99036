package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mibon4ik/toyota-sub000/models"
)

func seededCatalog() *CatalogStore {
	return NewCatalogStore(SeedParts())
}

func partIDs(parts []models.Part) []string {
	ids := make([]string, len(parts))
	for i, p := range parts {
		ids[i] = p.ID
	}
	return ids
}

func TestListByCategory(t *testing.T) {
	catalog := seededCatalog()
	all := len(SeedParts())

	assert.Len(t, catalog.ListByCategory(""), all)
	assert.Len(t, catalog.ListByCategory("all"), all)
	assert.Len(t, catalog.ListByCategory("ALL"), all)

	filters := catalog.ListByCategory("Фильтры")
	assert.ElementsMatch(t, []string{"3", "4", "10"}, partIDs(filters))

	// Case-insensitive exact match
	assert.Len(t, catalog.ListByCategory("фильтры"), 3)

	assert.Empty(t, catalog.ListByCategory("Нет такой категории"))
}

func TestSearch(t *testing.T) {
	catalog := seededCatalog()

	// Empty query is a no-op, not "return everything"
	assert.Empty(t, catalog.Search(""))
	assert.Empty(t, catalog.Search("   "))

	assert.Equal(t, []string{"1"}, partIDs(catalog.Search("brembo")))

	byName := partIDs(catalog.Search("фильтр"))
	assert.Subset(t, byName, []string{"3", "4", "10"})

	// SKU is searchable
	assert.Equal(t, []string{"8"}, partIDs(catalog.Search("5680XS")))

	// Compatibility entries are not part of free-text search
	assert.Empty(t, catalog.Search("camry"))
}

func TestGetByID(t *testing.T) {
	catalog := seededCatalog()

	part, ok := catalog.GetByID("1")
	require.True(t, ok)
	assert.Equal(t, "Передние тормозные колодки", part.Name)

	_, ok = catalog.GetByID("999")
	assert.False(t, ok)
}

func TestMatchByVINLength(t *testing.T) {
	catalog := seededCatalog()

	assert.Empty(t, catalog.MatchByVIN("JT123"))
	assert.Empty(t, catalog.MatchByVIN("JTDKN3DU0A012345"))   // 16 chars
	assert.Empty(t, catalog.MatchByVIN("JTDKN3DU0A01234567")) // 18 chars
}

func TestMatchByVINToyotaPrefix(t *testing.T) {
	catalog := seededCatalog()

	matches := catalog.MatchByVIN("JTDKN3DU0A0123456")
	require.NotEmpty(t, matches)

	// Every match must carry a Toyota entry or a catch-all phrase
	for _, p := range matches {
		var ok bool
		for _, entry := range p.CompatibleVehicles {
			lower := strings.ToLower(entry)
			if strings.Contains(lower, "toyota") || isCatchAll(lower) {
				ok = true
				break
			}
		}
		assert.True(t, ok, "part %s matched without a Toyota or catch-all entry", p.ID)
	}

	// Case-insensitive VIN handling
	assert.Equal(t, partIDs(matches), partIDs(catalog.MatchByVIN("jtdkn3du0a0123456")))
}

func TestMatchByVINCamryPrefix(t *testing.T) {
	catalog := seededCatalog()

	ids := partIDs(catalog.MatchByVIN("2T1BURHE5JC123456"))
	assert.Contains(t, ids, "1")     // Toyota Camry 2018+
	assert.NotContains(t, ids, "8")  // Land Cruiser only
	assert.Contains(t, ids, "9")     // "Most models" catch-all
}

func TestMatchByVINUnknownPrefix(t *testing.T) {
	catalog := seededCatalog()

	// Honda VIN: only catch-all parts apply
	ids := partIDs(catalog.MatchByVIN("1HGCM82633A004352"))
	assert.ElementsMatch(t, []string{"6", "7", "9", "11"}, ids)
}

func TestMatchByMakeModel(t *testing.T) {
	catalog := seededCatalog()

	ids := partIDs(catalog.MatchByMakeModel("Toyota", "Camry"))
	assert.Contains(t, ids, "1") // Передние тормозные колодки, "Toyota Camry 2018+"

	// Case-insensitive
	assert.Equal(t, ids, partIDs(catalog.MatchByMakeModel("toyota", "camry")))

	// Both make and model are required
	assert.Empty(t, catalog.MatchByMakeModel("", "Camry"))
	assert.Empty(t, catalog.MatchByMakeModel("Toyota", ""))

	// Unknown vehicle still gets the catch-all parts
	assert.ElementsMatch(t, []string{"6", "7", "9", "11"},
		partIDs(catalog.MatchByMakeModel("Honda", "Civic")))
}
