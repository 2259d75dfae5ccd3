package search

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func specFor(t *testing.T, query string) FilterSpec {
	t.Helper()
	r := httptest.NewRequest("GET", "/api/search/venues?"+query, nil)
	return ParseFilterSpec(r)
}

func TestParseFilterSpecDefaults(t *testing.T) {
	spec := specFor(t, "")

	assert.Equal(t, 1, spec.Page)
	assert.Equal(t, 10, spec.Limit)
	assert.Equal(t, SortPopularity, spec.Sort)
	assert.False(t, spec.HasDates)
	assert.False(t, spec.UseMyLocation)
	assert.False(t, spec.HasMinPrice)
	assert.False(t, spec.HasMinRating)
}

func TestParseFilterSpecDropsMalformedValues(t *testing.T) {
	spec := specFor(t, "minCapacity=abc&minRating=x&page=-2&limit=zero&startDate=notadate&endDate=2025-01-02")

	assert.Equal(t, 0, spec.MinCapacity)
	assert.False(t, spec.HasMinRating)
	assert.Equal(t, 1, spec.Page)
	assert.Equal(t, 10, spec.Limit)
	assert.False(t, spec.HasDates)
}

func TestParseFilterSpecDates(t *testing.T) {
	spec := specFor(t, "startDate=2025-01-11&endDate=2025-01-13")
	assert.True(t, spec.HasDates)
	assert.Equal(t, time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC), spec.StartDate)
	assert.Equal(t, time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), spec.EndDate)

	// inverted range is dropped
	spec = specFor(t, "startDate=2025-01-13&endDate=2025-01-11")
	assert.False(t, spec.HasDates)
}

func TestParseFilterSpecCoordinates(t *testing.T) {
	spec := specFor(t, "useMyLocation=true&lat=18.52&lng=73.85")
	assert.True(t, spec.UseMyLocation)
	assert.True(t, spec.HasCoords)
	assert.Equal(t, 18.52, spec.Lat)
	assert.Equal(t, 73.85, spec.Lng)

	// flag without valid coordinates is ignored
	spec = specFor(t, "useMyLocation=true&lat=abc&lng=73.85")
	assert.False(t, spec.UseMyLocation)
}

func TestParseFilterSpecPriceRange(t *testing.T) {
	spec := specFor(t, "priceRange=0-10000")
	assert.True(t, spec.HasMinPrice)
	assert.True(t, spec.HasMaxPrice)
	assert.Equal(t, 0.0, spec.MinPrice)
	assert.Equal(t, 10000.0, spec.MaxPrice)

	spec = specFor(t, "priceRange=5000%2B") // "5000+"
	assert.True(t, spec.HasMinPrice)
	assert.False(t, spec.HasMaxPrice)
	assert.Equal(t, 5000.0, spec.MinPrice)

	spec = specFor(t, "priceRange=cheap")
	assert.False(t, spec.HasMinPrice)
	assert.False(t, spec.HasMaxPrice)

	// inverted bounds are dropped
	spec = specFor(t, "priceRange=9000-100")
	assert.False(t, spec.HasMinPrice)
}

func TestParseFilterSpecAmenities(t *testing.T) {
	spec := specFor(t, "amenities=WiFi,%20Parking,wifi,")
	assert.Equal(t, []string{"wifi", "parking"}, spec.Amenities)
}

func TestParseFilterSpecLocationAliases(t *testing.T) {
	spec := specFor(t, "city=Pune")
	assert.Equal(t, "Pune", spec.Location)

	spec = specFor(t, "location=Mumbai")
	assert.Equal(t, "Mumbai", spec.Location)

	// city wins when both are present
	spec = specFor(t, "city=Pune&location=Mumbai")
	assert.Equal(t, "Pune", spec.Location)
}

func TestParseFilterSpecLimitClamp(t *testing.T) {
	spec := specFor(t, "limit=5000")
	assert.Equal(t, 100, spec.Limit)
}
