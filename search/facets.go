package search

import (
	"strings"

	"mandap/models"
)

// ApplyFacets keeps only the venues matching every requested facet.
// Each facet is optional; absent facets match everything.
func ApplyFacets(venues []models.Venue, spec FilterSpec) []models.Venue {
	out := make([]models.Venue, 0, len(venues))
	for _, v := range venues {
		if matchesFacets(v, spec) {
			out = append(out, v)
		}
	}
	return out
}

func matchesFacets(v models.Venue, spec FilterSpec) bool {
	if spec.MinCapacity > 0 && v.Capacity < spec.MinCapacity {
		return false
	}
	if spec.HasMinPrice && v.Price < spec.MinPrice {
		return false
	}
	if spec.HasMaxPrice && v.Price > spec.MaxPrice {
		return false
	}
	if len(spec.Amenities) > 0 && !hasAllAmenities(v.Amenities, spec.Amenities) {
		return false
	}
	if spec.HasMinRating && v.EffectiveRating() < spec.MinRating {
		return false
	}
	return true
}

// hasAllAmenities reports whether every requested amenity is present,
// compared case-insensitively.
func hasAllAmenities(have, want []string) bool {
	set := make(map[string]struct{}, len(have))
	for _, a := range have {
		set[strings.ToLower(strings.TrimSpace(a))] = struct{}{}
	}
	for _, w := range want {
		if _, ok := set[strings.ToLower(w)]; !ok {
			return false
		}
	}
	return true
}
