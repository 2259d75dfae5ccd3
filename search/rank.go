package search

import (
	"math"
	"sort"

	"mandap/geo"
	"mandap/models"
)

// RankedVenue is a venue annotated with its distance from the caller
// and its composite relevance score for the duration of one request.
type RankedVenue struct {
	models.Venue
	DistanceKm float64 `json:"distance"`
	Score      float64 `json:"score"`
}

// Rank scores every venue and orders the set for the requested sort
// mode. When the request went through a location term and resolved a
// center, distance from that center overrides the sort mode.
func Rank(venues []models.Venue, spec FilterSpec, center *geo.Point) []RankedVenue {
	ranked := make([]RankedVenue, 0, len(venues))
	for _, v := range venues {
		ranked = append(ranked, scoreVenue(v, spec))
	}

	if spec.Location != "" && center != nil {
		sortByCenterDistance(ranked, *center)
		return ranked
	}

	switch spec.Sort {
	case SortPriceAsc:
		sortStable(ranked, func(a, b RankedVenue) int {
			return compareFloat(sortPrice(a, math.Inf(1)), sortPrice(b, math.Inf(1)))
		})
	case SortPriceDesc:
		sortStable(ranked, func(a, b RankedVenue) int {
			return compareFloat(sortPrice(b, math.Inf(-1)), sortPrice(a, math.Inf(-1)))
		})
	case SortRatingDesc:
		sortStable(ranked, func(a, b RankedVenue) int {
			return compareFloat(b.EffectiveRating(), a.EffectiveRating())
		})
	default:
		// popularity: score desc, rating desc, popularity desc, distance asc
		sortStable(ranked, func(a, b RankedVenue) int {
			if c := compareFloat(b.Score, a.Score); c != 0 {
				return c
			}
			if c := compareFloat(b.EffectiveRating(), a.EffectiveRating()); c != 0 {
				return c
			}
			if c := compareFloat(b.PopularityScore, a.PopularityScore); c != 0 {
				return c
			}
			return compareFloat(a.DistanceKm, b.DistanceKm)
		})
	}
	return ranked
}

func scoreVenue(v models.Venue, spec FilterSpec) RankedVenue {
	rv := RankedVenue{Venue: v}

	if spec.UseMyLocation && spec.HasCoords && v.Geo.HasPoint() {
		rv.DistanceKm = geo.Haversine(
			geo.Point{Lat: spec.Lat, Lng: spec.Lng},
			geo.Point{Lat: v.Geo.Lat(), Lng: v.Geo.Lng()},
		)
	}

	rv.Score = 0.4*v.EffectiveRating() + 0.3*v.PopularityScore
	if spec.UseMyLocation && rv.DistanceKm > 0 {
		rv.Score += 0.3 / rv.DistanceKm
	}
	return rv
}

// sortByCenterDistance orders ascending by distance from the resolved
// city center; venues without a geo point sort last.
func sortByCenterDistance(ranked []RankedVenue, center geo.Point) {
	dist := make(map[string]float64, len(ranked))
	for _, rv := range ranked {
		d := math.Inf(1)
		if rv.Geo.HasPoint() {
			d = geo.Haversine(center, geo.Point{Lat: rv.Geo.Lat(), Lng: rv.Geo.Lng()})
		}
		dist[rv.VenueID] = d
	}
	sortStable(ranked, func(a, b RankedVenue) int {
		return compareFloat(dist[a.VenueID], dist[b.VenueID])
	})
}

// sortPrice treats a non-positive price as missing.
func sortPrice(rv RankedVenue, missing float64) float64 {
	if rv.Price <= 0 {
		return missing
	}
	return rv.Price
}

// sortStable applies cmp with a final venue id tie-break so identical
// requests always yield an identical ordering.
func sortStable(ranked []RankedVenue, cmp func(a, b RankedVenue) int) {
	sort.Slice(ranked, func(i, j int) bool {
		if c := cmp(ranked[i], ranked[j]); c != 0 {
			return c < 0
		}
		return ranked[i].VenueID < ranked[j].VenueID
	})
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
