package search

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"mandap/utils"
)

const (
	defaultLimit = 10
	maxLimit     = 100

	SortPopularity = "popularity"
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortRatingDesc = "rating-desc"
)

const dateLayout = "2006-01-02"

// FilterSpec is the normalized form of one search request. Every
// optional field parses permissively: an unparsable number or a
// malformed date is treated as absent, never as an error.
type FilterSpec struct {
	Query    string
	Location string

	UseMyLocation bool
	Lat           float64
	Lng           float64
	HasCoords     bool

	StartDate time.Time
	EndDate   time.Time
	HasDates  bool

	MinCapacity int

	MinPrice    float64
	MaxPrice    float64
	HasMinPrice bool
	HasMaxPrice bool

	Amenities []string

	MinRating    float64
	HasMinRating bool

	Sort  string
	Page  int
	Limit int
}

// ParseFilterSpec reads the raw query parameters into a FilterSpec.
func ParseFilterSpec(r *http.Request) FilterSpec {
	q := r.URL.Query()

	spec := FilterSpec{
		Query: strings.TrimSpace(q.Get("q")),
		Sort:  SortPopularity,
		Page:  1,
		Limit: defaultLimit,
	}

	spec.Location = strings.TrimSpace(q.Get("city"))
	if spec.Location == "" {
		spec.Location = strings.TrimSpace(q.Get("location"))
	}

	if q.Get("useMyLocation") == "true" {
		lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
		lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
		if errLat == nil && errLng == nil {
			spec.UseMyLocation = true
			spec.Lat = lat
			spec.Lng = lng
			spec.HasCoords = true
		}
	}

	start, errStart := time.Parse(dateLayout, q.Get("startDate"))
	end, errEnd := time.Parse(dateLayout, q.Get("endDate"))
	if errStart == nil && errEnd == nil && !end.Before(start) {
		spec.StartDate = start
		spec.EndDate = end
		spec.HasDates = true
	}

	if v, err := strconv.Atoi(q.Get("minCapacity")); err == nil && v > 0 {
		spec.MinCapacity = v
	}

	parsePriceRange(&spec, q.Get("priceRange"))

	if raw := q.Get("amenities"); raw != "" {
		spec.Amenities = utils.SplitTags(raw)
	}

	if v, err := strconv.ParseFloat(q.Get("minRating"), 64); err == nil && v > 0 {
		spec.MinRating = v
		spec.HasMinRating = true
	}

	if sort := strings.ToLower(strings.TrimSpace(q.Get("sort"))); sort != "" {
		spec.Sort = sort
	}

	if page, err := strconv.Atoi(q.Get("page")); err == nil && page >= 1 {
		spec.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit >= 1 {
		spec.Limit = limit
	}
	if spec.Limit > maxLimit {
		spec.Limit = maxLimit
	}

	return spec
}

// parsePriceRange understands "min-max" and the open-ended "N+" form.
// Anything else leaves both bounds unset.
func parsePriceRange(spec *FilterSpec, raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}

	if strings.HasSuffix(raw, "+") {
		if min, err := strconv.ParseFloat(strings.TrimSuffix(raw, "+"), 64); err == nil {
			spec.MinPrice = min
			spec.HasMinPrice = true
		}
		return
	}

	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return
	}
	min, errMin := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	max, errMax := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errMin != nil || errMax != nil || max < min {
		return
	}
	spec.MinPrice = min
	spec.MaxPrice = max
	spec.HasMinPrice = true
	spec.HasMaxPrice = true
}
