package search

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"mandap/geo"
	"mandap/rdx"
	"mandap/utils"
)

// nearbyRadiusKm bounds the pincode scan around a resolved city center.
const nearbyRadiusKm = 20.0

const resolveCacheTTL = 10 * time.Minute

// Resolved is the output of location resolution: a city-center point
// (nil when the term matched nothing) and the pincodes considered
// nearby. The scan-derived pincode set is authoritative; the city
// match only contributes the centroid.
type Resolved struct {
	Center   *geo.Point `json:"center"`
	Pincodes []string   `json:"pincodes"`
}

// Resolver turns a free-text place name into a Resolved using the
// in-memory geocode reference snapshot.
type Resolver struct {
	Ref *geo.Reference
}

func NewResolver(ref *geo.Reference) *Resolver {
	return &Resolver{Ref: ref}
}

func (rs *Resolver) Resolve(ctx context.Context, term string) (Resolved, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return Resolved{}, nil
	}

	cacheKey := "geo:resolve:" + term
	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		var res Resolved
		if err := json.Unmarshal([]byte(cached), &res); err == nil {
			return res, nil
		}
	}

	matches := rs.Ref.CityMatch(term)
	if len(matches) == 0 {
		// No city match: caller falls back to pure text retrieval.
		return Resolved{}, nil
	}

	pts := make([]geo.Point, 0, len(matches))
	for _, m := range matches {
		pts = append(pts, geo.Point{Lat: m.Latitude, Lng: m.Longitude})
	}
	center, _ := geo.Centroid(pts)

	res := Resolved{
		Center:   &center,
		Pincodes: rs.Ref.PincodesWithin(center, nearbyRadiusKm),
	}
	log.Printf("[Resolve] term=%q center=(%.4f,%.4f) pincodes=%d", term, center.Lat, center.Lng, len(res.Pincodes))

	if err := rdx.RdxSetTTL(cacheKey, string(utils.ToJSON(res)), resolveCacheTTL); err != nil {
		log.Println("[Resolve] cache set error:", err)
	}
	return res, nil
}
