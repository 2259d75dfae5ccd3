package search

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"sync"

	"mandap/geo"
	"mandap/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// proximityRadiusKm is the "near me" radius for coordinate searches.
const proximityRadiusKm = 10.0

// strategy is one independent retrieval pass over the venue catalog.
type strategy struct {
	name   string
	filter bson.M
}

// Retriever fans candidate retrieval out over the active strategies
// and unions the results by venue id.
type Retriever struct {
	Venues *mongo.Collection
}

func NewRetriever(venues *mongo.Collection) *Retriever {
	return &Retriever{Venues: venues}
}

func (rt *Retriever) Retrieve(ctx context.Context, spec FilterSpec, loc Resolved) ([]models.Venue, error) {
	strategies := buildStrategies(spec, loc)

	results := make([][]models.Venue, len(strategies))
	errs := make([]error, len(strategies))

	var wg sync.WaitGroup
	for i, st := range strategies {
		wg.Add(1)
		go func(i int, st strategy) {
			defer wg.Done()
			cursor, err := rt.Venues.Find(ctx, st.filter)
			if err != nil {
				errs[i] = err
				return
			}
			defer cursor.Close(ctx)
			errs[i] = cursor.All(ctx, &results[i])
		}(i, st)
	}
	wg.Wait()

	// Any failed strategy fails the whole request: a partial union
	// would present a misleadingly short result set as exhaustive.
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s strategy: %w", strategies[i].name, err)
		}
	}

	candidates := unionByID(results)
	log.Printf("[Retrieve] strategies=%d candidates=%d", len(strategies), len(candidates))
	return candidates, nil
}

// buildStrategies selects the retrieval passes by which inputs are
// present. Only active venues are ever candidates.
func buildStrategies(spec FilterSpec, loc Resolved) []strategy {
	var out []strategy

	if spec.UseMyLocation && spec.HasCoords {
		out = append(out, strategy{
			name: "proximity",
			filter: bson.M{
				"status": models.VenueStatusActive,
				"geo": bson.M{"$geoWithin": bson.M{
					"$centerSphere": bson.A{
						bson.A{spec.Lng, spec.Lat},
						proximityRadiusKm / geo.EarthRadiusKm,
					},
				}},
			},
		})
	}

	if spec.Location != "" && len(loc.Pincodes) > 0 {
		out = append(out, strategy{
			name: "pincodes",
			filter: bson.M{
				"status":  models.VenueStatusActive,
				"zipCode": bson.M{"$in": loc.Pincodes},
			},
		})
	}

	if spec.Location != "" {
		re := containsRegex(spec.Location)
		out = append(out, strategy{
			name: "textmatch",
			filter: bson.M{
				"status": models.VenueStatusActive,
				"$or": bson.A{
					bson.M{"city": re},
					bson.M{"address": re},
					bson.M{"zipCode": re},
				},
			},
		})
	}

	if spec.Query != "" && spec.Location == "" {
		re := containsRegex(spec.Query)
		filter := bson.M{
			"status": models.VenueStatusActive,
			"$or": bson.A{
				bson.M{"name": re},
				bson.M{"description": re},
			},
		}
		applyFacetConditions(filter, spec)
		out = append(out, strategy{name: "freetext", filter: filter})
	}

	// Pure facet/date browse: no term, no location, no coordinates.
	if len(out) == 0 {
		filter := bson.M{"status": models.VenueStatusActive}
		applyFacetConditions(filter, spec)
		out = append(out, strategy{name: "catalog", filter: filter})
	}

	return out
}

func containsRegex(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

// applyFacetConditions folds the cheap facet constraints into a Mongo
// filter so the single-pass strategies do less in-memory work. The
// in-memory facet filter still runs afterwards and is authoritative
// (it also handles the averageRating/rating fallback).
func applyFacetConditions(filter bson.M, spec FilterSpec) {
	if spec.MinCapacity > 0 {
		filter["capacity"] = bson.M{"$gte": spec.MinCapacity}
	}
	if spec.HasMinPrice || spec.HasMaxPrice {
		price := bson.M{}
		if spec.HasMinPrice {
			price["$gte"] = spec.MinPrice
		}
		if spec.HasMaxPrice {
			price["$lte"] = spec.MaxPrice
		}
		filter["price"] = price
	}
	if len(spec.Amenities) > 0 {
		filter["amenities"] = bson.M{"$all": spec.Amenities}
	}
}

// unionByID merges strategy outputs in order; the first occurrence of
// a venue id wins and later duplicates are dropped.
func unionByID(results [][]models.Venue) []models.Venue {
	seen := make(map[string]struct{})
	var out []models.Venue
	for _, batch := range results {
		for _, v := range batch {
			if _, ok := seen[v.VenueID]; ok {
				continue
			}
			seen[v.VenueID] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
