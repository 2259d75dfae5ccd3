package geo

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"mandap/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Reference is an in-memory snapshot of the geocoded address dataset.
// It is loaded once at startup and replaced wholesale on refresh, so
// readers only ever see a complete set. This keeps "pincodes within
// radius" an in-process scan instead of a per-request Mongo query.
type Reference struct {
	mu   sync.RWMutex
	rows []models.GeocodedAddress
}

func NewReference() *Reference {
	return &Reference{}
}

// Load replaces the snapshot with the current contents of the
// reference collection.
func (ref *Reference) Load(ctx context.Context, coll *mongo.Collection) error {
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var rows []models.GeocodedAddress
	if err := cursor.All(ctx, &rows); err != nil {
		return err
	}

	ref.mu.Lock()
	ref.rows = rows
	ref.mu.Unlock()
	log.Printf("[GeoReference] loaded %d addresses", len(rows))
	return nil
}

// StartRefresh reloads the snapshot on a ticker until ctx is done.
func (ref *Reference) StartRefresh(ctx context.Context, coll *mongo.Collection, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := ref.Load(ctx, coll); err != nil {
				log.Println("[GeoReference] refresh error:", err)
			}
		}
	}
}

func (ref *Reference) Len() int {
	ref.mu.RLock()
	defer ref.mu.RUnlock()
	return len(ref.rows)
}

// CityMatch returns every address whose city contains term,
// case-insensitively.
func (ref *Reference) CityMatch(term string) []models.GeocodedAddress {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	ref.mu.RLock()
	defer ref.mu.RUnlock()

	var out []models.GeocodedAddress
	for _, row := range ref.rows {
		if strings.Contains(strings.ToLower(row.City), term) {
			out = append(out, row)
		}
	}
	return out
}

// PincodesWithin scans the whole snapshot and collects the distinct
// pincodes at most radiusKm from center.
func (ref *Reference) PincodesWithin(center Point, radiusKm float64) []string {
	ref.mu.RLock()
	defer ref.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, row := range ref.rows {
		if row.Pincode == "" {
			continue
		}
		if _, ok := seen[row.Pincode]; ok {
			continue
		}
		d := Haversine(center, Point{Lat: row.Latitude, Lng: row.Longitude})
		if d <= radiusKm {
			seen[row.Pincode] = struct{}{}
			out = append(out, row.Pincode)
		}
	}
	return out
}
