package models

import "time"

type Venue struct {
	VenueID         string   `json:"venueid" bson:"venueid"`
	Name            string   `json:"name" bson:"name"`
	Description     string   `json:"description" bson:"description"`
	Address         string   `json:"address" bson:"address"`
	City            string   `json:"city,omitempty" bson:"city,omitempty"`
	ZipCode         string   `json:"zipCode,omitempty" bson:"zipCode,omitempty"`
	Geo             *GeoJSON `json:"geo,omitempty" bson:"geo,omitempty"`
	Price           float64  `json:"price,omitempty" bson:"price,omitempty"`
	Capacity        int      `json:"capacity" bson:"capacity"`
	Amenities       []string `json:"amenities,omitempty" bson:"amenities,omitempty"`
	Rating          float64  `json:"rating,omitempty" bson:"rating,omitempty"`
	AverageRating   *float64 `json:"averageRating,omitempty" bson:"averageRating,omitempty"`
	PopularityScore float64  `json:"popularityScore,omitempty" bson:"popularityScore,omitempty"`
	Status          string   `json:"status" bson:"status"`

	AvailabilityOverrides []AvailabilityOverride `json:"availabilityOverrides,omitempty" bson:"availabilityOverrides,omitempty"`

	// Catalog-owned metadata, passed through untouched.
	Banner    string     `json:"banner,omitempty" bson:"banner,omitempty"`
	CreatedBy string     `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt time.Time  `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt time.Time  `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
	Views     int        `json:"views,omitempty" bson:"views,omitempty"`
}

const (
	VenueStatusActive   = "active"
	VenueStatusInactive = "inactive"
)

// GeoJSON is a Point as stored by the catalog: coordinates are [lng, lat].
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

func (g *GeoJSON) Lng() float64 { return g.Coordinates[0] }
func (g *GeoJSON) Lat() float64 { return g.Coordinates[1] }

// HasPoint reports whether a usable coordinate pair is present.
func (g *GeoJSON) HasPoint() bool {
	return g != nil && len(g.Coordinates) == 2
}

// EffectiveRating prefers averageRating and falls back to the legacy
// rating field when the former is absent.
func (v *Venue) EffectiveRating() float64 {
	if v.AverageRating != nil {
		return *v.AverageRating
	}
	return v.Rating
}

// AvailabilityOverride is an owner-imposed exception for one date,
// independent of the booking ledger.
type AvailabilityOverride struct {
	Date         time.Time `json:"date" bson:"date"`
	IsAvailable  bool      `json:"isAvailable" bson:"isAvailable"`
	SpecialPrice float64   `json:"specialPrice,omitempty" bson:"specialPrice,omitempty"`
}
