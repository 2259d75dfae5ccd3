package models

// GeocodedAddress is one row of the externally-maintained geocode
// reference dataset. Many rows may share a city.
type GeocodedAddress struct {
	Pincode   string  `json:"pincode" bson:"pincode"`
	City      string  `json:"city" bson:"city"`
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}
