package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineZeroForSamePoint(t *testing.T) {
	p := Point{Lat: 18.5204, Lng: 73.8567}
	assert.Equal(t, 0.0, Haversine(p, p))
}

func TestHaversineOneDegreeLatitude(t *testing.T) {
	a := Point{Lat: 0, Lng: 0}
	b := Point{Lat: 1, Lng: 0}
	// One degree of latitude on a 6371 km sphere is ~111.19 km.
	assert.InDelta(t, 111.19, Haversine(a, b), 0.05)
}

func TestHaversineKnownCityPair(t *testing.T) {
	pune := Point{Lat: 18.5204, Lng: 73.8567}
	mumbai := Point{Lat: 19.0760, Lng: 72.8777}
	d := Haversine(pune, mumbai)
	assert.InDelta(t, 120.0, d, 5.0)
}

func TestHaversineSymmetry(t *testing.T) {
	a := Point{Lat: 18.52, Lng: 73.85}
	b := Point{Lat: 18.60, Lng: 73.75}
	assert.InDelta(t, Haversine(a, b), Haversine(b, a), 1e-12)
}

func TestCentroid(t *testing.T) {
	_, ok := Centroid(nil)
	assert.False(t, ok)

	c, ok := Centroid([]Point{
		{Lat: 10, Lng: 20},
		{Lat: 20, Lng: 40},
	})
	assert.True(t, ok)
	assert.Equal(t, Point{Lat: 15, Lng: 30}, c)
}
