package search

import (
	"testing"
	"time"

	"mandap/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestConflictFilterShape(t *testing.T) {
	start := date(2025, 1, 11)
	end := date(2025, 1, 13)
	filter := conflictFilter(start, end)

	assert.Equal(t, bson.M{"$lte": end}, filter["startDate"])
	assert.Equal(t, bson.M{"$gte": start}, filter["endDate"])
	assert.Equal(t, bson.M{"$in": bson.A{
		models.BookingStatusConfirmed,
		models.BookingStatusPending,
	}}, filter["status"])
}

func TestFilterAvailableExcludesBookedVenues(t *testing.T) {
	venues := []models.Venue{{VenueID: "C"}, {VenueID: "D"}}
	booked := map[string]struct{}{"C": {}}

	got := FilterAvailable(venues, booked, date(2025, 1, 11), date(2025, 1, 13))
	assert.Equal(t, []string{"D"}, venueIDs(got))
}

func TestFilterAvailableExcludesBlackouts(t *testing.T) {
	venues := []models.Venue{
		{
			VenueID: "C",
			AvailabilityOverrides: []models.AvailabilityOverride{
				{Date: date(2025, 1, 12), IsAvailable: false},
			},
		},
		{
			VenueID: "D",
			AvailabilityOverrides: []models.AvailabilityOverride{
				// special-price day, still available
				{Date: date(2025, 1, 12), IsAvailable: true, SpecialPrice: 9000},
			},
		},
		{
			VenueID: "E",
			AvailabilityOverrides: []models.AvailabilityOverride{
				// blackout outside the requested range
				{Date: date(2025, 2, 1), IsAvailable: false},
			},
		},
	}

	got := FilterAvailable(venues, nil, date(2025, 1, 11), date(2025, 1, 13))
	assert.Equal(t, []string{"D", "E"}, venueIDs(got))
}

func TestFilterAvailableBlackoutOnBoundary(t *testing.T) {
	venues := []models.Venue{{
		VenueID: "C",
		AvailabilityOverrides: []models.AvailabilityOverride{
			{Date: date(2025, 1, 11), IsAvailable: false},
		},
	}}
	got := FilterAvailable(venues, nil, date(2025, 1, 11), date(2025, 1, 13))
	assert.Empty(t, got)
}

func TestFilterAvailableSurvivorsUnchanged(t *testing.T) {
	venues := []models.Venue{{VenueID: "C"}, {VenueID: "D"}}
	got := FilterAvailable(venues, map[string]struct{}{}, date(2025, 2, 1), date(2025, 2, 2))
	assert.Equal(t, []string{"C", "D"}, venueIDs(got))
}
