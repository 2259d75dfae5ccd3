package search

import (
	"context"
	"fmt"
	"time"

	"mandap/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Ledger reads the externally-owned booking ledger.
type Ledger struct {
	Bookings *mongo.Collection
}

func NewLedger(bookings *mongo.Collection) *Ledger {
	return &Ledger{Bookings: bookings}
}

// conflictFilter matches bookings whose interval overlaps the
// requested one: booking.start <= reqEnd AND booking.end >= reqStart.
// Only confirmed and pending bookings block a venue.
func conflictFilter(start, end time.Time) bson.M {
	return bson.M{
		"status": bson.M{"$in": bson.A{
			models.BookingStatusConfirmed,
			models.BookingStatusPending,
		}},
		"startDate": bson.M{"$lte": end},
		"endDate":   bson.M{"$gte": start},
	}
}

// ConflictingVenueIDs returns the ids of every venue with a booking
// that overlaps [start, end].
func (l *Ledger) ConflictingVenueIDs(ctx context.Context, start, end time.Time) (map[string]struct{}, error) {
	cursor, err := l.Bookings.Find(ctx, conflictFilter(start, end))
	if err != nil {
		return nil, fmt.Errorf("booking ledger query: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("booking ledger decode: %w", err)
	}

	booked := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		booked[b.VenueID] = struct{}{}
	}
	return booked, nil
}

// FilterAvailable drops candidates that are booked for the range or
// have an owner blackout inside it. Either exclusion alone is enough.
func FilterAvailable(venues []models.Venue, booked map[string]struct{}, start, end time.Time) []models.Venue {
	out := make([]models.Venue, 0, len(venues))
	for _, v := range venues {
		if _, ok := booked[v.VenueID]; ok {
			continue
		}
		if hasBlackout(v, start, end) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func hasBlackout(v models.Venue, start, end time.Time) bool {
	for _, ov := range v.AvailabilityOverrides {
		if ov.IsAvailable {
			continue
		}
		if !ov.Date.Before(start) && !ov.Date.After(end) {
			return true
		}
	}
	return false
}
