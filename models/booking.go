package models

import "time"

// Booking is a row in the externally-owned booking ledger. Read-only here.
type Booking struct {
	BookingID string    `json:"bookingid,omitempty" bson:"bookingid,omitempty"`
	VenueID   string    `json:"venueId" bson:"venueId"`
	UserID    string    `json:"userId,omitempty" bson:"userId,omitempty"`
	StartDate time.Time `json:"startDate" bson:"startDate"`
	EndDate   time.Time `json:"endDate" bson:"endDate"`
	Status    string    `json:"status" bson:"status"`
}

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)
