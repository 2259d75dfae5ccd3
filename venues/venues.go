package venues

import (
	"context"
	"net/http"
	"time"

	"mandap/db"
	"mandap/models"
	"mandap/rdx"
	"mandap/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Venues
func GetVenues(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Try cache
	if cached, _ := rdx.RdxGet("venues"); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	venues, err := utils.FindAndDecode[models.Venue](ctx, db.VenuesCollection, bson.M{"status": models.VenueStatusActive})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch venues")
		return
	}
	if venues == nil {
		venues = []models.Venue{}
	}

	data := utils.ToJSON(venues)
	rdx.RdxSet("venues", string(data))
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func GetVenue(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("venueid")

	var venue models.Venue
	err := db.VenuesCollection.FindOne(ctx, bson.M{"venueid": id}).Decode(&venue)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{
			"status":  http.StatusNotFound,
			"message": "Venue not found",
		})
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch venue")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, venue)
}
