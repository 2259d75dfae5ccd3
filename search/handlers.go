package search

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"mandap/db"
	"mandap/geo"
	"mandap/rdx"
	"mandap/utils"

	"github.com/julienschmidt/httprouter"
)

const (
	requestTimeout = 5 * time.Second
	pageCacheTTL   = 60 * time.Second
)

// Handler owns the whole search pipeline for one endpoint.
type Handler struct {
	Resolver  *Resolver
	Retriever *Retriever
	Ledger    *Ledger
}

func NewHandler(ref *geo.Reference) *Handler {
	return &Handler{
		Resolver:  NewResolver(ref),
		Retriever: NewRetriever(db.VenuesCollection),
		Ledger:    NewLedger(db.BookingsCollection),
	}
}

// SearchVenues runs normalize → resolve → retrieve → availability →
// facets → rank → paginate and writes the paginated response.
func (h *Handler) SearchVenues(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	spec := ParseFilterSpec(r)

	cacheKey := pageCacheKey(spec)
	if cached, _ := rdx.RdxGet(cacheKey); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	var loc Resolved
	if spec.Location != "" {
		var err error
		loc, err = h.Resolver.Resolve(ctx, spec.Location)
		if err != nil {
			log.Printf("[SearchVenues] resolve error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to search venues")
			return
		}
	}

	venues, err := h.Retriever.Retrieve(ctx, spec, loc)
	if err != nil {
		log.Printf("[SearchVenues] retrieve error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to search venues")
		return
	}

	if spec.HasDates {
		booked, err := h.Ledger.ConflictingVenueIDs(ctx, spec.StartDate, spec.EndDate)
		if err != nil {
			log.Printf("[SearchVenues] availability error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to search venues")
			return
		}
		venues = FilterAvailable(venues, booked, spec.StartDate, spec.EndDate)
	}

	venues = ApplyFacets(venues, spec)
	ranked := Rank(venues, spec, loc.Center)
	items, pagination := Paginate(ranked, spec.Page, spec.Limit)

	body := utils.ToJSON(utils.M{
		"venues":     items,
		"pagination": pagination,
	})
	rdx.RdxSetTTL(cacheKey, string(body), pageCacheTTL)

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// pageCacheKey hashes the normalized spec so equivalent requests share
// a cache entry regardless of raw parameter noise.
func pageCacheKey(spec FilterSpec) string {
	raw := fmt.Sprintf("%s|%s|%t|%.6f|%.6f|%s|%s|%d|%t%.2f|%t%.2f|%v|%t%.2f|%s|%d|%d",
		spec.Query, spec.Location, spec.UseMyLocation, spec.Lat, spec.Lng,
		spec.StartDate.Format(dateLayout), spec.EndDate.Format(dateLayout),
		spec.MinCapacity,
		spec.HasMinPrice, spec.MinPrice, spec.HasMaxPrice, spec.MaxPrice,
		spec.Amenities, spec.HasMinRating, spec.MinRating,
		spec.Sort, spec.Page, spec.Limit,
	)
	return "search:venues:" + utils.EncrypIt(raw)
}
