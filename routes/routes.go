package routes

import (
	"mandap/middleware"
	"mandap/ratelim"
	"mandap/search"
	"mandap/venues"

	"github.com/julienschmidt/httprouter"
)

func AddSearchRoutes(router *httprouter.Router, h *search.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/search/venues", middleware.OptionalAuth(rl.Limit(h.SearchVenues)))
}

func AddVenueRoutes(router *httprouter.Router) {
	router.GET("/api/venues", venues.GetVenues)
	router.GET("/api/venues/:venueid", venues.GetVenue)
}
