package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"mandap/db"
	"mandap/geo"
	"mandap/globals"
	"mandap/mq"
	"mandap/ratelim"
	"mandap/routes"
	"mandap/search"
	"mandap/utils"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// XSS, content sniffing, framing
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		// HSTS (must be on HTTPS)
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		// Referrer and permissions
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware tags each request with an id and logs method,
// path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := utils.GetUUID()
		r = r.WithContext(context.WithValue(r.Context(), globals.RequestIDKey, reqID))
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		log.Printf("%s %s %s from %s – %v", reqID, r.Method, r.RequestURI, r.RemoteAddr, duration)
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(rateLimiter *ratelim.RateLimiter, searchHandler *search.Handler) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddSearchRoutes(router, searchHandler, rateLimiter)
	routes.AddVenueRoutes(router)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	// read port
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	// initialize rate limiter
	rateLimiter := ratelim.NewRateLimiter()

	// load the geocode reference snapshot and keep it fresh
	geoRef := geo.NewReference()
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	if err := geoRef.Load(loadCtx, db.GeoAddressCollection); err != nil {
		log.Fatalf("Failed to load geocode reference: %v", err)
	}
	cancelLoad()

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	go geoRef.StartRefresh(workerCtx, db.GeoAddressCollection, geoRefreshInterval())
	go mq.StartInvalidationWorker(workerCtx, geoRef)

	// build router
	searchHandler := search.NewHandler(geoRef)
	router := setupRouter(rateLimiter, searchHandler)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	// create HTTP server
	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Println("Stopping background workers...")
		stopWorkers()
	})

	// start server
	go func() {
		log.Printf("Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	// initiate graceful shutdown
	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
	if err := db.Client.Disconnect(ctx); err != nil {
		log.Printf("MongoDB disconnect error: %v", err)
	}
	log.Println("Server stopped")
}

func geoRefreshInterval() time.Duration {
	if v, err := strconv.Atoi(os.Getenv("GEO_REFRESH_MINUTES")); err == nil && v > 0 {
		return time.Duration(v) * time.Minute
	}
	return 15 * time.Minute
}
