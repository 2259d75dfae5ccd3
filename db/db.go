package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	VenuesCollection     *mongo.Collection
	BookingsCollection   *mongo.Collection
	GeoAddressCollection *mongo.Collection
	Client               *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "venuedb"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	VenuesCollection = Client.Database(dbName).Collection("venues")
	BookingsCollection = Client.Database(dbName).Collection("bookings")
	GeoAddressCollection = Client.Database(dbName).Collection("geoaddresses")
}
