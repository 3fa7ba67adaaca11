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
	PlacesCollection       *mongo.Collection
	ReviewsCollection      *mongo.Collection
	ContactsCollection     *mongo.Collection
	UserContactsCollection *mongo.Collection
	TestimonialsCollection *mongo.Collection
	Client                 *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("db: no .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "underrated"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database(dbName)
	PlacesCollection = database.Collection("places")
	ReviewsCollection = database.Collection("reviews")
	ContactsCollection = database.Collection("contactsubmissions")
	UserContactsCollection = database.Collection("usercontacts")
	TestimonialsCollection = database.Collection("testimonials")
}
