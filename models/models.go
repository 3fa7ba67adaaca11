package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Place is a curated point-of-interest. IDs are sequential zero-padded
// strings ("001", "002", …) managed by the application, not by Mongo.
type Place struct {
	ID          string    `json:"_id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	City        string    `json:"city" bson:"city"`
	Location    string    `json:"location" bson:"location"` // kept in sync with City for older clients
	Desc        string    `json:"desc" bson:"desc"`
	Categories  []string  `json:"categories" bson:"categories"`
	Category    string    `json:"category" bson:"category"`
	MapURL      string    `json:"mapUrl" bson:"mapUrl"`
	Latitude    *float64  `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty" bson:"longitude,omitempty"`
	BestTime    string    `json:"bestTime" bson:"bestTime"`
	OpenDays    string    `json:"openDays" bson:"openDays"`
	Images      []string  `json:"images" bson:"images"`
	Image       string    `json:"image" bson:"image"`
	Rating      float64   `json:"rating" bson:"rating"`
	Verified    bool      `json:"verified" bson:"verified"`
	Distance    *float64  `json:"distance,omitempty" bson:"-"` // km from the caller, only on annotated list responses
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

const DefaultCategory = "Hidden Gem"
const DefaultOpenDays = "Daily"

type Review struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PlaceID       string             `json:"placeId,omitempty" bson:"placeId,omitempty"` // weak reference, never enforced
	PlaceName     string             `json:"placeName" bson:"placeName"`
	User          string             `json:"user" bson:"user"`
	Rating        int                `json:"rating" bson:"rating"`
	Comment       string             `json:"comment" bson:"comment"`
	Status        string             `json:"status" bson:"status"`
	IsTestimonial bool               `json:"isTestimonial" bson:"isTestimonial"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

const (
	ReviewPending  = "Pending"
	ReviewApproved = "Approved"
	ReviewRejected = "Rejected"
)

const DefaultPlaceName = "General Feedback"

// ContactSubmission is the newer public contact form: general inquiries and
// place suggestions, with optional suggestion details and images.
type ContactSubmission struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	Type        string             `json:"type" bson:"type"`
	PlaceName   string             `json:"placeName,omitempty" bson:"placeName,omitempty"`
	Location    string             `json:"location,omitempty" bson:"location,omitempty"`
	MapURL      string             `json:"mapUrl,omitempty" bson:"mapUrl,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Message     string             `json:"message,omitempty" bson:"message,omitempty"`
	Images      []string           `json:"images" bson:"images"`
	Status      string             `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

const (
	ContactTypeInquiry    = "General Inquiry"
	ContactTypeSuggestion = "Place Suggestion"
	ContactTypeBugReport  = "Bug Report"
)

const (
	ContactStatusNew      = "New"
	ContactStatusRead     = "Read"
	ContactStatusAccepted = "Accepted"
	ContactStatusRejected = "Rejected"
	ContactStatusReplied  = "Replied"
)

// UserContact is the legacy single-purpose contact form. It overlaps with
// ContactSubmission but has its own status lifecycle; the two collections grew
// independently and are kept separate on purpose.
type UserContact struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Type      string             `json:"type" bson:"type"`
	PlaceName string             `json:"placeName,omitempty" bson:"placeName,omitempty"`
	Location  string             `json:"location,omitempty" bson:"location,omitempty"`
	Message   string             `json:"message" bson:"message"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Testimonial is standalone highlight content curated by the admin,
// independent of the review-promotion flow.
type Testimonial struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Role      string             `json:"role" bson:"role"`
	Message   string             `json:"message" bson:"message"`
	Avatar    string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Featured  bool               `json:"featured" bson:"featured"`
	Rating    float64            `json:"rating" bson:"rating"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

const DefaultTestimonialRole = "Explorer"
