package reviews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"underrated/db"
	"underrated/models"
	"underrated/mq"
	"underrated/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// reviewInput carries the public submission shape. Status and the
// testimonial flag are accepted but never honored: moderation state is the
// admin's alone.
type reviewInput struct {
	PlaceID       string `json:"placeId"`
	PlaceName     string `json:"placeName"`
	User          string `json:"user"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	Status        string `json:"status"`
	IsTestimonial bool   `json:"isTestimonial"`
}

func newReview(in reviewInput) (models.Review, error) {
	user := strings.TrimSpace(in.User)
	comment := strings.TrimSpace(in.Comment)
	if user == "" || in.Rating == 0 || comment == "" {
		return models.Review{}, fmt.Errorf("Name, Rating, and Comment are required.")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return models.Review{}, fmt.Errorf("Rating must be between 1 and 5")
	}

	placeName := strings.TrimSpace(in.PlaceName)
	if placeName == "" {
		// Generic site feedback with no place attached
		placeName = models.DefaultPlaceName
	}

	now := time.Now()
	return models.Review{
		PlaceID:       strings.TrimSpace(in.PlaceID),
		PlaceName:     placeName,
		User:          user,
		Rating:        in.Rating,
		Comment:       comment,
		Status:        models.ReviewPending,
		IsTestimonial: false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// GET /api/reviews
func GetReviews(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.ReviewsCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, reviews)
}

// POST /api/reviews
func CreateReview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in reviewInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review data")
		return
	}

	review, err := newReview(in)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	review.ID = primitive.NewObjectID()

	if _, err := db.ReviewsCollection.InsertOne(r.Context(), review); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	go mq.Emit(context.Background(), "review-added", mq.Index{EntityType: "review", EntityId: review.ID.Hex(), Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, review)
}

// allowedUpdateFields whitelists what an admin edit may touch.
var allowedUpdateFields = map[string]bool{
	"placeId":       true,
	"placeName":     true,
	"user":          true,
	"rating":        true,
	"comment":       true,
	"status":        true,
	"isTestimonial": true,
}

func validStatus(s string) bool {
	return s == models.ReviewPending || s == models.ReviewApproved || s == models.ReviewRejected
}

// PUT /api/reviews/:id
func UpdateReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review id")
		return
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid update data")
		return
	}

	fields := bson.M{}
	for key, value := range body {
		if !allowedUpdateFields[key] {
			utils.RespondWithError(w, http.StatusBadRequest, fmt.Sprintf("Unknown field: %s", key))
			return
		}
		fields[key] = value
	}
	if status, ok := fields["status"].(string); ok && !validStatus(status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}
	fields["updatedAt"] = time.Now()

	var updated models.Review
	err = db.ReviewsCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	go mq.Emit(context.Background(), "review-edited", mq.Index{EntityType: "review", EntityId: oid.Hex(), Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/reviews/:id
func DeleteReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review id")
		return
	}

	res, err := db.ReviewsCollection.DeleteOne(r.Context(), bson.M{"_id": oid})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}

	go mq.Emit(context.Background(), "review-deleted", mq.Index{EntityType: "review", EntityId: oid.Hex(), Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Review deleted"})
}
