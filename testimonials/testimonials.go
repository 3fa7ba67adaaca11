package testimonials

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"underrated/db"
	"underrated/models"
	"underrated/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type testimonialInput struct {
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Message  string   `json:"message"`
	Avatar   string   `json:"avatar"`
	Featured bool     `json:"featured"`
	Rating   *float64 `json:"rating"`
}

func newTestimonial(in testimonialInput) (models.Testimonial, error) {
	name := strings.TrimSpace(in.Name)
	message := strings.TrimSpace(in.Message)
	if name == "" || message == "" {
		return models.Testimonial{}, fmt.Errorf("Name and Message are required.")
	}

	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = models.DefaultTestimonialRole
	}
	rating := 5.0
	if in.Rating != nil {
		rating = *in.Rating
	}

	now := time.Now()
	return models.Testimonial{
		Name:      name,
		Role:      role,
		Message:   message,
		Avatar:    strings.TrimSpace(in.Avatar),
		Featured:  in.Featured,
		Rating:    rating,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GET /api/testimonials — public; ?featured=true narrows to homepage picks.
func GetTestimonials(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if r.URL.Query().Get("featured") == "true" {
		filter["featured"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.TestimonialsCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	testimonials := []models.Testimonial{}
	if err := cursor.All(ctx, &testimonials); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, testimonials)
}

// POST /api/testimonials
func CreateTestimonial(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in testimonialInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid testimonial data")
		return
	}

	testimonial, err := newTestimonial(in)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	testimonial.ID = primitive.NewObjectID()

	if _, err := db.TestimonialsCollection.InsertOne(r.Context(), testimonial); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, testimonial)
}

var allowedUpdateFields = map[string]bool{
	"name":     true,
	"role":     true,
	"message":  true,
	"avatar":   true,
	"featured": true,
	"rating":   true,
}

// PUT /api/testimonials/:id
func UpdateTestimonial(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid testimonial id")
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
	fields["updatedAt"] = time.Now()

	var updated models.Testimonial
	err = db.TestimonialsCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Testimonial not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/testimonials/:id
func DeleteTestimonial(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid testimonial id")
		return
	}

	res, err := db.TestimonialsCollection.DeleteOne(r.Context(), bson.M{"_id": oid})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Testimonial not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Testimonial deleted"})
}
