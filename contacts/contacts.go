package contacts

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

// submissionInput is the public contact form: a general inquiry or a place
// suggestion with optional supporting details and images.
type submissionInput struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Type        string   `json:"type"`
	PlaceName   string   `json:"placeName"`
	Location    string   `json:"location"`
	MapURL      string   `json:"mapUrl"`
	Description string   `json:"description"`
	Message     string   `json:"message"`
	Images      []string `json:"images"`
}

func validType(t string) bool {
	return t == models.ContactTypeInquiry || t == models.ContactTypeSuggestion
}

func newSubmission(in submissionInput) (models.ContactSubmission, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	kind := strings.TrimSpace(in.Type)

	if name == "" || email == "" || kind == "" {
		return models.ContactSubmission{}, fmt.Errorf("Name, Email, and Type are required.")
	}
	if !validType(kind) {
		return models.ContactSubmission{}, fmt.Errorf("Unknown submission type: %s", kind)
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}

	now := time.Now()
	return models.ContactSubmission{
		Name:        name,
		Email:       email,
		Type:        kind,
		PlaceName:   strings.TrimSpace(in.PlaceName),
		Location:    strings.TrimSpace(in.Location),
		MapURL:      strings.TrimSpace(in.MapURL),
		Description: strings.TrimSpace(in.Description),
		Message:     strings.TrimSpace(in.Message),
		Images:      images,
		Status:      models.ContactStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// POST /api/contacts
func SubmitContact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in submissionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid submission data")
		return
	}

	submission, err := newSubmission(in)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	submission.ID = primitive.NewObjectID()

	if _, err := db.ContactsCollection.InsertOne(r.Context(), submission); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error processing your request.")
		return
	}

	go mq.Emit(context.Background(), "contact-submitted", mq.Index{EntityType: "contact", EntityId: submission.ID.Hex(), Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Submission received successfully",
		"data":    submission,
	})
}

// GET /api/contacts
func GetSubmissions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.ContactsCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	submissions := []models.ContactSubmission{}
	if err := cursor.All(ctx, &submissions); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, submissions)
}

func validStatus(s string) bool {
	switch s {
	case models.ContactStatusNew, models.ContactStatusRead,
		models.ContactStatusAccepted, models.ContactStatusRejected:
		return true
	}
	return false
}

// PUT /api/contacts/:id — status transitions only.
func UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid submission id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid update data")
		return
	}
	if !validStatus(body.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	var updated models.ContactSubmission
	err = db.ContactsCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": body.Status, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Submission not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/contacts/:id
func DeleteSubmission(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid submission id")
		return
	}

	res, err := db.ContactsCollection.DeleteOne(r.Context(), bson.M{"_id": oid})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Submission not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Submission deleted"})
}
